package future_test

import (
	"fmt"
	"sync"
	"time"

	"github.com/b97tsk/future"
)

func Example() {
	// One wake-up channel is shared by the whole composition.
	// Whichever future becomes unblocked, the executor learns only that it
	// should poll again; the combinator then re-polls every pending future.
	wake := make(chan struct{}, 1)
	notify := func() {
		select {
		case wake <- struct{}{}:
		default:
		}
	}

	// A future completed from another goroutine some time later.
	promise := func(v string, d time.Duration) future.Future[string] {
		var (
			mu   sync.Mutex
			val  string
			done bool
		)
		time.AfterFunc(d, func() {
			mu.Lock()
			val, done = v, true
			mu.Unlock()
			notify()
		})
		return future.FutureFunc[string](func() (string, bool) {
			mu.Lock()
			defer mu.Unlock()
			return val, done
		})
	}

	// No matter in which order the three promises resolve, Join yields
	// their values in input order.
	f := future.Join3[string, string, string](
		promise("one", 30*time.Millisecond),
		promise("two", 10*time.Millisecond),
		promise("three", 20*time.Millisecond),
	)

	// A cooperative executor in miniature: poll, then park until woken.
	for {
		if v, ok := f.Poll(); ok {
			fmt.Println(v.First, v.Second, v.Third)
			break
		}
		<-wake
	}

	// Output:
	// one two three
}

func ExampleJoin3() {
	// Three units of work, completing after one, zero and two wake-ups.
	a := after(1, "a")
	b := ready("b")
	c := after(2, "c")

	f := future.Join3[string, string, string](a, b, c)

	for tick := 1; ; tick++ {
		v, ok := f.Poll()
		if !ok {
			fmt.Printf("tick %d: pending\n", tick)
			continue
		}
		fmt.Printf("tick %d: %s %s %s\n", tick, v.First, v.Second, v.Third)
		break
	}

	// Output:
	// tick 1: pending
	// tick 2: pending
	// tick 3: a b c
}

func ExampleRace3() {
	f := future.Race3[int, int, int](after(3, 1), after(1, 2), after(2, 3))

	for {
		v, ok := f.Poll()
		if !ok {
			continue
		}
		if n, won := v.Second(); won {
			fmt.Println("second won with", n)
		}
		break
	}

	// Output:
	// second won with 2
}

func ExampleRaceSame2() {
	// A timeout-vs-work race: both branches yield the same type and only
	// the value matters, not which branch produced it.
	work := after(5, "result")
	timeout := after(2, "timed out")

	f := future.RaceSame2[string](work, timeout)

	for {
		if v, ok := f.Poll(); ok {
			fmt.Println(v)
			break
		}
	}

	// Output:
	// timed out
}
