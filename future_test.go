package future_test

import (
	"testing"

	"github.com/b97tsk/future"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A countdown is a single-shot test future that completes with a value
// after a fixed number of pending polls.
// It panics if polled again after completing, enforcing the single-shot
// contract on whoever owns it.
type countdown[T any] struct {
	v       T
	pending int
	polls   int
	done    bool
}

func (c *countdown[T]) Poll() (T, bool) {
	if c.done {
		panic("countdown polled after completion")
	}
	c.polls++
	if c.polls <= c.pending {
		var zero T
		return zero, false
	}
	c.done = true
	return c.v, true
}

// ready returns a future that completes on its first poll.
func ready[T any](v T) *countdown[T] { return &countdown[T]{v: v} }

// after returns a future that reports pending n times before completing.
func after[T any](n int, v T) *countdown[T] { return &countdown[T]{v: v, pending: n} }

func TestJoin(t *testing.T) {
	t.Run("StagedCompletion", func(t *testing.T) {
		f0 := after(1, 10)
		f1 := ready(20)
		f2 := after(2, 30)

		j := future.Join3[int, int, int](f0, f1, f2)

		for range 2 {
			_, ok := j.Poll()
			require.False(t, ok)
		}

		v, ok := j.Poll()
		require.True(t, ok)
		require.Equal(t, future.Tuple3[int, int, int]{First: 10, Second: 20, Third: 30}, v)

		// Completed futures are never polled again; pending ones are
		// polled once per tick.
		assert.Equal(t, 2, f0.polls)
		assert.Equal(t, 1, f1.polls)
		assert.Equal(t, 3, f2.polls)
	})

	t.Run("OrderIndependence", func(t *testing.T) {
		// Completion order is the reverse of input order; the result is
		// in input order regardless.
		f0 := after(2, "a")
		f1 := after(1, "b")
		f2 := ready("c")

		j := future.Join3[string, string, string](f0, f1, f2)

		_, ok := j.Poll()
		require.False(t, ok)
		_, ok = j.Poll()
		require.False(t, ok)

		v, ok := j.Poll()
		require.True(t, ok)
		require.Equal(t, future.Tuple3[string, string, string]{First: "a", Second: "b", Third: "c"}, v)
	})

	t.Run("PollAmplification", func(t *testing.T) {
		// One shared wake-up per tick: every still-pending future is
		// polled exactly once, no more, no less.
		f0 := after(99, 0)
		f1 := after(99, 0)
		f2 := after(99, 0)

		j := future.Join3[int, int, int](f0, f1, f2)

		for tick := 1; tick <= 5; tick++ {
			_, ok := j.Poll()
			require.False(t, ok)
			require.Equal(t, tick, f0.polls)
			require.Equal(t, tick, f1.polls)
			require.Equal(t, tick, f2.polls)
		}
	})

	t.Run("PolledAfterCompletion", func(t *testing.T) {
		j := future.Join2[int, int](ready(1), ready(2))

		_, ok := j.Poll()
		require.True(t, ok)
		require.PanicsWithValue(t, "future: polled after completion", func() { j.Poll() })
	})
}

func TestRace(t *testing.T) {
	t.Run("TieBreak", func(t *testing.T) {
		// All three become ready on the same tick; the lowest position
		// wins and the sweep never reaches the others.
		f0 := ready(1)
		f1 := ready(2)
		f2 := ready(3)

		r := future.Race3[int, int, int](f0, f1, f2)

		v, ok := r.Poll()
		require.True(t, ok)
		assert.Equal(t, 0, v.Index())

		first, won := v.First()
		assert.True(t, won)
		assert.Equal(t, 1, first)

		_, won = v.Second()
		assert.False(t, won)
		_, won = v.Third()
		assert.False(t, won)

		assert.Zero(t, f1.polls)
		assert.Zero(t, f2.polls)
	})

	t.Run("MidWinner", func(t *testing.T) {
		f0 := after(5, "slow")
		f1 := ready("quick")
		f2 := after(5, "slower")

		r := future.Race3[string, string, string](f0, f1, f2)

		v, ok := r.Poll()
		require.True(t, ok)
		assert.Equal(t, 1, v.Index())

		quick, won := v.Second()
		require.True(t, won)
		assert.Equal(t, "quick", quick)

		// The losers are abandoned where they stand: the one before the
		// winner was polled this tick, the one after was not, and
		// neither is ever polled again.
		assert.Equal(t, 1, f0.polls)
		assert.Zero(t, f2.polls)
	})

	t.Run("Pending", func(t *testing.T) {
		f0 := after(9, 0)
		f1 := after(9, 0)

		r := future.Race2[int, int](f0, f1)

		_, ok := r.Poll()
		require.False(t, ok)
		assert.Equal(t, 1, f0.polls)
		assert.Equal(t, 1, f1.polls)
	})

	t.Run("PolledAfterCompletion", func(t *testing.T) {
		r := future.Race2[int, int](ready(1), after(9, 2))

		_, ok := r.Poll()
		require.True(t, ok)
		require.PanicsWithValue(t, "future: polled after completion", func() { r.Poll() })
	})
}

func TestRaceSame(t *testing.T) {
	t.Run("TieBreak", func(t *testing.T) {
		// Same winner selection as Race, but the result is the bare
		// value, without a positional tag.
		f0 := ready(1)
		f1 := ready(2)
		f2 := ready(3)

		r := future.RaceSame3[int](f0, f1, f2)

		v, ok := r.Poll()
		require.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Zero(t, f1.polls)
		assert.Zero(t, f2.polls)
	})

	t.Run("MidWinner", func(t *testing.T) {
		f0 := after(5, "slow")
		f1 := ready("quick")
		f2 := after(5, "slower")

		r := future.RaceSame3[string](f0, f1, f2)

		v, ok := r.Poll()
		require.True(t, ok)
		assert.Equal(t, "quick", v)
		assert.Equal(t, 1, f0.polls)
		assert.Zero(t, f2.polls)
	})

	t.Run("PolledAfterCompletion", func(t *testing.T) {
		r := future.RaceSame2[int](ready(1), ready(2))

		_, ok := r.Poll()
		require.True(t, ok)
		require.PanicsWithValue(t, "future: polled after completion", func() { r.Poll() })
	})
}

func TestNesting(t *testing.T) {
	inner1 := future.Race2[int, string](after(1, 7), after(3, "x"))
	inner2 := future.RaceSame2[string](ready("lhs"), after(9, "rhs"))

	j := future.Join2[future.Either2[int, string], string](inner1, inner2)

	_, ok := j.Poll()
	require.False(t, ok)

	v, ok := j.Poll()
	require.True(t, ok)

	n, won := v.First.First()
	require.True(t, won)
	assert.Equal(t, 7, n)
	assert.Equal(t, "lhs", v.Second)
}

func TestArity8(t *testing.T) {
	t.Run("Join", func(t *testing.T) {
		j := future.Join8[int, int, int, int, int, int, int, int](
			ready(1), ready(2), ready(3), ready(4),
			ready(5), ready(6), ready(7), ready(8),
		)

		v, ok := j.Poll()
		require.True(t, ok)
		require.Equal(t, future.Tuple8[int, int, int, int, int, int, int, int]{
			First:   1,
			Second:  2,
			Third:   3,
			Fourth:  4,
			Fifth:   5,
			Sixth:   6,
			Seventh: 7,
			Eighth:  8,
		}, v)
	})

	t.Run("Race", func(t *testing.T) {
		r := future.Race8[int, int, int, int, int, int, int, int](
			after(9, 1), after(9, 2), after(9, 3), after(9, 4),
			after(9, 5), after(9, 6), after(9, 7), ready(8),
		)

		v, ok := r.Poll()
		require.True(t, ok)
		assert.Equal(t, 7, v.Index())

		eighth, won := v.Eighth()
		require.True(t, won)
		assert.Equal(t, 8, eighth)
	})
}

func TestFutureFunc(t *testing.T) {
	calls := 0
	f := future.FutureFunc[int](func() (int, bool) {
		calls++
		return calls, calls >= 2
	})

	_, ok := f.Poll()
	require.False(t, ok)

	v, ok := f.Poll()
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestNilFuture(t *testing.T) {
	require.PanicsWithValue(t, "future: nil Future", func() { future.Join2[int, int](nil, ready(2)) })
	require.PanicsWithValue(t, "future: nil Future", func() { future.Race2[int, int](ready(1), nil) })
	require.PanicsWithValue(t, "future: nil Future", func() { future.RaceSame2[int](nil, ready(2)) })
}
