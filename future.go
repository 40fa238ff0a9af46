package future

//go:generate go run generate.go

// A Future is a single-shot unit of asynchronous work.
//
// A Future is produced by someone else, handed over to a combinator or
// an executor, and polled by its new owner until it completes.
type Future[T any] interface {
	// Poll attempts to complete the future without blocking.
	// It either returns the value of the future along with true, or
	// reports false, meaning the future is still pending and the owner
	// should poll again after the next wake-up.
	//
	// Once Poll has returned true, the future must not be polled again.
	Poll() (v T, ok bool)
}

// A FutureFunc is a func() (T, bool) that implements the [Future] interface.
type FutureFunc[T any] func() (T, bool)

// Poll implements the [Future] interface.
func (f FutureFunc[T]) Poll() (T, bool) { return f() }

func must[T any](f Future[T]) Future[T] {
	if f == nil {
		panic("future: nil Future")
	}
	return f
}
