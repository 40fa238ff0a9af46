package future

// A maybeDone owns one future on behalf of a combinator and, once that
// future completes, holds its value in place until the combinator itself
// completes.
//
// A maybeDone transitions from pending to done at most once.
// The transition drops the future, so it can never be polled again.
type maybeDone[T any] struct {
	f    Future[T]
	v    T
	done bool
}

// poll reports whether d is done, polling the owned future once if d is
// still pending. Polling a done maybeDone is a no-op; the owned future
// is gone by then.
func (d *maybeDone[T]) poll() bool {
	if d.done {
		return true
	}
	v, ok := d.f.Poll()
	if !ok {
		return false
	}
	d.v = v
	d.done = true
	d.f = nil
	return true
}

// take returns the held value, clearing it so that anything it references
// can be reclaimed.
// Must not be called before d is done, and at most once.
func (d *maybeDone[T]) take() T {
	v := d.v
	var zero T
	d.v = zero
	return v
}
