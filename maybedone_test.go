package future

import "testing"

func TestMaybeDone(t *testing.T) {
	polls := 0
	d := maybeDone[int]{f: FutureFunc[int](func() (int, bool) {
		polls++
		if polls < 3 {
			return 0, false
		}
		return 42, true
	})}

	if d.poll() || d.poll() {
		t.FailNow()
	}

	if !d.poll() || polls != 3 {
		t.FailNow()
	}

	if d.f != nil {
		t.FailNow()
	}

	// Polling a done maybeDone must not touch the future again.
	if !d.poll() || polls != 3 {
		t.FailNow()
	}

	if d.take() != 42 {
		t.FailNow()
	}

	if d.v != 0 {
		t.FailNow()
	}
}
