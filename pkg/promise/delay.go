package promise

import "time"

// Delay returns a future that resolves with no value after d elapses.
// Negative durations clamp to zero. The future never rejects.
func Delay(d time.Duration) *Future[struct{}] {
	if d < 0 {
		d = 0
	}

	f := NewFuture[struct{}]()
	time.AfterFunc(d, func() {
		f.Resolve(struct{}{})
	})
	return f
}
