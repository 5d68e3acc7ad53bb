package promise

import (
	"context"
	"sync"
)

// Future is a single-assignment container for an Outcome. It settles
// exactly once; later settlement attempts are no-ops.
type Future[T any] struct {
	done chan struct{}
	once sync.Once
	out  Outcome[T]
}

func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolved returns a future already settled with a success value.
func Resolved[T any](v T) *Future[T] {
	return Settled(Success(v))
}

// Rejected returns a future already settled with a failure reason.
func Rejected[T any](reason error) *Future[T] {
	return Settled(Failure[T](reason))
}

// Settled returns a future already settled with the given outcome.
func Settled[T any](out Outcome[T]) *Future[T] {
	f := NewFuture[T]()
	f.Complete(out)
	return f
}

// Complete settles the future and reports whether this call settled it;
// false means the future was already settled and out was discarded.
func (f *Future[T]) Complete(out Outcome[T]) bool {
	settled := false
	f.once.Do(func() {
		f.out = out
		settled = true
		close(f.done)
	})
	return settled
}

func (f *Future[T]) Resolve(v T) bool {
	return f.Complete(Success(v))
}

func (f *Future[T]) Reject(reason error) bool {
	return f.Complete(Failure[T](reason))
}

// Done is closed when the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Outcome blocks until the future settles.
func (f *Future[T]) Outcome() Outcome[T] {
	<-f.done
	return f.out
}

// Await blocks until the future settles or ctx ends. Ending ctx abandons
// the wait only: the underlying computation keeps running and the future
// stays settleable.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case <-f.done:
		return f.out.value, f.out.reason
	}
}

// Capture runs f, converting a panic or returned error into a failed
// outcome. A panic with an error value becomes that exact reason; other
// panic values ride in a PanicError.
func Capture[T any](ctx context.Context, f func(ctx context.Context) (T, error)) (out Outcome[T]) {
	if f == nil {
		panic(nilCallableMsg)
	}

	defer func() {
		if r := recover(); r != nil {
			out = Failure[T](asError(r))
		}
	}()

	v, err := f(ctx)
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// Go runs f in a new goroutine and returns the future of its outcome.
func Go[T any](ctx context.Context, f func(ctx context.Context) (T, error)) *Future[T] {
	if f == nil {
		panic(nilCallableMsg)
	}

	fut := NewFuture[T]()
	go func() {
		fut.Complete(Capture(ctx, f))
	}()
	return fut
}
