package flow

import (
	"context"
	"errors"

	"github.com/b-gran/promise-plumbing/pkg/promise"
	"github.com/b-gran/promise-plumbing/pkg/promise/guard"
)

// ErrNilFuture reports an adopted callable that returned a nil future.
var ErrNilFuture = errors.New("flow: callable returned a nil future")

// Task is a normalized step: invoking it returns immediately with the
// future of its outcome, and it never panics from the callable's
// failure.
type Task[In, Out any] func(ctx context.Context, in In) *promise.Future[Out]

// Wrap normalizes an error-returning callable. A returned error or a
// panic rejects the task's future; a panic never escapes the call.
func Wrap[In, Out any](f func(ctx context.Context, in In) (Out, error)) Task[In, Out] {
	guard.Check(f, notNil[func(ctx context.Context, in In) (Out, error)]("flow: wrap callable"))

	return func(ctx context.Context, in In) *promise.Future[Out] {
		return promise.Go(ctx, func(ctx context.Context) (Out, error) {
			return f(ctx, in)
		})
	}
}

// Pure normalizes a plain-value callable.
func Pure[In, Out any](f func(ctx context.Context, in In) Out) Task[In, Out] {
	guard.Check(f, notNil[func(ctx context.Context, in In) Out]("flow: pure callable"))

	return Wrap(func(ctx context.Context, in In) (Out, error) {
		return f(ctx, in), nil
	})
}

// Adopt normalizes a future-returning callable: the task's future takes
// on the returned future's eventual outcome unchanged. A nil returned
// future rejects with ErrNilFuture.
func Adopt[In, Out any](f func(ctx context.Context, in In) *promise.Future[Out]) Task[In, Out] {
	guard.Check(f, notNil[func(ctx context.Context, in In) *promise.Future[Out]]("flow: adopt callable"))

	return func(ctx context.Context, in In) *promise.Future[Out] {
		out := promise.NewFuture[Out]()
		go func() {
			adopted := promise.Capture(ctx, func(ctx context.Context) (*promise.Future[Out], error) {
				fut := f(ctx, in)
				if fut == nil {
					return nil, ErrNilFuture
				}
				return fut, nil
			})
			if adopted.IsFailure() {
				out.Complete(promise.FailureFrom[*promise.Future[Out], Out](adopted))
				return
			}
			out.Complete(adopted.Value().Outcome())
		}()
		return out
	}
}

func notNil[T any](name string) guard.Condition[T] {
	return guard.Condition[T]{
		When:    func(v T) bool { return !promise.IsNil(v) },
		Message: name + " must not be nil",
	}
}

func noNilTasks[In, Out any](name string) guard.Condition[[]Task[In, Out]] {
	return guard.Condition[[]Task[In, Out]]{
		When: func(tasks []Task[In, Out]) bool {
			for _, t := range tasks {
				if t == nil {
					return false
				}
			}
			return true
		},
		Message: name + " must not be nil",
	}
}

func noNilFutures[T any](name string) guard.Condition[[]promise.Observer[T]] {
	return guard.Condition[[]promise.Observer[T]]{
		When: func(fs []promise.Observer[T]) bool {
			for _, f := range fs {
				if promise.IsNil(f) {
					return false
				}
			}
			return true
		},
		Message: name + " must not be nil",
	}
}
