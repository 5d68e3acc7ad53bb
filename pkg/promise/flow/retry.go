package flow

import (
	"context"
	"time"

	"github.com/b-gran/promise-plumbing/pkg/promise"
	"github.com/b-gran/promise-plumbing/pkg/promise/guard"
)

// Schedule maps the index of the upcoming attempt to the wait before
// it. Index zero is never consulted: the first attempt starts at once.
type Schedule func(attempt int) time.Duration

// Policy bounds a Retry call. Times is the maximum number of attempts.
// Interval, when set, is awaited before every attempt except the first.
type Policy struct {
	Times    int
	Interval Schedule
}

// Retry runs task until it succeeds or Times attempts were made. The
// returned future settles from the last attempt alone: its value on
// success, its reason on exhaustion; earlier reasons are discarded.
// Attempt failures are recorded as outcomes inside the loop accumulator
// rather than loop rejections, so every permitted attempt runs. A
// schedule that panics rejects the returned future with no further
// attempts.
func Retry[T any](ctx context.Context, p Policy, task func(ctx context.Context) (T, error)) *promise.Future[T] {
	guard.Check(p, guard.Condition[Policy]{
		When:    func(p Policy) bool { return p.Times >= 1 },
		Message: "flow: retry times must be at least 1",
	})
	guard.Check(task, notNil[func(ctx context.Context) (T, error)]("flow: retry task"))

	attempt := func(ctx context.Context, acc []promise.Outcome[T]) *promise.Future[promise.Outcome[T]] {
		return promise.Go(ctx, func(ctx context.Context) (promise.Outcome[T], error) {
			idx := len(acc)
			if p.Interval != nil && idx > 0 {
				<-promise.Delay(p.Interval(idx)).Done()
			}
			return promise.Capture(ctx, task), nil
		})
	}

	again := func(ctx context.Context, acc []promise.Outcome[T]) *promise.Future[bool] {
		last := acc[len(acc)-1]
		return promise.Resolved(last.IsFailure() && len(acc) < p.Times)
	}

	out := promise.NewFuture[T]()
	go func() {
		attempts := DoWhilst(ctx, attempt, again).Outcome()
		if attempts.IsFailure() {
			out.Complete(promise.FailureFrom[[]promise.Outcome[T], T](attempts))
			return
		}

		recorded := attempts.Value()
		out.Complete(recorded[len(recorded)-1])
	}()
	return out
}
