package flow

import (
	"context"

	"github.com/b-gran/promise-plumbing/pkg/promise"
	"github.com/b-gran/promise-plumbing/pkg/promise/guard"
)

// Branch fans one input out to every branch task. The input is awaited
// exactly once (lift plain values with promise.Resolved); every branch
// receives the same resolved value, invoked in declaration order. The
// result list preserves declaration order regardless of completion
// order. An input rejection rejects the result with no branch invoked.
func Branch[In, Out any](branches ...Task[In, Out]) func(ctx context.Context, input promise.Observer[In]) *promise.Future[[]Out] {
	guard.Check(branches, noNilTasks[In, Out]("flow: branch callable"))

	return func(ctx context.Context, input promise.Observer[In]) *promise.Future[[]Out] {
		guard.Check(input, notNil[promise.Observer[In]]("flow: branch input"))

		out := promise.NewFuture[[]Out]()
		go func() {
			in := input.Outcome()
			if in.IsFailure() {
				out.Complete(promise.FailureFrom[In, []Out](in))
				return
			}

			fs := make([]promise.Observer[Out], len(branches))
			for i, b := range branches {
				fs[i] = b(ctx, in.Value())
			}
			out.Complete(All(fs...).Outcome())
		}()
		return out
	}
}
