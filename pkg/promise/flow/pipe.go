package flow

import (
	"context"

	"github.com/b-gran/promise-plumbing/pkg/promise"
	"github.com/b-gran/promise-plumbing/pkg/promise/guard"
)

// Pipe threads steps sequentially: the first step receives the full
// resolved argument list in call order, each later step receives the
// previous step's value. Arguments resolve concurrently before the
// first step runs; an argument rejection rejects the pipeline with no
// step invoked. The pipeline short-circuits on the first step whose
// future rejects.
func Pipe[T any](first Task[[]T, T], rest ...Task[T, T]) func(ctx context.Context, args ...promise.Observer[T]) *promise.Future[T] {
	guard.Check(first, notNil[Task[[]T, T]]("flow: pipe first step"))
	guard.Check(rest, noNilTasks[T, T]("flow: pipe step"))

	return func(ctx context.Context, args ...promise.Observer[T]) *promise.Future[T] {
		guard.Check(args, noNilFutures[T]("flow: pipe argument"))

		out := promise.NewFuture[T]()
		go func() {
			resolved := All(args...).Outcome()
			if resolved.IsFailure() {
				out.Complete(promise.FailureFrom[[]T, T](resolved))
				return
			}

			cur := first(ctx, resolved.Value()).Outcome()
			for _, step := range rest {
				if cur.IsFailure() {
					break
				}
				cur = step(ctx, cur.Value()).Outcome()
			}
			out.Complete(cur)
		}()
		return out
	}
}
