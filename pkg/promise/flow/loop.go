package flow

import (
	"context"

	"github.com/b-gran/promise-plumbing/pkg/promise"
	"github.com/b-gran/promise-plumbing/pkg/promise/guard"
)

// Whilst runs test then op repeatedly, appending each op value to the
// accumulator, until test resolves false; the loop's future then
// resolves with the accumulator. Iterations are strictly sequential. A
// rejection from either callable settles the loop with that reason and
// the partial accumulator is discarded.
func Whilst[T any](ctx context.Context, test Task[[]T, bool], op Task[[]T, T]) *promise.Future[[]T] {
	guard.Check(test, notNil[Task[[]T, bool]]("flow: whilst test"))
	guard.Check(op, notNil[Task[[]T, T]]("flow: whilst operation"))

	out := promise.NewFuture[[]T]()
	go func() {
		acc := make([]T, 0)
		for {
			cont := test(ctx, acc).Outcome()
			if cont.IsFailure() {
				out.Complete(promise.FailureFrom[bool, []T](cont))
				return
			}
			if !cont.Value() {
				out.Resolve(acc)
				return
			}

			step := op(ctx, acc).Outcome()
			if step.IsFailure() {
				out.Complete(promise.FailureFrom[T, []T](step))
				return
			}

			// Three-index append: callables may retain the slice they
			// were handed, so growth must never alias it.
			acc = append(acc[:len(acc):len(acc)], step.Value())
		}
	}()
	return out
}

// DoWhilst is Whilst with a test that always continues on an empty
// accumulator, so op runs at least once.
func DoWhilst[T any](ctx context.Context, op Task[[]T, T], test Task[[]T, bool]) *promise.Future[[]T] {
	guard.Check(op, notNil[Task[[]T, T]]("flow: dowhilst operation"))
	guard.Check(test, notNil[Task[[]T, bool]]("flow: dowhilst test"))

	return Whilst(ctx, func(ctx context.Context, acc []T) *promise.Future[bool] {
		if len(acc) == 0 {
			return promise.Resolved(true)
		}
		return test(ctx, acc)
	}, op)
}
