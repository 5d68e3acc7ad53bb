package flow

import (
	"sync/atomic"

	"github.com/b-gran/promise-plumbing/pkg/promise"
	"github.com/b-gran/promise-plumbing/pkg/promise/guard"
)

// All joins futures into a future of their values in argument order,
// regardless of completion order. The first rejection settles the join
// immediately with that reason; remaining futures keep running
// unobserved. No futures join into an empty list.
func All[T any](fs ...promise.Observer[T]) *promise.Future[[]T] {
	guard.Check(fs, noNilFutures[T]("flow: joined future"))

	out := promise.NewFuture[[]T]()

	if len(fs) == 0 {
		out.Resolve([]T{})
		return out
	}

	values := make([]T, len(fs))
	var remaining atomic.Int64
	remaining.Store(int64(len(fs)))

	for i, f := range fs {
		go func() {
			o := f.Outcome()
			if o.IsFailure() {
				out.Complete(promise.FailureFrom[T, []T](o))
				return
			}

			values[i] = o.Value()
			if remaining.Add(-1) == 0 {
				out.Resolve(values)
			}
		}()
	}

	return out
}
