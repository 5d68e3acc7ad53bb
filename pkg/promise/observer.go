package promise

import "context"

// Observer is the read side of a future. Combinators accept observers so
// any future implementation can feed them.
type Observer[T any] interface {
	// Done is closed when the future settles
	Done() <-chan struct{}
	// Outcome blocks until the future settles and returns its outcome
	Outcome() Outcome[T]
	// Await blocks until the future settles or ctx ends
	Await(ctx context.Context) (T, error)
}
