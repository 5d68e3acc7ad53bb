package promise

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Outcome is the settled result of one attempt: a success value or a
// failure reason, never both. The zero Outcome is neither.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	reason    error
	isSuccess bool
	hasValue  bool
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		reason:    nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		hasValue:  true,
		id:        uuid.New(),
	}
}

// Failure normalizes a nil reason to ErrNilReason so that a failed
// outcome always carries a non-nil reason.
func Failure[T any](reason error) Outcome[T] {
	if reason == nil {
		reason = ErrNilReason
	}
	return Outcome[T]{
		reason:    reason,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		hasValue:  false,
		id:        uuid.New(),
	}
}

// FailureFrom carries a failed outcome across a value-type boundary,
// preserving the identity, timestamp and reason of the original attempt.
func FailureFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	return Outcome[Out]{
		reason:    from.reason,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		hasValue:  false,
		id:        from.id,
	}
}

func (o Outcome[T]) Value() T {
	return o.value
}

func (o Outcome[T]) Reason() error {
	return o.reason
}

func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T]) IsFailure() bool {
	return o.reason != nil
}

func (o Outcome[T]) HasValue() bool {
	return o.hasValue
}

func (o Outcome[T]) IsZero() bool {
	return !o.isSuccess && o.reason == nil
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}

// Fold reduces an outcome to a concrete value via its matching handler.
func Fold[In, Out any](ctx context.Context, o Outcome[In],
	onSuccess func(ctx context.Context, v In) Out,
	onFailure func(ctx context.Context, reason error) Out) Out {

	if o.IsSuccess() {
		return onSuccess(ctx, o.value)
	}
	return onFailure(ctx, o.reason)
}
