package promise

import (
	"errors"
	"fmt"
)

// ErrNilReason replaces a nil rejection reason, keeping failed outcomes
// distinguishable from the zero Outcome.
var ErrNilReason = errors.New("promise: rejected with nil reason")

const nilCallableMsg = "promise: the provided callable is nil"

// PanicError carries a recovered non-error panic value through a
// rejection.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("promise: callable panicked: %v", e.Value)
}

func asError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}
