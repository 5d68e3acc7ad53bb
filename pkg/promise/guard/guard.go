package guard

// DefaultMessage is raised when a violated condition carries no message.
const DefaultMessage = "guard: precondition failed"

// Condition pairs a predicate with the message raised when it does not
// hold. A nil predicate holds vacuously.
type Condition[T any] struct {
	When    func(v T) bool
	Message string
}

// Violation is the panic payload for a failed condition.
type Violation struct {
	Message string
}

func (v *Violation) Error() string {
	return v.Message
}

// Check evaluates conditions in order and panics with a *Violation
// carrying the first failed condition's message.
func Check[T any](v T, conds ...Condition[T]) {
	for _, c := range conds {
		if c.When == nil || c.When(v) {
			continue
		}

		msg := c.Message
		if msg == "" {
			msg = DefaultMessage
		}
		panic(&Violation{Message: msg})
	}
}

// Wrap decorates f so every call checks conds against its argument
// before delegating. The decorated signature is preserved by
// construction.
func Wrap[In, Out any](f func(In) Out, conds ...Condition[In]) func(In) Out {
	if f == nil {
		panic(&Violation{Message: "guard: wrapped callable must not be nil"})
	}

	return func(in In) Out {
		Check(in, conds...)
		return f(in)
	}
}
