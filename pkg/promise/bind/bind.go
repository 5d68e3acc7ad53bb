package bind

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/b-gran/promise-plumbing/pkg/promise"
)

var (
	// ErrNilTarget reports a nil or typed-nil target.
	ErrNilTarget = errors.New("bind: target is nil")
	// ErrNotFunc reports a bound type that is not a function type.
	ErrNotFunc = errors.New("bind: bound type is not a function")
	// ErrNotFound reports a name with no matching method or func field.
	ErrNotFound = errors.New("bind: member not found")
	// ErrMismatch reports a member whose signature does not match F.
	ErrMismatch = errors.New("bind: member signature mismatch")
)

// Own returns target's member named name as an F bound to target. A
// method wins over an exported func-valued field of the same name; nil
// func fields count as absent. Method values close over their receiver,
// so the returned function observes and mutates target.
func Own[F any](target any, name string) (F, error) {
	var zero F

	ft := reflect.TypeOf(&zero).Elem()
	if ft.Kind() != reflect.Func {
		return zero, fmt.Errorf("%w: %s", ErrNotFunc, ft)
	}
	if promise.IsNil(target) {
		return zero, ErrNilTarget
	}

	member := lookup(reflect.ValueOf(target), name)
	if !member.IsValid() {
		return zero, fmt.Errorf("%w: %T has no %q", ErrNotFound, target, name)
	}
	if !member.Type().AssignableTo(ft) {
		return zero, fmt.Errorf("%w: %q is %s, want %s", ErrMismatch, name, member.Type(), ft)
	}

	return member.Interface().(F), nil
}

// MustOwn is Own, panicking on failure.
func MustOwn[F any](target any, name string) F {
	f, err := Own[F](target, name)
	if err != nil {
		panic(err)
	}
	return f
}

func lookup(v reflect.Value, name string) reflect.Value {
	if m := v.MethodByName(name); m.IsValid() {
		return m
	}

	elem := v
	for elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return reflect.Value{}
	}

	f := elem.FieldByName(name)
	if f.IsValid() && f.Kind() == reflect.Func && f.CanInterface() && !f.IsNil() {
		return f
	}
	return reflect.Value{}
}
