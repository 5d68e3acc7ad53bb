// Package bind resolves a named method or func-valued field on an
// object into a concrete function value bound to that object.
//
// Key operations:
// - Own: reflect the member named name on target, typed as F
// - MustOwn: Own, panicking on failure
package bind
