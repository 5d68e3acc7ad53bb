// Package guard validates call arguments against an ordered list of
// (predicate, message) conditions, raising synchronously on the first
// violation so misuse surfaces at the call site rather than on await.
//
// Key operations:
// - Check: evaluate conditions against a value, panicking with *Violation
// - Wrap: decorate a callable so every call is checked first
package guard
