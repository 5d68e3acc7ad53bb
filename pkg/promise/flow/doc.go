// Package flow implements the control-flow combinators over futures.
//
// Every combinator consumes and produces Task values: normalized,
// future-returning steps built via Wrap, Pure or Adopt.
//
// Key operations:
// - Wrap/Pure/Adopt: normalize a callable into a Task
// - All: join futures into one ordered result list
// - Branch: fan one resolved input out to several tasks
// - Whilst/DoWhilst: sequential loops over an ordered accumulator
// - Pipe: sequential step threading with concurrent argument resolution
// - Retry: bounded re-execution with an optional backoff schedule
//
// Combinators never cancel in-flight work: a future that never settles
// stalls its combinator. Context is handed through to callables and is
// not interpreted.
package flow
