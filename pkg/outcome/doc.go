// Package outcome provides a two-case tagged union Outcome[E, A] that carries
// either a success value of type A or a failure value of type E, replacing
// thrown errors with an explicit, composable return type.
//
// Highlights:
// - Ok/Err: construct an Outcome[E, A]
// - FromNullable: fail with a given error when the value is absent (nil)
// - TryCatch: call a function, convert a recovered panic to a failure
// - Map/MapErr: transform the success or failure channel
// - Chain: compose functions that themselves return an Outcome
// - Match: reduce to a concrete value via failure/success handlers
// - Unwrap/UnwrapOr/UnwrapErr: extract payloads; wrong-variant access panics
//
// Failures are data, never panics; the only panics this package raises are
// *UnwrapError values signalling a wrong-variant Unwrap or UnwrapErr, which
// is an API-contract violation by the caller rather than a domain error.
package outcome
