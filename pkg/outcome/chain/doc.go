// Package chain provides a fluent wrapper around outcome.Outcome[E, A]
// for building synchronous same-type pipelines without branching on the
// result at every step.
//
// It keeps the API surface small:
// - Start/FromValue: begin a chain from an Outcome or a value
// - Then: compose a function that already returns an Outcome
// - Map/MapErr: transform the success or failure payload
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Steps that change the value or failure type go through the package-level
// combinators in the outcome package instead; a chain fixes both types.
package chain
