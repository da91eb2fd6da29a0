// Package promise provides Promise[T], the deferred-computation primitive the
// outcome packages resolve through: a value or rejection reason that settles
// exactly once and can be awaited any number of times.
//
// Key operations:
// - New: run a job in a goroutine; the job settles via resolve/reject
// - Resolved/Rejected: already-settled promises
// - NewPending: a promise settled externally by the returned callbacks
// - Await: block until settled, then return the value or the reason
//
// A promise settles at most once; later resolve/reject calls are ignored. A
// panic inside a New job rejects the promise. A job that returns without
// settling leaves the promise pending forever, as with any unsettled promise.
// There is no cancellation, timeout or aggregation here.
package promise
