// Package async provides Outcome[E, A], the deferred counterpart of the core
// outcome.Outcome: a lazily evaluated computation that resolves to the same
// two-case union, with an asynchronous counterpart to every core operation.
//
// Resolution is memoized. An instance starts pending; the first call to any
// combinator or accessor runs the underlying computation and stores the
// resulting union in a single-assignment slot guarded by sync.Once, so the
// computation runs at most once per instance no matter how many calls are
// made or how many goroutines make them concurrently. There is no way to
// force re-evaluation.
//
// Factories come in value and promise-accepting pairs (Ok/OkPromise, ...)
// instead of untyped overloads. Mapper and handler functions are free to
// block internally, so a single signature covers synchronous and
// promise-awaiting callers alike.
package async
