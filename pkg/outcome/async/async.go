package async

import (
	"fmt"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/promise"
)

// Outcome wraps a deferred computation of the two-case union. The run job is
// invoked at most once; its result lives in the memoized slot afterwards.
type Outcome[E, A any] struct {
	run  func() outcome.Outcome[E, A]
	once sync.Once
	res  outcome.Outcome[E, A]
}

func lazy[E, A any](run func() outcome.Outcome[E, A]) *Outcome[E, A] {
	return &Outcome[E, A]{run: run}
}

// Await resolves the receiver and returns the stored union. The first call
// runs the wrapped computation; concurrent first calls block until the one
// evaluation finishes and all observe the same result.
func (o *Outcome[E, A]) Await() outcome.Outcome[E, A] {
	o.once.Do(func() {
		o.res = o.run()
		o.run = nil
	})
	return o.res
}

func Ok[E, A any](value A) *Outcome[E, A] {
	return lazy(func() outcome.Outcome[E, A] {
		return outcome.Ok[E](value)
	})
}

// OkPromise awaits p and wraps its value as a success. Feeding a rejecting
// promise into the success constructor is a contract violation and panics
// with *outcome.UnwrapError at resolution; use TryCatch or FromPromise for
// promises that may reject.
func OkPromise[E, A any](p *promise.Promise[A]) *Outcome[E, A] {
	return lazy(func() outcome.Outcome[E, A] {
		value, err := p.Await()
		if err != nil {
			panic(outcome.NewUnwrapError(fmt.Sprintf("OkPromise given a rejected promise: %v", err)))
		}
		return outcome.Ok[E](value)
	})
}

func Err[E, A any](failure E) *Outcome[E, A] {
	return lazy(func() outcome.Outcome[E, A] {
		return outcome.Err[E, A](failure)
	})
}

// ErrPromise awaits p and wraps its value as a failure. A rejecting input
// promise panics with *outcome.UnwrapError at resolution, as in OkPromise.
func ErrPromise[E, A any](p *promise.Promise[E]) *Outcome[E, A] {
	return lazy(func() outcome.Outcome[E, A] {
		failure, err := p.Await()
		if err != nil {
			panic(outcome.NewUnwrapError(fmt.Sprintf("ErrPromise given a rejected promise: %v", err)))
		}
		return outcome.Err[E, A](failure)
	})
}

// FromNullable applies the same absent-value policy as the core package:
// failure when value is nil in any nilable sense, success otherwise.
func FromNullable[E, A any](failure E, value A) *Outcome[E, A] {
	return lazy(func() outcome.Outcome[E, A] {
		return outcome.FromNullable(failure, value)
	})
}

// FromNullablePromise awaits p, then applies the absent-value policy to the
// resolved value. A rejecting input promise panics as in OkPromise.
func FromNullablePromise[E, A any](failure E, p *promise.Promise[A]) *Outcome[E, A] {
	return lazy(func() outcome.Outcome[E, A] {
		value, err := p.Await()
		if err != nil {
			panic(outcome.NewUnwrapError(fmt.Sprintf("FromNullablePromise given a rejected promise: %v", err)))
		}
		return outcome.FromNullable(failure, value)
	})
}

// TryCatch invokes f on first resolution and awaits the promise it returns.
// A resolution becomes a success; a rejection, or a panic while invoking f,
// is passed to onError and becomes a failure. onError must not panic.
func TryCatch[E, A any](f func() *promise.Promise[A], onError func(caught any) E) *Outcome[E, A] {
	return lazy(func() (out outcome.Outcome[E, A]) {
		defer func() {
			if caught := recover(); caught != nil {
				out = outcome.Err[E, A](onError(caught))
			}
		}()
		value, err := f().Await()
		if err != nil {
			return outcome.Err[E, A](onError(err))
		}
		return outcome.Ok[E](value)
	})
}

// FromPromise wraps an already-created promise with the same success and
// failure policy as TryCatch.
func FromPromise[E, A any](p *promise.Promise[A], onError func(caught any) E) *Outcome[E, A] {
	return lazy(func() outcome.Outcome[E, A] {
		value, err := p.Await()
		if err != nil {
			return outcome.Err[E, A](onError(err))
		}
		return outcome.Ok[E](value)
	})
}

// Map transforms the success value once the receiver resolves; a failure
// passes through with its payload unchanged. onSuccess may block.
func Map[E, A, B any](o *Outcome[E, A], onSuccess func(A) B) *Outcome[E, B] {
	return lazy(func() outcome.Outcome[E, B] {
		r := o.Await()
		if r.IsErr() {
			return outcome.Err[E, B](r.UnwrapErr())
		}
		return outcome.Ok[E](onSuccess(r.Unwrap()))
	})
}

// MapErr transforms the failure value once the receiver resolves; a success
// passes through with its payload unchanged.
func MapErr[E, F, A any](o *Outcome[E, A], onFailure func(E) F) *Outcome[F, A] {
	return lazy(func() outcome.Outcome[F, A] {
		r := o.Await()
		if r.IsOk() {
			return outcome.Ok[F](r.Unwrap())
		}
		return outcome.Err[F, A](onFailure(r.UnwrapErr()))
	})
}

// Chain composes a function returning another deferred outcome. On failure
// the original failure is carried forward and onSuccess is never invoked.
func Chain[E, A, B any](o *Outcome[E, A], onSuccess func(A) *Outcome[E, B]) *Outcome[E, B] {
	return lazy(func() outcome.Outcome[E, B] {
		r := o.Await()
		if r.IsErr() {
			return outcome.Err[E, B](r.UnwrapErr())
		}
		return onSuccess(r.Unwrap()).Await()
	})
}

// Match resolves the receiver and reduces it to a value of type B, invoking
// exactly one of the two handlers.
func Match[E, A, B any](o *Outcome[E, A], onFailure func(E) B, onSuccess func(A) B) B {
	r := o.Await()
	if r.IsOk() {
		return onSuccess(r.Unwrap())
	}
	return onFailure(r.UnwrapErr())
}

// IsOk resolves the receiver and reports whether it holds a success value.
func (o *Outcome[E, A]) IsOk() bool {
	return o.Await().IsOk()
}

// IsErr resolves the receiver and reports whether it holds a failure value.
func (o *Outcome[E, A]) IsErr() bool {
	return o.Await().IsErr()
}

// Unwrap resolves the receiver and returns the success value; it panics
// with *outcome.UnwrapError on a failure.
func (o *Outcome[E, A]) Unwrap() A {
	return o.Await().Unwrap()
}

// UnwrapOr resolves the receiver and returns the success value, or def when
// it resolved to a failure.
func (o *Outcome[E, A]) UnwrapOr(def A) A {
	return o.Await().UnwrapOr(def)
}

// UnwrapErr resolves the receiver and returns the failure value; it panics
// with *outcome.UnwrapError on a success.
func (o *Outcome[E, A]) UnwrapErr() E {
	return o.Await().UnwrapErr()
}

// ToPromise starts resolution in the background and returns a promise that
// resolves with the success value or rejects with the failure payload,
// converted via outcome.ErrorOf.
func (o *Outcome[E, A]) ToPromise() *promise.Promise[A] {
	return promise.New(func(resolve func(A), reject func(error)) {
		r := o.Await()
		if r.IsErr() {
			reject(outcome.ErrorOf(r.UnwrapErr()))
			return
		}
		resolve(r.Unwrap())
	})
}
