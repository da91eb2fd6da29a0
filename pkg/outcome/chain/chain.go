package chain

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

// Chain wraps an outcome.Outcome to enable fluent chaining.
type Chain[E, A any] struct {
	res outcome.Outcome[E, A]
}

// Start creates a new chain from an outcome.Outcome.
func Start[E, A any](r outcome.Outcome[E, A]) Chain[E, A] {
	return Chain[E, A]{res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[E, A any](value A) Chain[E, A] {
	return Start(outcome.Ok[E](value))
}

// Outcome returns the underlying outcome.Outcome.
func (c Chain[E, A]) Outcome() outcome.Outcome[E, A] {
	return c.res
}

// Then composes a function that already returns an Outcome; a failure
// short-circuits without invoking it.
func (c Chain[E, A]) Then(onSuccess func(A) outcome.Outcome[E, A]) Chain[E, A] {
	if c.res.IsErr() {
		return c
	}
	return Chain[E, A]{res: onSuccess(c.res.Unwrap())}
}

// Map transforms the successful value to a new value of the same type.
func (c Chain[E, A]) Map(onSuccess func(A) A) Chain[E, A] {
	if c.res.IsErr() {
		return c
	}
	return Chain[E, A]{res: outcome.Ok[E](onSuccess(c.res.Unwrap()))}
}

// MapErr transforms the failure value; a success passes through unchanged.
func (c Chain[E, A]) MapErr(onFailure func(E) E) Chain[E, A] {
	if c.res.IsOk() {
		return c
	}
	return Chain[E, A]{res: outcome.Err[E, A](onFailure(c.res.UnwrapErr()))}
}

// Ensure triggers side effects for success or failure without changing the
// result. Either handler may be nil.
func (c Chain[E, A]) Ensure(onSuccess func(A), onFailure func(E)) Chain[E, A] {
	if c.res.IsErr() {
		if onFailure != nil {
			onFailure(c.res.UnwrapErr())
		}
		return c
	}
	if onSuccess != nil {
		onSuccess(c.res.Unwrap())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to outcome.Match.
func Finally[E, A, B any](c Chain[E, A], onFailure func(E) B, onSuccess func(A) B) B {
	return outcome.Match(c.res, onFailure, onSuccess)
}
