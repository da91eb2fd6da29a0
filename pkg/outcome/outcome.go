package outcome

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/outcome/promise"
)

// Outcome holds exactly one of a success value A or a failure value E.
// The case is fixed at construction and never mutated; instances are built
// only through the package factories.
type Outcome[E, A any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     A
	failure   E
	isOk      bool
}

func Ok[E, A any](value A) Outcome[E, A] {
	return Outcome[E, A]{
		value:     value,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[E, A any](failure E) Outcome[E, A] {
	return Outcome[E, A]{
		failure:   failure,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromNullable wraps value as a success unless it is absent (untyped nil or
// a typed nil pointer, map, slice, func or chan), in which case it fails
// with the given failure value.
func FromNullable[E, A any](failure E, value A) Outcome[E, A] {
	if IsNil(value) {
		return Err[E, A](failure)
	}
	return Ok[E](value)
}

// TryCatch invokes f; a normal return becomes a success, a panic is
// recovered exactly here and converted to the failure type via onPanic.
// onPanic must not panic itself.
func TryCatch[E, A any](f func() A, onPanic func(caught any) E) (out Outcome[E, A]) {
	defer func() {
		if caught := recover(); caught != nil {
			out = Err[E, A](onPanic(caught))
		}
	}()
	return Ok[E](f())
}

// IsOk reports whether the outcome holds a success value.
func (r Outcome[E, A]) IsOk() bool {
	return r.isOk
}

// IsErr reports whether the outcome holds a failure value.
func (r Outcome[E, A]) IsErr() bool {
	return !r.isOk
}

// Unwrap returns the success value. It panics with *UnwrapError when called
// on a failure; use Match or UnwrapOr when the case is not known.
func (r Outcome[E, A]) Unwrap() A {
	if !r.isOk {
		panic(newUnwrapError("Unwrap called on a failure outcome", r.failure))
	}
	return r.value
}

// UnwrapOr returns the success value, or def when the outcome is a failure.
func (r Outcome[E, A]) UnwrapOr(def A) A {
	if !r.isOk {
		return def
	}
	return r.value
}

// UnwrapErr returns the failure value. It panics with *UnwrapError when
// called on a success.
func (r Outcome[E, A]) UnwrapErr() E {
	if r.isOk {
		panic(newUnwrapError("UnwrapErr called on a success outcome", r.value))
	}
	return r.failure
}

// ToPromise bridges the outcome back into the promise world: a success
// resolves with its value, a failure rejects with ErrorOf of its payload.
func (r Outcome[E, A]) ToPromise() *promise.Promise[A] {
	if r.isOk {
		return promise.Resolved(r.value)
	}
	return promise.Rejected[A](ErrorOf(r.failure))
}

func (r Outcome[E, A]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time of construction (UTC)
func (r Outcome[E, A]) CreatedAt() time.Time {
	return r.createdAt
}
