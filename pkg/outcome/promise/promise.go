package promise

import (
	"fmt"
	"sync"
)

// Promise holds the eventual result of a computation: a value of type T on
// resolution or an error on rejection. The settled channel closes exactly
// once, after which the stored state never changes.
type Promise[T any] struct {
	value    T
	reason   error
	rejected bool
	settled  chan struct{}
	settleIt sync.Once
}

func newPromise[T any]() *Promise[T] {
	return &Promise[T]{settled: make(chan struct{})}
}

// New starts job in its own goroutine and returns the promise it settles.
// A panic inside job rejects the promise with the panic value.
func New[T any](job func(resolve func(T), reject func(error))) *Promise[T] {
	p := newPromise[T]()
	go func() {
		defer func() {
			if caught := recover(); caught != nil {
				if err, ok := caught.(error); ok {
					p.Reject(err)
				} else {
					p.Reject(fmt.Errorf("%v", caught))
				}
			}
		}()
		job(func(value T) { p.Resolve(value) }, func(reason error) { p.Reject(reason) })
	}()
	return p
}

// NewPending returns an unsettled promise along with its resolve and reject
// callbacks, for settlement from outside a New job.
func NewPending[T any]() (p *Promise[T], resolve func(T) bool, reject func(error) bool) {
	p = newPromise[T]()
	return p, p.Resolve, p.Reject
}

func Resolved[T any](value T) *Promise[T] {
	p := newPromise[T]()
	p.Resolve(value)
	return p
}

func Rejected[T any](reason error) *Promise[T] {
	p := newPromise[T]()
	p.Reject(reason)
	return p
}

func (p *Promise[T]) settle(assign func()) (ok bool) {
	p.settleIt.Do(func() {
		ok = true
		assign()
		close(p.settled)
	})
	return ok
}

// Resolve settles the promise with value. It reports false when the promise
// was already settled, in which case the call has no effect.
func (p *Promise[T]) Resolve(value T) bool {
	return p.settle(func() {
		p.value = value
	})
}

// Reject settles the promise with reason. It reports false when the promise
// was already settled, in which case the call has no effect.
func (p *Promise[T]) Reject(reason error) bool {
	return p.settle(func() {
		p.reason = reason
		p.rejected = true
	})
}

// Await blocks until the promise settles, then returns its value or the
// rejection reason. Every caller observes the same settlement.
func (p *Promise[T]) Await() (T, error) {
	<-p.settled
	if p.rejected {
		var zero T
		return zero, p.reason
	}
	return p.value, nil
}

// TryAwait returns the settlement without blocking; settled reports whether
// the promise has settled yet.
func (p *Promise[T]) TryAwait() (value T, reason error, settled bool) {
	select {
	case <-p.settled:
		value, reason = p.Await()
		return value, reason, true
	default:
		return value, nil, false
	}
}

// Settled exposes the settlement signal for use in select statements.
func (p *Promise[T]) Settled() <-chan struct{} {
	return p.settled
}
