package jira

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Promise is a single-resolution handle for one in-flight remote call. It
// resolves exactly once, either to a value or to an error.
//
// There is no cancellation: a context passed to Await only bounds how long the
// caller waits, the call itself keeps running to completion.
type Promise[T any] struct {
	done     chan struct{}
	resolved atomic.Bool
	value    T
	err      error
}

// Resolver completes a promise. It must be called exactly once.
type Resolver[T any] func(value T, err error)

// NewPromise returns an unresolved promise and the only function able to
// resolve it. Calling the resolver a second time panics.
func NewPromise[T any]() (*Promise[T], Resolver[T]) {
	promise := &Promise[T]{done: make(chan struct{})}

	return promise, promise.resolve
}

// Resolved returns a promise already completed with value.
func Resolved[T any](value T) *Promise[T] {
	promise, resolve := NewPromise[T]()
	resolve(value, nil)

	return promise
}

// Rejected returns a promise already completed with err.
func Rejected[T any](err error) *Promise[T] {
	promise, resolve := NewPromise[T]()

	var zero T
	resolve(zero, err)

	return promise
}

func (p *Promise[T]) resolve(value T, err error) {
	if !p.resolved.CompareAndSwap(false, true) {
		panic(fmt.Errorf("%w", ErrPromiseAlreadyResolved))
	}

	p.value = value
	p.err = err
	close(p.done)
}

// Done is closed once the promise has resolved.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// Claim blocks until the promise resolves and returns its outcome.
func (p *Promise[T]) Claim() (T, error) {
	<-p.done

	return p.value, p.err
}

// Await is Claim bounded by ctx. When ctx ends first, ctx.Err() is returned and
// the underlying call is left running.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T

		return zero, ctx.Err()
	}
}

// Then attaches a continuation that runs once source resolves successfully. A
// failure of source is propagated to the returned promise without calling fn.
// The continuation runs on its own goroutine; the caller never blocks.
func Then[T, U any](source *Promise[T], fn func(T) (U, error)) *Promise[U] {
	next, resolve := NewPromise[U]()

	go func() {
		value, err := source.Claim()
		if err != nil {
			var zero U
			resolve(zero, err)

			return
		}

		resolve(fn(value))
	}()

	return next
}

// Handle attaches a continuation that sees both outcomes of source.
func Handle[T, U any](source *Promise[T], fn func(T, error) (U, error)) *Promise[U] {
	next, resolve := NewPromise[U]()

	go func() {
		resolve(fn(source.Claim()))
	}()

	return next
}

// All resolves to the values of every promise in order, or to the first error
// observed in slice order.
func All[T any](promises []*Promise[T]) *Promise[[]T] {
	next, resolve := NewPromise[[]T]()

	go func() {
		values := make([]T, 0, len(promises))

		for _, promise := range promises {
			value, err := promise.Claim()
			if err != nil {
				resolve(nil, err)

				return
			}

			values = append(values, value)
		}

		resolve(values, nil)
	}()

	return next
}
