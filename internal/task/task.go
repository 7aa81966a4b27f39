// Package task runs a submission in the background and hands back a Future.
// The artificial delay lives here so a real remote call can replace fn
// without changing callers.
package task

import (
	"context"
	"time"
)

type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Run starts fn after delay. The task is detached from ctx cancellation:
// once started it always runs to completion, callers may only stop waiting.
func Run[T any](ctx context.Context, delay time.Duration, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	ctx = context.WithoutCancel(ctx)

	go func() {
		defer close(f.done)
		if delay > 0 {
			t := time.NewTimer(delay)
			<-t.C
		}
		f.val, f.err = fn(ctx)
	}()
	return f
}

// Await blocks until the task finishes or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (f *Future[T]) Done() <-chan struct{} { return f.done }
