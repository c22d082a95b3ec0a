// Package workpool runs indexed tasks on a fixed number of goroutines.
//
// It is the one scheduling primitive shared by the parallel engines: a
// round of work is expressed as n independent tasks, Run blocks until all
// of them have returned, and the round boundary is the barrier.
package workpool

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// errPanicked stands in for a recovered panic so errgroup cancels the
// remaining tasks.
var errPanicked = errors.New("workpool: task panicked")

// Pool bounds the number of tasks running at once.
type Pool struct {
	size int
}

// New returns a pool of size goroutines; size < 1 is raised to 1.
func New(size int) *Pool {
	if size < 1 {
		size = 1
	}

	return &Pool{size: size}
}

// Default returns a pool sized to runtime.GOMAXPROCS(0).
func Default() *Pool { return New(runtime.GOMAXPROCS(0)) }

// Size returns the maximum number of concurrent tasks.
func (p *Pool) Size() int { return p.size }

// fault carries a recovered panic value back to the caller.
type fault struct {
	value any
}

// Run calls fn(ctx, i) for every i in [0, n) with at most Size calls in
// flight. The first error cancels the context handed to the other tasks
// and is returned once every started task has returned.
//
// A panic inside fn is recovered, cancels the round like an error, and is
// raised again with the same value on the goroutine that called Run.
func (p *Pool) Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.size)

	var caught atomic.Pointer[fault]
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					caught.CompareAndSwap(nil, &fault{value: r})
					err = errPanicked
				}
			}()

			return fn(gctx, i)
		})
	}

	err := g.Wait()
	if f := caught.Load(); f != nil {
		panic(f.value)
	}
	if err == nil {
		err = ctx.Err()
	}

	return err
}

// Span is a half-open index range [Lo, Hi).
type Span struct {
	Lo, Hi int
}

// Split cuts [0, n) into at most parts contiguous spans whose lengths
// differ by at most one. Empty spans are never returned.
func Split(n, parts int) []Span {
	if n <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	spans := make([]Span, 0, parts)
	size, extra := n/parts, n%parts
	lo := 0
	for i := 0; i < parts; i++ {
		hi := lo + size
		if i < extra {
			hi++
		}
		spans = append(spans, Span{Lo: lo, Hi: hi})
		lo = hi
	}

	return spans
}
