// Package parallel provides a partition-and-process helper for slices.
//
// Partition splits a slice into contiguous chunks and hands each chunk
// to its own goroutine. Every element belongs to exactly one chunk, so
// per-chunk work needs no synchronization of its own; only the final
// combination of chunk results does.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/go-drift/keel/pkg/errors"
)

type options struct {
	chunks   int
	minChunk int
}

// Option configures a Partition call.
type Option func(*options)

// WithChunks sets the target chunk count. The default is GOMAXPROCS.
func WithChunks(n int) Option {
	return func(o *options) {
		o.chunks = n
	}
}

// WithMinChunk sets the minimum chunk length, lowering the chunk count
// when the input is small. The default is 1. A chunk shorter than the
// minimum appears only when the whole input is shorter.
func WithMinChunk(n int) Option {
	return func(o *options) {
		o.minChunk = n
	}
}

// Range is a contiguous half-open index interval.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indexes in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Ranges splits n items into at most chunks contiguous, disjoint ranges
// covering [0, n) completely, each at least minChunk long where
// possible. Range lengths differ by at most one. A non-positive n
// yields no ranges.
func Ranges(n, chunks, minChunk int) []Range {
	if n <= 0 {
		return nil
	}
	if chunks < 1 {
		chunks = 1
	}
	if minChunk < 1 {
		minChunk = 1
	}
	if m := n / minChunk; m < chunks {
		chunks = m
		if chunks < 1 {
			chunks = 1
		}
	}
	if chunks > n {
		chunks = n
	}
	ranges := make([]Range, 0, chunks)
	for i := 0; i < chunks; i++ {
		ranges = append(ranges, Range{
			Start: i * n / chunks,
			End:   (i + 1) * n / chunks,
		})
	}
	return ranges
}

// Partition splits items into contiguous chunks and processes each
// chunk exactly once on its own goroutine. The first error cancels the
// context passed to the remaining chunks and is returned; a panic in fn
// is trapped and returned as a *errors.PanicError. Chunks are capped
// sub-slices, so fn may append to its chunk without touching its
// neighbors. An empty input returns nil without calling fn.
func Partition[S ~[]E, E any](ctx context.Context, items S, fn func(ctx context.Context, chunk S) error, opts ...Option) error {
	if len(items) == 0 {
		return nil
	}
	o := options{chunks: runtime.GOMAXPROCS(0), minChunk: 1}
	for _, opt := range opts {
		opt(&o)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, rng := range Ranges(len(items), o.chunks, o.minChunk) {
		chunk := items[rng.Start:rng.End:rng.End]
		g.Go(func() (err error) {
			defer errors.Trap("parallel.Partition", &err)
			return fn(ctx, chunk)
		})
	}
	return g.Wait()
}
