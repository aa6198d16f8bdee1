package sdk

import (
	"context"

	"github.com/lido333/openvm/stark"
)

// ContinuationProver proves a fixed program in a continuation VM.
type ContinuationProver interface {
	Prove(input Streams) (*ContinuationProof, error)
}

type AsyncContinuationProver interface {
	Prove(ctx context.Context, input Streams) (*ContinuationProof, error)
}

// SingleSegmentProver proves a fixed program that runs in one segment.
type SingleSegmentProver interface {
	Prove(input Streams) (*stark.Proof, error)
}

type AsyncSingleSegmentProver interface {
	Prove(ctx context.Context, input Streams) (*stark.Proof, error)
}

// AsyncContinuation runs p on its own goroutine. Prove returns ctx.Err() as
// soon as ctx is done; the blocking call is left to finish in the background.
func AsyncContinuation(p ContinuationProver) AsyncContinuationProver {
	return asyncContinuation{p}
}

type asyncContinuation struct{ p ContinuationProver }

func (a asyncContinuation) Prove(ctx context.Context, input Streams) (*ContinuationProof, error) {
	return await(ctx, func() (*ContinuationProof, error) { return a.p.Prove(input) })
}

// AsyncSingleSegment is AsyncContinuation for single segment provers.
func AsyncSingleSegment(p SingleSegmentProver) AsyncSingleSegmentProver {
	return asyncSingleSegment{p}
}

type asyncSingleSegment struct{ p SingleSegmentProver }

func (a asyncSingleSegment) Prove(ctx context.Context, input Streams) (*stark.Proof, error) {
	return await(ctx, func() (*stark.Proof, error) { return a.p.Prove(input) })
}

type result[T any] struct {
	v   T
	err error
}

func await[T any](ctx context.Context, f func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	done := make(chan result[T], 1)
	go func() {
		v, err := f()
		done <- result[T]{v, err}
	}()
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-done:
		return r.v, r.err
	}
}
