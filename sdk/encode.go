package sdk

import (
	"context"
	"runtime"

	"github.com/consensys/gnark/logger"
	"github.com/lido333/openvm/babybear"
	"github.com/lido333/openvm/hints"
	"github.com/lido333/openvm/ir"
	"github.com/lido333/openvm/stark"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// EncodeVerifierInput validates vi and writes its hint stream.
func EncodeVerifierInput(vi stark.VerifierInput) (hints.Stream, error) {
	if err := vi.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid verifier input")
	}
	return stark.VerifierInputCodec.Write(vi)
}

// EncodeSegments writes one verifier input stream per segment of proof.
// logDegrees and publicValues are indexed by segment. Segments are encoded in
// parallel; the result is in segment order.
func EncodeSegments(
	ctx context.Context,
	proof *ContinuationProof,
	logDegrees [][]int,
	publicValues [][][]babybear.Felt,
) ([]hints.Stream, error) {
	n := len(proof.PerSegment)
	if len(logDegrees) != n || len(publicValues) != n {
		return nil, errors.Errorf(
			"%d segments, %d log degree lists, %d public value lists",
			n, len(logDegrees), len(publicValues),
		)
	}

	log := logger.Logger().With().Str("component", "sdk").Logger()
	streams := make([]hints.Stream, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range proof.PerSegment {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := EncodeVerifierInput(stark.VerifierInput{
				Proof:           proof.PerSegment[i],
				LogDegreePerAir: logDegrees[i],
				PublicValues:    publicValues[i],
			})
			if err != nil {
				return errors.Wrapf(err, "segment %d", i)
			}
			log.Debug().Int("segment", i).Int("scalars", s.Len()).Msg("encoded segment")
			streams[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return streams, nil
}

// VerifierInputProgram records the reads of one verifier input.
func VerifierInputProgram() (*ir.Program, stark.VerifierInputVariable) {
	b := ir.NewBuilder()
	v := stark.VerifierInputCodec.Read(b)
	return b.Compile(), v
}

// WitnessVerifierInput runs the verifier input reads against stream and
// returns the resulting witness and constraint trace.
func WitnessVerifierInput(stream hints.Stream) (*ir.Trace, error) {
	prog, _ := VerifierInputProgram()
	trace, err := prog.Execute(stream)
	if err != nil {
		return nil, errors.Wrap(err, "executing verifier input reads")
	}
	return trace, nil
}
