package stark

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/lido333/openvm/babybear"
	"github.com/lido333/openvm/hints"
	"github.com/lido333/openvm/ir"
	"github.com/stretchr/testify/require"
)

func loadVerifierInput(t *testing.T) VerifierInput {
	t.Helper()
	data, err := os.ReadFile("testdata/verifier_input.json")
	require.NoError(t, err)
	var vi VerifierInput
	require.NoError(t, json.Unmarshal(data, &vi))
	return vi
}

func seq(from, n uint64) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = from + uint64(i)
	}
	return out
}

func TestVerifierInputStream(t *testing.T) {
	vi := loadVerifierInput(t)
	require.NoError(t, vi.Validate())

	s, err := VerifierInputCodec.Write(vi)
	require.NoError(t, err)

	want := [][]uint64{
		// commitments
		{1}, seq(1, 8), {0}, seq(9, 8),
		// fri proof
		{1}, seq(21, 8),
		{1}, {1}, {1, 2, 3, 4}, {1}, seq(31, 8),
		{5, 0, 0, 0}, {77},
		// query openings
		{1}, {1}, {2}, {2}, {1, 2}, {1}, {3}, {1}, seq(41, 8),
		// opened values
		{0},
		{1}, {1}, {2}, {1, 0, 0, 0, 2, 0, 0, 0}, {2}, {3, 0, 0, 0, 4, 0, 0, 0},
		{1}, {1}, {7, 8, 9, 10},
		{0},
		// exposed values after challenge
		{1}, {0},
		// log degrees, public values
		{1}, {4},
		{1}, {2}, {100, 200},
	}
	require.Equal(t, want, s.Uint64s())
}

func TestVerifierInputRoundTrip(t *testing.T) {
	vi := loadVerifierInput(t)
	s, err := VerifierInputCodec.Write(vi)
	require.NoError(t, err)

	b := ir.NewBuilder()
	v := VerifierInputCodec.Read(b)
	require.True(t, v.LogDegreePerAir.IsDyn())
	trace, err := b.Compile().Execute(s)
	require.NoError(t, err)
	require.Equal(t, s.Flatten(), ir.FlattenValues(trace.Inspect(v)))

	// Every usize was read as a native var, every other scalar as a felt or ext.
	require.Equal(t, s.Len(), trace.Witness.HintCount())

	// Dropping the last scalar breaks the protocol.
	short := append(hints.Stream{}, s[:len(s)-1]...)
	short = append(short, s[len(s)-1][:1])
	b = ir.NewBuilder()
	VerifierInputCodec.Read(b)
	_, err = b.Compile().Execute(short)
	require.ErrorIs(t, err, ir.ErrHintMismatch)
}

func TestTraceWidthPreprocessed(t *testing.T) {
	absent := NewTraceWidth(nil, []int{3, 4}, nil)
	s, err := TraceWidthCodec.Write(absent)
	require.NoError(t, err)
	require.Equal(t, [][]uint64{{0}, {2}, {3, 4}, {0}}, s.Uint64s())
	_, ok := absent.PreprocessedWidth()
	require.False(t, ok)
	require.Equal(t, 7, absent.MainWidth())

	width := 5
	present := NewTraceWidth(&width, []int{1}, []int{2})
	s, err = TraceWidthCodec.Write(present)
	require.NoError(t, err)
	require.Equal(t, [][]uint64{{1}, {5}, {1}, {1}, {1}, {2}}, s.Uint64s())
	w, ok := present.PreprocessedWidth()
	require.True(t, ok)
	require.Equal(t, 5, w)
}

func TestCommitmentConversion(t *testing.T) {
	var c Commitment
	for i := range c {
		c[i] = uint32(i * 1000)
	}
	d, err := c.Digest()
	require.NoError(t, err)
	require.Equal(t, c, CommitmentFromDigest(d))

	c[3] = babybear.Modulus
	_, err = c.Digest()
	require.ErrorIs(t, err, babybear.ErrOutOfRange)

	_, err = CommitmentsCodec.Write(Commitments{Quotient: c})
	require.ErrorIs(t, err, babybear.ErrOutOfRange)
	require.ErrorContains(t, err, "quotient")
}

func TestValidate(t *testing.T) {
	vi := loadVerifierInput(t)
	vi.PublicValues = append(vi.PublicValues, nil)
	require.Error(t, vi.Validate())
}
