package codectest

import (
	"testing"

	"github.com/lido333/openvm/hints"
	"github.com/lido333/openvm/ir"
	"github.com/stretchr/testify/require"
)

func decode[V interface{ Leaves() []ir.Leaf }](t *testing.T, read func(*ir.Builder) V, s hints.Stream) []uint64 {
	t.Helper()
	b := ir.NewBuilder()
	v := read(b)
	trace, err := b.Compile().Execute(s)
	require.NoError(t, err)
	var out []uint64
	for _, f := range ir.FlattenValues(trace.Inspect(v)) {
		out = append(out, f.Uint64())
	}
	return out
}

func flat(s hints.Stream) []uint64 {
	var out []uint64
	for _, f := range s.Flatten() {
		out = append(out, f.Uint64())
	}
	return out
}

func TestTripleFieldOrder(t *testing.T) {
	s, err := TripleCodec.Write(Triple{A: 5, B: 9, C: 2})
	require.NoError(t, err)
	require.Equal(t, [][]uint64{{5}, {9}, {2}}, s.Uint64s())
	require.Equal(t, []uint64{5, 9, 2}, decode(t, TripleCodec.Read, s))
}

func TestNestedRecords(t *testing.T) {
	n := Nested{
		First:   Triple{A: 1, B: 2, C: 3},
		Triples: []Triple{{A: 4, B: 5, C: 6}, {A: 7, B: 8, C: 9}},
	}
	s, err := NestedCodec.Write(n)
	require.NoError(t, err)
	require.Equal(t, [][]uint64{{1}, {2}, {3}, {2}, {4}, {5}, {6}, {7}, {8}, {9}}, s.Uint64s())
	require.Equal(t, flat(s), decode(t, NestedCodec.Read, s))

	s, err = NestedCodec.Write(Nested{})
	require.NoError(t, err)
	require.Equal(t, [][]uint64{{0}, {0}, {0}, {0}}, s.Uint64s())
	require.Equal(t, []uint64{0, 0, 0, 0}, decode(t, NestedCodec.Read, s))
}

func TestTripleRejectsNegative(t *testing.T) {
	_, err := TripleCodec.Write(Triple{A: 1, B: -1})
	require.ErrorIs(t, err, hints.ErrRange)
	require.ErrorContains(t, err, "b")
}
