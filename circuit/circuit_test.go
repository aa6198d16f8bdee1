package circuit_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/test"
	"github.com/lido333/openvm/babybear"
	"github.com/lido333/openvm/circuit"
	"github.com/lido333/openvm/ir"
	"github.com/stretchr/testify/require"
)

func sampleTrace(t *testing.T, product uint64) *ir.Trace {
	t.Helper()
	b := ir.NewBuilder()
	n := b.HintVar()
	arr := ir.DynArray[ir.Ext](b, n)
	b.Range(b.ConstVar(0), n).ForEach(func(i ir.Var, b *ir.Builder) {
		ir.Set(b, arr, i, b.HintExt())
	})
	x := b.HintFelt()
	y := b.HintFelt()
	b.AssertFeltEq(b.MulF(x, y), b.ConstFelt(babybear.NewFelt(product)))
	first := ir.Get(b, arr, b.ConstVar(0))
	second := ir.Get(b, arr, b.ConstVar(1))
	b.AssertExtEq(b.MulE(first, second), b.ConstExt(babybear.Ext{
		babybear.NewFelt(676), babybear.NewFelt(588), babybear.NewFelt(386), babybear.NewFelt(60),
	}))

	ext := func(vs ...uint64) []babybear.Felt {
		out := make([]babybear.Felt, len(vs))
		for i, v := range vs {
			out[i] = babybear.NewFelt(v)
		}
		return out
	}
	trace, err := b.Compile().Execute([][]babybear.Felt{
		ext(2),
		ext(1, 2, 3, 4, 5, 6, 7, 8),
		ext(6), ext(7),
	})
	require.NoError(t, err)
	return trace
}

func TestTraceSatisfiesCircuit(t *testing.T) {
	trace := sampleTrace(t, 42)
	c := circuit.NewCircuit(trace.Witness, trace.Constraints)
	assignment := circuit.NewCircuit(trace.Witness, nil)
	require.NoError(t, test.IsSolved(&c, &assignment, ecc.BN254.ScalarField()))
}

func TestTamperedWitnessFails(t *testing.T) {
	trace := sampleTrace(t, 42)
	c := circuit.NewCircuit(trace.Witness, trace.Constraints)

	tampered := trace.Witness
	tampered.Felts = []string{"6", "8"}
	assignment := circuit.NewCircuit(tampered, nil)
	require.Error(t, test.IsSolved(&c, &assignment, ecc.BN254.ScalarField()))
}

func TestUnknownOpcode(t *testing.T) {
	trace := sampleTrace(t, 42)
	constraints := append(trace.Constraints, circuit.Constraint{Opcode: "Permute"})
	c := circuit.NewCircuit(trace.Witness, constraints)
	assignment := circuit.NewCircuit(trace.Witness, nil)
	require.ErrorContains(t, test.IsSolved(&c, &assignment, ecc.BN254.ScalarField()), "unhandled opcode")
}

func TestBuildAndProve(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping plonk setup in short mode")
	}
	trace := sampleTrace(t, 42)
	artifacts, err := circuit.Build(trace.Witness, trace.Constraints)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, artifacts.WriteTo(dir))
	loaded, err := circuit.ReadArtifacts(dir)
	require.NoError(t, err)

	proof, err := loaded.Prove(trace.Witness)
	require.NoError(t, err)
	require.Equal(t, "11", proof.PublicInputs[0])
	require.NotEmpty(t, proof.RawProof)
}
