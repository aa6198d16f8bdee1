package ir

import (
	"testing"

	"github.com/lido333/openvm/babybear"
	"github.com/lido333/openvm/opcode"
	"github.com/stretchr/testify/require"
)

func felts(vs ...uint64) []babybear.Felt {
	out := make([]babybear.Felt, len(vs))
	for i, v := range vs {
		out[i] = babybear.NewFelt(v)
	}
	return out
}

// readList records the program for a length prefixed list of felts.
func readList(b *Builder) Array[Felt] {
	n := b.HintVar()
	arr := DynArray[Felt](b, n)
	b.Range(b.ConstVar(0), n).ForEach(func(i Var, b *Builder) {
		Set(b, arr, i, b.HintFelt())
	})
	return arr
}

func TestExecuteArithmetic(t *testing.T) {
	b := NewBuilder()
	x := b.HintFelt()
	y := b.HintFelt()
	e := b.HintExt()
	b.AssertFeltEq(b.MulF(x, y), b.ConstFelt(babybear.NewFelt(42)))
	b.AssertExtEq(b.AddE(e, b.ConstExt(babybear.ExtFromUint64(1))), b.ConstExt(babybear.Ext{
		babybear.NewFelt(2), babybear.NewFelt(2), babybear.NewFelt(3), babybear.NewFelt(4),
	}))
	prog := b.Compile()
	require.NoError(t, prog.Validate())

	trace, err := prog.Execute([][]babybear.Felt{felts(6, 7), felts(1, 2, 3, 4)})
	require.NoError(t, err)
	require.Equal(t, []string{"6", "7"}, trace.Witness.Felts)
	require.Equal(t, [][]string{{"1", "2", "3", "4"}}, trace.Witness.Exts)
	require.Equal(t, 6, trace.Witness.HintCount())

	var ops []string
	for _, c := range trace.Constraints {
		ops = append(ops, c.Opcode)
	}
	require.Equal(t, []string{
		opcode.WitnessF, opcode.WitnessF, opcode.WitnessE,
		opcode.MulF, opcode.ImmF, opcode.AssertEqF,
		opcode.ImmE, opcode.AddE, opcode.ImmE, opcode.AssertEqE,
	}, ops)

	_, err = prog.Execute([][]babybear.Felt{felts(6, 8), felts(1, 2, 3, 4)})
	require.ErrorIs(t, err, ErrAssertion)
}

func TestExecuteDynamicArrays(t *testing.T) {
	b := NewBuilder()
	outer := b.HintVar()
	lists := DynArray[Array[Felt]](b, outer)
	b.Range(b.ConstVar(0), outer).ForEach(func(i Var, b *Builder) {
		Set(b, lists, i, readList(b))
	})

	// Check the second list's last element through Get.
	second := Get(b, lists, b.ConstVar(1))
	last := Get(b, second, b.ConstVar(2))
	b.AssertFeltEq(last, b.ConstFelt(babybear.NewFelt(30)))
	b.AssertVarEq(second.Len(), b.ConstVar(3))
	prog := b.Compile()

	stream := [][]babybear.Felt{
		felts(2),
		felts(1), felts(5),
		felts(3), felts(10, 20, 30),
	}
	trace, err := prog.Execute(stream)
	require.NoError(t, err)
	require.Equal(t, []string{"2", "1", "3"}, trace.Witness.Vars)
	require.Equal(t, []string{"5", "10", "20", "30"}, trace.Witness.Felts)
}

func TestExecuteEmptyList(t *testing.T) {
	b := NewBuilder()
	arr := readList(b)
	b.AssertVarEq(arr.Len(), b.ConstVar(0))
	trace, err := b.Compile().Execute([][]babybear.Felt{felts(0)})
	require.NoError(t, err)
	require.Empty(t, trace.Witness.Felts)
}

func TestExecuteHintMismatch(t *testing.T) {
	build := func() *Program {
		b := NewBuilder()
		readList(b)
		return b.Compile()
	}

	_, err := build().Execute([][]babybear.Felt{felts(3), felts(1, 2)})
	require.ErrorIs(t, err, ErrHintMismatch)

	_, err = build().Execute([][]babybear.Felt{felts(1), felts(1, 2)})
	require.ErrorIs(t, err, ErrHintMismatch)

	_, err = build().Execute(nil)
	require.ErrorIs(t, err, ErrHintMismatch)

	_, err = build().Execute([][]babybear.Felt{felts(babybear.Modulus - 1)})
	require.ErrorIs(t, err, ErrHintMismatch)
}

func TestGetOutOfBounds(t *testing.T) {
	b := NewBuilder()
	arr := readList(b)
	Get(b, arr, b.ConstVar(4))
	_, err := b.Compile().Execute([][]babybear.Felt{felts(2), felts(1, 2)})
	require.ErrorIs(t, err, ErrHintMismatch)
}

func TestMustDyn(t *testing.T) {
	require.Panics(t, func() { Array[Felt]{}.MustDyn() })

	b := NewBuilder()
	arr := readList(b)
	require.NotPanics(t, func() { arr.MustDyn() })
}

func TestValidate(t *testing.T) {
	p := &Program{
		Instructions: []Instruction{{Op: OpAddFelt, Out: Leaf{KindFelt, 1}, Args: []Leaf{{KindFelt, 1}}}},
		NumVariables: 2,
	}
	require.ErrorContains(t, p.Validate(), "expected 2 operands")

	p.Instructions[0].Args = []Leaf{{KindFelt, 1}, {KindFelt, 9}}
	require.ErrorContains(t, p.Validate(), "not allocated")

	// Execute rejects the program before touching memory.
	_, err := p.Execute(nil)
	require.ErrorContains(t, err, "variable 9 not allocated")
	require.NotErrorIs(t, err, ErrHintMismatch)
}
