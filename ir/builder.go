package ir

import (
	"github.com/lido333/openvm/babybear"
)

// Builder records a hint-consuming program. It is not safe for concurrent use.
type Builder struct {
	nextID   int
	blocks   [][]Instruction
	compiled bool
}

func NewBuilder() *Builder {
	return &Builder{nextID: 1, blocks: make([][]Instruction, 1)}
}

func (b *Builder) alloc() int {
	id := b.nextID
	b.nextID++
	return id
}

func (b *Builder) push(insn Instruction) {
	if b.compiled {
		panic("ir: builder used after Compile")
	}
	top := len(b.blocks) - 1
	b.blocks[top] = append(b.blocks[top], insn)
}

// Compile finishes the program. The builder cannot be used afterwards.
func (b *Builder) Compile() *Program {
	if len(b.blocks) != 1 {
		panic("ir: Compile called inside a loop body")
	}
	b.compiled = true
	return &Program{Instructions: b.blocks[0], NumVariables: b.nextID}
}

// HintVar reads one scalar from the hint stream as a native counter.
func (b *Builder) HintVar() Var {
	v := Var{b.alloc()}
	b.push(Instruction{Op: OpHintVar, Out: v.Leaves()[0]})
	return v
}

// HintFelt reads one scalar from the hint stream.
func (b *Builder) HintFelt() Felt {
	f := Felt{b.alloc()}
	b.push(Instruction{Op: OpHintFelt, Out: f.Leaves()[0]})
	return f
}

// HintExt reads ExtDegree scalars from the hint stream, constant term first.
func (b *Builder) HintExt() Ext {
	e := Ext{b.alloc()}
	b.push(Instruction{Op: OpHintExt, Out: e.Leaves()[0]})
	return e
}

func (b *Builder) ConstVar(v uint64) Var {
	out := Var{b.alloc()}
	b.push(Instruction{Op: OpImmVar, Out: out.Leaves()[0], Imm: babybear.ExtFromUint64(v)})
	return out
}

func (b *Builder) ConstFelt(f babybear.Felt) Felt {
	out := Felt{b.alloc()}
	b.push(Instruction{Op: OpImmFelt, Out: out.Leaves()[0], Imm: babybear.ExtFromBase(f)})
	return out
}

func (b *Builder) ConstExt(e babybear.Ext) Ext {
	out := Ext{b.alloc()}
	b.push(Instruction{Op: OpImmExt, Out: out.Leaves()[0], Imm: e})
	return out
}

func (b *Builder) binary(op Opcode, kind Kind, x, y Leaf) Leaf {
	out := Leaf{kind, b.alloc()}
	b.push(Instruction{Op: op, Out: out, Args: []Leaf{x, y}})
	return out
}

func (b *Builder) AddF(x, y Felt) Felt {
	return Felt{b.binary(OpAddFelt, KindFelt, x.Leaves()[0], y.Leaves()[0]).ID}
}

func (b *Builder) SubF(x, y Felt) Felt {
	return Felt{b.binary(OpSubFelt, KindFelt, x.Leaves()[0], y.Leaves()[0]).ID}
}

func (b *Builder) MulF(x, y Felt) Felt {
	return Felt{b.binary(OpMulFelt, KindFelt, x.Leaves()[0], y.Leaves()[0]).ID}
}

func (b *Builder) AddE(x, y Ext) Ext {
	return Ext{b.binary(OpAddExt, KindExt, x.Leaves()[0], y.Leaves()[0]).ID}
}

func (b *Builder) SubE(x, y Ext) Ext {
	return Ext{b.binary(OpSubExt, KindExt, x.Leaves()[0], y.Leaves()[0]).ID}
}

func (b *Builder) MulE(x, y Ext) Ext {
	return Ext{b.binary(OpMulExt, KindExt, x.Leaves()[0], y.Leaves()[0]).ID}
}

func (b *Builder) AssertVarEq(x, y Var) {
	b.push(Instruction{Op: OpAssertEqVar, Args: []Leaf{x.Leaves()[0], y.Leaves()[0]}})
}

func (b *Builder) AssertFeltEq(x, y Felt) {
	b.push(Instruction{Op: OpAssertEqFelt, Args: []Leaf{x.Leaves()[0], y.Leaves()[0]}})
}

func (b *Builder) AssertExtEq(x, y Ext) {
	b.push(Instruction{Op: OpAssertEqExt, Args: []Leaf{x.Leaves()[0], y.Leaves()[0]}})
}

// DynArray allocates an array of n elements. Elements must be Set before they
// are read.
func DynArray[T MemVariable[T]](b *Builder, n Var) Array[T] {
	a := Array[T]{handle: b.alloc(), length: n}
	b.push(Instruction{Op: OpDynArray, Out: Leaf{KindArray, a.handle}, Args: n.Leaves()})
	return a
}

// Set stores a snapshot of v at index i.
func Set[T MemVariable[T]](b *Builder, a Array[T], i Var, v T) {
	args := append([]Leaf{{KindArray, a.handle}, i.Leaves()[0]}, v.Leaves()...)
	b.push(Instruction{Op: OpSet, Args: args})
}

// Get loads the element at index i into fresh storage.
func Get[T MemVariable[T]](b *Builder, a Array[T], i Var) T {
	var zero T
	v := zero.Uninit(b)
	args := append([]Leaf{{KindArray, a.handle}, i.Leaves()[0]}, v.Leaves()...)
	b.push(Instruction{Op: OpGet, Args: args})
	return v
}

type RangeBuilder struct {
	b          *Builder
	start, end Var
}

// Range iterates over [start, end).
func (b *Builder) Range(start, end Var) *RangeBuilder {
	return &RangeBuilder{b: b, start: start, end: end}
}

// ForEach records body once. It is replayed for every index at execution.
func (r *RangeBuilder) ForEach(body func(i Var, b *Builder)) {
	b := r.b
	idx := Var{b.alloc()}
	b.blocks = append(b.blocks, nil)
	body(idx, b)
	top := len(b.blocks) - 1
	block := b.blocks[top]
	b.blocks = b.blocks[:top]
	b.push(Instruction{
		Op:   OpRange,
		Out:  idx.Leaves()[0],
		Args: []Leaf{r.start.Leaves()[0], r.end.Leaves()[0]},
		Body: block,
	})
}
