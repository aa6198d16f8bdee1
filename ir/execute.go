package ir

import (
	"fmt"
	"strconv"

	"github.com/consensys/gnark/logger"
	"github.com/lido333/openvm/babybear"
	"github.com/lido333/openvm/opcode"
	"github.com/pkg/errors"
)

var (
	// ErrHintMismatch means the hint stream does not have the shape the
	// program reads.
	ErrHintMismatch = errors.New("hint protocol mismatch")

	// ErrAssertion means an assert instruction failed on the hinted values.
	ErrAssertion = errors.New("assertion failed")
)

var assertOps = map[Opcode]string{
	OpAssertEqVar:  opcode.AssertEqV,
	OpAssertEqFelt: opcode.AssertEqF,
	OpAssertEqExt:  opcode.AssertEqE,
}

// minArrayLimit bounds array allocation independently of the stream size.
const minArrayLimit = 1 << 20

// Trace is the result of running a program against a hint stream: the hinted
// values in read order and the constraints that relate them.
type Trace struct {
	Witness     opcode.WitnessInput
	Constraints []opcode.Constraint

	mem []cell
}

type cell struct {
	kind  Kind
	value babybear.Ext
	arr   *arrayObj
	name  string
}

type arrayObj struct {
	elems [][]cell
}

type executor struct {
	hints  []babybear.Felt
	cursor int
	mem    []cell
	trace  *Trace
	names  map[Kind]int
}

// Execute runs p, consuming stream in order. Every scalar must be consumed.
func (p *Program) Execute(stream [][]babybear.Felt) (*Trace, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var hints []babybear.Felt
	for _, chunk := range stream {
		hints = append(hints, chunk...)
	}
	ex := &executor{
		hints: hints,
		mem:   make([]cell, p.NumVariables),
		trace: &Trace{Witness: opcode.WitnessInput{
			Vars:  []string{},
			Felts: []string{},
			Exts:  [][]string{},
		}},
		names: make(map[Kind]int),
	}
	if err := ex.run(p.Instructions); err != nil {
		return nil, err
	}
	if ex.cursor != len(hints) {
		return nil, errors.Wrapf(ErrHintMismatch, "%d of %d hinted scalars left unread", len(hints)-ex.cursor, len(hints))
	}
	ex.trace.mem = ex.mem
	log := logger.Logger()
	log.Debug().
		Int("hints", len(hints)).
		Int("constraints", len(ex.trace.Constraints)).
		Msg("executed hint program")
	return ex.trace, nil
}

func (ex *executor) fresh(k Kind) string {
	ex.names[k]++
	return fmt.Sprintf("%s%d", k, ex.names[k])
}

func (ex *executor) emit(op string, args ...[]string) {
	ex.trace.Constraints = append(ex.trace.Constraints, opcode.Constraint{Opcode: op, Args: args})
}

// write assigns a fresh trace name to l.
func (ex *executor) write(l Leaf, v babybear.Ext) *cell {
	c := &ex.mem[l.ID]
	*c = cell{kind: l.Kind, value: v, name: ex.fresh(l.Kind)}
	return c
}

func (ex *executor) next() (babybear.Felt, error) {
	if ex.cursor >= len(ex.hints) {
		return babybear.Felt{}, errors.Wrapf(ErrHintMismatch, "hint stream exhausted after %d scalars", len(ex.hints))
	}
	f := ex.hints[ex.cursor]
	ex.cursor++
	return f, nil
}

func (ex *executor) load(l Leaf) (*cell, error) {
	c := &ex.mem[l.ID]
	if c.name == "" && c.arr == nil {
		return nil, errors.Errorf("read of uninitialized %s %d", l.Kind, l.ID)
	}
	return c, nil
}

func (ex *executor) index(l Leaf) (int, error) {
	c, err := ex.load(l)
	if err != nil {
		return 0, err
	}
	return int(c.value[0].Uint64()), nil
}

func (ex *executor) run(insns []Instruction) error {
	for _, insn := range insns {
		if err := ex.step(insn); err != nil {
			return errors.Wrapf(err, "%s", insn.Op)
		}
	}
	return nil
}

func (ex *executor) step(insn Instruction) error {
	switch insn.Op {
	case OpHintVar, OpHintFelt:
		f, err := ex.next()
		if err != nil {
			return err
		}
		out := ex.write(insn.Out, babybear.ExtFromBase(f))
		if insn.Op == OpHintVar {
			ex.emit(opcode.WitnessV, []string{out.name}, []string{strconv.Itoa(len(ex.trace.Witness.Vars))})
			ex.trace.Witness.Vars = append(ex.trace.Witness.Vars, f.String())
		} else {
			ex.emit(opcode.WitnessF, []string{out.name}, []string{strconv.Itoa(len(ex.trace.Witness.Felts))})
			ex.trace.Witness.Felts = append(ex.trace.Witness.Felts, f.String())
		}

	case OpHintExt:
		var e babybear.Ext
		for i := range e {
			f, err := ex.next()
			if err != nil {
				return err
			}
			e[i] = f
		}
		out := ex.write(insn.Out, e)
		ex.emit(opcode.WitnessE, []string{out.name}, []string{strconv.Itoa(len(ex.trace.Witness.Exts))})
		ex.trace.Witness.Exts = append(ex.trace.Witness.Exts, extStrings(e))

	case OpImmVar, OpImmFelt:
		out := ex.write(insn.Out, insn.Imm)
		op := opcode.ImmF
		if insn.Op == OpImmVar {
			op = opcode.ImmV
		}
		ex.emit(op, []string{out.name}, []string{insn.Imm[0].String()})

	case OpImmExt:
		out := ex.write(insn.Out, insn.Imm)
		ex.emit(opcode.ImmE, []string{out.name}, extStrings(insn.Imm))

	case OpAddFelt, OpSubFelt, OpMulFelt, OpAddExt, OpSubExt, OpMulExt:
		return ex.arith(insn)

	case OpAssertEqVar, OpAssertEqFelt, OpAssertEqExt:
		x, err := ex.load(insn.Args[0])
		if err != nil {
			return err
		}
		y, err := ex.load(insn.Args[1])
		if err != nil {
			return err
		}
		if !x.value.Equal(y.value) {
			return errors.Wrapf(ErrAssertion, "%s != %s", x.value, y.value)
		}
		ex.emit(assertOps[insn.Op], []string{x.name}, []string{y.name})

	case OpDynArray:
		n, err := ex.index(insn.Args[0])
		if err != nil {
			return err
		}
		if limit := max(len(ex.hints), minArrayLimit); n > limit {
			return errors.Wrapf(ErrHintMismatch, "array length %d exceeds limit %d", n, limit)
		}
		ex.mem[insn.Out.ID] = cell{kind: KindArray, arr: &arrayObj{elems: make([][]cell, n)}}

	case OpRange:
		start, err := ex.index(insn.Args[0])
		if err != nil {
			return err
		}
		end, err := ex.index(insn.Args[1])
		if err != nil {
			return err
		}
		if end < start {
			return errors.Wrapf(ErrHintMismatch, "range end %d before start %d", end, start)
		}
		for i := start; i < end; i++ {
			idx := ex.write(insn.Out, babybear.ExtFromUint64(uint64(i)))
			ex.emit(opcode.ImmV, []string{idx.name}, []string{strconv.Itoa(i)})
			if err := ex.run(insn.Body); err != nil {
				return errors.Wrapf(err, "iteration %d", i)
			}
		}

	case OpSet, OpGet:
		return ex.access(insn)

	default:
		return errors.Errorf("unknown opcode %d", int(insn.Op))
	}
	return nil
}

func (ex *executor) arith(insn Instruction) error {
	x, err := ex.load(insn.Args[0])
	if err != nil {
		return err
	}
	y, err := ex.load(insn.Args[1])
	if err != nil {
		return err
	}
	var v babybear.Ext
	var op string
	switch insn.Op {
	case OpAddFelt:
		v, op = babybear.ExtFromBase(x.value[0].Add(y.value[0])), opcode.AddF
	case OpSubFelt:
		v, op = babybear.ExtFromBase(x.value[0].Sub(y.value[0])), opcode.SubF
	case OpMulFelt:
		v, op = babybear.ExtFromBase(x.value[0].Mul(y.value[0])), opcode.MulF
	case OpAddExt:
		v, op = x.value.Add(y.value), opcode.AddE
	case OpSubExt:
		v, op = x.value.Sub(y.value), opcode.SubE
	case OpMulExt:
		v, op = x.value.Mul(y.value), opcode.MulE
	}
	xName, yName := x.name, y.name
	out := ex.write(insn.Out, v)
	ex.emit(op, []string{out.name}, []string{xName}, []string{yName})
	return nil
}

// access copies element leaves in or out of an array. Copies carry the trace
// name along, so no constraint is emitted.
func (ex *executor) access(insn Instruction) error {
	a := ex.mem[insn.Args[0].ID].arr
	if a == nil {
		return errors.Errorf("%s on unallocated array %d", insn.Op, insn.Args[0].ID)
	}
	i, err := ex.index(insn.Args[1])
	if err != nil {
		return err
	}
	if i >= len(a.elems) {
		return errors.Wrapf(ErrHintMismatch, "index %d out of bounds for array of length %d", i, len(a.elems))
	}
	leaves := insn.Args[2:]

	if insn.Op == OpSet {
		snapshot := make([]cell, len(leaves))
		for j, l := range leaves {
			c, err := ex.load(l)
			if err != nil {
				return err
			}
			snapshot[j] = *c
		}
		a.elems[i] = snapshot
		return nil
	}

	snapshot := a.elems[i]
	if snapshot == nil {
		return errors.Errorf("read of unset element %d", i)
	}
	if len(snapshot) != len(leaves) {
		return errors.Errorf("element %d has %d leaves, destination has %d", i, len(snapshot), len(leaves))
	}
	for j, l := range leaves {
		ex.mem[l.ID] = snapshot[j]
	}
	return nil
}

func extStrings(e babybear.Ext) []string {
	out := make([]string, babybear.ExtDegree)
	for i, c := range e {
		out[i] = c.String()
	}
	return out
}

// Value is the host view of a variable leaf after execution. Array leaves
// carry their elements, each as the element's own leaves.
type Value struct {
	Kind  Kind
	Ext   babybear.Ext
	Elems [][]Value
}

// Inspect returns the final values behind v.
func (t *Trace) Inspect(v interface{ Leaves() []Leaf }) []Value {
	leaves := v.Leaves()
	cells := make([]cell, len(leaves))
	for i, l := range leaves {
		cells[i] = t.mem[l.ID]
	}
	return inspectCells(cells)
}

func inspectCells(cells []cell) []Value {
	out := make([]Value, len(cells))
	for i, c := range cells {
		out[i] = Value{Kind: c.kind, Ext: c.value}
		if c.arr != nil {
			out[i].Elems = make([][]Value, len(c.arr.elems))
			for j, el := range c.arr.elems {
				out[i].Elems[j] = inspectCells(el)
			}
		}
	}
	return out
}

// FlattenValues lists the scalars behind values in leaf order. An array's
// length comes from its own length leaf.
func FlattenValues(values []Value) []babybear.Felt {
	var out []babybear.Felt
	for _, v := range values {
		switch v.Kind {
		case KindVar, KindFelt:
			out = append(out, v.Ext[0])
		case KindExt:
			out = append(out, v.Ext[:]...)
		case KindArray:
			for _, el := range v.Elems {
				out = append(out, FlattenValues(el)...)
			}
		}
	}
	return out
}
