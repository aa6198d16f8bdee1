package ir

import (
	"fmt"

	"github.com/lido333/openvm/babybear"
	"github.com/pkg/errors"
)

type Opcode int

const (
	_ Opcode = iota
	OpHintVar
	OpHintFelt
	OpHintExt
	OpImmVar
	OpImmFelt
	OpImmExt
	OpAddFelt
	OpSubFelt
	OpMulFelt
	OpAddExt
	OpSubExt
	OpMulExt
	OpDynArray
	OpRange
	OpSet
	OpGet
	OpAssertEqVar
	OpAssertEqFelt
	OpAssertEqExt
)

var opcodeNames = map[Opcode]string{
	OpHintVar:      "hint_var",
	OpHintFelt:     "hint_felt",
	OpHintExt:      "hint_ext",
	OpImmVar:       "imm_var",
	OpImmFelt:      "imm_felt",
	OpImmExt:       "imm_ext",
	OpAddFelt:      "add_felt",
	OpSubFelt:      "sub_felt",
	OpMulFelt:      "mul_felt",
	OpAddExt:       "add_ext",
	OpSubExt:       "sub_ext",
	OpMulExt:       "mul_ext",
	OpDynArray:     "dyn_array",
	OpRange:        "range",
	OpSet:          "set",
	OpGet:          "get",
	OpAssertEqVar:  "assert_eq_var",
	OpAssertEqFelt: "assert_eq_felt",
	OpAssertEqExt:  "assert_eq_ext",
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Opcode(%d)", int(op))
}

// Instruction is one recorded builder operation.
//
// Operand layout by opcode:
//   - hints, immediates, arithmetic: Out is the result, Args the operands.
//   - OpDynArray: Out is the array handle, Args[0] the length.
//   - OpRange: Out is the loop index, Args are [start, end], Body runs per index.
//   - OpSet, OpGet: Args are [array, index, element leaves...].
//   - asserts: Args are the two operands.
type Instruction struct {
	Op   Opcode
	Out  Leaf
	Args []Leaf
	Imm  babybear.Ext
	Body []Instruction
}

func (insn Instruction) String() string {
	return fmt.Sprintf("%s out=%v args=%v", insn.Op, insn.Out, insn.Args)
}

// Program is a finished instruction list.
type Program struct {
	Instructions []Instruction
	NumVariables int
}

// Validate checks the operand shapes of every instruction.
func (p *Program) Validate() error {
	return validateBlock(p.Instructions, p.NumVariables, "")
}

func validateBlock(insns []Instruction, n int, path string) error {
	for i, insn := range insns {
		loc := fmt.Sprintf("%s%d", path, i)
		want, ok := arity[insn.Op]
		if !ok {
			return errors.Errorf("instruction %s: unknown opcode %d", loc, int(insn.Op))
		}
		if want >= 0 && len(insn.Args) != want {
			return errors.Errorf("instruction %s (%s): expected %d operands, got %d", loc, insn.Op, want, len(insn.Args))
		}
		if want < 0 && len(insn.Args) < 2 {
			return errors.Errorf("instruction %s (%s): missing array or index operand", loc, insn.Op)
		}
		for _, l := range append([]Leaf{insn.Out}, insn.Args...) {
			if l.ID >= n {
				return errors.Errorf("instruction %s (%s): variable %d not allocated", loc, insn.Op, l.ID)
			}
		}
		if insn.Op == OpRange {
			if err := validateBlock(insn.Body, n, loc+"."); err != nil {
				return err
			}
		}
	}
	return nil
}

// -1 marks a variable operand count.
var arity = map[Opcode]int{
	OpHintVar:      0,
	OpHintFelt:     0,
	OpHintExt:      0,
	OpImmVar:       0,
	OpImmFelt:      0,
	OpImmExt:       0,
	OpAddFelt:      2,
	OpSubFelt:      2,
	OpMulFelt:      2,
	OpAddExt:       2,
	OpSubExt:       2,
	OpMulExt:       2,
	OpDynArray:     1,
	OpRange:        2,
	OpSet:          -1,
	OpGet:          -1,
	OpAssertEqVar:  2,
	OpAssertEqFelt: 2,
	OpAssertEqExt:  2,
}
