// Package opcode is the constraint trace format shared by the hint program
// executor and the gnark backend that replays it.
package opcode

import (
	"github.com/lido333/openvm/babybear"
	"github.com/pkg/errors"
)

// Opcodes emitted into the constraint trace.
const (
	ImmV      = "ImmV"
	ImmF      = "ImmF"
	ImmE      = "ImmE"
	AddF      = "AddF"
	SubF      = "SubF"
	MulF      = "MulF"
	AddE      = "AddE"
	SubE      = "SubE"
	MulE      = "MulE"
	AssertEqV = "AssertEqV"
	AssertEqF = "AssertEqF"
	AssertEqE = "AssertEqE"
	WitnessV  = "WitnessV"
	WitnessF  = "WitnessF"
	WitnessE  = "WitnessE"
)

type Constraint struct {
	Opcode string     `json:"opcode"`
	Args   [][]string `json:"args"`
}

// WitnessInput holds hinted values in the order the program read them.
type WitnessInput struct {
	Vars  []string   `json:"vars"`
	Felts []string   `json:"felts"`
	Exts  [][]string `json:"exts"`
}

// HintCount is the number of base field scalars the witness consumed.
func (w WitnessInput) HintCount() int {
	return len(w.Vars) + len(w.Felts) + babybear.ExtDegree*len(w.Exts)
}

// Validate checks the witness shape before it reaches the solver.
func (w WitnessInput) Validate() error {
	for i, e := range w.Exts {
		if len(e) != babybear.ExtDegree {
			return errors.Errorf("ext witness %d has %d coefficients", i, len(e))
		}
	}
	for i, f := range w.Felts {
		if _, err := babybear.ParseFelt(f); err != nil {
			return errors.Wrapf(err, "felt witness %d", i)
		}
	}
	return nil
}
