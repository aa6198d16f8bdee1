package circuit

import (
	"strconv"

	"github.com/consensys/gnark/frontend"
	"github.com/lido333/openvm/babybear"
	"github.com/lido333/openvm/opcode"
	"github.com/pkg/errors"
)

// Circuit replays a constraint trace over the hinted witness values.
type Circuit struct {
	HintCount   frontend.Variable `gnark:",public"`
	Vars        []frontend.Variable
	Felts       []babybear.Variable
	Exts        []babybear.ExtensionVariable
	Constraints []Constraint `gnark:"-"`
}

// Constraint and WitnessInput are the trace format the ir executor emits.
type (
	Constraint   = opcode.Constraint
	WitnessInput = opcode.WitnessInput
)

type Proof struct {
	PublicInputs [1]string `json:"public_inputs"`
	EncodedProof string    `json:"encoded_proof"`
	RawProof     string    `json:"raw_proof"`
}

func (circuit *Circuit) Define(api frontend.API) error {
	fieldAPI := babybear.NewChip(api)
	vars := make(map[string]frontend.Variable)
	felts := make(map[string]babybear.Variable)
	exts := make(map[string]babybear.ExtensionVariable)

	api.AssertIsEqual(circuit.HintCount, len(circuit.Vars)+len(circuit.Felts)+babybear.ExtDegree*len(circuit.Exts))

	// Hinted felts are untrusted until range checked.
	for i := range circuit.Felts {
		fieldAPI.Check(circuit.Felts[i].Value, 31)
	}
	for i := range circuit.Exts {
		for j := 0; j < babybear.ExtDegree; j++ {
			fieldAPI.Check(circuit.Exts[i].Value[j].Value, 31)
		}
	}

	for _, cs := range circuit.Constraints {
		switch cs.Opcode {
		case opcode.ImmV:
			vars[cs.Args[0][0]] = frontend.Variable(cs.Args[1][0])
		case opcode.ImmF:
			felts[cs.Args[0][0]] = babybear.NewFConst(cs.Args[1][0])
		case opcode.ImmE:
			exts[cs.Args[0][0]] = babybear.NewEConst(cs.Args[1])
		case opcode.AddF:
			felts[cs.Args[0][0]] = fieldAPI.AddF(felts[cs.Args[1][0]], felts[cs.Args[2][0]])
		case opcode.SubF:
			felts[cs.Args[0][0]] = fieldAPI.SubF(felts[cs.Args[1][0]], felts[cs.Args[2][0]])
		case opcode.MulF:
			felts[cs.Args[0][0]] = fieldAPI.MulF(felts[cs.Args[1][0]], felts[cs.Args[2][0]])
		case opcode.AddE:
			exts[cs.Args[0][0]] = fieldAPI.AddE(exts[cs.Args[1][0]], exts[cs.Args[2][0]])
		case opcode.SubE:
			exts[cs.Args[0][0]] = fieldAPI.SubE(exts[cs.Args[1][0]], exts[cs.Args[2][0]])
		case opcode.MulE:
			exts[cs.Args[0][0]] = fieldAPI.MulE(exts[cs.Args[1][0]], exts[cs.Args[2][0]])
		case opcode.AssertEqV:
			api.AssertIsEqual(vars[cs.Args[0][0]], vars[cs.Args[1][0]])
		case opcode.AssertEqF:
			fieldAPI.AssertIsEqualF(felts[cs.Args[0][0]], felts[cs.Args[1][0]])
		case opcode.AssertEqE:
			fieldAPI.AssertIsEqualE(exts[cs.Args[0][0]], exts[cs.Args[1][0]])
		case opcode.WitnessV:
			i, err := witnessIndex(cs, len(circuit.Vars))
			if err != nil {
				return err
			}
			vars[cs.Args[0][0]] = circuit.Vars[i]
		case opcode.WitnessF:
			i, err := witnessIndex(cs, len(circuit.Felts))
			if err != nil {
				return err
			}
			felts[cs.Args[0][0]] = circuit.Felts[i]
		case opcode.WitnessE:
			i, err := witnessIndex(cs, len(circuit.Exts))
			if err != nil {
				return err
			}
			exts[cs.Args[0][0]] = circuit.Exts[i]
		default:
			return errors.Errorf("unhandled opcode: %s", cs.Opcode)
		}
	}

	return nil
}

func witnessIndex(cs Constraint, n int) (int, error) {
	i, err := strconv.Atoi(cs.Args[1][0])
	if err != nil {
		return 0, errors.Wrapf(err, "%s: bad witness index", cs.Opcode)
	}
	if i < 0 || i >= n {
		return 0, errors.Errorf("%s: witness index %d out of range [0, %d)", cs.Opcode, i, n)
	}
	return i, nil
}
