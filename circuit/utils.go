package circuit

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"strconv"

	"github.com/consensys/gnark/backend/plonk"
	plonk_bn254 "github.com/consensys/gnark/backend/plonk/bn254"
	"github.com/consensys/gnark/frontend"
	"github.com/lido333/openvm/babybear"
	"github.com/pkg/errors"
)

// NewCircuit shapes a circuit after the witness. The constraints are only needed
// when compiling; an assignment may leave them nil.
func NewCircuit(witnessInput WitnessInput, constraints []Constraint) Circuit {
	vars := make([]frontend.Variable, len(witnessInput.Vars))
	felts := make([]babybear.Variable, len(witnessInput.Felts))
	exts := make([]babybear.ExtensionVariable, len(witnessInput.Exts))
	for i := range witnessInput.Vars {
		vars[i] = frontend.Variable(witnessInput.Vars[i])
	}
	for i := range witnessInput.Felts {
		felts[i] = babybear.NewF(witnessInput.Felts[i])
	}
	for i := range witnessInput.Exts {
		exts[i] = babybear.NewE(witnessInput.Exts[i])
	}
	return Circuit{
		HintCount:   witnessInput.HintCount(),
		Vars:        vars,
		Felts:       felts,
		Exts:        exts,
		Constraints: constraints,
	}
}

func NewPlonkBn254Proof(proof plonk.Proof, witnessInput WitnessInput) (Proof, error) {
	var buf bytes.Buffer
	if _, err := proof.WriteRawTo(&buf); err != nil {
		return Proof{}, errors.Wrap(err, "serializing proof")
	}

	p, ok := proof.(*plonk_bn254.Proof)
	if !ok {
		return Proof{}, errors.Errorf("unexpected plonk proof type %T", proof)
	}

	return Proof{
		PublicInputs: [1]string{strconv.Itoa(witnessInput.HintCount())},
		EncodedProof: hex.EncodeToString(p.MarshalSolidity()),
		RawProof:     hex.EncodeToString(buf.Bytes()),
	}, nil
}

func LoadWitnessInput(r io.Reader) (WitnessInput, error) {
	var witnessInput WitnessInput
	if err := json.NewDecoder(r).Decode(&witnessInput); err != nil {
		return WitnessInput{}, errors.Wrap(err, "decoding witness")
	}
	return witnessInput, witnessInput.Validate()
}

func LoadConstraints(r io.Reader) ([]Constraint, error) {
	var constraints []Constraint
	if err := json.NewDecoder(r).Decode(&constraints); err != nil {
		return nil, errors.Wrap(err, "decoding constraints")
	}
	return constraints, nil
}
