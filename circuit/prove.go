package circuit

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/logger"
	"github.com/consensys/gnark/test/unsafekzg"
	"github.com/pkg/errors"
)

const (
	circuitFile = "plonk_circuit.bin"
	pkFile      = "plonk_pk.bin"
	vkFile      = "plonk_vk.bin"
)

// Artifacts is a compiled hint circuit with its keys.
type Artifacts struct {
	CS constraint.ConstraintSystem
	PK plonk.ProvingKey
	VK plonk.VerifyingKey
}

// Build compiles the constraint trace and runs a development setup. The SRS is
// generated locally and must not be used outside testing.
func Build(witnessInput WitnessInput, constraints []Constraint) (*Artifacts, error) {
	log := logger.Logger()
	start := time.Now()

	c := NewCircuit(witnessInput, constraints)
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, &c)
	if err != nil {
		return nil, errors.Wrap(err, "compiling circuit")
	}
	log.Info().Int("constraints", ccs.GetNbConstraints()).Dur("took", time.Since(start)).Msg("compiled hint circuit")

	srs, srsLagrange, err := unsafekzg.NewSRS(ccs)
	if err != nil {
		return nil, errors.Wrap(err, "generating srs")
	}
	pk, vk, err := plonk.Setup(ccs, srs, srsLagrange)
	if err != nil {
		return nil, errors.Wrap(err, "plonk setup")
	}
	return &Artifacts{CS: ccs, PK: pk, VK: vk}, nil
}

// ProvePlonk builds a fresh circuit for the trace and proves it.
func ProvePlonk(witnessInput WitnessInput, constraints []Constraint) (Proof, error) {
	a, err := Build(witnessInput, constraints)
	if err != nil {
		return Proof{}, err
	}
	return a.Prove(witnessInput)
}

// Prove generates a proof for the assignment and checks it against the
// verifying key before returning.
func (a *Artifacts) Prove(witnessInput WitnessInput) (Proof, error) {
	log := logger.Logger()
	if err := witnessInput.Validate(); err != nil {
		return Proof{}, err
	}

	assignment := NewCircuit(witnessInput, nil)
	witness, err := frontend.NewWitness(&assignment, ecc.BN254.ScalarField())
	if err != nil {
		return Proof{}, errors.Wrap(err, "generating witness")
	}
	publicWitness, err := witness.Public()
	if err != nil {
		return Proof{}, errors.Wrap(err, "extracting public witness")
	}

	start := time.Now()
	proof, err := plonk.Prove(a.CS, a.PK, witness)
	if err != nil {
		return Proof{}, errors.Wrap(err, "proving")
	}
	log.Info().Dur("took", time.Since(start)).Msg("generated plonk proof")

	if err := plonk.Verify(proof, a.VK, publicWitness); err != nil {
		return Proof{}, errors.Wrap(err, "verifying proof")
	}
	return NewPlonkBn254Proof(proof, witnessInput)
}

// WriteTo saves the artifacts under dir.
func (a *Artifacts) WriteTo(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "creating artifact dir")
	}
	targets := []struct {
		name string
		w    io.WriterTo
	}{
		{circuitFile, a.CS},
		{pkFile, a.PK},
		{vkFile, a.VK},
	}
	for _, t := range targets {
		if err := writeFile(filepath.Join(dir, t.name), t.w); err != nil {
			return err
		}
	}
	return nil
}

// ReadArtifacts loads what WriteTo saved.
func ReadArtifacts(dir string) (*Artifacts, error) {
	a := &Artifacts{
		CS: plonk.NewCS(ecc.BN254),
		PK: plonk.NewProvingKey(ecc.BN254),
		VK: plonk.NewVerifyingKey(ecc.BN254),
	}
	if err := readFile(filepath.Join(dir, circuitFile), a.CS.ReadFrom); err != nil {
		return nil, err
	}
	if err := readFile(filepath.Join(dir, pkFile), a.PK.UnsafeReadFrom); err != nil {
		return nil, err
	}
	if err := readFile(filepath.Join(dir, vkFile), a.VK.ReadFrom); err != nil {
		return nil, err
	}
	return a, nil
}

func writeFile(path string, w io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	if _, err := w.WriteTo(bw); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(bw.Flush(), "flushing %s", path)
}

func readFile(path string, read func(io.Reader) (int64, error)) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	if _, err := read(bufio.NewReaderSize(f, 1024*1024)); err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	return nil
}
