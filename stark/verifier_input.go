package stark

import (
	"github.com/lido333/openvm/babybear"
	"github.com/lido333/openvm/hints"
	"github.com/lido333/openvm/ir"
	"github.com/pkg/errors"
)

// VerifierInput is everything the recursive verifier needs about one inner
// proof.
type VerifierInput struct {
	Proof           Proof             `json:"proof"`
	LogDegreePerAir []int             `json:"log_degree_per_air"`
	PublicValues    [][]babybear.Felt `json:"public_values"`
}

// Validate checks that the per-AIR lists agree in length.
func (vi VerifierInput) Validate() error {
	if len(vi.PublicValues) != len(vi.LogDegreePerAir) {
		return errors.Errorf("%d public value lists for %d airs", len(vi.PublicValues), len(vi.LogDegreePerAir))
	}
	return nil
}

type VerifierInputVariable struct {
	Proof           ProofVariable
	LogDegreePerAir ir.Array[ir.Var]
	PublicValues    ir.Array[ir.Array[ir.Felt]]
}

func (v VerifierInputVariable) Leaves() []ir.Leaf {
	var leaves []ir.Leaf
	leaves = append(leaves, v.Proof.Leaves()...)
	leaves = append(leaves, v.LogDegreePerAir.Leaves()...)
	leaves = append(leaves, v.PublicValues.Leaves()...)
	return leaves
}

func (VerifierInputVariable) Uninit(b *ir.Builder) VerifierInputVariable {
	var v VerifierInputVariable
	v.Proof = v.Proof.Uninit(b)
	v.LogDegreePerAir = v.LogDegreePerAir.Uninit(b)
	v.PublicValues = v.PublicValues.Uninit(b)
	return v
}

var VerifierInputCodec hints.Codec[VerifierInput, VerifierInputVariable] = verifierInputCodec{}

type verifierInputCodec struct{}

func (verifierInputCodec) Write(x VerifierInput) (hints.Stream, error) {
	w := hints.NewWriter()
	hints.WriteField(w, "proof", ProofCodec, x.Proof)
	hints.WriteField(w, "log_degree_per_air", hints.Vec(hints.Usize), x.LogDegreePerAir)
	hints.WriteField(w, "public_values", hints.Vec(hints.Vec(hints.Base)), x.PublicValues)
	return w.Stream()
}

func (verifierInputCodec) Read(b *ir.Builder) VerifierInputVariable {
	var v VerifierInputVariable
	v.Proof = ProofCodec.Read(b)
	// The verifier indexes log degrees dynamically.
	v.LogDegreePerAir = hints.Vec(hints.Usize).Read(b).MustDyn()
	v.PublicValues = hints.Vec(hints.Vec(hints.Base)).Read(b)
	return v
}
