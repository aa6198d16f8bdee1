package stark

import (
	"github.com/lido333/openvm/babybear"
	"github.com/lido333/openvm/hints"
)

// PcsProof is a two-adic FRI opening proof. QueryOpenings has one list of
// batch openings per query.
type PcsProof struct {
	FriProof      FriProof         `json:"fri_proof"`
	QueryOpenings [][]BatchOpening `json:"query_openings"`
}

type FriProof struct {
	CommitPhaseCommits []Commitment  `json:"commit_phase_commits"`
	QueryProofs        []QueryProof  `json:"query_proofs"`
	FinalPoly          babybear.Ext  `json:"final_poly"`
	PowWitness         babybear.Felt `json:"pow_witness"`
}

type QueryProof struct {
	CommitPhaseOpenings []CommitPhaseProofStep `json:"commit_phase_openings"`
}

// CommitPhaseProofStep opens one folding round: the sibling evaluation and its
// Merkle path.
type CommitPhaseProofStep struct {
	SiblingValue babybear.Ext   `json:"sibling_value"`
	OpeningProof []hints.Digest `json:"opening_proof"`
}

type BatchOpening struct {
	OpenedValues [][]babybear.Felt `json:"opened_values"`
	OpeningProof []hints.Digest    `json:"opening_proof"`
}
