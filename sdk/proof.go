// Package sdk defines the continuation proof that leaves the VM and the prover
// boundary that produces it.
package sdk

import (
	"github.com/lido333/openvm/babybear"
	"github.com/lido333/openvm/hints"
	"github.com/lido333/openvm/stark"
)

//go:generate go run ../hintgen --type=UserPublicValuesProof,ContinuationProof --output=hints_gen.go

// Chunk is the number of field elements per leaf of the public values Merkle tree.
const Chunk = hints.DigestSize

// UserPublicValuesProof opens the user public values against the final memory
// root. Proof is the Merkle path, leaf to root.
type UserPublicValuesProof struct {
	Proof              []hints.Digest  `json:"proof"`
	PublicValues       []babybear.Felt `json:"public_values"`
	PublicValuesCommit hints.Digest    `json:"public_values_commit"`
}

// ContinuationProof holds one STARK proof per execution segment.
type ContinuationProof struct {
	PerSegment       []stark.Proof         `json:"per_segment"`
	UserPublicValues UserPublicValuesProof `json:"user_public_values"`
}

// Streams is the VM input: one chunk per value the guest reads.
type Streams struct {
	Input [][]babybear.Felt `json:"input"`
}

// NewStreams copies input into a Streams value.
func NewStreams(input ...[]babybear.Felt) Streams {
	s := Streams{Input: make([][]babybear.Felt, len(input))}
	for i, chunk := range input {
		s.Input[i] = append([]babybear.Felt(nil), chunk...)
	}
	return s
}
