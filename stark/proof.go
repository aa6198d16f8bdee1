// Package stark holds the host-side shape of a STARK proof and the codecs that
// move it into a recursive verifier's hint stream. Field order is wire order.
package stark

import (
	"github.com/lido333/openvm/babybear"
)

//go:generate go run ../hintgen --type=TraceWidth,Commitments,AdjacentOpenedValues,OpenedValues,OpeningProof,Proof,PcsProof,FriProof,QueryProof,CommitPhaseProofStep,BatchOpening --output=hints_gen.go

// TraceWidth describes an AIR's column layout. Preprocessed holds zero or one
// width.
type TraceWidth struct {
	Preprocessed    []int `json:"preprocessed"`
	PartitionedMain []int `json:"partitioned_main"`
	AfterChallenge  []int `json:"after_challenge"`
}

type Commitments struct {
	MainTrace      []Commitment `json:"main_trace"`
	AfterChallenge []Commitment `json:"after_challenge"`
	Quotient       Commitment   `json:"quotient"`
}

// AdjacentOpenedValues are a trace's openings at a point and its successor.
type AdjacentOpenedValues struct {
	Local []babybear.Ext `json:"local"`
	Next  []babybear.Ext `json:"next"`
}

type OpenedValues struct {
	Preprocessed []AdjacentOpenedValues `json:"preprocessed"`
	// Main has one list per commitment round.
	Main           [][]AdjacentOpenedValues `json:"main"`
	Quotient       [][]babybear.Ext         `json:"quotient"`
	AfterChallenge [][]AdjacentOpenedValues `json:"after_challenge"`
}

type OpeningProof struct {
	Proof  PcsProof     `json:"proof"`
	Values OpenedValues `json:"values"`
}

type Proof struct {
	Commitments                 Commitments        `json:"commitments"`
	Opening                     OpeningProof       `json:"opening"`
	ExposedValuesAfterChallenge [][][]babybear.Ext `json:"exposed_values_after_challenge"`
}

// NewTraceWidth builds a TraceWidth, encoding an absent preprocessed width as
// an empty list.
func NewTraceWidth(preprocessed *int, partitionedMain, afterChallenge []int) TraceWidth {
	tw := TraceWidth{
		Preprocessed:    []int{},
		PartitionedMain: partitionedMain,
		AfterChallenge:  afterChallenge,
	}
	if preprocessed != nil {
		tw.Preprocessed = []int{*preprocessed}
	}
	return tw
}

// PreprocessedWidth reports the preprocessed width, if any.
func (tw TraceWidth) PreprocessedWidth() (int, bool) {
	if len(tw.Preprocessed) == 0 {
		return 0, false
	}
	return tw.Preprocessed[0], true
}

// MainWidth is the sum of the partitioned main widths.
func (tw TraceWidth) MainWidth() int {
	total := 0
	for _, w := range tw.PartitionedMain {
		total += w
	}
	return total
}
