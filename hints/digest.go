package hints

import (
	"github.com/lido333/openvm/babybear"
	"github.com/lido333/openvm/ir"
)

// DigestSize is the width of a Poseidon2 BabyBear hash output.
const DigestSize = 8

// Digest is a commitment root. It is written without a length prefix.
type Digest [DigestSize]babybear.Felt

type DigestVariable [DigestSize]ir.Felt

func (d DigestVariable) Leaves() []ir.Leaf {
	leaves := make([]ir.Leaf, 0, DigestSize)
	for _, f := range d {
		leaves = append(leaves, f.Leaves()...)
	}
	return leaves
}

func (DigestVariable) Uninit(b *ir.Builder) DigestVariable {
	var d DigestVariable
	for i := range d {
		d[i] = d[i].Uninit(b)
	}
	return d
}

var DigestCodec Codec[Digest, DigestVariable] = digestCodec{}

type digestCodec struct{}

func (digestCodec) Write(d Digest) (Stream, error) {
	chunk := make([]babybear.Felt, DigestSize)
	copy(chunk, d[:])
	return Stream{chunk}, nil
}

func (digestCodec) Read(b *ir.Builder) DigestVariable {
	var d DigestVariable
	for i := range d {
		d[i] = b.HintFelt()
	}
	return d
}
