package stark

import (
	"github.com/lido333/openvm/babybear"
	"github.com/lido333/openvm/hints"
	"github.com/lido333/openvm/ir"
	"github.com/pkg/errors"
)

// Commitment is a Merkle root as the inner prover emits it: DigestSize
// little-endian u32 words, each a canonical BabyBear value.
type Commitment [hints.DigestSize]uint32

type CommitmentVariable = hints.DigestVariable

// Digest converts c into field elements.
func (c Commitment) Digest() (hints.Digest, error) {
	var d hints.Digest
	for i, w := range c {
		if uint64(w) >= babybear.Modulus {
			return d, errors.Wrapf(babybear.ErrOutOfRange, "commitment word %d: %d", i, w)
		}
		d[i] = babybear.NewFelt(uint64(w))
	}
	return d, nil
}

// CommitmentFromDigest is the inverse of Commitment.Digest.
func CommitmentFromDigest(d hints.Digest) Commitment {
	var c Commitment
	for i, f := range d {
		c[i] = uint32(f.Uint64())
	}
	return c
}

// CommitmentCodec converts to a digest and delegates to hints.DigestCodec.
var CommitmentCodec hints.Codec[Commitment, CommitmentVariable] = commitmentCodec{}

type commitmentCodec struct{}

func (commitmentCodec) Write(c Commitment) (hints.Stream, error) {
	d, err := c.Digest()
	if err != nil {
		return nil, err
	}
	return hints.DigestCodec.Write(d)
}

func (commitmentCodec) Read(b *ir.Builder) CommitmentVariable {
	return hints.DigestCodec.Read(b)
}
