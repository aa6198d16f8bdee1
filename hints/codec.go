// Package hints serializes host proof values into the scalar stream a recursive
// verifier reads, and records the matching circuit reads.
//
// A Codec pairs the two sides. Write flattens a value into chunks of base field
// elements; Read issues the same sequence of reads against an ir.Builder. The
// decoder never sees chunk boundaries, so the only contract is that Read
// consumes exactly the scalars Write produced, in order.
package hints

import (
	"github.com/lido333/openvm/babybear"
	"github.com/lido333/openvm/ir"
	"github.com/pkg/errors"
)

// ErrRange is returned when a usize cannot be embedded in the base field.
var ErrRange = babybear.ErrOutOfRange

type Codec[T any, V any] interface {
	Write(v T) (Stream, error)
	Read(b *ir.Builder) V
}

// flatCodec is implemented by single-element codecs whose output is one
// fixed-width chunk. Vec groups such elements into a single chunk.
type flatCodec[T any] interface {
	flat(v T) ([]babybear.Felt, error)
}

// Writer accumulates field streams for a record and keeps the first error.
type Writer struct {
	stream Stream
	err    error
}

func NewWriter() *Writer {
	return &Writer{}
}

// WriteField appends the encoding of v unless an earlier field failed.
func WriteField[T, V any](w *Writer, name string, c Codec[T, V], v T) {
	if w.err != nil {
		return
	}
	s, err := c.Write(v)
	if err != nil {
		w.err = errors.Wrap(err, name)
		return
	}
	w.stream = append(w.stream, s...)
}

// Stream returns the accumulated chunks, or the first error.
func (w *Writer) Stream() (Stream, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.stream, nil
}
