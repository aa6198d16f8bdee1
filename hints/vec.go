package hints

import (
	"github.com/lido333/openvm/babybear"
	"github.com/lido333/openvm/ir"
	"github.com/pkg/errors"
)

type vecCodec[T any, V ir.MemVariable[V]] struct {
	elem Codec[T, V]
}

// Vec encodes a dynamic list as a length chunk followed by the elements.
// Scalar elements share one chunk; any other element keeps its own chunks.
// Vec(Vec(Extension)) and similar nest by composition.
func Vec[T any, V ir.MemVariable[V]](elem Codec[T, V]) Codec[[]T, ir.Array[V]] {
	return vecCodec[T, V]{elem: elem}
}

func (c vecCodec[T, V]) Write(xs []T) (Stream, error) {
	n, err := babybear.FeltFromUsize(len(xs))
	if err != nil {
		return nil, errors.Wrap(err, "list length")
	}
	stream := Stream{{n}}

	if fc, ok := c.elem.(flatCodec[T]); ok {
		if len(xs) == 0 {
			return stream, nil
		}
		var chunk []babybear.Felt
		for i, x := range xs {
			scalars, err := fc.flat(x)
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
			chunk = append(chunk, scalars...)
		}
		return append(stream, chunk), nil
	}

	for i, x := range xs {
		s, err := c.elem.Write(x)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		stream = append(stream, s...)
	}
	return stream, nil
}

func (c vecCodec[T, V]) Read(b *ir.Builder) ir.Array[V] {
	n := b.HintVar()
	arr := ir.DynArray[V](b, n)
	b.Range(b.ConstVar(0), n).ForEach(func(i ir.Var, b *ir.Builder) {
		ir.Set(b, arr, i, c.elem.Read(b))
	})
	return arr
}
