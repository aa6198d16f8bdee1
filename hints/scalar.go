package hints

import (
	"github.com/lido333/openvm/babybear"
	"github.com/lido333/openvm/ir"
)

var (
	// Usize carries counts and widths as native circuit variables.
	Usize Codec[int, ir.Var] = usizeCodec{}

	Base Codec[babybear.Felt, ir.Felt] = baseCodec{}

	// Extension writes the ExtDegree coefficients, constant term first.
	Extension Codec[babybear.Ext, ir.Ext] = extensionCodec{}
)

type usizeCodec struct{}

func (usizeCodec) flat(v int) ([]babybear.Felt, error) {
	f, err := babybear.FeltFromUsize(v)
	if err != nil {
		return nil, err
	}
	return []babybear.Felt{f}, nil
}

func (c usizeCodec) Write(v int) (Stream, error) {
	return single(c.flat(v))
}

func (usizeCodec) Read(b *ir.Builder) ir.Var {
	return b.HintVar()
}

type baseCodec struct{}

func (baseCodec) flat(v babybear.Felt) ([]babybear.Felt, error) {
	return []babybear.Felt{v}, nil
}

func (c baseCodec) Write(v babybear.Felt) (Stream, error) {
	return single(c.flat(v))
}

func (baseCodec) Read(b *ir.Builder) ir.Felt {
	return b.HintFelt()
}

type extensionCodec struct{}

func (extensionCodec) flat(v babybear.Ext) ([]babybear.Felt, error) {
	return v.Coeffs(), nil
}

func (c extensionCodec) Write(v babybear.Ext) (Stream, error) {
	return single(c.flat(v))
}

func (extensionCodec) Read(b *ir.Builder) ir.Ext {
	return b.HintExt()
}

func single(chunk []babybear.Felt, err error) (Stream, error) {
	if err != nil {
		return nil, err
	}
	return Stream{chunk}, nil
}
