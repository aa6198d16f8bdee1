package babybear

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeltArithmeticMatchesBigInt(t *testing.T) {
	p := big.NewInt(Modulus)
	values := []uint64{0, 1, 2, 11, 1 << 27, Modulus - 2, Modulus - 1}
	for _, a := range values {
		for _, b := range values {
			fa, fb := NewFelt(a), NewFelt(b)
			ba, bb := new(big.Int).SetUint64(a), new(big.Int).SetUint64(b)

			sum := new(big.Int).Add(ba, bb)
			require.Equal(t, sum.Mod(sum, p).Uint64(), fa.Add(fb).Uint64())

			diff := new(big.Int).Sub(ba, bb)
			require.Equal(t, diff.Mod(diff, p).Uint64(), fa.Sub(fb).Uint64())

			prod := new(big.Int).Mul(ba, bb)
			require.Equal(t, prod.Mod(prod, p).Uint64(), fa.Mul(fb).Uint64())
		}
	}
}

func TestFeltFromUsize(t *testing.T) {
	f, err := FeltFromUsize(Modulus - 1)
	require.NoError(t, err)
	require.Equal(t, uint64(Modulus-1), f.Uint64())

	_, err = FeltFromUsize(Modulus)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = FeltFromUsize(-1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestExtMul(t *testing.T) {
	a := Ext{NewFelt(1), NewFelt(2), NewFelt(3), NewFelt(4)}
	b := Ext{NewFelt(5), NewFelt(6), NewFelt(7), NewFelt(8)}
	want := Ext{NewFelt(676), NewFelt(588), NewFelt(386), NewFelt(60)}
	require.True(t, want.Equal(a.Mul(b)), "got %s", a.Mul(b))

	// x * x^3 = x^4 = W
	x := Ext{{}, NewFelt(1)}
	x3 := Ext{{}, {}, {}, NewFelt(1)}
	require.True(t, ExtFromUint64(W).Equal(x.Mul(x3)))
}

func TestFeltJSON(t *testing.T) {
	var felts []Felt
	require.NoError(t, json.Unmarshal([]byte(`[7, "2013265920"]`), &felts))
	require.Equal(t, uint64(7), felts[0].Uint64())
	require.Equal(t, uint64(Modulus-1), felts[1].Uint64())

	var f Felt
	require.ErrorIs(t, json.Unmarshal([]byte(`2013265921`), &f), ErrOutOfRange)

	var e Ext
	require.Error(t, json.Unmarshal([]byte(`[1, 2, 3]`), &e))

	out, err := json.Marshal(Ext{NewFelt(1), NewFelt(2)})
	require.NoError(t, err)
	require.JSONEq(t, `[1, 2, 0, 0]`, string(out))
}
