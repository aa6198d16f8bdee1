package babybear

import (
	"encoding/json"
	"math/big"
	"strconv"

	bbfield "github.com/consensys/gnark-crypto/field/babybear"
	"github.com/pkg/errors"
)

// Modulus is the BabyBear prime 2^31 - 2^27 + 1.
const Modulus = 2013265921

// ExtDegree is the degree of the binomial extension used for challenges.
const ExtDegree = 4

// W is the non-residue defining the extension: x^4 = W.
const W = 11

// ErrOutOfRange is returned when an integer has no canonical BabyBear embedding.
var ErrOutOfRange = errors.New("value out of babybear range")

// Felt is a canonical BabyBear element.
type Felt struct {
	e bbfield.Element
}

func NewFelt(v uint64) Felt {
	var f Felt
	f.e.SetUint64(v)
	return f
}

// FeltFromUsize embeds a counter. Values outside [0, Modulus) are rejected rather
// than reduced.
func FeltFromUsize(v int) (Felt, error) {
	if v < 0 || uint64(v) >= Modulus {
		return Felt{}, errors.Wrapf(ErrOutOfRange, "usize %d", v)
	}
	return NewFelt(uint64(v)), nil
}

// ParseFelt parses a decimal string. The value must already be canonical.
func ParseFelt(s string) (Felt, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Felt{}, errors.Wrapf(err, "parsing felt %q", s)
	}
	if v >= Modulus {
		return Felt{}, errors.Wrapf(ErrOutOfRange, "felt %d", v)
	}
	return NewFelt(v), nil
}

func (f Felt) Uint64() uint64 {
	var b big.Int
	f.e.BigInt(&b)
	return b.Uint64()
}

func (f Felt) Add(g Felt) Felt {
	var r Felt
	r.e.Add(&f.e, &g.e)
	return r
}

func (f Felt) Sub(g Felt) Felt {
	var r Felt
	r.e.Sub(&f.e, &g.e)
	return r
}

func (f Felt) Mul(g Felt) Felt {
	var r Felt
	r.e.Mul(&f.e, &g.e)
	return r
}

func (f Felt) Neg() Felt {
	var r Felt
	r.e.Neg(&f.e)
	return r
}

func (f Felt) IsZero() bool {
	return f.e.IsZero()
}

func (f Felt) Equal(g Felt) bool {
	return f.e.Equal(&g.e)
}

func (f Felt) String() string {
	return strconv.FormatUint(f.Uint64(), 10)
}

func (f Felt) MarshalJSON() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalJSON accepts a JSON number or a decimal string.
func (f *Felt) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "decoding felt")
	}
	v, err := ParseFelt(n.String())
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Ext is an element of BabyBear[x]/(x^4 - W), stored constant term first.
type Ext [ExtDegree]Felt

func ExtFromBase(f Felt) Ext {
	return Ext{f}
}

func ExtFromUint64(v uint64) Ext {
	return Ext{NewFelt(v)}
}

// ExtFromCoeffs builds an element from exactly ExtDegree coefficients.
func ExtFromCoeffs(coeffs []Felt) (Ext, error) {
	var e Ext
	if len(coeffs) != ExtDegree {
		return e, errors.Errorf("extension element needs %d coefficients, got %d", ExtDegree, len(coeffs))
	}
	copy(e[:], coeffs)
	return e, nil
}

// Coeffs returns the canonical coefficient vector.
func (e Ext) Coeffs() []Felt {
	out := make([]Felt, ExtDegree)
	copy(out, e[:])
	return out
}

func (e Ext) Add(o Ext) Ext {
	var r Ext
	for i := range r {
		r[i] = e[i].Add(o[i])
	}
	return r
}

func (e Ext) Sub(o Ext) Ext {
	var r Ext
	for i := range r {
		r[i] = e[i].Sub(o[i])
	}
	return r
}

func (e Ext) Mul(o Ext) Ext {
	w := NewFelt(W)
	var r Ext
	for i := 0; i < ExtDegree; i++ {
		for j := 0; j < ExtDegree; j++ {
			p := e[i].Mul(o[j])
			if i+j >= ExtDegree {
				r[i+j-ExtDegree] = r[i+j-ExtDegree].Add(p.Mul(w))
			} else {
				r[i+j] = r[i+j].Add(p)
			}
		}
	}
	return r
}

func (e Ext) MulBase(f Felt) Ext {
	var r Ext
	for i := range r {
		r[i] = e[i].Mul(f)
	}
	return r
}

func (e Ext) Equal(o Ext) bool {
	for i := range e {
		if !e[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

func (e Ext) String() string {
	b, _ := e.MarshalJSON()
	return string(b)
}

func (e Ext) MarshalJSON() ([]byte, error) {
	return json.Marshal([ExtDegree]Felt(e))
}

func (e *Ext) UnmarshalJSON(data []byte) error {
	var coeffs []Felt
	if err := json.Unmarshal(data, &coeffs); err != nil {
		return errors.Wrap(err, "decoding extension element")
	}
	v, err := ExtFromCoeffs(coeffs)
	if err != nil {
		return err
	}
	*e = v
	return nil
}
