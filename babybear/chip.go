package babybear

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/rangecheck"
)

var (
	modulus      = new(big.Int).SetUint64(Modulus)
	modulusSub1  = new(big.Int).SetUint64(Modulus - 1)
	witnessBound = new(big.Int).Lsh(big.NewInt(1), 32)
	limbShift    = uint64(1) << 27
)

func init() {
	// Hints are looked up by name by the solver, so they stay exported.
	solver.RegisterHint(ReduceHint)
	solver.RegisterHint(SplitLimbsHint)
}

// Variable is a BabyBear element living in a larger native field. UpperBound
// tracks how far the value may have grown since its last reduction.
type Variable struct {
	Value      frontend.Variable
	UpperBound *big.Int
}

type ExtensionVariable struct {
	Value [ExtDegree]Variable
}

type Chip struct {
	api          frontend.API
	RangeChecker frontend.Rangechecker
	binary       bool
}

type ChipOption func(*Chip)

// WithBinaryDecomposition range checks through api.ToBinary instead of the
// lookup based checker. Groth16 circuits without commitment support need it.
func WithBinaryDecomposition() ChipOption {
	return func(c *Chip) { c.binary = true }
}

func NewChip(api frontend.API, opts ...ChipOption) *Chip {
	c := &Chip{api: api}
	for _, opt := range opts {
		opt(c)
	}
	if !c.binary {
		c.RangeChecker = rangecheck.New(api)
	}
	return c
}

// Check asserts v fits in bits bits.
func (c *Chip) Check(v frontend.Variable, bits int) {
	if c.binary {
		c.api.ToBinary(v, bits)
		return
	}
	c.RangeChecker.Check(v, bits)
}

func Zero() Variable {
	return Variable{
		Value:      frontend.Variable("0"),
		UpperBound: new(big.Int),
	}
}

func NewFConst(value string) Variable {
	bound, ok := new(big.Int).SetString(value, 10)
	if !ok {
		panic(fmt.Sprintf("invalid felt constant %q", value))
	}
	return Variable{
		Value:      frontend.Variable(value),
		UpperBound: bound,
	}
}

// NewF wraps a witness value that has not been range checked yet.
func NewF(value string) Variable {
	return Variable{
		Value:      frontend.Variable(value),
		UpperBound: new(big.Int).Set(witnessBound),
	}
}

func NewE(value []string) ExtensionVariable {
	var e ExtensionVariable
	for i := range e.Value {
		e.Value[i] = NewF(value[i])
	}
	return e
}

func NewEConst(value []string) ExtensionVariable {
	var e ExtensionVariable
	for i := range e.Value {
		e.Value[i] = NewFConst(value[i])
	}
	return e
}

func (c *Chip) AddF(a, b Variable, forceReduce ...bool) Variable {
	result := Variable{
		Value:      c.api.Add(a.Value, b.Value),
		UpperBound: new(big.Int).Add(a.UpperBound, b.UpperBound),
	}
	if len(forceReduce) > 0 && !forceReduce[0] {
		return result
	}
	return c.reduceFast(result)
}

func (c *Chip) SubF(a, b Variable) Variable {
	return c.AddF(a, c.negF(b))
}

func (c *Chip) MulF(a, b Variable, forceReduce ...bool) Variable {
	result := Variable{
		Value:      c.api.Mul(a.Value, b.Value),
		UpperBound: new(big.Int).Mul(a.UpperBound, b.UpperBound),
	}
	if len(forceReduce) > 0 && !forceReduce[0] {
		return result
	}
	return c.reduceFast(result)
}

func (c *Chip) MulFConst(a Variable, b int, forceReduce ...bool) Variable {
	result := Variable{
		Value:      c.api.Mul(a.Value, b),
		UpperBound: new(big.Int).Mul(a.UpperBound, new(big.Int).SetUint64(uint64(b))),
	}
	if len(forceReduce) > 0 && !forceReduce[0] {
		return result
	}
	return c.reduceFast(result)
}

func (c *Chip) negF(a Variable) Variable {
	multiple := new(big.Int).Div(a.UpperBound, modulus)
	multiple.Add(multiple, big.NewInt(1))
	lifted := multiple.Mul(multiple, modulus)

	return c.reduceFast(Variable{
		Value:      c.api.Sub(lifted, a.Value),
		UpperBound: lifted,
	})
}

func (c *Chip) AssertIsEqualF(a, b Variable) {
	a2 := c.ReduceSlow(a)
	b2 := c.ReduceSlow(b)
	c.api.AssertIsEqual(a2.Value, b2.Value)
}

func (c *Chip) AssertIsEqualE(a, b ExtensionVariable) {
	for i := range a.Value {
		c.AssertIsEqualF(a.Value[i], b.Value[i])
	}
}

func (c *Chip) AddE(a, b ExtensionVariable) ExtensionVariable {
	var r ExtensionVariable
	for i := range r.Value {
		r.Value[i] = c.AddF(a.Value[i], b.Value[i])
	}
	return r
}

func (c *Chip) SubE(a, b ExtensionVariable) ExtensionVariable {
	var r ExtensionVariable
	for i := range r.Value {
		r.Value[i] = c.SubF(a.Value[i], b.Value[i])
	}
	return r
}

// MulE multiplies in BabyBear[x]/(x^4 - 11).
func (c *Chip) MulE(a, b ExtensionVariable) ExtensionVariable {
	acc := [ExtDegree]Variable{Zero(), Zero(), Zero(), Zero()}

	for i := 0; i < ExtDegree; i++ {
		for j := 0; j < ExtDegree; j++ {
			term := c.MulF(a.Value[i], b.Value[j], false)
			if i+j >= ExtDegree {
				acc[i+j-ExtDegree] = c.AddF(acc[i+j-ExtDegree], c.MulFConst(term, W, false), false)
			} else {
				acc[i+j] = c.AddF(acc[i+j], term, false)
			}
		}
	}
	for i := range acc {
		acc[i] = c.reduceFast(acc[i])
	}
	return ExtensionVariable{Value: acc}
}

func (c *Chip) ReduceE(x ExtensionVariable) ExtensionVariable {
	for i := range x.Value {
		x.Value[i] = c.ReduceSlow(x.Value[i])
	}
	return x
}

func (c *Chip) reduceFast(x Variable) Variable {
	if x.UpperBound.BitLen() >= 120 {
		return Variable{
			Value:      c.reduceWithMaxBits(x.Value, uint64(x.UpperBound.BitLen())),
			UpperBound: modulusSub1,
		}
	}
	return x
}

func (c *Chip) ReduceSlow(x Variable) Variable {
	if x.UpperBound.Cmp(modulus) == -1 {
		return x
	}
	return Variable{
		Value:      c.reduceWithMaxBits(x.Value, uint64(x.UpperBound.BitLen())),
		UpperBound: modulusSub1,
	}
}

func (c *Chip) reduceWithMaxBits(x frontend.Variable, maxNbBits uint64) frontend.Variable {
	if maxNbBits <= 30 {
		return x
	}
	result, err := c.api.Compiler().NewHint(ReduceHint, 2, x)
	if err != nil {
		panic(err)
	}

	quotient := result[0]
	remainder := result[1]
	c.Check(quotient, int(maxNbBits-30))

	// remainder < p is shown by splitting it into a 27 bit and a 4 bit limb.
	limbs, err := c.api.Compiler().NewHint(SplitLimbsHint, 2, remainder)
	if err != nil {
		panic(err)
	}
	lowLimb := limbs[0]
	highLimb := limbs[1]

	c.api.AssertIsEqual(
		c.api.Add(c.api.Mul(highLimb, limbShift), lowLimb),
		remainder,
	)
	c.Check(highLimb, 4)
	c.Check(lowLimb, 27)

	// With the high limb saturated the low limb must vanish.
	saturated := c.api.IsZero(c.api.Sub(highLimb, 15))
	c.api.AssertIsEqual(c.api.Mul(saturated, lowLimb), 0)

	c.api.AssertIsEqual(x, c.api.Add(c.api.Mul(quotient, modulus), remainder))

	return remainder
}

// ReduceHint returns the quotient and remainder of its input by the BabyBear modulus.
func ReduceHint(_ *big.Int, inputs []*big.Int, results []*big.Int) error {
	if len(inputs) != 1 {
		return fmt.Errorf("ReduceHint expects 1 input operand, got %d", len(inputs))
	}
	results[0].Div(inputs[0], modulus)
	results[1].Rem(inputs[0], modulus)
	return nil
}

// SplitLimbsHint splits a canonical element into its low 27 bits and high 4 bits.
func SplitLimbsHint(_ *big.Int, inputs []*big.Int, results []*big.Int) error {
	if len(inputs) != 1 {
		return fmt.Errorf("SplitLimbsHint expects 1 input operand, got %d", len(inputs))
	}
	input := inputs[0]
	if input.Cmp(modulus) >= 0 {
		return fmt.Errorf("input is not in the field")
	}
	shift := new(big.Int).SetUint64(limbShift)
	results[0].Rem(input, shift)
	results[1].Quo(input, shift)
	return nil
}
