package babybear

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
)

type testExtCircuit struct {
	A, B        ExtensionVariable
	Product     ExtensionVariable
	Difference  ExtensionVariable
	ProductBase Variable
}

func (circuit *testExtCircuit) Define(api frontend.API) error {
	chip := NewChip(api)
	chip.AssertIsEqualE(chip.MulE(circuit.A, circuit.B), circuit.Product)
	chip.AssertIsEqualE(chip.SubE(circuit.A, circuit.B), circuit.Difference)
	chip.AssertIsEqualF(chip.MulF(circuit.A.Value[3], circuit.B.Value[3]), circuit.ProductBase)
	return nil
}

func extStrings(e Ext) []string {
	out := make([]string, ExtDegree)
	for i, c := range e {
		out[i] = c.String()
	}
	return out
}

func TestChipMatchesHostField(t *testing.T) {
	assert := test.NewAssert(t)

	a := Ext{NewFelt(Modulus - 1), NewFelt(1 << 30), NewFelt(3), NewFelt(Modulus - 7)}
	b := Ext{NewFelt(5), NewFelt(Modulus - 2), NewFelt(1 << 29), NewFelt(123456789)}

	values := testExtCircuit{
		A:           NewE(extStrings(a)),
		B:           NewE(extStrings(b)),
		Product:     NewE(extStrings(a.Mul(b))),
		Difference:  NewE(extStrings(a.Sub(b))),
		ProductBase: NewF(a[3].Mul(b[3]).String()),
	}
	circuit, witness := values, values
	assert.ProverSucceeded(&circuit, &witness, test.WithCurves(ecc.BN254), test.WithBackends(backend.PLONK))

	bad := values
	bad.Product = NewE(extStrings(a.Add(b)))
	circuit, witness = bad, bad
	assert.ProverFailed(&circuit, &witness, test.WithCurves(ecc.BN254), test.WithBackends(backend.PLONK))
}
