package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const source = `package sample

import (
	"github.com/lido333/openvm/babybear"
	"github.com/lido333/openvm/hints"
	"github.com/lido333/openvm/stark"
)

type Widths struct {
	Preprocessed []int ` + "`json:\"preprocessed\"`" + `
	Main, After  int
	skipped      int
}

type Bundle struct {
	Root    hints.Digest
	Values  [][]babybear.Ext
	Proofs  []stark.Proof
	Widths  Widths
	Ignored string ` + "`hint:\"-\"`" + `
	Raw     [8]uint32 ` + "`hint:\"codec=rawCodec,var=hints.DigestVariable\"`" + `
}
`

func generate(t *testing.T, names ...string) string {
	t.Helper()
	g := NewGenerator()
	require.NoError(t, g.ParseSource("sample.go", []byte(source)))
	src, err := g.Generate(names)
	require.NoError(t, err)
	_, err = parser.ParseFile(token.NewFileSet(), "gen.go", src, 0)
	require.NoError(t, err)
	return string(src)
}

// requireOrdered checks that every line appears, in order.
func requireOrdered(t *testing.T, src string, lines ...string) {
	t.Helper()
	rest := src
	for _, l := range lines {
		i := strings.Index(rest, l)
		require.GreaterOrEqual(t, i, 0, "missing or out of order: %s\n%s", l, src)
		rest = rest[i+len(l):]
	}
}

func TestGenerateFieldOrder(t *testing.T) {
	src := generate(t, "Widths")
	require.True(t, strings.HasPrefix(src, "// Code generated by hintgen. DO NOT EDIT."))
	require.NotContains(t, src, "skipped")
	requireOrdered(t, src,
		`hints.WriteField(w, "preprocessed", hints.Vec(hints.Usize), x.Preprocessed)`,
		`hints.WriteField(w, "Main", hints.Usize, x.Main)`,
		`hints.WriteField(w, "After", hints.Usize, x.After)`,
		`v.Preprocessed = hints.Vec(hints.Usize).Read(b)`,
		`v.Main = hints.Usize.Read(b)`,
		`v.After = hints.Usize.Read(b)`,
	)
	require.NotContains(t, src, `"github.com/lido333/openvm/stark"`)
}

func TestGenerateTypeMapping(t *testing.T) {
	src := generate(t, "Bundle", "Widths")
	requireOrdered(t, src,
		`"github.com/lido333/openvm/hints"`,
		`"github.com/lido333/openvm/ir"`,
		`"github.com/lido333/openvm/stark"`,
		"type BundleVariable struct",
		"hints.DigestVariable",
		"ir.Array[ir.Array[ir.Ext]]",
		"ir.Array[stark.ProofVariable]",
		"WidthsVariable",
		`hints.WriteField(w, "Raw", rawCodec, x.Raw)`,
		"type WidthsVariable struct",
	)
	require.NotContains(t, src, "Ignored")
}

func TestGenerateErrors(t *testing.T) {
	g := NewGenerator()
	require.NoError(t, g.ParseSource("sample.go", []byte(source)))
	_, err := g.Generate([]string{"Missing"})
	require.ErrorContains(t, err, "not found")

	g = NewGenerator()
	require.NoError(t, g.ParseSource("bad.go", []byte("package bad\ntype Bad struct{ Fixed [4]int }\n")))
	_, err = g.Generate([]string{"Bad"})
	require.ErrorContains(t, err, "fixed-size arrays")

	// Overriding only one side still needs the field type mapped.
	g = NewGenerator()
	require.NoError(t, g.ParseSource("half.go", []byte("package half\ntype Half struct{ Fixed [4]int `hint:\"codec=fixedCodec\"` }\n")))
	_, err = g.Generate([]string{"Half"})
	require.ErrorContains(t, err, "Half.Fixed")
}

func TestGenerateFixedArrayOverride(t *testing.T) {
	src := generate(t, "Bundle")
	requireOrdered(t, src,
		"v.Raw = v.Raw.Uninit(b)",
		`hints.WriteField(w, "Raw", rawCodec, x.Raw)`,
		"v.Raw = rawCodec.Read(b)",
	)
}

func TestCheckedInCodecsAreFresh(t *testing.T) {
	for _, pkg := range []struct {
		dir   string
		types string
	}{
		{"../internal/codectest", "Triple,Nested"},
		{"../stark", "TraceWidth,Commitments,AdjacentOpenedValues,OpenedValues,OpeningProof,Proof,PcsProof,FriProof,QueryProof,CommitPhaseProofStep,BatchOpening"},
		{"../sdk", "UserPublicValuesProof,ContinuationProof"},
	} {
		g := NewGenerator()
		require.NoError(t, g.ParseDir(pkg.dir, "hints_gen.go"))
		src, err := g.Generate(strings.Split(pkg.types, ","))
		require.NoError(t, err)
		want, err := os.ReadFile(filepath.Join(pkg.dir, "hints_gen.go"))
		require.NoError(t, err)
		require.Equal(t, string(want), string(src), "%s/hints_gen.go is stale", pkg.dir)
	}
}
