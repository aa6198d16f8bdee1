// Package codectest holds records whose codecs are produced by hintgen, so the
// generated code itself is under test.
package codectest

//go:generate go run ../../hintgen --type=Triple,Nested --output=hints_gen.go

type Triple struct {
	A int `json:"a"`
	B int `json:"b"`
	C int `json:"c"`
}

type Nested struct {
	First   Triple   `json:"first"`
	Triples []Triple `json:"triples"`
}
