package ir

import "fmt"

// Kind is the memory class of a variable leaf.
type Kind uint8

const (
	KindVar Kind = iota + 1
	KindFelt
	KindExt
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindVar:
		return "var"
	case KindFelt:
		return "felt"
	case KindExt:
		return "ext"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Leaf is one memory word backing a variable.
type Leaf struct {
	Kind Kind
	ID   int
}

// MemVariable is implemented by every value that can be stored in a circuit
// array. Uninit is called on the zero value and allocates fresh storage with
// the same layout.
type MemVariable[T any] interface {
	Leaves() []Leaf
	Uninit(b *Builder) T
}

// Var is a native counter or index.
type Var struct{ id int }

// Felt is a base field element.
type Felt struct{ id int }

// Ext is an extension field element.
type Ext struct{ id int }

func (v Var) ID() int  { return v.id }
func (f Felt) ID() int { return f.id }
func (e Ext) ID() int  { return e.id }

func (v Var) Leaves() []Leaf  { return []Leaf{{KindVar, v.id}} }
func (f Felt) Leaves() []Leaf { return []Leaf{{KindFelt, f.id}} }
func (e Ext) Leaves() []Leaf  { return []Leaf{{KindExt, e.id}} }

func (Var) Uninit(b *Builder) Var   { return Var{b.alloc()} }
func (Felt) Uninit(b *Builder) Felt { return Felt{b.alloc()} }
func (Ext) Uninit(b *Builder) Ext   { return Ext{b.alloc()} }

// Array is a dynamically sized circuit array whose length is known only when
// the program runs. The zero value is not a valid array.
type Array[T MemVariable[T]] struct {
	handle int
	length Var
}

// Len is the variable holding the runtime length.
func (a Array[T]) Len() Var { return a.length }

// IsDyn reports whether a was allocated by DynArray.
func (a Array[T]) IsDyn() bool { return a.handle != 0 }

// MustDyn returns a unchanged. It panics when a was never allocated, which can
// only happen when a read routine hands back storage it did not create.
func (a Array[T]) MustDyn() Array[T] {
	if !a.IsDyn() {
		panic("hint protocol mismatch: expected a dynamic array")
	}
	return a
}

// Leaves lists the length before the handle, matching the wire order of a
// length prefixed list.
func (a Array[T]) Leaves() []Leaf {
	return []Leaf{{KindVar, a.length.id}, {KindArray, a.handle}}
}

func (Array[T]) Uninit(b *Builder) Array[T] {
	return Array[T]{length: Var{b.alloc()}, handle: b.alloc()}
}
