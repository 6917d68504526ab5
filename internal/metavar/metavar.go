// Package metavar models the compile-time parameters of the interpreter's
// function templates and materializes their legal value combinations.
package metavar

import (
	"fmt"

	"pochivm/internal/jitlink"
)

// Kind is the tag of a meta-var's value domain.
type Kind uint8

const (
	// PrimitiveType ranges over the fixed primitive numeric type list.
	PrimitiveType Kind = iota
	// Bool ranges over {false, true}.
	Bool
	// Enum ranges over the enumerators of a named, externally registered enum.
	Enum
)

func (k Kind) String() string {
	switch k {
	case PrimitiveType:
		return "PrimitiveType"
	case Bool:
		return "Bool"
	case Enum:
		return "Enum"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// PrimitiveTypes is the value domain of PrimitiveType parameters, in
// canonical order. A primitive value in an instance tuple is an index into
// this list. The order is a binary contract with the interpreter runtime.
var PrimitiveTypes = []string{
	"bool",
	"i8", "i16", "i32", "i64",
	"u8", "u16", "u32", "u64",
	"f32", "f64",
}

// Param is one declared meta-var of a spec.
type Param struct {
	Kind Kind
	Name string
	// EnumName holds the reflective type-name capture of an Enum param;
	// empty otherwise.
	EnumName string
}

// Spec is an ordered meta-var list. Order is significant: instance value
// tuples correspond positionally.
type Spec struct {
	Params []Param
}

// Instance is one materialized assignment of values to a spec's meta-vars,
// paired with the address of its compiled body. SymbolName stays empty
// until the matcher fills it in.
type Instance struct {
	Values     []uint64
	FnAddr     jitlink.Addr
	SymbolName string
}

// MaterializedList is what the enumeration code hands to the registration
// hook: the spec plus its surviving instances in enumeration order.
type MaterializedList struct {
	Spec      Spec
	Instances []*Instance
}
