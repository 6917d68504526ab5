// Package irload parses the boilerplate IR module and inventories its
// function symbols. Only symbols with qualifying linkage participate in
// address matching; everything else (internal, private, ...) is invisible
// to the rest of the pipeline.
package irload

import (
	"github.com/llir/llvm/asm"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"

	"pochivm/internal/diag"
)

// SymbolTable holds the classified function symbols of one IR module.
// Every definition is also a declaration; pure declarations are external
// references with no body.
type SymbolTable struct {
	defs  map[string]struct{}
	decls map[string]struct{}
	order []string // declaration order as encountered in the module
}

// Load parses the LLVM IR module at path and classifies its symbols.
// The upstream build pipes bitcode through llvm-dis, so the file is the
// textual form of the module.
func Load(path string) (*ir.Module, *SymbolTable, error) {
	mod, err := asm.ParseFile(path)
	if err != nil {
		return nil, nil, diag.Errorf(diag.IrParseFailed,
			"cannot parse IR file %q", path).WithNote("%v", err)
	}
	table, err := Classify(mod)
	if err != nil {
		return nil, nil, err
	}
	return mod, table, nil
}

// Classify walks the functions of mod and builds the symbol table.
func Classify(mod *ir.Module) (*SymbolTable, error) {
	t := &SymbolTable{
		defs:  make(map[string]struct{}),
		decls: make(map[string]struct{}),
	}
	for _, f := range mod.Funcs {
		if !qualifies(f.Linkage) {
			continue
		}
		name := f.GlobalName
		if _, dup := t.decls[name]; dup {
			return nil, diag.Errorf(diag.DuplicateSymbol,
				"symbol %q appears twice with qualifying linkage", name)
		}
		t.decls[name] = struct{}{}
		t.order = append(t.order, name)
		if len(f.Blocks) > 0 {
			t.defs[name] = struct{}{}
		}
	}
	return t, nil
}

// qualifies reports whether a function with linkage l is externally visible
// for matching purposes. Linkage absent from the assembly form means
// external.
func qualifies(l enum.Linkage) bool {
	switch l {
	case enum.LinkageNone,
		enum.LinkageExternal,
		enum.LinkageWeakODR,
		enum.LinkageLinkOnceODR,
		enum.LinkageExternWeak,
		enum.LinkageAvailableExternally:
		return true
	}
	return false
}

// IsDefinition reports whether name has an IR body in this module.
func (t *SymbolTable) IsDefinition(name string) bool {
	_, ok := t.defs[name]
	return ok
}

// IsDeclaration reports whether name is externally visible in this module.
func (t *SymbolTable) IsDeclaration(name string) bool {
	_, ok := t.decls[name]
	return ok
}

// Declarations returns every declared symbol in module order.
func (t *SymbolTable) Declarations() []string {
	return append([]string(nil), t.order...)
}

// Definitions returns every defined symbol in module order.
func (t *SymbolTable) Definitions() []string {
	out := make([]string, 0, len(t.defs))
	for _, name := range t.order {
		if t.IsDefinition(name) {
			out = append(out, name)
		}
	}
	return out
}

// NumDeclarations returns the declared-symbol count.
func (t *SymbolTable) NumDeclarations() int { return len(t.decls) }
