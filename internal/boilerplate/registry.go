// Package boilerplate holds the process-wide registry the enumeration
// entry point populates, one pack of materialized instances per AST node
// kind.
package boilerplate

import (
	"pochivm/internal/diag"
	"pochivm/internal/metavar"
	"pochivm/internal/nodekind"
	"pochivm/internal/typename"
)

// Param is a registered meta-var together with its canonical type name:
// "TypeId" for primitive-type params, "bool" for booleans, and the cleaned
// enum type name for enum params.
type Param struct {
	Kind     metavar.Kind
	Name     string
	TypeName string
}

// Pack is the complete instance set registered for one AST node kind.
type Pack struct {
	Params    []Param
	Instances []*metavar.Instance
}

// Entry pairs a node kind with its pack, in registration order.
type Entry struct {
	Kind nodekind.Kind
	Pack *Pack
}

// Registry is the append-only collection of packs for one run.
type Registry struct {
	entries []Entry
	seen    map[nodekind.Kind]bool
}

func NewRegistry() *Registry {
	return &Registry{seen: make(map[nodekind.Kind]bool)}
}

// Register appends the pack for kind, translating each meta-var to its
// canonical type name. Registering the same kind twice is fatal.
func (r *Registry) Register(kind nodekind.Kind, list *metavar.MaterializedList) error {
	if r.seen[kind] {
		return diag.Errorf(diag.DuplicateNodeKind,
			"boilerplate for %s registered twice", kind)
	}

	pack := &Pack{Instances: list.Instances}
	for _, mv := range list.Spec.Params {
		p := Param{Kind: mv.Kind, Name: mv.Name}
		switch mv.Kind {
		case metavar.PrimitiveType:
			p.TypeName = "TypeId"
		case metavar.Bool:
			p.TypeName = "bool"
		case metavar.Enum:
			p.TypeName = typename.Parse(mv.EnumName)
		default:
			return diag.Errorf(diag.UnknownMetaVarKind,
				"boilerplate for %s: meta-var %q has unrecognized kind %d",
				kind, mv.Name, uint8(mv.Kind))
		}
		pack.Params = append(pack.Params, p)
	}

	r.seen[kind] = true
	r.entries = append(r.entries, Entry{Kind: kind, Pack: pack})
	return nil
}

// Entries returns the registered packs in registration order.
func (r *Registry) Entries() []Entry {
	return r.entries
}

// NumInstances returns the total instance count across all packs.
func (r *Registry) NumInstances() int {
	n := 0
	for _, e := range r.entries {
		n += len(e.Pack.Instances)
	}
	return n
}
