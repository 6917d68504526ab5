// Package match reverse-maps every registered instance's address to the
// object-file symbol that implements it.
package match

import (
	"pochivm/internal/boilerplate"
	"pochivm/internal/diag"
	"pochivm/internal/irload"
	"pochivm/internal/jitlink"
)

// AddressIndex maps final runtime addresses back to symbol names. An
// address claimed by more than one declaration is ambiguous; the matcher
// refuses to guess which name won.
type AddressIndex struct {
	byAddr    map[jitlink.Addr]string
	ambiguous map[jitlink.Addr]struct{}
}

// BuildAddressIndex looks up every declared symbol in the session and
// indexes the results by address.
func BuildAddressIndex(sess *jitlink.Session, table *irload.SymbolTable) (*AddressIndex, error) {
	idx := &AddressIndex{
		byAddr:    make(map[jitlink.Addr]string, table.NumDeclarations()),
		ambiguous: make(map[jitlink.Addr]struct{}),
	}
	for _, name := range table.Declarations() {
		addr, err := sess.Lookup(name)
		if err != nil {
			return nil, err
		}
		if _, taken := idx.byAddr[addr]; taken {
			idx.ambiguous[addr] = struct{}{}
		}
		idx.byAddr[addr] = name
	}
	return idx, nil
}

// SymbolAt returns the unique declaration name at addr.
func (idx *AddressIndex) SymbolAt(addr jitlink.Addr) (string, bool) {
	if _, amb := idx.ambiguous[addr]; amb {
		return "", false
	}
	name, ok := idx.byAddr[addr]
	return name, ok
}

// Ambiguous reports whether more than one declaration resolved to addr.
func (idx *AddressIndex) Ambiguous(addr jitlink.Addr) bool {
	_, ok := idx.ambiguous[addr]
	return ok
}

// Resolve fills in the symbol name of every registered instance. Each
// address must map to exactly one declaration, and that declaration must
// be a definition of this module: a pure declaration means the
// instantiation's body was never emitted into the IR file.
func Resolve(reg *boilerplate.Registry, idx *AddressIndex, table *irload.SymbolTable) error {
	for _, e := range reg.Entries() {
		for _, inst := range e.Pack.Instances {
			if idx.Ambiguous(inst.FnAddr) {
				return diag.Errorf(diag.AmbiguousAddress,
					"boilerplate for %s resolved to an ambiguous address %#x",
					e.Kind, uint64(inst.FnAddr)).
					WithNote("identical-code folding must be disabled for the boilerplate module")
			}
			name, ok := idx.SymbolAt(inst.FnAddr)
			if !ok {
				return diag.Errorf(diag.AddressNotFound,
					"boilerplate for %s: address %#x matches no declared symbol",
					e.Kind, uint64(inst.FnAddr))
			}
			if !table.IsDefinition(name) {
				return diag.Errorf(diag.NotADefinition,
					"boilerplate for %s resolved to %q, which has no body in this module",
					e.Kind, name)
			}
			inst.SymbolName = name
		}
	}
	return nil
}
