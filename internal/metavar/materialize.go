package metavar

import (
	"fortio.org/safecast"

	"pochivm/internal/diag"
	"pochivm/internal/enums"
	"pochivm/internal/jitlink"
	"pochivm/internal/typename"
)

// Selector decides, for one concrete value tuple, whether the combination
// is instantiated. It returns the instantiation's address, or 0 for
// "combination disallowed". The tuple is reused between calls; selectors
// must not retain it.
type Selector func(values []uint64) jitlink.Addr

// Materialize enumerates the Cartesian product of spec's domains
// depth-first in declaration order, consulting sel at every leaf.
// Canonical order per position: primitive types in PrimitiveTypes order,
// false before true, enum declaration order.
func Materialize(reg *enums.Registry, spec Spec, sel Selector) (*MaterializedList, error) {
	sizes := make([]uint64, len(spec.Params))
	for i, p := range spec.Params {
		n, err := domainSize(reg, p)
		if err != nil {
			return nil, err
		}
		sizes[i] = n
	}

	list := &MaterializedList{Spec: spec}
	values := make([]uint64, len(spec.Params))
	var walk func(pos int)
	walk = func(pos int) {
		if pos == len(values) {
			if addr := sel(values); addr != 0 {
				list.Instances = append(list.Instances, &Instance{
					Values: append([]uint64(nil), values...),
					FnAddr: addr,
				})
			}
			return
		}
		for v := uint64(0); v < sizes[pos]; v++ {
			values[pos] = v
			walk(pos + 1)
		}
	}
	walk(0)
	return list, nil
}

// domainSize returns the domain cardinality of p.
func domainSize(reg *enums.Registry, p Param) (uint64, error) {
	switch p.Kind {
	case PrimitiveType:
		return uint64(len(PrimitiveTypes)), nil
	case Bool:
		return 2, nil
	case Enum:
		// EnumName держит сырой reflective-захват; реестр ключуется
		// очищенным именем.
		key := typename.Parse(p.EnumName)
		domain, ok := reg.Domain(key)
		if !ok {
			return 0, diag.Errorf(diag.UnknownMetaVarKind,
				"meta-var %q references unregistered enum %q", p.Name, key)
		}
		n, err := safecast.Conv[uint64](len(domain))
		if err != nil {
			return 0, diag.Errorf(diag.UnknownMetaVarKind,
				"meta-var %q: enum %q domain size: %v", p.Name, p.EnumName, err)
		}
		return n, nil
	}
	return 0, diag.Errorf(diag.UnknownMetaVarKind,
		"meta-var %q has unrecognized kind %d", p.Name, uint8(p.Kind))
}

// Validate checks an instance against its spec: tuple length and per-value
// domain membership.
func Validate(reg *enums.Registry, spec Spec, inst *Instance) error {
	if len(inst.Values) != len(spec.Params) {
		return diag.Errorf(diag.UnknownMetaVarKind,
			"instance has %d values for %d parameters", len(inst.Values), len(spec.Params))
	}
	for i, p := range spec.Params {
		n, err := domainSize(reg, p)
		if err != nil {
			return err
		}
		if inst.Values[i] >= n {
			return diag.Errorf(diag.UnknownMetaVarKind,
				"value %d of meta-var %q is outside its domain of size %d",
				inst.Values[i], p.Name, n)
		}
	}
	return nil
}
