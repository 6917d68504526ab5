// Package jitlink hosts the in-process link session the boilerplate module
// is materialized into. It mirrors a single-session ORC JIT: one main
// dylib, an ordered generator chain for undefined externals, and exactly
// one entry-point invocation.
package jitlink

import (
	"pochivm/internal/diag"
	"pochivm/internal/irload"
)

// Session owns the materialized module for the remainder of the run. It is
// single-threaded; nothing here suspends or locks beyond the process-wide
// allocator.
type Session struct {
	defs     map[string]Addr // materialized definitions
	resolved map[string]Addr // non-definition symbols, cached per resolution
	gens     []Generator
	fakes    map[Addr]string
	bodies   map[string]func(*Session) error
	added    bool
	invoked  bool
}

func NewSession() *Session {
	return &Session{
		defs:     make(map[string]Addr),
		resolved: make(map[string]Addr),
		fakes:    make(map[Addr]string),
		bodies:   make(map[string]func(*Session) error),
	}
}

// AddGenerator appends g to the main dylib's resolution chain.
func (s *Session) AddGenerator(g Generator) {
	s.gens = append(s.gens, g)
}

// AddModule materializes the module's definitions, assigning each a fresh
// address. The symbol table is consumed: the session is its only owner
// afterwards.
func (s *Session) AddModule(table *irload.SymbolTable) error {
	if s.added {
		return diag.Errorf(diag.JitBuildFailed, "a module was already added to this session")
	}
	if table == nil {
		return diag.Errorf(diag.JitBuildFailed, "no symbol table to add")
	}
	for _, name := range table.Definitions() {
		s.defs[name] = alloc.take()
	}
	s.added = true
	return nil
}

// Lookup resolves name to its final address: module definitions first, then
// previously resolved externals, then the generator chain in installation
// order. A resolution is cached, so re-looking-up a name is stable.
func (s *Session) Lookup(name string) (Addr, error) {
	if addr, ok := s.defs[name]; ok {
		return addr, nil
	}
	if addr, ok := s.resolved[name]; ok {
		return addr, nil
	}
	for _, g := range s.gens {
		if addr, ok := g.TryToGenerate(name); ok {
			s.resolved[name] = addr
			return addr, nil
		}
	}
	return 0, diag.Errorf(diag.JitBuildFailed, "symbol %q cannot be resolved", name)
}

// IsDefinition reports whether name was materialized from the module.
func (s *Session) IsDefinition(name string) bool {
	_, ok := s.defs[name]
	return ok
}

// IsFake reports whether addr was handed out by the fake-address generator.
// A fake address must never be invoked.
func (s *Session) IsFake(addr Addr) bool {
	_, ok := s.fakes[addr]
	return ok
}

// BindBody attaches the executable body for a module definition. The IR
// carries the compiled form; the host carries the runnable one.
func (s *Session) BindBody(name string, fn func(*Session) error) {
	s.bodies[name] = fn
}

// InvokeEntry looks up the well-known entry symbol and runs its bound body
// exactly once. The entry must be a definition of the added module.
func (s *Session) InvokeEntry(name string) error {
	if !s.IsDefinition(name) {
		return diag.Errorf(diag.EntrypointMissing,
			"entry point %q is not defined in the IR module", name)
	}
	fn := s.bodies[name]
	if fn == nil {
		return diag.Errorf(diag.JitBuildFailed,
			"entry point %q has no runnable body bound", name)
	}
	if s.invoked {
		return diag.Errorf(diag.JitBuildFailed,
			"entry point %q was already invoked in this session", name)
	}
	s.invoked = true
	return fn(s)
}
