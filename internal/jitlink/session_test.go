package jitlink

import (
	"testing"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"

	"pochivm/internal/diag"
	"pochivm/internal/irload"
)

func buildTable(t *testing.T, defs, decls []string) *irload.SymbolTable {
	t.Helper()
	mod := &ir.Module{}
	for _, name := range defs {
		f := mod.NewFunc(name, types.Void)
		f.NewBlock("entry").NewRet(nil)
	}
	for _, name := range decls {
		mod.NewFunc(name, types.Void)
	}
	table, err := irload.Classify(mod)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func newTestSession(t *testing.T, table *irload.SymbolTable) *Session {
	t.Helper()
	s := NewSession()
	s.AddGenerator(HostProcessGenerator{})
	s.AddGenerator(NewFakeAddressGenerator(s))
	if err := s.AddModule(table); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDefinitionsGetDistinctAddresses(t *testing.T) {
	s := newTestSession(t, buildTable(t, []string{"a", "b", "c"}, nil))
	seen := make(map[Addr]string)
	for _, name := range []string{"a", "b", "c"} {
		addr, err := s.Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if addr == 0 {
			t.Fatalf("%s resolved to null", name)
		}
		if prev, dup := seen[addr]; dup {
			t.Fatalf("%s and %s share address %#x", prev, name, addr)
		}
		seen[addr] = name
	}
}

func TestGeneratorOrderHostBeforeFake(t *testing.T) {
	hookAddr := RegisterHostSymbol("__pochivm_test_hook_gen_order__")
	s := newTestSession(t, buildTable(t, []string{"body"}, []string{"__pochivm_test_hook_gen_order__", "missing_ext"}))

	got, err := s.Lookup("__pochivm_test_hook_gen_order__")
	if err != nil {
		t.Fatal(err)
	}
	if got != hookAddr {
		t.Fatalf("host symbol resolved to %#x, want host address %#x", got, hookAddr)
	}
	if s.IsFake(got) {
		t.Fatal("host-resolved symbol marked fake")
	}

	ext, err := s.Lookup("missing_ext")
	if err != nil {
		t.Fatal(err)
	}
	if ext == 0 {
		t.Fatal("fake address is null")
	}
	if !s.IsFake(ext) {
		t.Fatal("undefined external not marked fake")
	}
}

func TestLookupIsCached(t *testing.T) {
	s := newTestSession(t, buildTable(t, nil, []string{"ext"}))
	first, err := s.Lookup("ext")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Lookup("ext")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("re-lookup changed address: %#x then %#x", first, second)
	}
}

func TestLookupWithoutGenerators(t *testing.T) {
	s := NewSession()
	if err := s.AddModule(buildTable(t, nil, []string{"ext"})); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Lookup("ext"); err == nil {
		t.Fatal("bare session resolved an external")
	}
}

func TestAddModuleTwice(t *testing.T) {
	s := NewSession()
	table := buildTable(t, []string{"a"}, nil)
	if err := s.AddModule(table); err != nil {
		t.Fatal(err)
	}
	err := s.AddModule(table)
	if err == nil {
		t.Fatal("second AddModule accepted")
	}
	if diag.CodeOf(err) != diag.JitBuildFailed {
		t.Fatalf("code = %v, want JitBuildFailed", diag.CodeOf(err))
	}
}

func TestInvokeEntry(t *testing.T) {
	const entry = "__pochivm_build_fast_interp_library__"
	s := newTestSession(t, buildTable(t, []string{entry}, nil))

	calls := 0
	s.BindBody(entry, func(*Session) error {
		calls++
		return nil
	})
	if err := s.InvokeEntry(entry); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("entry ran %d times, want 1", calls)
	}

	err := s.InvokeEntry(entry)
	if err == nil {
		t.Fatal("second invocation accepted")
	}
	if diag.CodeOf(err) != diag.JitBuildFailed {
		t.Fatalf("code = %v, want JitBuildFailed", diag.CodeOf(err))
	}
}

func TestInvokeEntryMissing(t *testing.T) {
	// Объявленный, но не определённый entry — это отсутствующий entry.
	s := newTestSession(t, buildTable(t, []string{"other"}, []string{"declared_entry"}))
	for _, name := range []string{"declared_entry", "absent_entry"} {
		err := s.InvokeEntry(name)
		if err == nil {
			t.Fatalf("InvokeEntry(%q) accepted", name)
		}
		if diag.CodeOf(err) != diag.EntrypointMissing {
			t.Fatalf("InvokeEntry(%q) code = %v, want EntrypointMissing", name, diag.CodeOf(err))
		}
	}
}

func TestInvokeEntryWithoutBody(t *testing.T) {
	const entry = "__pochivm_build_fast_interp_library__"
	s := newTestSession(t, buildTable(t, []string{entry}, nil))
	err := s.InvokeEntry(entry)
	if err == nil {
		t.Fatal("entry without a bound body accepted")
	}
	if diag.CodeOf(err) != diag.JitBuildFailed {
		t.Fatalf("code = %v, want JitBuildFailed", diag.CodeOf(err))
	}
}
