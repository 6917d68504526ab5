package jitlink

// Generator is one layer of the main dylib's symbol-resolution chain.
// Generators are consulted in installation order for symbols the module
// does not define.
type Generator interface {
	GeneratorName() string
	TryToGenerate(name string) (Addr, bool)
}

// FakeAddressGenerator assigns a synthetic, process-unique address to any
// symbol that reached it. The IR references symbols defined in translation
// units that are not linked here; the pipeline only needs their addresses
// to be distinct, never callable.
type FakeAddressGenerator struct {
	session *Session
}

// NewFakeAddressGenerator returns a generator recording its allocations
// into s so that IsFake can answer for them.
func NewFakeAddressGenerator(s *Session) *FakeAddressGenerator {
	return &FakeAddressGenerator{session: s}
}

func (*FakeAddressGenerator) GeneratorName() string { return "fake-address" }

func (g *FakeAddressGenerator) TryToGenerate(name string) (Addr, bool) {
	addr := alloc.take()
	g.session.fakes[addr] = name
	return addr, true
}
