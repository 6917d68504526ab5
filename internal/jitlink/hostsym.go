package jitlink

import "sync"

// The host symbol table models the process's own dynamic symbols: the
// registration hooks the tool exports for the enumeration code, plus
// whatever else the host registers. Symbols registered here are what the
// host-process generator can resolve.

var (
	hostMu   sync.Mutex
	hostSyms = make(map[string]Addr)
)

// RegisterHostSymbol publishes name in the host symbol table and returns
// its address. Registration is idempotent: a name keeps its first address.
func RegisterHostSymbol(name string) Addr {
	hostMu.Lock()
	defer hostMu.Unlock()
	if addr, ok := hostSyms[name]; ok {
		return addr
	}
	addr := alloc.take()
	hostSyms[name] = addr
	return addr
}

func lookupHostSymbol(name string) (Addr, bool) {
	hostMu.Lock()
	defer hostMu.Unlock()
	addr, ok := hostSyms[name]
	return addr, ok
}

// HostProcessGenerator resolves symbols against the host process, the way
// a dynamic-library search over the running binary would.
type HostProcessGenerator struct{}

func (HostProcessGenerator) GeneratorName() string { return "host-process" }

func (HostProcessGenerator) TryToGenerate(name string) (Addr, bool) {
	return lookupHostSymbol(name)
}
