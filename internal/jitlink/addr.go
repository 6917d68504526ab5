package jitlink

import "sync"

// Addr is an opaque runtime address token. The tool only ever compares
// addresses; nothing is dereferenced or called through one.
type Addr uint64

// addrAllocator hands out process-unique, non-null, 16-aligned addresses.
// Real (materialized definition) and fake (undefined external) addresses
// draw from the same counter, so the two ranges can never collide.
type addrAllocator struct {
	mu   sync.Mutex
	next Addr
}

const (
	allocBase Addr = 0x7f4000000000
	allocStep Addr = 16
)

var alloc = &addrAllocator{next: allocBase}

func (a *addrAllocator) take() Addr {
	a.mu.Lock()
	defer a.mu.Unlock()
	addr := a.next
	a.next += allocStep
	return addr
}
