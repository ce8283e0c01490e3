// Package unique64 hands out unique uint64 identifiers and recycles the ones
// that are returned to it. Memory stays proportional to the number of
// identifiers currently waiting for reuse, never to the number ever issued.
package unique64

import (
	"log"
	"math"
)

// An Allocator issues uint64 identifiers that never collide with other
// identifiers still held from the same instance. Released identifiers are
// reused before the counter advances. The zero value is an empty allocator
// ready for use.
//
// An Allocator is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own locking.
//
// There is no reset operation. An allocator that is no longer wanted is
// replaced with a new one, so that no caller can be handed an identifier it
// still believes to be active.
type Allocator struct {
	nextID   uint64
	recycled map[uint64]struct{}
}

// NewAllocator creates an empty Allocator.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Allocate returns an identifier held by no other active allocation from this
// Allocator. A recycled identifier is returned if one is waiting; the pick
// among waiting identifiers is arbitrary. Otherwise the identifier is fresh
// and the fresh-id floor advances by one.
//
// Allocate panics rather than letting the counter wrap, so the topmost
// identifier, math.MaxUint64, is never issued.
func (a *Allocator) Allocate() uint64 {
	for id := range a.recycled {
		delete(a.recycled, id)
		return id
	}

	id := a.nextID
	if id == math.MaxUint64 {
		log.Panic("identifier space exhausted")
	}
	a.nextID++

	return id
}

// Release returns an active identifier to the allocator for future reuse.
//
// Releasing an identifier that is not active panics: either it was never
// issued by this Allocator, or it has already been released. The panic
// signals caller misuse and is not meant to be recovered from.
func (a *Allocator) Release(id uint64) {
	if id >= a.nextID {
		log.Panicf("invalid release of id %d: never allocated", id)
	}

	if _, waiting := a.recycled[id]; waiting {
		log.Panicf("invalid release of id %d: already released", id)
	}

	if a.recycled == nil {
		a.recycled = make(map[uint64]struct{})
	}
	a.recycled[id] = struct{}{}
}

// NumRecycled returns the number of released identifiers waiting for reuse.
func (a *Allocator) NumRecycled() int {
	return len(a.recycled)
}

// NextFresh returns the smallest identifier this Allocator has never issued.
// It only ever increases.
func (a *Allocator) NextFresh() uint64 {
	return a.nextID
}
