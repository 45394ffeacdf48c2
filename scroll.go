package bento

import (
	"math"
	"sync"
	"sync/atomic"
)

// scrollEntry holds one container's scroll state. The offset is packed into
// a single uint64 (x in the high half, y in the low half) so a concurrent
// writer can never be observed half-applied.
type scrollEntry struct {
	packed atomic.Uint64
	pinned atomic.Bool
	seen   atomic.Bool
}

func packOffset(p Point) uint64 {
	return uint64(math.Float32bits(p.X))<<32 | uint64(math.Float32bits(p.Y))
}

func unpackOffset(v uint64) Point {
	return Point{
		X: math.Float32frombits(uint32(v >> 32)),
		Y: math.Float32frombits(uint32(v)),
	}
}

// ScrollStore maps stable container identifiers to scroll offsets that
// survive the per-frame tree rebuild. Entries are created on first
// observation, mutated by input-handling code (possibly on another
// goroutine), and garbage-collected once their container leaves the tree,
// unless pinned.
//
// The map structure is guarded by an RWMutex; offset reads and writes on an
// existing entry are lock-free and per-key atomic, so a layout pass reading
// a snapshot never observes a torn offset.
type ScrollStore struct {
	mu      sync.RWMutex
	entries map[string]*scrollEntry
}

// NewScrollStore creates an empty scroll store.
func NewScrollStore() *ScrollStore {
	return &ScrollStore{entries: make(map[string]*scrollEntry)}
}

// lookup returns the entry for id, or nil.
func (s *ScrollStore) lookup(id string) *scrollEntry {
	s.mu.RLock()
	e := s.entries[id]
	s.mu.RUnlock()
	return e
}

// entry returns the entry for id, creating it if absent.
func (s *ScrollStore) entry(id string) *scrollEntry {
	if e := s.lookup(id); e != nil {
		return e
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if e := s.entries[id]; e != nil {
		return e
	}
	e := &scrollEntry{}
	s.entries[id] = e
	return e
}

// Get returns the offset for id, or the zero offset if absent.
func (s *ScrollStore) Get(id string) Point {
	e := s.lookup(id)
	if e == nil {
		return Point{}
	}
	return unpackOffset(e.packed.Load())
}

// Set replaces the offset for id, creating the entry if needed.
func (s *ScrollStore) Set(id string, off Point) {
	s.entry(id).packed.Store(packOffset(off))
}

// ScrollBy adds delta to the offset for id and returns the new offset.
// The update is a compare-and-swap loop, so concurrent callers never lose
// or tear a write.
func (s *ScrollStore) ScrollBy(id string, delta Point) Point {
	e := s.entry(id)
	for {
		old := e.packed.Load()
		cur := unpackOffset(old)
		next := Point{X: cur.X + delta.X, Y: cur.Y + delta.Y}
		if e.packed.CompareAndSwap(old, packOffset(next)) {
			return next
		}
	}
}

// Pin exempts id from garbage collection, creating the entry if needed.
func (s *ScrollStore) Pin(id string) {
	s.entry(id).pinned.Store(true)
}

// Unpin clears the pin on id. Absent ids are a no-op.
func (s *ScrollStore) Unpin(id string) {
	if e := s.lookup(id); e != nil {
		e.pinned.Store(false)
	}
}

// MarkSeen records that id was observed during the current pass, creating
// the entry if needed. Called once per id per pass while walking the tree.
func (s *ScrollStore) MarkSeen(id string) {
	s.entry(id).seen.Store(true)
}

// CollectGarbage removes every entry that was neither marked seen this pass
// nor pinned, and resets the seen marks for the next pass.
func (s *ScrollStore) CollectGarbage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.entries {
		if !e.seen.Load() && !e.pinned.Load() {
			delete(s.entries, id)
			continue
		}
		e.seen.Store(false)
	}
}

// Len returns the number of live entries.
func (s *ScrollStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// ScrollSnapshot is a consistent copy of the store's offsets, taken once at
// pass start so that concurrent writers cannot shift a container mid-pass.
type ScrollSnapshot map[string]Point

// Snapshot copies the current offsets.
func (s *ScrollStore) Snapshot() ScrollSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := make(ScrollSnapshot, len(s.entries))
	for id, e := range s.entries {
		snap[id] = unpackOffset(e.packed.Load())
	}
	return snap
}

// offset returns the snapshot offset for id, or the zero offset.
func (ss ScrollSnapshot) offset(id string) Point {
	return ss[id]
}
