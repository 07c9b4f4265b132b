// Package slotmap implements a fixed-capacity generational slot map: an
// array-backed container whose entries are addressed through stable
// handles that survive slot reuse. Removing an entry bumps the slot's
// generation, so every handle issued for the previous occupant stops
// resolving and can never alias the next occupant of the same index.
package slotmap

import "errors"

// ErrCapacity is returned by Insert when the map is full. The caller is
// expected to treat it as a recoverable condition (e.g. skip a spawn),
// not a crash.
var ErrCapacity = errors.New("slotmap: capacity exceeded")

// none marks an empty free list head or the end of the free chain.
// An explicit sentinel keeps index 0 usable as a regular slot.
const none = -1

// Handle is a stable, generation-tagged reference to a slot map entry.
// A zero Handle never resolves: generations start at 1.
type Handle struct {
	Index      uint32
	Generation uint32
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool {
	return h.Generation == 0
}

type slot[T any] struct {
	value      T
	generation uint32
	next       int  // next free slot index, or none
	live       bool // false while the slot sits on the free list
}

// SlotMap is a fixed-capacity generational container for values of type T.
// All operations are O(1) except All and Find, which scan the occupied
// prefix linearly.
//
// The zero value is not usable; construct with New.
type SlotMap[T any] struct {
	slots    []slot[T]
	freeHead int // head of the free list, or none
	occupied int // high-water mark of slots ever allocated; never decreases
	count    int // current number of live entries
}

// New creates a slot map that can hold up to capacity values.
func New[T any](capacity int) *SlotMap[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &SlotMap[T]{
		slots:    make([]slot[T], capacity),
		freeHead: none,
	}
}

// Cap returns the fixed capacity.
func (m *SlotMap[T]) Cap() int {
	return len(m.slots)
}

// Len returns the number of live entries.
func (m *SlotMap[T]) Len() int {
	return m.count
}

// Insert stores a value and returns its handle. A recycled slot is reused
// in preference to extending the occupied range. Returns ErrCapacity when
// the map is full; existing entries are left untouched.
func (m *SlotMap[T]) Insert(value T) (Handle, error) {
	var idx int
	switch {
	case m.freeHead != none:
		idx = m.freeHead
		m.freeHead = m.slots[idx].next
	case m.occupied < len(m.slots):
		idx = m.occupied
		m.occupied++
	default:
		return Handle{}, ErrCapacity
	}

	s := &m.slots[idx]
	s.value = value
	s.generation++
	s.next = none
	s.live = true
	m.count++

	return Handle{Index: uint32(idx), Generation: s.generation}, nil
}

// Remove invalidates the handle and recycles its slot. Returns false when
// the handle is stale or was never issued; the map is unchanged in that
// case. The slot's generation is bumped immediately so the handle cannot
// resolve again even before the slot is reused.
func (m *SlotMap[T]) Remove(h Handle) bool {
	s := m.resolve(h)
	if s == nil {
		return false
	}

	var zero T
	s.value = zero
	s.generation++
	s.live = false
	s.next = m.freeHead
	m.freeHead = int(h.Index)
	m.count--
	return true
}

// Get returns a pointer to the value for a currently valid handle.
// This is the single authority for handle validity: a stale handle yields
// (nil, false) and never the slot's current occupant.
func (m *SlotMap[T]) Get(h Handle) (*T, bool) {
	s := m.resolve(h)
	if s == nil {
		return nil, false
	}
	return &s.value, true
}

// resolve returns the slot for h iff h is currently valid: index inside
// the occupied range, slot live, and generation matching the stored stamp.
func (m *SlotMap[T]) resolve(h Handle) *slot[T] {
	idx := int(h.Index)
	if idx < 0 || idx >= m.occupied {
		return nil
	}
	s := &m.slots[idx]
	if !s.live || s.generation != h.Generation {
		return nil
	}
	return s
}

// All calls fn for every live entry in slot order, skipping freed slots.
// Iteration stops early when fn returns false. Slot order is stable across
// removals because slots are recycled in place, never compacted.
func (m *SlotMap[T]) All(fn func(Handle, *T) bool) {
	for i := 0; i < m.occupied; i++ {
		s := &m.slots[i]
		if !s.live {
			continue
		}
		h := Handle{Index: uint32(i), Generation: s.generation}
		if !fn(h, &s.value) {
			return
		}
	}
}

// Find returns the first live entry satisfying pred, in slot order.
// Linear in the occupied range; fine for the tens of entries this
// container is sized for.
func (m *SlotMap[T]) Find(pred func(*T) bool) (Handle, *T, bool) {
	for i := 0; i < m.occupied; i++ {
		s := &m.slots[i]
		if !s.live || !pred(&s.value) {
			continue
		}
		return Handle{Index: uint32(i), Generation: s.generation}, &s.value, true
	}
	return Handle{}, nil, false
}
