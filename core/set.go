// File: set.go
// Role: Set, a bitset of vertex handles used for reachable and settled sets.

package core

import "github.com/bits-and-blooms/bitset"

// Set is a set of vertex handles backed by a bitset sized to the arena.
// Len is O(1): the cardinality is tracked on insertion.
type Set struct {
	bits *bitset.BitSet
	n    int
}

// NewSet returns an empty set with room for handles 0..capacity-1.
// Larger handles are still accepted; the bitset grows on demand.
func NewSet(capacity int) *Set {
	if capacity < 0 {
		capacity = 0
	}

	return &Set{bits: bitset.New(uint(capacity))}
}

// Add inserts id and reports whether it was newly added.
// Negative handles are ignored.
func (s *Set) Add(id VertexID) bool {
	if id < 0 || s.bits.Test(uint(id)) {
		return false
	}
	s.bits.Set(uint(id))
	s.n++

	return true
}

// Has reports whether id is in the set.
func (s *Set) Has(id VertexID) bool {
	return id >= 0 && s.bits.Test(uint(id))
}

// Len returns the number of handles in the set.
func (s *Set) Len() int { return s.n }

// IDs returns the members in ascending order.
func (s *Set) IDs() []VertexID {
	out := make([]VertexID, 0, s.n)
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, VertexID(i))
	}

	return out
}

// Equal reports whether s and o hold exactly the same handles.
func (s *Set) Equal(o *Set) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.n != o.n {
		return false
	}
	for _, id := range s.IDs() {
		if !o.Has(id) {
			return false
		}
	}

	return true
}
