// Package sparse provides a sparse set over small uint32 universes.
//
// The simulator tracks active and visited NFA states per input position.
// A sparse set gives O(1) insert, membership and clear while keeping a
// dense slice for iteration, which is exactly the access pattern of a
// state-set NFA simulation.
package sparse

// Set is a set of uint32 values below a fixed capacity.
//
// It pairs a sparse index array with a dense value slice: membership is a
// bounds check plus one array probe, and Clear is O(1) because stale
// sparse entries are invalidated by the dense cross-check rather than
// zeroed.
type Set struct {
	sparse []uint32 // value -> index into dense
	dense  []uint32
}

// New creates a set that can hold values in [0, capacity).
func New(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set. Inserting an existing value is a no-op.
// value must be below the capacity the set was created with.
func (s *Set) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < uint32(len(s.dense)) && s.dense[idx] == value
}

// Clear empties the set in O(1).
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of elements.
func (s *Set) Len() int {
	return len(s.dense)
}

// IsEmpty reports whether the set has no elements.
func (s *Set) IsEmpty() bool {
	return len(s.dense) == 0
}

// Values returns the elements in insertion order. The slice aliases the
// set's storage and is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}
