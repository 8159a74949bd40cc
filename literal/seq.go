// Package literal extracts required literal fragments from compiled
// pattern graphs.
//
// A fragment is a byte sequence every matching input must contain. Because
// the engine matches whole inputs against a single construct chain, the
// fragments of a pattern are ordered: a matching input contains all of
// them, in order, without overlap. The prefilter package turns that
// necessary condition into a quick-reject gate that runs before the full
// simulation.
package literal

import "fmt"

// Fragment is one required literal byte sequence.
type Fragment struct {
	// Bytes is the UTF-8 encoded fragment.
	Bytes []byte
}

// Len returns the fragment length in bytes.
func (f Fragment) Len() int {
	return len(f.Bytes)
}

// String returns a human-readable representation of the fragment.
func (f Fragment) String() string {
	return fmt.Sprintf("fragment{%q}", f.Bytes)
}

// Seq is the ordered list of a pattern's required fragments.
//
// When Complete is true the pattern is a plain literal: the single fragment
// is not merely necessary but sufficient, and matching reduces to byte
// equality.
type Seq struct {
	fragments []Fragment
	complete  bool
}

// NewSeq creates a sequence from the given fragments.
func NewSeq(fragments ...Fragment) *Seq {
	return &Seq{fragments: fragments}
}

// Len returns the number of fragments.
func (s *Seq) Len() int {
	return len(s.fragments)
}

// IsEmpty reports whether the sequence has no fragments.
func (s *Seq) IsEmpty() bool {
	return len(s.fragments) == 0
}

// Get returns the i-th fragment in pattern order.
func (s *Seq) Get(i int) Fragment {
	return s.fragments[i]
}

// Complete reports whether the fragments cover the entire pattern, i.e.
// the pattern is a plain literal and equality against the single fragment
// decides a match.
func (s *Seq) Complete() bool {
	return s.complete
}

// String returns a human-readable representation of the sequence.
func (s *Seq) String() string {
	return fmt.Sprintf("seq{fragments: %v, complete: %v}", s.fragments, s.complete)
}
