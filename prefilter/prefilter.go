// Package prefilter provides quick-reject gates built from required
// literal fragments.
//
// A prefilter answers one question: can this input possibly match? A false
// answer is definitive and skips the NFA simulation; a true answer says
// nothing and the simulation decides. Prefilters therefore must be
// conservative — they may only test necessary conditions.
//
// Strategy selection from a literal.Seq:
//   - one fragment: plain substring containment
//   - several fragments: an Aho-Corasick automaton over all fragments
//     rejects inputs containing none of them in a single O(n) scan, then
//     an ordered leftmost walk verifies the fragments occur in pattern
//     order without overlap
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/tinyregex/literal"
)

// Prefilter is a quick-reject gate run before the full simulation.
type Prefilter interface {
	// Matches reports whether input can possibly match the pattern.
	// A false result is definitive; a true result must be verified by the
	// full engine.
	Matches(input []byte) bool
}

// FromSeq builds a prefilter for the given fragment sequence.
// Returns nil when the sequence is empty (no usable necessary condition).
func FromSeq(seq *literal.Seq) Prefilter {
	switch seq.Len() {
	case 0:
		return nil
	case 1:
		return &substring{needle: seq.Get(0).Bytes}
	default:
		fragments := make([][]byte, seq.Len())
		builder := ahocorasick.NewBuilder()
		for i := 0; i < seq.Len(); i++ {
			fragments[i] = seq.Get(i).Bytes
			builder.AddPattern(fragments[i])
		}
		of := &orderedFragments{fragments: fragments}
		// A failed automaton build only loses the fast gate; the ordered
		// walk alone is still correct.
		if auto, err := builder.Build(); err == nil {
			of.auto = auto
		}
		return of
	}
}

// substring rejects inputs that do not contain the single required
// fragment.
type substring struct {
	needle []byte
}

// Matches implements Prefilter.
func (s *substring) Matches(input []byte) bool {
	return bytes.Contains(input, s.needle)
}

// orderedFragments rejects inputs that do not contain every required
// fragment in pattern order.
type orderedFragments struct {
	auto      *ahocorasick.Automaton
	fragments [][]byte
}

// Matches implements Prefilter. The Aho-Corasick gate first rules out
// inputs containing none of the fragments; survivors get the ordered walk.
// The walk places each fragment at its leftmost position after the
// previous one, which is complete: if an ordered non-overlapping placement
// exists at all, the greedy leftmost one exists too.
func (o *orderedFragments) Matches(input []byte) bool {
	if o.auto != nil && !o.auto.IsMatch(input) {
		return false
	}

	at := 0
	for _, frag := range o.fragments {
		idx := bytes.Index(input[at:], frag)
		if idx < 0 {
			return false
		}
		at += idx + len(frag)
	}
	return true
}
