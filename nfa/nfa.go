// Package nfa implements a nondeterministic finite automaton built from a
// restricted regex syntax, together with a state-set simulator.
//
// The supported syntax is: literal characters, the '.' wildcard, bracketed
// character classes with ranges and '^' negation, and postfix '*' / '+'
// applied to the immediately preceding construct. There is no alternation,
// grouping or anchoring; a compiled graph matches the whole input string.
//
// The graph is an arena of states addressed by StateID. Each state owns an
// ordered list of successor IDs. The only cycles are the self-loop edges on
// Repeat states; the rest of the graph is a chain from the start state to
// the single termination state. Graphs are immutable after compilation.
package nfa

import (
	"fmt"
	"strings"
)

// StateID uniquely identifies a state in the graph's arena.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID.
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the variant of a state and determines which of its
// fields are meaningful. The kind set is closed: Accepts dispatches over
// exactly these six variants and nothing else.
type StateKind uint8

const (
	// KindStart is the sole entry point. It accepts no character.
	KindStart StateKind = iota

	// KindTermination marks successful completion. It is a sink and
	// accepts no character.
	KindTermination

	// KindWildcard accepts any single character ('.').
	KindWildcard

	// KindLiteral accepts exactly one code point.
	KindLiteral

	// KindClass accepts characters by range/single membership, optionally
	// negated ('[...]').
	KindClass

	// KindRepeat wraps another state for '*' (min 0) or '+' (min 1). It
	// accepts whatever its inner state accepts and carries a self-loop
	// edge modeling "consume one more repetition".
	KindRepeat
)

// String returns a human-readable representation of the StateKind.
func (k StateKind) String() string {
	switch k {
	case KindStart:
		return "Start"
	case KindTermination:
		return "Termination"
	case KindWildcard:
		return "Wildcard"
	case KindLiteral:
		return "Literal"
	case KindClass:
		return "Class"
	case KindRepeat:
		return "Repeat"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// RuneRange is an inclusive code-point range inside a character class.
type RuneRange struct {
	Lo, Hi rune
}

// Class is the membership test of a bracketed character class.
// A character matches if it falls in any range or equals any single,
// XOR the negated flag.
type Class struct {
	ranges  []RuneRange
	singles []rune
	negated bool
}

// NewClass creates a class from its parsed parts. The slices are copied.
func NewClass(ranges []RuneRange, singles []rune, negated bool) *Class {
	c := &Class{negated: negated}
	if len(ranges) > 0 {
		c.ranges = make([]RuneRange, len(ranges))
		copy(c.ranges, ranges)
	}
	if len(singles) > 0 {
		c.singles = make([]rune, len(singles))
		copy(c.singles, singles)
	}
	return c
}

// Contains reports whether r is accepted by the class.
func (c *Class) Contains(r rune) bool {
	in := false
	for _, rr := range c.ranges {
		if rr.Lo <= r && r <= rr.Hi {
			in = true
			break
		}
	}
	if !in {
		for _, s := range c.singles {
			if s == r {
				in = true
				break
			}
		}
	}
	if c.negated {
		return !in
	}
	return in
}

// Ranges returns the class's code-point ranges.
func (c *Class) Ranges() []RuneRange {
	return c.ranges
}

// Singles returns the class's individual code points.
func (c *Class) Singles() []rune {
	return c.singles
}

// Negated reports whether the class is negated ('[^...]').
func (c *Class) Negated() bool {
	return c.negated
}

// String returns a human-readable representation of the class.
func (c *Class) String() string {
	var b strings.Builder
	b.WriteByte('[')
	if c.negated {
		b.WriteByte('^')
	}
	for _, rr := range c.ranges {
		fmt.Fprintf(&b, "%c-%c", rr.Lo, rr.Hi)
	}
	for _, s := range c.singles {
		b.WriteRune(s)
	}
	b.WriteByte(']')
	return b.String()
}

// State is a single arena entry. The state's kind determines which fields
// are valid.
type State struct {
	id   StateID
	kind StateKind

	// For Literal: the accepted code point.
	symbol rune

	// For Class: the membership test.
	class *Class

	// For Repeat: the wrapped state and the minimum repetition count
	// (0 for '*', 1 for '+'). The inner state stays in the arena but is
	// only reachable through this reference after rewiring.
	inner StateID
	min   int

	// Ordered successor list. May contain a self-loop for Repeat states.
	edges []StateID
}

// ID returns the state's arena index.
func (s *State) ID() StateID {
	return s.id
}

// Kind returns the state's variant.
func (s *State) Kind() StateKind {
	return s.kind
}

// Symbol returns the accepted code point for Literal states.
// Returns 0 for other kinds.
func (s *State) Symbol() rune {
	if s.kind == KindLiteral {
		return s.symbol
	}
	return 0
}

// Class returns the membership test for Class states, nil otherwise.
func (s *State) Class() *Class {
	if s.kind == KindClass {
		return s.class
	}
	return nil
}

// Repeat returns the wrapped state and minimum count for Repeat states.
// Returns (InvalidState, 0) for other kinds.
func (s *State) Repeat() (inner StateID, min int) {
	if s.kind == KindRepeat {
		return s.inner, s.min
	}
	return InvalidState, 0
}

// Edges returns the state's ordered successor list. The slice aliases the
// graph's storage and must not be modified.
func (s *State) Edges() []StateID {
	return s.edges
}

// String returns a human-readable representation of the state.
func (s *State) String() string {
	switch s.kind {
	case KindStart:
		return fmt.Sprintf("State(%d, Start -> %v)", s.id, s.edges)
	case KindTermination:
		return fmt.Sprintf("State(%d, Termination)", s.id)
	case KindWildcard:
		return fmt.Sprintf("State(%d, Wildcard -> %v)", s.id, s.edges)
	case KindLiteral:
		return fmt.Sprintf("State(%d, Literal %q -> %v)", s.id, s.symbol, s.edges)
	case KindClass:
		return fmt.Sprintf("State(%d, Class %s -> %v)", s.id, s.class, s.edges)
	case KindRepeat:
		return fmt.Sprintf("State(%d, Repeat{min=%d, inner=%d} -> %v)", s.id, s.min, s.inner, s.edges)
	default:
		return fmt.Sprintf("State(%d, Unknown)", s.id)
	}
}

// NFA is a compiled pattern graph. It is immutable after Build and safe to
// share across goroutines; all mutable search state lives in SimState.
type NFA struct {
	states      []State
	start       StateID
	termination StateID
	pattern     string
}

// Start returns the graph's entry state.
func (n *NFA) Start() StateID {
	return n.start
}

// Termination returns the graph's single accepting sink.
func (n *NFA) Termination() StateID {
	return n.termination
}

// Pattern returns the source pattern the graph was compiled from.
func (n *NFA) Pattern() string {
	return n.pattern
}

// State returns the state with the given ID, or nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// States returns the total number of states in the arena. This counts
// states made unreachable by quantifier rewiring as well; the arena never
// shrinks.
func (n *NFA) States() int {
	return len(n.states)
}

// Accepts reports whether the state id consumes the character r. This is
// the single exhaustive dispatch over the closed kind set: Start and
// Termination accept nothing, Wildcard accepts everything, Literal and
// Class test the character, and Repeat delegates to its inner state.
func (n *NFA) Accepts(id StateID, r rune) bool {
	s := n.State(id)
	if s == nil {
		return false
	}
	switch s.kind {
	case KindStart, KindTermination:
		return false
	case KindWildcard:
		return true
	case KindLiteral:
		return s.symbol == r
	case KindClass:
		return s.class.Contains(r)
	case KindRepeat:
		return n.Accepts(s.inner, r)
	default:
		return false
	}
}

// IsZeroWidth reports whether the state can be skipped without consuming a
// character. Only Repeat states with minimum 0 ('*') qualify; a '+' repeat
// must consume at least once and never acts as a zero-width pass-through.
func (n *NFA) IsZeroWidth(id StateID) bool {
	s := n.State(id)
	return s != nil && s.kind == KindRepeat && s.min == 0
}

// Next returns the state's first successor that is not itself, or
// InvalidState if there is none. Because the graph is a chain apart from
// Repeat self-loops, this walks the pattern's construct sequence from
// Start to Termination.
func (n *NFA) Next(id StateID) StateID {
	s := n.State(id)
	if s == nil {
		return InvalidState
	}
	for _, e := range s.edges {
		if e != id {
			return e
		}
	}
	return InvalidState
}

// String returns a human-readable summary of the NFA.
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{pattern: %q, states: %d, start: %d, termination: %d}",
		n.pattern, len(n.states), n.start, n.termination)
}
