package nfa

import "fmt"

// Builder constructs pattern graphs incrementally. The Compiler drives it,
// but it is usable on its own for hand-built graphs in tests.
//
// Add* methods append states to the arena and return their IDs. Edges are
// wired separately with AddEdge; quantifier rewiring uses ReplaceEdge.
// Build validates the graph invariants before releasing an immutable NFA.
type Builder struct {
	states      []State
	start       StateID
	termination StateID
}

// NewBuilder creates a builder with default capacity.
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a builder with the given initial arena
// capacity.
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states:      make([]State, 0, capacity),
		start:       InvalidState,
		termination: InvalidState,
	}
}

func (b *Builder) add(s State) StateID {
	id := StateID(len(b.states))
	s.id = id
	b.states = append(b.states, s)
	return id
}

// AddStart adds the graph's entry state and records it as the start.
func (b *Builder) AddStart() StateID {
	id := b.add(State{kind: KindStart})
	b.start = id
	return id
}

// AddTermination adds the accepting sink and records it as the
// termination state.
func (b *Builder) AddTermination() StateID {
	id := b.add(State{kind: KindTermination})
	b.termination = id
	return id
}

// AddWildcard adds a state accepting any single character.
func (b *Builder) AddWildcard() StateID {
	return b.add(State{kind: KindWildcard})
}

// AddLiteral adds a state accepting exactly the code point r.
func (b *Builder) AddLiteral(r rune) StateID {
	return b.add(State{kind: KindLiteral, symbol: r})
}

// AddClass adds a state accepting by class membership.
func (b *Builder) AddClass(class *Class) StateID {
	return b.add(State{kind: KindClass, class: class})
}

// AddRepeat adds a quantifier state wrapping inner with the given minimum
// repetition count (0 for '*', 1 for '+'). The caller is responsible for
// adding the self-loop edge; Build verifies it is present.
func (b *Builder) AddRepeat(inner StateID, min int) StateID {
	return b.add(State{kind: KindRepeat, inner: inner, min: min})
}

// AddEdge appends a directed edge from -> to.
func (b *Builder) AddEdge(from, to StateID) error {
	if int(from) >= len(b.states) {
		return &BuildError{Message: "edge source out of bounds", StateID: from}
	}
	if int(to) >= len(b.states) {
		return &BuildError{Message: "edge target out of bounds", StateID: to}
	}
	s := &b.states[from]
	s.edges = append(s.edges, to)
	return nil
}

// ReplaceEdge removes every parent -> old edge and appends parent -> new
// in its place. This is the quantifier rewiring primitive: the construct
// being quantified is unlinked from its parent and the Repeat state
// substituted.
func (b *Builder) ReplaceEdge(parent, old, new StateID) error {
	if int(parent) >= len(b.states) {
		return &BuildError{Message: "edge source out of bounds", StateID: parent}
	}
	if int(new) >= len(b.states) {
		return &BuildError{Message: "edge target out of bounds", StateID: new}
	}
	s := &b.states[parent]
	found := false
	kept := s.edges[:0]
	for _, e := range s.edges {
		if e == old {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return &BuildError{
			Message: fmt.Sprintf("no edge to state %d to replace", old),
			StateID: parent,
		}
	}
	s.edges = append(kept, new)
	return nil
}

// States returns the current number of states in the arena.
func (b *Builder) States() int {
	return len(b.states)
}

// Validate checks the graph invariants:
//   - the start state is set and exactly one Start state exists
//   - exactly one Termination state exists
//   - every edge and Repeat inner reference is in bounds
//   - every Repeat has its self-loop edge and a minimum of 0 or 1
func (b *Builder) Validate() error {
	if b.start == InvalidState {
		return &BuildError{Message: "start state not set", StateID: InvalidState}
	}

	starts, terminations := 0, 0
	for i := range b.states {
		s := &b.states[i]
		id := StateID(i)

		switch s.kind {
		case KindStart:
			starts++
		case KindTermination:
			terminations++
		case KindRepeat:
			if int(s.inner) >= len(b.states) {
				return &BuildError{
					Message: fmt.Sprintf("repeat inner state %d out of bounds", s.inner),
					StateID: id,
				}
			}
			if s.min != 0 && s.min != 1 {
				return &BuildError{
					Message: fmt.Sprintf("repeat minimum %d not 0 or 1", s.min),
					StateID: id,
				}
			}
			selfLoop := false
			for _, e := range s.edges {
				if e == id {
					selfLoop = true
					break
				}
			}
			if !selfLoop {
				return &BuildError{Message: "repeat state missing self-loop", StateID: id}
			}
		}

		for _, e := range s.edges {
			if int(e) >= len(b.states) {
				return &BuildError{
					Message: fmt.Sprintf("edge target %d out of bounds", e),
					StateID: id,
				}
			}
		}
	}

	if starts != 1 {
		return &BuildError{
			Message: fmt.Sprintf("expected exactly one start state, found %d", starts),
			StateID: InvalidState,
		}
	}
	if terminations != 1 {
		return &BuildError{
			Message: fmt.Sprintf("expected exactly one termination state, found %d", terminations),
			StateID: InvalidState,
		}
	}
	return nil
}

// Build validates and finalizes the graph. The builder must not be reused
// afterwards; the returned NFA owns the arena.
func (b *Builder) Build(opts ...BuildOption) (*NFA, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	n := &NFA{
		states:      b.states,
		start:       b.start,
		termination: b.termination,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// BuildOption is a functional option for configuring the built NFA.
type BuildOption func(*NFA)

// WithPattern records the source pattern on the built NFA.
func WithPattern(pattern string) BuildOption {
	return func(n *NFA) {
		n.pattern = pattern
	}
}
