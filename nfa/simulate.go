package nfa

import (
	"unicode/utf8"

	"github.com/coregx/tinyregex/internal/conv"
	"github.com/coregx/tinyregex/internal/sparse"
)

// Simulator runs a compiled graph against input strings by keeping every
// reachable state active at once. There is no backtracking: each input
// character advances the whole active set in one step, so a run is
// O(edges) per character.
//
// Thread safety: the Simulator itself only holds the immutable graph. The
// methods without an explicit state use an internal SimState and are NOT
// safe for concurrent use; for concurrent matching give each goroutine its
// own SimState and use IsMatchWithState.
type Simulator struct {
	nfa *NFA

	internalState SimState
}

// SimState holds the mutable buffers of one simulation run: the current
// and next active-state sets, and the visited set plus queue shared by the
// closure and termination searches. Reusing a SimState across runs avoids
// reallocating them.
type SimState struct {
	curr    *sparse.Set
	next    *sparse.Set
	visited *sparse.Set
	queue   []StateID
}

// NewSimulator creates a simulator for the given graph.
func NewSimulator(n *NFA) *Simulator {
	s := &Simulator{nfa: n}
	s.InitState(&s.internalState)
	return s
}

// NewState allocates a SimState sized for this simulator's graph, ready
// for use with IsMatchWithState.
func (s *Simulator) NewState() *SimState {
	st := &SimState{}
	s.InitState(st)
	return st
}

// InitState initializes st for use with this simulator.
func (s *Simulator) InitState(st *SimState) {
	capacity := conv.IntToUint32(s.nfa.States())
	st.curr = sparse.New(capacity)
	st.next = sparse.New(capacity)
	st.visited = sparse.New(capacity)
	st.queue = make([]StateID, 0, s.nfa.States())
}

// IsMatch reports whether input, as a whole, matches the graph's pattern.
// It uses the simulator's internal state and is not safe for concurrent
// use; see IsMatchWithState.
func (s *Simulator) IsMatch(input []byte) bool {
	return s.IsMatchWithState(&s.internalState, input)
}

// IsMatchString is IsMatch for a string input.
func (s *Simulator) IsMatchString(input string) bool {
	return s.IsMatchWithState(&s.internalState, []byte(input))
}

// IsMatchWithState reports whether input matches, using st for all mutable
// buffers. Distinct states may run concurrently over the same Simulator.
//
// The run starts from the zero-width closure of {Start}. For each input
// code point the next active set is every successor of the current set
// that accepts the code point; an empty set rejects immediately. After the
// input is consumed the run accepts iff a Termination state is reachable
// from the active set without consuming further characters.
func (s *Simulator) IsMatchWithState(st *SimState, input []byte) bool {
	st.curr.Clear()
	st.curr.Insert(uint32(s.nfa.Start()))
	s.closure(st, st.curr)

	for i := 0; i < len(input); {
		r, size := utf8.DecodeRune(input[i:])
		i += size

		st.next.Clear()
		for _, v := range st.curr.Values() {
			for _, succ := range s.nfa.State(StateID(v)).Edges() {
				if s.nfa.Accepts(succ, r) {
					st.next.Insert(uint32(succ))
				}
			}
		}
		if st.next.IsEmpty() {
			return false
		}
		st.curr, st.next = st.next, st.curr
		s.closure(st, st.curr)
	}

	return s.canTerminate(st, st.curr)
}

// closure expands set in place with every zero-width Repeat reachable from
// it: a '*' construct can be skipped without consuming a character, so its
// state must already be active for the next transition step to see what
// follows it. The search is breadth-first from the set's members; any
// successor that is a Repeat with minimum 0 is folded into the set and
// explored further, while every other kind is a boundary whose successors
// are not auto-included. The visited set guards against the Repeat
// self-loops.
//
// A Repeat with minimum 1 ('+') never extends the closure, even once
// satisfied; the transition step alone decides when it has consumed enough.
func (s *Simulator) closure(st *SimState, set *sparse.Set) {
	st.visited.Clear()
	st.queue = st.queue[:0]
	for _, v := range set.Values() {
		st.queue = append(st.queue, StateID(v))
	}

	for head := 0; head < len(st.queue); head++ {
		id := st.queue[head]
		if st.visited.Contains(uint32(id)) {
			continue
		}
		st.visited.Insert(uint32(id))

		for _, succ := range s.nfa.State(id).Edges() {
			if s.nfa.IsZeroWidth(succ) {
				set.Insert(uint32(succ))
				if !st.visited.Contains(uint32(succ)) {
					st.queue = append(st.queue, succ)
				}
			}
		}
	}
}

// canTerminate reports whether a Termination state is reachable from set
// without consuming input: directly as a successor of a member, or through
// a chain of zero-width ('*') Repeats. Breadth-first with a visited guard,
// like closure.
func (s *Simulator) canTerminate(st *SimState, set *sparse.Set) bool {
	st.visited.Clear()
	st.queue = st.queue[:0]
	for _, v := range set.Values() {
		st.queue = append(st.queue, StateID(v))
	}

	for head := 0; head < len(st.queue); head++ {
		id := st.queue[head]
		if st.visited.Contains(uint32(id)) {
			continue
		}
		st.visited.Insert(uint32(id))

		for _, succ := range s.nfa.State(id).Edges() {
			if succ == s.nfa.Termination() {
				return true
			}
			if s.nfa.IsZeroWidth(succ) && !st.visited.Contains(uint32(succ)) {
				st.queue = append(st.queue, succ)
			}
		}
	}
	return false
}
