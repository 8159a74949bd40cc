package literal

import (
	"unicode/utf8"

	"github.com/coregx/tinyregex/nfa"
)

// Extract walks the compiled construct chain and collects the required
// fragments.
//
// Runs of single-rune constructs (literals and one-member non-negated
// classes) accumulate into a fragment. A '+' repeat of a single-rune
// construct contributes that rune once — its first repetition is adjacent
// to the run built so far — and then ends the run, since later input
// positions may hold further repetitions. Wildcards, multi-member classes
// and '*' repeats contribute nothing and end the current run.
//
// Extraction is conservative by construction: it only ever weakens the
// pattern, so a prefilter built from the result can reject but never
// misreject.
func Extract(n *nfa.NFA) *Seq {
	var fragments []Fragment
	var run []byte
	complete := true

	flush := func() {
		if len(run) > 0 {
			fragments = append(fragments, Fragment{Bytes: run})
			run = nil
		}
	}

	for id := n.Next(n.Start()); id != nfa.InvalidState && id != n.Termination(); id = n.Next(id) {
		s := n.State(id)
		switch s.Kind() {
		case nfa.KindLiteral, nfa.KindClass:
			if r, ok := singleRune(s); ok {
				run = utf8.AppendRune(run, r)
			} else {
				complete = false
				flush()
			}

		case nfa.KindRepeat:
			complete = false
			inner, min := s.Repeat()
			if min == 1 {
				if r, ok := singleRune(baseState(n, inner)); ok {
					run = utf8.AppendRune(run, r)
				}
			}
			flush()

		default:
			complete = false
			flush()
		}
	}
	flush()

	return &Seq{fragments: fragments, complete: complete}
}

// singleRune reports whether the state accepts exactly one code point, and
// which.
func singleRune(s *nfa.State) (rune, bool) {
	switch s.Kind() {
	case nfa.KindLiteral:
		return s.Symbol(), true
	case nfa.KindClass:
		c := s.Class()
		if !c.Negated() && len(c.Ranges()) == 0 && len(c.Singles()) == 1 {
			return c.Singles()[0], true
		}
	}
	return 0, false
}

// baseState resolves nested repeats down to the construct that actually
// consumes characters.
func baseState(n *nfa.NFA, id nfa.StateID) *nfa.State {
	s := n.State(id)
	for s != nil && s.Kind() == nfa.KindRepeat {
		inner, _ := s.Repeat()
		s = n.State(inner)
	}
	return s
}
