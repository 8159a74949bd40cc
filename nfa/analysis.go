package nfa

// Unbounded marks a length with no upper limit in Info.
const Unbounded = -1

// Info summarizes length facts derived from a compiled graph. The root
// engine uses it as a cheap gate: inputs outside [MinRunes, MaxRunes]
// cannot match, so simulation is skipped entirely.
type Info struct {
	// MinRunes is the fewest code points any matching input can have.
	MinRunes int

	// MaxRunes is the most code points any matching input can have, or
	// Unbounded when a quantifier allows arbitrary repetition.
	MaxRunes int
}

// Fixed reports whether every matching input has exactly MinRunes code
// points.
func (i Info) Fixed() bool {
	return i.MaxRunes == i.MinRunes
}

// Analyze walks the construct chain from Start to Termination and derives
// the length bounds. Wildcards, literals and classes each consume exactly
// one code point. A '+' repeat consumes at least one; a '*' repeat may
// consume none. Any repeat makes the upper bound unbounded.
func Analyze(n *NFA) Info {
	info := Info{}
	unbounded := false

	for id := n.Next(n.Start()); id != InvalidState && id != n.Termination(); id = n.Next(id) {
		s := n.State(id)
		switch s.Kind() {
		case KindRepeat:
			_, min := s.Repeat()
			info.MinRunes += min
			unbounded = true
		default:
			info.MinRunes++
			info.MaxRunes++
		}
	}

	if unbounded {
		info.MaxRunes = Unbounded
	}
	return info
}
