// Package tinyregex compiles a restricted regular-expression syntax into an
// explicit NFA graph and matches whole input strings against it, without
// delegating to any native regex facility.
//
// Supported syntax:
//   - literal characters (any code point)
//   - '.' matching any single character
//   - '[...]' character classes with 'x-y' ranges and '^' negation
//   - postfix '*' (zero or more) and '+' (one or more) applied to the
//     immediately preceding construct
//
// There is no alternation, grouping, anchoring, backreferences or bounded
// repetition. A pattern always matches the entire input: tinyregex answers
// "does this string have this shape", not "does it contain it".
//
// Basic usage:
//
//	p, err := tinyregex.Compile("[a-z]+@[a-z]+")
//	if err != nil {
//	    // pattern is invalid
//	}
//	p.MatchString("user@host") // true
//	p.MatchString("user@")     // false
//
// Matching runs the NFA with every reachable state active at once, so the
// worst case is O(|pattern| x |input|) with no backtracking. Compilation
// additionally derives length bounds and required literal fragments from
// the graph and uses them to reject impossible inputs before simulating.
//
// A compiled Pattern is immutable and safe for concurrent use.
package tinyregex

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/coregx/tinyregex/literal"
	"github.com/coregx/tinyregex/nfa"
	"github.com/coregx/tinyregex/prefilter"
)

// ErrInputRequired is returned by Pattern.Match when no input value is
// supplied (a nil slice). An empty input is not an error: it is a legal
// string to test against the pattern.
var ErrInputRequired = errors.New("input required: no input value supplied")

// strategy selects how a compiled pattern decides matches. Every strategy
// is behaviorally identical to running the plain simulation; the cheaper
// ones only exist because the graph proves them equivalent.
type strategy uint8

const (
	// strategyNFA runs the state-set simulation directly.
	strategyNFA strategy = iota

	// strategyPrefilteredNFA gates the simulation behind a required-
	// fragment prefilter.
	strategyPrefilteredNFA

	// strategyLiteral decides by byte equality; the pattern is a plain
	// literal.
	strategyLiteral
)

// String returns a human-readable representation of the strategy.
func (s strategy) String() string {
	switch s {
	case strategyNFA:
		return "NFA"
	case strategyPrefilteredNFA:
		return "PrefilteredNFA"
	case strategyLiteral:
		return "Literal"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// Pattern is a compiled pattern. It is immutable and safe for concurrent
// use: per-match simulation buffers come from an internal pool.
type Pattern struct {
	expr     string
	graph    *nfa.NFA
	sim      *nfa.Simulator
	info     nfa.Info
	strategy strategy

	// exact is the whole-pattern literal when strategy is strategyLiteral.
	exact []byte

	// filter is the quick-reject gate when strategy is
	// strategyPrefilteredNFA, nil otherwise.
	filter prefilter.Prefilter

	states sync.Pool
}

// Compile compiles a pattern with the default configuration.
//
// The error wraps nfa.ErrInvalidPattern for an empty pattern, a pattern
// starting with a bare '*' or '+', or an unclosed character class.
func Compile(pattern string) (*Pattern, error) {
	return CompileWithConfig(pattern, nfa.DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom compilation limits.
func CompileWithConfig(pattern string, config nfa.Config) (*Pattern, error) {
	graph, err := nfa.NewCompiler(config).Compile(pattern)
	if err != nil {
		return nil, err
	}

	p := &Pattern{
		expr:  pattern,
		graph: graph,
		sim:   nfa.NewSimulator(graph),
		info:  nfa.Analyze(graph),
	}
	p.states.New = func() any {
		return p.sim.NewState()
	}

	seq := literal.Extract(graph)
	switch {
	case seq.Complete() && seq.Len() == 1:
		p.strategy = strategyLiteral
		p.exact = seq.Get(0).Bytes
	case !seq.IsEmpty():
		p.strategy = strategyPrefilteredNFA
		p.filter = prefilter.FromSeq(seq)
	default:
		p.strategy = strategyNFA
	}

	return p, nil
}

// MustCompile compiles a pattern and panics if it is invalid. Use for
// patterns known to be valid at program start.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic("tinyregex: Compile(`" + pattern + "`): " + err.Error())
	}
	return p
}

// DefaultConfig returns the default compilation limits, for customizing
// and passing to CompileWithConfig.
func DefaultConfig() nfa.Config {
	return nfa.DefaultConfig()
}

// String returns the source pattern.
func (p *Pattern) String() string {
	return p.expr
}

// Match reports whether input, as a whole, matches the pattern.
//
// A nil input means no input value was supplied and returns
// ErrInputRequired. An empty non-nil input is legal and is simply tested
// for acceptance (for example, "a*" accepts it).
func (p *Pattern) Match(input []byte) (bool, error) {
	if input == nil {
		return false, ErrInputRequired
	}
	return p.isMatch(input), nil
}

// MatchString reports whether s, as a whole, matches the pattern. A string
// is always a value, so no input-required case exists.
func (p *Pattern) MatchString(s string) bool {
	return p.isMatch([]byte(s))
}

func (p *Pattern) isMatch(input []byte) bool {
	// Length gate: inputs outside the pattern's derivable bounds cannot
	// match and skip everything below.
	runes := utf8.RuneCount(input)
	if runes < p.info.MinRunes {
		return false
	}
	if p.info.MaxRunes != nfa.Unbounded && runes > p.info.MaxRunes {
		return false
	}

	switch p.strategy {
	case strategyLiteral:
		return bytes.Equal(input, p.exact)
	case strategyPrefilteredNFA:
		if p.filter != nil && !p.filter.Matches(input) {
			return false
		}
	}

	st := p.states.Get().(*nfa.SimState)
	defer p.states.Put(st)
	return p.sim.IsMatchWithState(st, input)
}
