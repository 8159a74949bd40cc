package nfa

// Config holds compilation limits.
type Config struct {
	// MaxStates bounds the arena size. Compilation fails with
	// ErrTooComplex when the graph would exceed it. The scanner creates at
	// most two states per pattern rune, so the default is far beyond any
	// reasonable pattern.
	MaxStates int
}

// DefaultConfig returns the default compilation limits.
func DefaultConfig() Config {
	return Config{
		MaxStates: 10000,
	}
}

// Compiler turns pattern strings into immutable NFA graphs.
type Compiler struct {
	config Config
}

// NewCompiler creates a compiler with the given configuration.
func NewCompiler(config Config) *Compiler {
	return &Compiler{config: config}
}

// NewDefaultCompiler creates a compiler with DefaultConfig.
func NewDefaultCompiler() *Compiler {
	return NewCompiler(DefaultConfig())
}

// Compile compiles pattern with the default configuration.
func Compile(pattern string) (*NFA, error) {
	return NewDefaultCompiler().Compile(pattern)
}

// Compile scans the pattern once, left to right, and builds its graph.
//
// The scanner maintains the ordered list of top-level constructs built so
// far. Literals, wildcards and character classes append a construct linked
// from the previous one (or from Start). A quantifier wraps the most recent
// construct in a Repeat state: the construct is unlinked from its parent,
// the Repeat substituted in its place, and a self-loop added so the Repeat
// can consume further repetitions. After the scan, a Termination state is
// linked from the last construct.
//
// Returns *CompileError wrapping ErrInvalidPattern for an empty pattern, a
// pattern starting with a bare '*' or '+', or an unclosed character class;
// and wrapping ErrTooComplex when Config.MaxStates is exceeded. Positions
// reported in errors are rune indices into the pattern.
func (c *Compiler) Compile(pattern string) (*NFA, error) {
	runes := []rune(pattern)
	if len(runes) == 0 {
		return nil, &CompileError{Pattern: pattern, Pos: 0, Err: errEmptyPattern}
	}
	if runes[0] == '*' || runes[0] == '+' {
		return nil, &CompileError{Pattern: pattern, Pos: 0, Err: errBareQuantifier}
	}

	b := NewBuilderWithCapacity(len(runes) + 2)
	start := b.AddStart()

	// One entry per top-level construct, not per pattern rune.
	var constructs []StateID

	// parent of the next construct to append
	link := func(id StateID) error {
		parent := start
		if len(constructs) > 0 {
			parent = constructs[len(constructs)-1]
		}
		return b.AddEdge(parent, id)
	}

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '*' || r == '+':
			// The leading-quantifier check above guarantees at least one
			// construct exists here.
			min := 0
			if r == '+' {
				min = 1
			}
			prev := constructs[len(constructs)-1]
			rep := b.AddRepeat(prev, min)

			parent := start
			if len(constructs) >= 2 {
				parent = constructs[len(constructs)-2]
			}
			if err := b.ReplaceEdge(parent, prev, rep); err != nil {
				return nil, &CompileError{Pattern: pattern, Pos: i, Err: err}
			}
			if err := b.AddEdge(rep, rep); err != nil {
				return nil, &CompileError{Pattern: pattern, Pos: i, Err: err}
			}
			constructs[len(constructs)-1] = rep
			i++

		case r == '[':
			// Scan forward to the matching ']'. Classes do not nest and
			// ']' cannot be escaped.
			j := i + 1
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j >= len(runes) {
				return nil, &CompileError{Pattern: pattern, Pos: i, Err: errUnclosedClass}
			}
			id := b.AddClass(parseClass(runes[i+1 : j]))
			if err := link(id); err != nil {
				return nil, &CompileError{Pattern: pattern, Pos: i, Err: err}
			}
			constructs = append(constructs, id)
			i = j + 1

		case r == '.':
			id := b.AddWildcard()
			if err := link(id); err != nil {
				return nil, &CompileError{Pattern: pattern, Pos: i, Err: err}
			}
			constructs = append(constructs, id)
			i++

		default:
			id := b.AddLiteral(r)
			if err := link(id); err != nil {
				return nil, &CompileError{Pattern: pattern, Pos: i, Err: err}
			}
			constructs = append(constructs, id)
			i++
		}

		if b.States() > c.config.MaxStates {
			return nil, &CompileError{Pattern: pattern, Pos: i, Err: ErrTooComplex}
		}
	}

	term := b.AddTermination()
	last := start
	if len(constructs) > 0 {
		last = constructs[len(constructs)-1]
	}
	if err := b.AddEdge(last, term); err != nil {
		return nil, &CompileError{Pattern: pattern, Pos: len(runes), Err: err}
	}

	n, err := b.Build(WithPattern(pattern))
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Pos: len(runes), Err: err}
	}
	return n, nil
}

// parseClass parses the body of a bracketed class (the runes between '['
// and ']').
//
// An optional leading '^' negates the class. The remaining runes are
// scanned left to right: a rune followed by '-' and a further rune forms an
// inclusive range and advances the scan by three; anything else is a single
// and advances by one. A dangling '-' with no right endpoint degrades to
// singles. Ranges are stored as written; a reversed range like [z-a] is
// simply empty under Contains.
func parseClass(body []rune) *Class {
	negated := false
	if len(body) > 0 && body[0] == '^' {
		negated = true
		body = body[1:]
	}

	var ranges []RuneRange
	var singles []rune
	for i := 0; i < len(body); {
		if i+2 < len(body) && body[i+1] == '-' {
			ranges = append(ranges, RuneRange{Lo: body[i], Hi: body[i+2]})
			i += 3
		} else {
			singles = append(singles, body[i])
			i++
		}
	}
	return NewClass(ranges, singles, negated)
}
