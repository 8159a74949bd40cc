package tinyregex

import (
	"errors"
	"sync"
	"testing"

	"github.com/coregx/tinyregex/nfa"
)

func TestCompile_InvalidPatterns(t *testing.T) {
	tests := []string{"", "*", "+", "*abc", "+x", "[abc", "a[0-9"}

	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			p, err := Compile(pattern)
			if err == nil {
				t.Fatalf("Compile(%q) succeeded, want error", pattern)
			}
			if p != nil {
				t.Error("Compile returned non-nil pattern with error")
			}
			if !errors.Is(err, nfa.ErrInvalidPattern) {
				t.Errorf("error %v does not wrap nfa.ErrInvalidPattern", err)
			}
		})
	}
}

func TestMustCompile(t *testing.T) {
	p := MustCompile("a*b")
	if p.String() != "a*b" {
		t.Errorf("String() = %q, want %q", p.String(), "a*b")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustCompile should panic on an invalid pattern")
		}
	}()
	MustCompile("*oops")
}

func TestCompileWithConfig(t *testing.T) {
	config := DefaultConfig()
	config.MaxStates = 3

	_, err := CompileWithConfig("abcdef", config)
	if !errors.Is(err, nfa.ErrTooComplex) {
		t.Errorf("error %v does not wrap nfa.ErrTooComplex", err)
	}
}

func TestPattern_Match_InputRequired(t *testing.T) {
	patterns := []string{"a", "a*", "[0-9]+"}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			p := MustCompile(pattern)

			ok, err := p.Match(nil)
			if !errors.Is(err, ErrInputRequired) {
				t.Errorf("Match(nil) error = %v, want ErrInputRequired", err)
			}
			if ok {
				t.Error("Match(nil) = true, want false")
			}

			// An empty input is a value, not an absence of one.
			if _, err := p.Match([]byte{}); err != nil {
				t.Errorf("Match(empty) error = %v, want nil", err)
			}
		})
	}
}

func TestPattern_Match_EmptyInput(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{"a*", true},
		{"a*b*", true},
		{"a+", false},
		{"a", false},
		{".", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p := MustCompile(tt.pattern)
			got, err := p.Match([]byte{})
			if err != nil {
				t.Fatalf("Match failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Match(empty) = %v, want %v", got, tt.want)
			}
			if gotStr := p.MatchString(""); gotStr != tt.want {
				t.Errorf("MatchString(\"\") = %v, want %v", gotStr, tt.want)
			}
		})
	}
}

func TestPattern_MatchString(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"a.c", "abc", true},
		{"a.c", "ac", false},
		{"a.c", "axc", true},
		{"a*", "aaaa", true},
		{"a*", "b", false},
		{"a+", "a", true},
		{"a+", "", false},
		{"[a-z0-9]+", "abc123", true},
		{"[a-z0-9]+", "ABC", false},
		{"[^0-9]", "5", false},
		{"[^0-9]", "x", true},
		{"[^0-9]", "xx", false},
		{"hello", "hello", true},
		{"hello", "hello!", false},
		{"x[0-9]*y", "xy", true},
		{"x[0-9]*y", "x123y", true},
		{"x[0-9]*y", "x12z", false},
		{"дом.*", "домик", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			p := MustCompile(tt.pattern)
			if got := p.MatchString(tt.input); got != tt.want {
				t.Errorf("MatchString(%q) = %v, want %v", tt.input, got, tt.want)
			}

			got, err := p.Match([]byte(tt.input))
			if err != nil {
				t.Fatalf("Match failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPattern_StrategySelection(t *testing.T) {
	tests := []struct {
		pattern string
		want    strategy
	}{
		{"hello", strategyLiteral},
		{"[a]b", strategyLiteral},
		{"a.c", strategyPrefilteredNFA},
		{"xa+y", strategyPrefilteredNFA},
		{".*", strategyNFA},
		{"[a-z]+", strategyNFA},
		{"a*", strategyNFA},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p := MustCompile(tt.pattern)
			if p.strategy != tt.want {
				t.Errorf("strategy = %v, want %v", p.strategy, tt.want)
			}
		})
	}
}

// Whatever strategy compilation picks, the observable behavior must be the
// plain simulation's.
func TestPattern_StrategyEquivalence(t *testing.T) {
	patterns := []string{"hello", "a.c", "xa+y", ".*", "[a-z]+", "ab*cd"}
	inputs := []string{
		"", "a", "ac", "abc", "axc", "hello", "hell", "hello!",
		"xay", "xaay", "xy", "abcd", "abbcd", "acd", "zzz",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			p := MustCompile(pattern)

			graph, err := nfa.Compile(pattern)
			if err != nil {
				t.Fatalf("Compile failed: %v", err)
			}
			sim := nfa.NewSimulator(graph)

			for _, input := range inputs {
				want := sim.IsMatchString(input)
				if got := p.MatchString(input); got != want {
					t.Errorf("input %q: strategy %v says %v, simulation says %v",
						input, p.strategy, got, want)
				}
			}
		})
	}
}

func TestPattern_Concurrent(t *testing.T) {
	p := MustCompile("[a-z]+[0-9]+")

	tests := []struct {
		input string
		want  bool
	}{
		{"abc123", true},
		{"abc", false},
		{"123", false},
		{"z9", true},
		{"", false},
	}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				for _, tt := range tests {
					if got := p.MatchString(tt.input); got != tt.want {
						t.Errorf("MatchString(%q) = %v, want %v", tt.input, got, tt.want)
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestStrategy_String(t *testing.T) {
	tests := []struct {
		s    strategy
		want string
	}{
		{strategyNFA, "NFA"},
		{strategyPrefilteredNFA, "PrefilteredNFA"},
		{strategyLiteral, "Literal"},
		{strategy(42), "Unknown(42)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func BenchmarkPattern_MatchLiteral(b *testing.B) {
	p := MustCompile("hello world")
	input := []byte("hello world")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.isMatch(input)
	}
}

func BenchmarkPattern_MatchPrefiltered(b *testing.B) {
	p := MustCompile("error.*timeout")
	input := []byte("error: connection timeout")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.isMatch(input)
	}
}
