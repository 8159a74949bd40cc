package prefilter

import (
	"testing"

	"github.com/coregx/tinyregex/literal"
	"github.com/coregx/tinyregex/nfa"
)

func frag(s string) literal.Fragment {
	return literal.Fragment{Bytes: []byte(s)}
}

func TestFromSeq_Empty(t *testing.T) {
	if pf := FromSeq(literal.NewSeq()); pf != nil {
		t.Errorf("FromSeq(empty) = %v, want nil", pf)
	}
}

func TestFromSeq_SingleFragment(t *testing.T) {
	pf := FromSeq(literal.NewSeq(frag("needle")))
	if pf == nil {
		t.Fatal("FromSeq returned nil for a one-fragment sequence")
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"needle", true},
		{"hay needle hay", true},
		{"needl", false},
		{"", false},
		{"NEEDLE", false},
	}
	for _, tt := range tests {
		if got := pf.Matches([]byte(tt.input)); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFromSeq_OrderedFragments(t *testing.T) {
	pf := FromSeq(literal.NewSeq(frag("ab"), frag("cd")))
	if pf == nil {
		t.Fatal("FromSeq returned nil for a two-fragment sequence")
	}

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"adjacent in order", "abcd", true},
		{"separated in order", "ab--cd", true},
		{"surrounded", "xxabyycdzz", true},
		{"wrong order", "cdab", false},
		{"first only", "ab", false},
		{"second only", "cd", false},
		{"overlapping occurrence is not enough", "abd", false},
		{"empty", "", false},
		{"neither", "xyz", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pf.Matches([]byte(tt.input)); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromSeq_RepeatedFragment(t *testing.T) {
	// The same fragment twice must be found at two distinct positions.
	pf := FromSeq(literal.NewSeq(frag("a"), frag("a")))

	if pf.Matches([]byte("a")) {
		t.Error("one occurrence should not satisfy two required fragments")
	}
	if !pf.Matches([]byte("aa")) {
		t.Error("two occurrences should satisfy two required fragments")
	}
}

// A prefilter may only reject inputs the full engine would reject: for
// every matching input, Matches must return true.
func TestFromSeq_Conservative(t *testing.T) {
	tests := []struct {
		pattern string
		inputs  []string
	}{
		{"xa+y", []string{"xay", "xaay", "xaaaay"}},
		{"ab*cd", []string{"acd", "abcd", "abbbcd"}},
		{"a.c", []string{"abc", "axc", "a.c"}},
		{"x[0-9]+y[a-z]+z", []string{"x1yaz", "x99yzzz"}},
		{"a+b+a+", []string{"aba", "aabbaa"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n, err := nfa.Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile failed: %v", err)
			}
			sim := nfa.NewSimulator(n)
			pf := FromSeq(literal.Extract(n))
			if pf == nil {
				t.Skip("no fragments extracted")
			}

			for _, input := range tt.inputs {
				if !sim.IsMatchString(input) {
					t.Fatalf("test setup broken: %q should match %q", input, tt.pattern)
				}
				if !pf.Matches([]byte(input)) {
					t.Errorf("prefilter rejected matching input %q", input)
				}
			}
		})
	}
}
