package match

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "Acme Corp", want: "Acme Corp"},
		{name: "internal runs collapse", input: "Acme \t  Corp", want: "Acme Corp"},
		{name: "trims ends", input: "  Acme Corp  ", want: "Acme Corp"},
		{name: "whitespace only", input: " \t\n ", want: ""},
		{name: "empty", input: "", want: ""},
		{name: "case preserved", input: "ACME corp", want: "ACME corp"},
		{name: "newlines collapse", input: "Acme\nCorp", want: "Acme Corp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
			// Idempotence: normalizing a normalized string is a no-op.
			if again := Normalize(got); again != got {
				t.Errorf("Normalize not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestPatternEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		if _, ok := Pattern(input); ok {
			t.Errorf("Pattern(%q) should report not ok", input)
		}
	}
}

func TestPatternWordBoundary(t *testing.T) {
	tests := []struct {
		name      string
		matchText string
		label     string
		want      int
	}{
		{name: "whole word matches", matchText: "Party", label: "the Party shall", want: 1},
		{name: "partial word excluded", matchText: "Party", label: "third-party logistics", want: 0},
		{name: "case insensitive", matchText: "acme corp", label: "ACME CORP and Acme Corp", want: 2},
		{name: "repeated occurrences", matchText: "Acme Corp", label: "Acme Corp, Acme Corp, and Acme Corp", want: 3},
		{name: "metacharacters literal", matchText: "Section 2(a)", label: "per Section 2(a) hereof", want: 1},
		{name: "metacharacters no regex semantics", matchText: "a.b", label: "axb", want: 0},
		{name: "hyphenated compound excluded", matchText: "party", label: "counter-party obligations", want: 0},
		{name: "punctuation boundary matches", matchText: "Acme Corp", label: "(Acme Corp) wins", want: 1},
		{name: "valid occurrence starting inside rejected span", matchText: "party party", label: "third-party party party", want: 1},
		{name: "rejected tail does not hide earlier word", matchText: "party", label: "the party party-goers party", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, ok := Pattern(tt.matchText)
			if !ok {
				t.Fatalf("Pattern(%q) not ok", tt.matchText)
			}
			if got := Count(re, tt.label); got != tt.want {
				t.Errorf("Count(%q in %q) = %d, want %d", tt.matchText, tt.label, got, tt.want)
			}
		})
	}
}

func TestFindAllOrder(t *testing.T) {
	re, ok := Pattern("Buyer")
	if !ok {
		t.Fatal("Pattern not ok")
	}
	spans := FindAll(re, "Buyer pays; the Buyer delivers")
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}
	if spans[0][0] != 0 || spans[0][1] != 5 {
		t.Errorf("first span = %v, want [0 5]", spans[0])
	}
	if spans[1][0] != 16 || spans[1][1] != 21 {
		t.Errorf("second span = %v, want [16 21]", spans[1])
	}
}
