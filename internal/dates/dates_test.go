package dates

import (
	"testing"
	"time"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"2026-03-01", true},
		{"2026-02-29", false},
		{"2024-02-29", true},
		{"2026-3-1", false},
		{"March 1, 2026", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			if got := IsValid(tt.s); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	want := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		s    string
	}{
		{name: "iso", s: "2026-03-01"},
		{name: "long form", s: "March 1, 2026"},
		{name: "abbreviated", s: "Mar 1, 2026"},
		{name: "day first", s: "1 March 2026"},
		{name: "slashes", s: "03/01/2026"},
		{name: "rfc3339 keeps date part", s: "2026-03-01T15:04:05Z"},
		{name: "surrounding space", s: "  2026-03-01  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.s)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.s, err)
			}
			if !got.Equal(want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.s, got, want)
			}
		})
	}

	t.Run("rejects garbage", func(t *testing.T) {
		for _, s := range []string{"", "not a date", "2026-13-40"} {
			if _, err := Parse(s); err == nil {
				t.Errorf("Parse(%q) succeeded", s)
			}
		}
	})
}

func TestFormat(t *testing.T) {
	d := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	if got := Format(d); got != "2026-03-01" {
		t.Errorf("Format = %q", got)
	}
}
