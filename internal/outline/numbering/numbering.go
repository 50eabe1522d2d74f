// Package numbering formats structural outline addresses ("2.b.iii") from
// per-depth counters.
//
// A Style is a pure, deterministic formatter: the scanner injects one and
// never assumes anything about its output beyond determinism. Styles cycle
// their level formats when an outline nests deeper than the configured
// levels.
package numbering

import (
	"strconv"
	"strings"
)

// Format names a single-level counter rendering.
type Format string

const (
	Decimal    Format = "decimal"     // 1, 2, 3
	LowerAlpha Format = "lower-alpha" // a, b, ... z, aa, ab
	UpperAlpha Format = "upper-alpha" // A, B, ... Z, AA, AB
	LowerRoman Format = "lower-roman" // i, ii, iii
	UpperRoman Format = "upper-roman" // I, II, III
)

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	switch f {
	case Decimal, LowerAlpha, UpperAlpha, LowerRoman, UpperRoman:
		return true
	}
	return false
}

// Style renders a node's structural prefix from the running per-depth
// counters. Levels[d] formats the counter at depth d, cycling when the
// outline nests deeper than len(Levels). Separator joins the rendered
// components.
type Style struct {
	Levels    []Format
	Separator string
}

// Legal is the default drafting style: decimal, lower-alpha, lower-roman,
// cycling ("2", "2.b", "2.b.iii", "2.b.iii.4", ...).
func Legal() Style {
	return Style{
		Levels:    []Format{Decimal, LowerAlpha, LowerRoman},
		Separator: ".",
	}
}

// Prefix formats indices[0..depth] into a structural address. indices holds
// the 1-based running counter for each depth; entries past depth are
// ignored. Returns "" for a negative depth or empty indices.
func (s Style) Prefix(depth int, indices []int) string {
	if depth < 0 || len(indices) == 0 {
		return ""
	}
	if depth >= len(indices) {
		depth = len(indices) - 1
	}

	levels := s.Levels
	if len(levels) == 0 {
		levels = []Format{Decimal}
	}
	sep := s.Separator
	if sep == "" {
		sep = "."
	}

	parts := make([]string, 0, depth+1)
	for d := 0; d <= depth; d++ {
		parts = append(parts, formatIndex(levels[d%len(levels)], indices[d]))
	}
	return strings.Join(parts, sep)
}

func formatIndex(f Format, n int) string {
	if n < 1 {
		n = 1
	}
	switch f {
	case LowerAlpha:
		return alpha(n)
	case UpperAlpha:
		return strings.ToUpper(alpha(n))
	case LowerRoman:
		return roman(n)
	case UpperRoman:
		return strings.ToUpper(roman(n))
	default:
		return strconv.Itoa(n)
	}
}

// alpha renders 1-based n in bijective base-26: a..z, aa, ab, ...
func alpha(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('a' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

func roman(n int) string {
	var sb strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			sb.WriteString(rv.symbol)
			n -= rv.value
		}
	}
	return sb.String()
}
