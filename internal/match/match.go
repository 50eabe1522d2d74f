// Package match provides canonical entity-name normalization and the
// whole-word matching used by both the outline scanner and the highlight
// engine.
//
// Normalization and pattern construction are deliberately separate:
// Normalize never lowercases (display text keeps its casing); matching is
// case-insensitive at the regex level only.
//
// The word-boundary rule treats hyphens as word characters, so "Party"
// does not match inside "third-party". Go's regexp has no lookaround to
// express that directly, so Count and FindAll verify boundaries on the
// candidate matches the regex produces.
package match

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize canonicalizes an entity's display name into a matchable form:
// internal whitespace runs collapse to a single space, leading/trailing
// whitespace is trimmed. Whitespace-only input normalizes to "".
// Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(name string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(name, " "))
}

// Pattern builds a case-insensitive literal regex for matchText. Regex
// metacharacters in the text are escaped, so entity names like
// "Section 2(a)" match literally.
//
// Returns ok=false when matchText normalizes to empty; callers must skip
// such entities (an empty pattern would match everywhere).
func Pattern(matchText string) (*regexp.Regexp, bool) {
	normalized := Normalize(matchText)
	if normalized == "" {
		return nil, false
	}
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(normalized)), true
}

// Count returns the number of non-overlapping whole-word matches of re in s.
func Count(re *regexp.Regexp, s string) int {
	return len(FindAll(re, s))
}

// FindAll returns the [start, end) index pairs of all non-overlapping
// whole-word matches of re in s, in order. Candidates glued to a word
// character (letters, digits, underscore, hyphen) on either side are
// partial-word occurrences and are dropped.
//
// The search advances one byte past a rejected candidate rather than past
// its end: a valid occurrence may start inside a rejected span, as in
// "third-party party party" for the text "party party".
func FindAll(re *regexp.Regexp, s string) [][]int {
	var spans [][]int
	offset := 0
	for offset <= len(s) {
		span := re.FindStringIndex(s[offset:])
		if span == nil {
			break
		}
		start, end := offset+span[0], offset+span[1]
		if wordBefore(s, start) || wordAfter(s, end) {
			offset = start + 1
			continue
		}
		spans = append(spans, []int{start, end})
		if end == start {
			end++
		}
		offset = end
	}
	return spans
}

func wordBefore(s string, i int) bool {
	if i <= 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return isWordRune(r)
}

func wordAfter(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}
