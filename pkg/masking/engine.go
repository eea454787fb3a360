// Package masking implements the numeric-content masking engine: it
// classifies substrings of arbitrary page text as numeric expressions to
// mask or date/time expressions to protect, and applies a meaning-erasing
// placeholder substitution. The engine is pure and stateless between
// calls; both serving surfaces (HTTP and gRPC) invoke it identically.
package masking

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// placeholderRune replaces a single masked digit or letter in
	// character-preserving mode.
	placeholderRune = '•'

	// hiddenPlaceholder replaces an entire masked expression in
	// hide-magnitude mode, regardless of the expression's length.
	hiddenPlaceholder = "•••"
)

// protectedPatterns are the date/time expressions exempt from masking.
// Each pattern is matched independently over the whole input; all hits
// are unioned into the protected-range set.
//
// The bare 4-digit pattern intentionally matches any 4-digit run, not just
// plausible years — a 4-digit identifier is treated as a protected year.
// Narrowing it to 1900–2099 is a product decision, not an engine fix.
var protectedPatterns = []string{
	// Month name (3-letter abbreviation or full, including "Sept"),
	// day, optional comma + 2-4 digit year: "Nov 22, 2025", "March 3".
	`(?i)\b(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\s+\d{1,2}(?:,\s*\d{2,4})?\b`,
	// Numeric dates: "11/22" and "11/22/25".
	`\b\d{1,2}/\d{1,2}(?:/\d{2,4})?\b`,
	// Bare 4-digit year.
	`\b\d{4}\b`,
	// Relative day markers: "Day 3".
	`(?i)\bday\s+\d{1,2}\b`,
}

// numericPattern matches a maximal numeric expression: digits, repeated
// separator+digit groups, and an optional magnitude suffix (k/m/b/t,
// optionally followed by "n", optionally space-separated). The trailing
// \b keeps the suffix from consuming the first letter of an unrelated
// following word: "100 this" matches "100", never "100 t".
const numericPattern = `(?i)\d+(?:[.,]\d+)*(?:\s?[kmbt]n?\b)?`

// numberWords is the fixed set of spelled-out number literals, matched
// whole-word and case-insensitively. There is no compound grammar:
// "twenty three" is two independent matches.
var numberWords = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
	"twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty",
	"ninety", "hundred", "thousand", "million", "billion", "trillion",
}

// Engine is the masking engine. All patterns are compiled eagerly at
// construction; compiled *regexp.Regexp values carry no scan-position
// state, so a single Engine is safe for concurrent use from any number
// of callers without locking.
type Engine struct {
	protected []*regexp.Regexp
	numeric   *regexp.Regexp
	words     *regexp.Regexp
}

// NewEngine compiles all matching patterns and returns a ready engine.
// Created once at application startup and shared by both serving surfaces.
func NewEngine() *Engine {
	e := &Engine{
		protected: make([]*regexp.Regexp, 0, len(protectedPatterns)),
		numeric:   regexp.MustCompile(numericPattern),
		words:     regexp.MustCompile(wordNumberPattern()),
	}
	for _, p := range protectedPatterns {
		e.protected = append(e.protected, regexp.MustCompile(p))
	}

	slog.Info("Masking engine initialized",
		"protected_patterns", len(e.protected),
		"number_words", len(numberWords))

	return e
}

// wordNumberPattern builds the whole-word alternation over numberWords.
// Longer literals are placed first so "sixteen" is never matched as "six"
// plus a failed boundary.
func wordNumberPattern() string {
	words := make([]string, len(numberWords))
	copy(words, numberWords)
	sort.SliceStable(words, func(i, j int) bool {
		return len(words[i]) > len(words[j])
	})
	return `(?i)\b(?:` + strings.Join(words, "|") + `)\b`
}

// Mask classifies and substitutes numeric content in text according to cfg.
// It is total over any string input and never fails: pattern misses simply
// yield zero substitutions.
//
// Protected ranges are computed once over the original text and reused by
// both substitution passes. Recomputing them from the partially substituted
// intermediate would find fewer or different dates, so the word pass gates
// on the original coordinates even though it scans the intermediate string.
func (e *Engine) Mask(text string, cfg Config) string {
	if !cfg.Enabled || text == "" {
		return text
	}

	ranges := e.protectedRanges(text)
	intermediate := substitute(text, e.numeric, ranges, cfg.HideMagnitude, maskNumeric)
	return substitute(intermediate, e.words, ranges, cfg.HideMagnitude, maskWord)
}

// substitute runs one forward scan over text, replacing every match whose
// start offset lies outside the protected ranges. Matches starting inside
// a protected range are copied through verbatim — a date substring
// containing digits is never masked, and a match is never split.
func substitute(text string, re *regexp.Regexp, ranges []Range, hideMagnitude bool, mask func(string) string) string {
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 16)
	bytePos, runePos := 0, 0
	for _, loc := range locs {
		b.WriteString(text[bytePos:loc[0]])
		runePos += utf8.RuneCountInString(text[bytePos:loc[0]])

		match := text[loc[0]:loc[1]]
		switch {
		case rangesContain(ranges, runePos):
			b.WriteString(match)
		case hideMagnitude:
			b.WriteString(hiddenPlaceholder)
		default:
			b.WriteString(mask(match))
		}

		runePos += utf8.RuneCountInString(match)
		bytePos = loc[1]
	}
	b.WriteString(text[bytePos:])
	return b.String()
}

// maskNumeric masks a numeric expression character by character:
// alphanumerics become the placeholder, separators and internal whitespace
// are preserved so visual grouping survives ("10,000.50" keeps its comma
// and decimal point).
func maskNumeric(match string) string {
	var b strings.Builder
	b.Grow(len(match))
	for _, r := range match {
		if isAlphanumeric(r) {
			b.WriteRune(placeholderRune)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// maskWord masks a spelled-out number at full length. Word matches are
// pure alphabetic, so there is no punctuation to preserve.
func maskWord(match string) string {
	return strings.Repeat(string(placeholderRune), utf8.RuneCountInString(match))
}

func isAlphanumeric(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
