package masking

import (
	"unicode/utf8"
)

// Range is a half-open [Start, End) interval of rune offsets into the
// original input string. Ranges mark date/time/year expressions that must
// survive masking untouched.
//
// Offsets are rune-based, not byte-based: the placeholder rune is multi-byte
// in UTF-8, so byte offsets would drift between the numeric and word passes
// while rune offsets stay aligned wherever lengths are preserved.
type Range struct {
	Start int
	End   int
}

// rangesContain reports whether offset falls inside any of the ranges.
// Only a match's start offset is ever tested: a numeric expression that
// begins outside a protected span but extends into one is masked whole.
// The range counts are small (a handful of dates per page of text), so a
// linear scan is sufficient — no interval structure needed.
func rangesContain(ranges []Range, offset int) bool {
	for _, r := range ranges {
		if offset >= r.Start && offset < r.End {
			return true
		}
	}
	return false
}

// protectedRanges returns every date/time span found in text, across all
// protected patterns. Overlapping ranges are not merged; membership is
// tested independently per offset. The result is empty (not nil-checked by
// callers) when text carries no date content.
func (e *Engine) protectedRanges(text string) []Range {
	var ranges []Range
	for _, re := range e.protected {
		locs := re.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}
		ranges = append(ranges, byteLocsToRuneRanges(text, locs)...)
	}
	return ranges
}

// byteLocsToRuneRanges converts regexp byte-offset match locations into
// rune-offset Ranges. locs must be sorted ascending and non-overlapping,
// which FindAllStringIndex guarantees for a single pattern.
func byteLocsToRuneRanges(text string, locs [][]int) []Range {
	ranges := make([]Range, 0, len(locs))
	bytePos, runePos := 0, 0
	for _, loc := range locs {
		runePos += utf8.RuneCountInString(text[bytePos:loc[0]])
		start := runePos
		runePos += utf8.RuneCountInString(text[loc[0]:loc[1]])
		bytePos = loc[1]
		ranges = append(ranges, Range{Start: start, End: runePos})
	}
	return ranges
}
