package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtectedRanges(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name  string
		input string
		want  []Range
	}{
		{
			name:  "no date content",
			input: "Price: $10,000.50",
			want:  nil,
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "month name date with year",
			input: "Nov 22, 2025",
			// Full date from the month pattern plus the bare-year hit;
			// overlapping ranges are not merged.
			want: []Range{{Start: 0, End: 12}, {Start: 8, End: 12}},
		},
		{
			name:  "numeric date",
			input: "due 11/22/25 ok",
			want:  []Range{{Start: 4, End: 12}},
		},
		{
			name:  "bare four digit run",
			input: "ref 1234 done",
			want:  []Range{{Start: 4, End: 8}},
		},
		{
			name:  "day marker",
			input: "Day 14",
			want:  []Range{{Start: 0, End: 6}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.protectedRanges(tt.input)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestProtectedRanges_RepeatedCalls(t *testing.T) {
	e := NewEngine()

	// Same input, same output, no scan state carried across calls.
	first := e.protectedRanges("Nov 22, 2025 and 11/22")
	second := e.protectedRanges("Nov 22, 2025 and 11/22")
	require.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestRangesContain(t *testing.T) {
	ranges := []Range{{Start: 4, End: 8}, {Start: 10, End: 11}}

	assert.False(t, rangesContain(ranges, 3))
	assert.True(t, rangesContain(ranges, 4))
	assert.True(t, rangesContain(ranges, 7))
	assert.False(t, rangesContain(ranges, 8), "ranges are half-open")
	assert.True(t, rangesContain(ranges, 10))
	assert.False(t, rangesContain(ranges, 11))
	assert.False(t, rangesContain(nil, 0))
}

func TestByteLocsToRuneRanges(t *testing.T) {
	// "é" is two bytes; rune offsets must not drift after multi-byte runes.
	text := "é 1234"
	e := NewEngine()
	got := e.protectedRanges(text)
	require.Len(t, got, 1)
	assert.Equal(t, Range{Start: 2, End: 6}, got[0])
}
