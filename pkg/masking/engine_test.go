package masking

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMask_DisabledPassthrough(t *testing.T) {
	e := NewEngine()

	inputs := []string{
		"",
		"Price: $10,000.50",
		"twenty three",
		"Nov 22, 2025",
	}
	for _, text := range inputs {
		got := e.Mask(text, Config{Enabled: false, HideMagnitude: true})
		assert.Equal(t, text, got, "disabled config must pass input through unchanged")
	}
}

func TestMask_CharacterPreserving(t *testing.T) {
	e := NewEngine()
	cfg := Config{Enabled: true}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "digits with separators keep grouping",
			input:    "Price: $10,000.50",
			expected: "Price: $••,•••.••",
		},
		{
			name:     "magnitude suffix masked as a unit",
			input:    "Revenue: 10M",
			expected: "Revenue: •••",
		},
		{
			name:     "suffix with n",
			input:    "1.5Bn",
			expected: "•.•••",
		},
		{
			name:     "space-separated suffix",
			input:    "10 k",
			expected: "•• •",
		},
		{
			name:     "suffix never consumes a following word",
			input:    "100 this",
			expected: "••• this",
		},
		{
			name:     "word numbers masked independently",
			input:    "twenty three",
			expected: "•••••• •••••",
		},
		{
			name:     "word numbers are case-insensitive",
			input:    "TWENTY Three",
			expected: "•••••• •••••",
		},
		{
			name:     "word numbers require word boundaries",
			input:    "bone attend",
			expected: "bone attend",
		},
		{
			name:     "digits and words mixed",
			input:    "four cars, 12 bikes",
			expected: "•••• cars, •• bikes",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "no numeric content",
			input:    "hello world",
			expected: "hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Mask(tt.input, cfg)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, utf8.RuneCountInString(tt.input), utf8.RuneCountInString(got),
				"character-preserving mode must preserve rune length")
		})
	}
}

func TestMask_HideMagnitude(t *testing.T) {
	e := NewEngine()
	cfg := Config{Enabled: true, HideMagnitude: true}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "long number collapses to fixed width",
			input:    "Price: $10,000.50",
			expected: "Price: $•••",
		},
		{
			name:     "short number collapses to fixed width",
			input:    "5 items",
			expected: "••• items",
		},
		{
			name:     "word numbers collapse independently",
			input:    "twenty three",
			expected: "••• •••",
		},
		{
			name:     "dates survive",
			input:    "Nov 22, 2025 cost 50",
			expected: "Nov 22, 2025 cost •••",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.Mask(tt.input, cfg))
		})
	}
}

func TestMask_DatePreservation(t *testing.T) {
	e := NewEngine()
	cfg := Config{Enabled: true}

	// All of these are pure date/time content and must come back unchanged
	// under any policy.
	inputs := []string{
		"Nov 22, 2025",
		"November 22, 2025",
		"Sept 9",
		"September 9, 99",
		"11/22",
		"11/22/25",
		"Day 3",
		"2025",
		"9999", // any bare 4-digit run is treated as a year
	}

	for _, text := range inputs {
		assert.Equal(t, text, e.Mask(text, cfg), "date content must never be masked: %q", text)
		assert.Equal(t, text, e.Mask(text, Config{Enabled: true, HideMagnitude: true}))
	}
}

func TestMask_FourDigitRunsNeedBoundaries(t *testing.T) {
	e := NewEngine()
	cfg := Config{Enabled: true}

	// "2025AD" is not a bare 4-digit run — the trailing letters break the
	// word boundary, so the digits are masked (and the letters are not a
	// magnitude suffix).
	assert.Equal(t, "••••AD", e.Mask("2025AD", cfg))

	// Five digits are not a year either.
	assert.Equal(t, "•••••", e.Mask("20255", cfg))
}

func TestMask_CrossPassRangeConsistency(t *testing.T) {
	e := NewEngine()

	// The numeric pass runs first; the word pass must still gate on ranges
	// computed from the original text. The date stays, only "twenty" is
	// masked.
	got := e.Mask("Nov 22, 2025 had twenty visitors", Config{Enabled: true})
	assert.Equal(t, "Nov 22, 2025 had •••••• visitors", got)

	// Same with a masked number ahead of both the date and the word: the
	// placeholder is multi-byte, which must not skew the word pass gating.
	got = e.Mask("3 sales by Nov 22, 2025 had twenty visitors", Config{Enabled: true})
	assert.Equal(t, "• sales by Nov 22, 2025 had •••••• visitors", got)
}

func TestMask_RepeatedCalls(t *testing.T) {
	e := NewEngine()
	cfg := Config{Enabled: true}

	// Compiled patterns carry no scan position: calling the engine twice on
	// the same input must yield identical results.
	input := "Revenue: 10M on Nov 22, 2025"
	first := e.Mask(input, cfg)
	second := e.Mask(input, cfg)
	require.Equal(t, first, second)
	assert.Equal(t, "Revenue: ••• on Nov 22, 2025", first)
}

func TestMask_MagnitudeSuffixes(t *testing.T) {
	e := NewEngine()
	cfg := Config{Enabled: true}

	tests := []struct {
		input    string
		expected string
	}{
		{"10k", "•••"},
		{"10K", "•••"},
		{"3m", "••"},
		{"3M", "••"},
		{"7b", "••"},
		{"2T", "••"},
		{"2Tn", "•••"},
		{"10M,", "•••,"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.Mask(tt.input, cfg))
		})
	}
}

func TestMask_WordNumberSet(t *testing.T) {
	e := NewEngine()
	cfg := Config{Enabled: true}

	// Longer literals must win over their prefixes.
	assert.Equal(t, "•••••••", e.Mask("sixteen", cfg))
	assert.Equal(t, "•••••", e.Mask("sixty", cfg))
	assert.Equal(t, "••••••••", e.Mask("trillion", cfg))

	// Every literal in the set is matched whole-word.
	for _, w := range numberWords {
		got := e.Mask("a "+w+" b", cfg)
		require.Equal(t, len("a ")+utf8.RuneCountInString(w)+len(" b"), utf8.RuneCountInString(got))
		assert.NotContains(t, got, w, "number word %q must be masked", w)
	}
}
