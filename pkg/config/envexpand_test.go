package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("NUMVEIL_TEST_DOMAIN", "finance.example.com")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "expands set variable",
			input:    "sites:\n  {{.NUMVEIL_TEST_DOMAIN}}: {enabled: true}",
			expected: "sites:\n  finance.example.com: {enabled: true}",
		},
		{
			name:     "missing variable expands to empty",
			input:    "value: {{.NUMVEIL_DOES_NOT_EXIST}}",
			expected: "value: ",
		},
		{
			name:     "plain dollar is preserved",
			input:    "note: prices like $10,000.50 stay literal",
			expected: "note: prices like $10,000.50 stay literal",
		},
		{
			name:     "no template syntax passes through",
			input:    "defaults:\n  enabled: true",
			expected: "defaults:\n  enabled: true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(ExpandEnv([]byte(tt.input))))
		})
	}
}
