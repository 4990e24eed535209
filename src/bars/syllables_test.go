package bars

import (
	"github.com/stretchr/testify/assert"
	"testing"

	"github.com/njayco/scoremybars/src/dict"
)

func TestCountSyllables(t *testing.T) {
	a := NewAnalyzer(dict.Embedded())

	tests := []struct {
		input         string
		expectedCount int
	}{
		{"cat", 1},
		{"today", 2},
		{"yesterday", 3},
		{"studio", 3},
		{"everything", 3},
		{"running", 2},
		{"don't", 1},
		{"shine", 1},
		{"CAT", 1},
		{"cat!", 1},
		{"blorping", 2},
		{"grine", 1},
		{"zzz", 1},
		{"", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expectedCount, a.CountSyllables(tt.input), tt.input)
	}
}

func TestCountSyllablesNoDictionary(t *testing.T) {
	a := NewAnalyzer(nil)

	// Orthographic fallback only.
	assert.Equal(t, 2, a.CountSyllables("today"), "today")
	assert.Equal(t, 1, a.CountSyllables("shine"), "shine")
	assert.Equal(t, 3, a.CountSyllables("banana"), "banana")
}
