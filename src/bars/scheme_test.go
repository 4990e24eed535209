package bars

import (
	"github.com/stretchr/testify/assert"
	"testing"

	"github.com/njayco/scoremybars/src/dict"
)

func TestDetectScheme(t *testing.T) {
	a := NewAnalyzer(dict.Embedded())

	tests := []struct {
		lyrics   string
		expected string
	}{
		{"", "A"},
		{"cat sat on the mat", "A"},
		{"cat sat\nhat bat", "AA"},
		{"cat sat\nhat bat\ndog ran", "AAB"},
		{"fine today\nokay\ngay", "AAA"},
		{"cat\nhat\ntoday\nokay", "AABB"},
		{"cat\ntoday\nhat\nokay", "ABAB"},
		{"dog\nstreet\nrock\nfriend", "ABCD"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, a.DetectScheme(Tokenize(tt.lyrics)), tt.lyrics)
	}
}

func TestSchemeLabelWrapsAlphabet(t *testing.T) {
	assert.Equal(t, "A", schemeLabel(0))
	assert.Equal(t, "Z", schemeLabel(25))
	assert.Equal(t, "AA", schemeLabel(26))
	assert.Equal(t, "AB", schemeLabel(27))
}
