package bars

import (
	"github.com/stretchr/testify/assert"
	"testing"

	"github.com/njayco/scoremybars/src/dict"
)

func TestRhymes(t *testing.T) {
	a := NewAnalyzer(dict.Embedded())

	rhyming := [][]string{
		{"cat", "hat"},
		{"sat", "bat"},
		{"today", "okay"},
		{"okay", "gay"},
		{"running", "stunning"},
		{"fine", "shine"},
		{"cold", "bold"},
		{"Cat!", "hat,"},
		{"walkin'", "talkin'"}, // unknown spellings fall back to shared endings
	}
	notRhyming := [][]string{
		{"cat", "dog"},
		{"mine", "mind"},
		{"truth", "true"},
		{"love", "move"},
		{"cat", "cat"},
		{"cat", ""},
		{"", ""},
	}

	for _, tt := range rhyming {
		assert.True(t, a.Rhymes(tt[0], tt[1]), "%s / %s", tt[0], tt[1])
		assert.True(t, a.Rhymes(tt[1], tt[0]), "%s / %s reversed", tt[0], tt[1])
	}
	for _, tt := range notRhyming {
		assert.False(t, a.Rhymes(tt[0], tt[1]), "%s / %s", tt[0], tt[1])
		assert.False(t, a.Rhymes(tt[1], tt[0]), "%s / %s reversed", tt[0], tt[1])
	}
}

func TestRhymesNeverSelf(t *testing.T) {
	a := NewAnalyzer(dict.Embedded())
	for _, w := range []string{"cat", "today", "running", "xyzzy", ""} {
		assert.False(t, a.Rhymes(w, w), w)
	}
}

func TestIsSlant(t *testing.T) {
	a := NewAnalyzer(dict.Embedded())

	// Eye rhymes: the spellings agree but the vowels do not.
	assert.True(t, a.IsSlant("love", "move"), "love / move")
	assert.True(t, a.IsSlant("gone", "bone"), "gone / bone")

	// A full rhyme is never also a slant rhyme.
	assert.False(t, a.IsSlant("cat", "hat"), "cat / hat")
	assert.False(t, a.IsSlant("today", "okay"), "today / okay")

	// Repeating a word is a slant, not a rhyme.
	assert.True(t, a.IsSlant("cat", "Cat"), "cat / Cat")

	assert.False(t, a.IsSlant("cat", "dog"), "cat / dog")
}

func TestSlantAndFullAreExclusive(t *testing.T) {
	a := NewAnalyzer(dict.Embedded())
	words := []string{"cat", "hat", "dog", "today", "okay", "love", "move", "running", "stunning", "truth"}
	for _, w1 := range words {
		for _, w2 := range words {
			full := a.Rhymes(w1, w2)
			slant := a.IsSlant(w1, w2)
			assert.False(t, full && slant, "%s / %s is both full and slant", w1, w2)
		}
	}
}

func TestIsMultiSyllabic(t *testing.T) {
	a := NewAnalyzer(dict.Embedded())

	assert.True(t, a.IsMultiSyllabic("running", "stunning"), "running / stunning")
	assert.False(t, a.IsMultiSyllabic("cat", "hat"), "cat / hat")
	assert.False(t, a.IsMultiSyllabic("today", "gay"), "today / gay")
	assert.False(t, a.IsMultiSyllabic("love", "move"), "love / move")
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		w1, w2   string
		expected float64
	}{
		{"cat", "cat", 1.0},
		{"cat", "CAT!", 1.0},
		{"love", "move", 0.75},
		{"running", "runner", 0.0},
		{"cat", "dog", 0.0},
		{"", "", 1.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.expected, Similarity(tt.w1, tt.w2), 1e-9, "%s / %s", tt.w1, tt.w2)
	}

	words := []string{"cat", "hat", "running", "runner", "love", "move", "a", ""}
	for _, w1 := range words {
		for _, w2 := range words {
			s := Similarity(w1, w2)
			assert.GreaterOrEqual(t, s, 0.0, "%s / %s", w1, w2)
			assert.LessOrEqual(t, s, 1.0, "%s / %s", w1, w2)
			assert.InDelta(t, s, Similarity(w2, w1), 1e-9, "%s / %s symmetry", w1, w2)
		}
	}
}
