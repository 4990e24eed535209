package bars

import (
	"strings"

	"github.com/njayco/scoremybars/src/dict"
)

// slantThreshold is the minimum character similarity for a near-rhyme.
const slantThreshold = 0.70

// suffixFamilies groups word endings that commonly rhyme with each other in
// sung or rapped delivery ("walking"/"walkin'", "nation"/"passion"). Two
// words rhyme orthographically when both end in the same variant of any one
// family.
var suffixFamilies = [][]string{
	{"ing", "in", "im"},
	{"er", "ir", "ur"},
	{"ed", "d", "t"},
	{"s", "z", "es"},
	{"ly", "lee", "li"},
	{"tion", "sion", "cion"},
	{"able", "ible"},
	{"ous", "us"},
	{"al", "el", "il", "ol", "ul"},
	{"ate", "it", "et"},
	{"ize", "ise", "yze"},
	{"ment", "mint"},
	{"ness", "nis"},
	{"ful", "full"},
	{"less", "les"},
}

// Rhymes reports whether two words rhyme. A word never rhymes with itself.
//
// When both words have dictionary transcriptions the decision is phonetic:
// the words rhyme if any pronunciation pair shares the phoneme tail from
// the last stressed vowel onward. When either word is unknown, the decision
// falls back to orthographic suffix heuristics.
func (a *Analyzer) Rhymes(word1, word2 string) bool {
	w1 := normalizeWord(word1)
	w2 := normalizeWord(word2)
	if w1 == "" || w2 == "" || w1 == w2 {
		return false
	}
	t1 := a.dict.Lookup(w1)
	t2 := a.dict.Lookup(w2)
	if len(t1) > 0 && len(t2) > 0 {
		return phoneticRhyme(t1, t2)
	}
	return orthographicRhyme(w1, w2)
}

// IsSlant reports a near-rhyme: the words do not fully rhyme but their
// endings are at least 70% similar.
func (a *Analyzer) IsSlant(word1, word2 string) bool {
	if a.Rhymes(word1, word2) {
		return false
	}
	return Similarity(word1, word2) >= slantThreshold
}

// IsMultiSyllabic reports whether two words form a multi-syllabic rhyme:
// a full rhyme where each word carries at least two syllables.
func (a *Analyzer) IsMultiSyllabic(word1, word2 string) bool {
	if !a.Rhymes(word1, word2) {
		return false
	}
	return a.CountSyllables(word1) >= 2 && a.CountSyllables(word2) >= 2
}

// Similarity measures how alike two words sound by their endings: the
// length of the contiguous matching suffix divided by the length of the
// longer word. Identical words score 1.0.
func Similarity(word1, word2 string) float64 {
	w1 := normalizeWord(word1)
	w2 := normalizeWord(word2)
	if w1 == w2 {
		return 1.0
	}
	longer := len(w1)
	if len(w2) > longer {
		longer = len(w2)
	}
	if longer == 0 {
		return 1.0
	}
	run := 0
	for run < len(w1) && run < len(w2) {
		if w1[len(w1)-1-run] != w2[len(w2)-1-run] {
			break
		}
		run++
	}
	return float64(run) / float64(longer)
}

func phoneticRhyme(ts1, ts2 []dict.Transcription) bool {
	for _, t1 := range ts1 {
		tail1 := t1.RhymeTail()
		if tail1 == nil {
			continue
		}
		for _, t2 := range ts2 {
			if tailsEqual(tail1, t2.RhymeTail()) {
				return true
			}
		}
	}
	return false
}

func tailsEqual(tail1, tail2 []string) bool {
	if tail2 == nil || len(tail1) != len(tail2) {
		return false
	}
	for i := range tail1 {
		if tail1[i] != tail2[i] {
			return false
		}
	}
	return true
}

func orthographicRhyme(w1, w2 string) bool {
	if strings.HasSuffix(w1, w2) || strings.HasSuffix(w2, w1) {
		return true
	}
	for _, family := range suffixFamilies {
		for _, variant := range family {
			if strings.HasSuffix(w1, variant) && strings.HasSuffix(w2, variant) {
				return true
			}
		}
	}
	for _, n := range []int{4, 3, 2} {
		if len(w1) >= n && len(w2) >= n && w1[len(w1)-n:] == w2[len(w2)-n:] {
			return true
		}
	}
	return false
}

// rhymeKey is the canonical signature a word's rhyme group is filed under:
// the phonetic tail of the first pronunciation when known, otherwise the
// last three characters.
func (a *Analyzer) rhymeKey(word string) string {
	w := normalizeWord(word)
	if trans := a.dict.Lookup(w); len(trans) > 0 {
		if tail := trans[0].RhymeTail(); tail != nil {
			return strings.Join(tail, "-")
		}
	}
	if len(w) > 3 {
		return w[len(w)-3:]
	}
	return w
}
