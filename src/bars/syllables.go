package bars

import "strings"

// CountSyllables estimates the syllable count of a single word. Words found
// in the pronouncing dictionary are counted by vowel phonemes; unknown
// words fall back to counting orthographic vowel runs. The empty string
// counts zero; any other word counts at least one.
func (a *Analyzer) CountSyllables(word string) int {
	w := normalizeWord(word)
	if w == "" {
		return 0
	}
	if trans := a.dict.Lookup(w); len(trans) > 0 {
		if n := trans[0].Syllables(); n > 0 {
			return n
		}
	}
	return orthographicSyllables(w)
}

// orthographicSyllables counts maximal runs of vowel letters, with a
// silent-e correction: a trailing 'e' drops one syllable when the raw
// count exceeds one ("shine" is one syllable, not two).
func orthographicSyllables(w string) int {
	count := 0
	prevVowel := false
	for _, r := range w {
		isVowel := strings.ContainsRune("aeiou", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(w, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
