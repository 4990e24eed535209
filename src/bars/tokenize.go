package bars

import (
	"regexp"
	"strings"
)

// punctCutset is the punctuation stripped from both ends of every word
// token. Apostrophes stay, so contractions survive ("don't", "runnin'").
const punctCutset = ".,!?;:()[]{}"

// headerRegex matches lines that are nothing but a bracketed section
// header, e.g. "[Chorus]" or "[Verse 2]". Section splitting happens
// upstream, but callers may hand over unfiltered lyrics, so the
// tokenizer skips headers too.
var headerRegex = regexp.MustCompile(`^\[[^\[\]]*\]$`)

// Line is one non-empty lyric line with its word tokens. Words keep their
// display casing; all rhyme comparisons normalize separately.
type Line struct {
	Raw   string
	Words []string
}

// EndWord returns the line's final word token.
func (l Line) EndWord() string {
	return l.Words[len(l.Words)-1]
}

// Tokenize splits text into lines of word tokens. Blank lines, bracket
// headers, and lines left wordless after punctuation stripping are all
// dropped, so every returned Line has at least one word.
func Tokenize(text string) []Line {
	var lines []Line
	for _, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" || headerRegex.MatchString(raw) {
			continue
		}
		var words []string
		for _, field := range strings.Fields(raw) {
			word := strings.Trim(field, punctCutset)
			if word != "" {
				words = append(words, word)
			}
		}
		if len(words) == 0 {
			continue
		}
		lines = append(lines, Line{Raw: raw, Words: words})
	}
	return lines
}

// normalizeWord lowercases a token and strips surrounding punctuation,
// producing the form used for every rhyme comparison and dictionary lookup.
func normalizeWord(word string) string {
	return strings.ToLower(strings.Trim(word, punctCutset))
}
