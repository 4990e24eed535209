// Package dict provides an English pronouncing dictionary in the CMU
// (ARPABET) format. Words map to one or more phonetic transcriptions;
// vowel phonemes carry a stress digit (0 none, 1 primary, 2 secondary).
//
// A Dictionary is constructed once and read-only afterwards, so a single
// instance may be shared by any number of goroutines.
package dict

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"strings"
)

//go:embed data/cmudict-subset.txt
var cmudictFile string

// NoStress marks consonant phonemes, which carry no stress digit.
const NoStress = -1

// Phoneme is a single ARPABET symbol plus its stress marker.
type Phoneme struct {
	Symbol string
	Stress int
}

// vowels is the ARPABET vowel inventory. Everything else is a consonant.
var vowels = map[string]struct{}{
	"AA": {}, "AE": {}, "AH": {}, "AO": {}, "AW": {}, "AY": {},
	"EH": {}, "ER": {}, "EY": {}, "IH": {}, "IY": {}, "OW": {},
	"OY": {}, "UH": {}, "UW": {},
}

func (p Phoneme) IsVowel() bool {
	_, ok := vowels[p.Symbol]
	return ok
}

// Transcription is one pronunciation of a word, in phoneme order.
type Transcription []Phoneme

// Syllables counts the vowel phonemes in the transcription.
func (t Transcription) Syllables() int {
	count := 0
	for _, p := range t {
		if p.IsVowel() {
			count++
		}
	}
	return count
}

// RhymeTail returns the stress-stripped symbols from the last
// primary-stressed vowel through the end of the transcription. If no vowel
// carries primary stress, the last vowel of any stress is used. Returns nil
// for transcriptions with no vowels at all.
func (t Transcription) RhymeTail() []string {
	start := -1
	for i, p := range t {
		if p.IsVowel() && p.Stress == 1 {
			start = i
		}
	}
	if start == -1 {
		for i, p := range t {
			if p.IsVowel() {
				start = i
			}
		}
	}
	if start == -1 {
		return nil
	}
	tail := make([]string, 0, len(t)-start)
	for _, p := range t[start:] {
		tail = append(tail, p.Symbol)
	}
	return tail
}

// Dictionary maps lowercase words to their transcriptions.
type Dictionary struct {
	entries map[string][]Transcription
}

// Embedded builds a Dictionary from the data file compiled into the binary.
func Embedded() *Dictionary {
	return Parse(strings.NewReader(cmudictFile))
}

// Load builds a Dictionary from an external CMU-format file, letting
// deployments swap in the full cmudict instead of the embedded subset.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f), nil
}

// Parse reads CMU-format lines from r. Comments (";;;"), blank lines, and
// lines that don't fit the "WORD  PHONEMES" shape are skipped.
func Parse(r io.Reader) *Dictionary {
	d := &Dictionary{entries: make(map[string][]Transcription)}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word, trans, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		d.entries[word] = append(d.entries[word], trans)
	}
	return d
}

// Lookup returns every known transcription for word, or nil when the word
// is absent. Lookup on a nil Dictionary always misses, which is how the
// engine runs when no phonetic data could be loaded.
func (d *Dictionary) Lookup(word string) []Transcription {
	if d == nil {
		return nil
	}
	return d.entries[strings.ToLower(word)]
}

// Len reports how many distinct words the dictionary holds.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

func parseLine(line string) (string, Transcription, bool) {
	if line == "" || strings.HasPrefix(line, ";;;") {
		return "", nil, false
	}
	parts := strings.SplitN(line, "  ", 2)
	if len(parts) != 2 {
		return "", nil, false
	}
	word := stripVariant(strings.TrimSpace(parts[0]))
	if word == "" {
		return "", nil, false
	}
	fields := strings.Fields(parts[1])
	if len(fields) == 0 {
		return "", nil, false
	}
	trans := make(Transcription, 0, len(fields))
	for _, tok := range fields {
		trans = append(trans, parsePhoneme(tok))
	}
	return strings.ToLower(word), trans, true
}

// stripVariant removes the "(2)", "(3)", ... suffix that cmudict uses for
// alternate pronunciations, so all variants land under one word.
func stripVariant(raw string) string {
	if !strings.HasSuffix(raw, ")") {
		return raw
	}
	idx := strings.IndexByte(raw, '(')
	if idx <= 0 {
		return raw
	}
	return raw[:idx]
}

func parsePhoneme(tok string) Phoneme {
	last := tok[len(tok)-1]
	if last >= '0' && last <= '2' {
		return Phoneme{Symbol: tok[:len(tok)-1], Stress: int(last - '0')}
	}
	return Phoneme{Symbol: tok, Stress: NoStress}
}
