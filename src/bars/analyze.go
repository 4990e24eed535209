// Package bars is the rhyme analysis engine: it tokenizes lyric text,
// decides which words rhyme (phonetically when the pronouncing dictionary
// knows them, orthographically otherwise), labels the rhyme scheme, and
// measures end, internal, multi-syllabic, and slant rhyme.
package bars

import "github.com/njayco/scoremybars/src/dict"

// Analyzer runs rhyme analysis against an injected pronouncing dictionary.
// A nil dictionary is fine; every word then takes the orthographic path.
// Analyzer holds no mutable state, so one instance serves concurrent calls.
type Analyzer struct {
	dict *dict.Dictionary
}

func NewAnalyzer(d *dict.Dictionary) *Analyzer {
	return &Analyzer{dict: d}
}

// Analysis is the aggregate result of one AnalyzeRhymes call. Field names
// are the stable JSON contract consumed by the scorer and the API layer.
type Analysis struct {
	EndRhymes           EndRhymes            `json:"end_rhymes"`
	InternalRhymes      InternalRhymes       `json:"internal_rhymes"`
	RhymeDensity        float64              `json:"rhyme_density"`
	RhymeScheme         string               `json:"rhyme_scheme"`
	MultiSyllabicRhymes []MultiSyllabicRhyme `json:"multi_syllabic_rhymes"`
	SlantRhymes         []SlantRhyme         `json:"slant_rhymes"`
}

type EndRhymes struct {
	RhymeGroups  []RhymeGroup   `json:"rhyme_groups"`
	RhymePairs   []EndRhymePair `json:"rhyme_pairs"`
	RhymeDensity float64        `json:"rhyme_density"`
}

// EndRhymePair records two rhyming line-ending words by line index.
type EndRhymePair struct {
	Line1 int    `json:"line1"`
	Line2 int    `json:"line2"`
	Word1 string `json:"word1"`
	Word2 string `json:"word2"`
}

// RhymeGroup is a set of distinct words sharing one rhyming tail.
type RhymeGroup struct {
	RhymeKey string   `json:"rhyme_key"`
	Words    []string `json:"words"`
}

type InternalRhymes struct {
	Pairs   []LineRhymes `json:"pairs"`
	Density float64      `json:"density"`
}

// LineRhymes lists the rhyming word pairs found inside a single line.
type LineRhymes struct {
	LineIndex int        `json:"line_index"`
	Line      string     `json:"line"`
	Rhymes    []WordPair `json:"rhymes"`
}

type WordPair struct {
	Pos1  int    `json:"pos1"`
	Pos2  int    `json:"pos2"`
	Word1 string `json:"word1"`
	Word2 string `json:"word2"`
}

type MultiSyllabicRhyme struct {
	LineIndex int    `json:"line_index"`
	Line      string `json:"line"`
	Word1     string `json:"word1"`
	Word2     string `json:"word2"`
	Positions [2]int `json:"positions"`
}

type SlantRhyme struct {
	LineIndex  int     `json:"line_index"`
	Line       string  `json:"line"`
	Word1      string  `json:"word1"`
	Word2      string  `json:"word2"`
	Positions  [2]int  `json:"positions"`
	Similarity float64 `json:"similarity"`
}

// AnalyzeRhymes analyzes one lyric section. It never fails: empty or
// unparseable text yields a zero-valued Analysis with an empty scheme.
func (a *Analyzer) AnalyzeRhymes(text string) Analysis {
	analysis := Analysis{
		EndRhymes: EndRhymes{
			RhymeGroups: []RhymeGroup{},
			RhymePairs:  []EndRhymePair{},
		},
		InternalRhymes:      InternalRhymes{Pairs: []LineRhymes{}},
		MultiSyllabicRhymes: []MultiSyllabicRhyme{},
		SlantRhymes:         []SlantRhyme{},
	}
	lines := Tokenize(text)
	if len(lines) == 0 {
		return analysis
	}

	analysis.EndRhymes.RhymePairs = a.endRhymePairs(lines)
	analysis.EndRhymes.RhymeGroups = a.buildGroups(analysis.EndRhymes.RhymePairs)
	analysis.RhymeScheme = a.DetectScheme(lines)

	internalCount := 0
	internalPossible := 0
	totalWords := 0
	for idx, line := range lines {
		totalWords += len(line.Words)
		internalPossible += len(line.Words) * (len(line.Words) - 1) / 2
		pairs := a.internalPairs(line)
		internalCount += len(pairs)
		if len(pairs) > 0 {
			analysis.InternalRhymes.Pairs = append(analysis.InternalRhymes.Pairs, LineRhymes{
				LineIndex: idx,
				Line:      line.Raw,
				Rhymes:    pairs,
			})
		}
		analysis.MultiSyllabicRhymes = append(analysis.MultiSyllabicRhymes, a.multiSyllabicInLine(idx, line)...)
		analysis.SlantRhymes = append(analysis.SlantRhymes, a.slantInLine(idx, line)...)
	}

	endCount := len(analysis.EndRhymes.RhymePairs)
	endPossible := len(lines) * (len(lines) - 1) / 2
	if endPossible > 0 {
		analysis.EndRhymes.RhymeDensity = float64(endCount) / float64(endPossible)
	}
	if totalWords > 1 {
		analysis.InternalRhymes.Density = float64(internalCount) / float64(totalWords)
	}
	if endPossible+internalPossible > 0 {
		analysis.RhymeDensity = float64(endCount+internalCount) / float64(endPossible+internalPossible)
	}
	return analysis
}

// endRhymePairs compares every unordered pair of line-ending words,
// not just adjacent lines.
func (a *Analyzer) endRhymePairs(lines []Line) []EndRhymePair {
	pairs := []EndRhymePair{}
	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			w1 := normalizeWord(lines[i].EndWord())
			w2 := normalizeWord(lines[j].EndWord())
			if a.Rhymes(w1, w2) {
				pairs = append(pairs, EndRhymePair{Line1: i, Line2: j, Word1: w1, Word2: w2})
			}
		}
	}
	return pairs
}

// internalPairs compares every unordered word pair within one line.
func (a *Analyzer) internalPairs(line Line) []WordPair {
	var pairs []WordPair
	for i := 0; i < len(line.Words); i++ {
		for j := i + 1; j < len(line.Words); j++ {
			w1 := normalizeWord(line.Words[i])
			w2 := normalizeWord(line.Words[j])
			if a.Rhymes(w1, w2) {
				pairs = append(pairs, WordPair{Pos1: i, Pos2: j, Word1: w1, Word2: w2})
			}
		}
	}
	return pairs
}

// multiSyllabicInLine scans adjacent word pairs only; back-to-back
// multi-syllable rhymes are the ones that land in delivery.
func (a *Analyzer) multiSyllabicInLine(idx int, line Line) []MultiSyllabicRhyme {
	var found []MultiSyllabicRhyme
	for i := 0; i+1 < len(line.Words); i++ {
		w1 := normalizeWord(line.Words[i])
		w2 := normalizeWord(line.Words[i+1])
		if a.IsMultiSyllabic(w1, w2) {
			found = append(found, MultiSyllabicRhyme{
				LineIndex: idx,
				Line:      line.Raw,
				Word1:     w1,
				Word2:     w2,
				Positions: [2]int{i, i + 1},
			})
		}
	}
	return found
}

func (a *Analyzer) slantInLine(idx int, line Line) []SlantRhyme {
	var found []SlantRhyme
	for i := 0; i+1 < len(line.Words); i++ {
		w1 := normalizeWord(line.Words[i])
		w2 := normalizeWord(line.Words[i+1])
		if a.IsSlant(w1, w2) {
			found = append(found, SlantRhyme{
				LineIndex:  idx,
				Line:       line.Raw,
				Word1:      w1,
				Word2:      w2,
				Positions:  [2]int{i, i + 1},
				Similarity: Similarity(w1, w2),
			})
		}
	}
	return found
}
