// Package score turns rhyme analysis into 0-100 scores across four axes,
// predicts commercial potential, and suggests improvements. Scoring is
// rule-based by default; an optional LLM scorer refines it when configured.
package score

import (
	"math"
	"strings"

	"github.com/njayco/scoremybars/src/bars"
)

// Scores holds the four judged axes for one section, each in [0, 100].
type Scores struct {
	Cleverness   float64 `json:"cleverness"`
	RhymeDensity float64 `json:"rhyme_density"`
	Wordplay     float64 `json:"wordplay"`
	RadioScore   float64 `json:"radio_score"`
}

// Popularity is a commercial-potential prediction derived from Scores.
type Popularity struct {
	Score          float64 `json:"score"`
	Level          string  `json:"level"`
	Description    string  `json:"description"`
	ViralPotential bool    `json:"viral_potential"`
	CriticalAppeal bool    `json:"critical_appeal"`
}

var (
	metaphorIndicators = []string{"like", "as", "metaphor", "simile", "compare", "imagine", "picture"}
	culturalReferences = []string{"money", "fame", "success", "struggle", "hustle", "grind"}
	punIndicators      = []string{"play", "word", "double", "meaning", "flip", "switch"}
	hookIndicators     = []string{"hook", "catchy", "repeat", "chorus", "memorable"}
)

// RuleBased scores one section without any model call. The rhyme axis is
// driven entirely by the rhyme analysis; the other three axes lean on
// keyword and word-length heuristics over the section text.
func RuleBased(section bars.Section, analysis bars.Analysis) Scores {
	text := strings.ToLower(section.Text)

	cleverness := 50.0
	for _, indicator := range metaphorIndicators {
		if strings.Contains(text, indicator) {
			cleverness += 8
		}
	}
	for _, ref := range culturalReferences {
		if strings.Contains(text, ref) {
			cleverness += 5
		}
	}

	rhyme := 50.0 +
		analysis.EndRhymes.RhymeDensity*30 +
		analysis.InternalRhymes.Density*20 +
		float64(len(analysis.MultiSyllabicRhymes))*4 +
		float64(len(analysis.SlantRhymes))*2

	wordplay := 50.0
	for _, indicator := range punIndicators {
		if strings.Contains(text, indicator) {
			wordplay += 10
		}
	}

	radio := 50.0
	words := strings.Fields(text)
	if len(words) > 0 {
		simple := 0
		for _, w := range words {
			if len(w) <= 4 {
				simple++
			}
		}
		radio += float64(simple) / float64(len(words)) * 30
	}
	for _, indicator := range hookIndicators {
		if strings.Contains(text, indicator) {
			radio += 8
		}
	}

	return Scores{
		Cleverness:   clamp(cleverness),
		RhymeDensity: clamp(rhyme),
		Wordplay:     clamp(wordplay),
		RadioScore:   clamp(radio),
	}
}

// Average combines per-section scores into song-level scores.
func Average(sections []Scores) Scores {
	if len(sections) == 0 {
		return Scores{}
	}
	var sum Scores
	for _, s := range sections {
		sum.Cleverness += s.Cleverness
		sum.RhymeDensity += s.RhymeDensity
		sum.Wordplay += s.Wordplay
		sum.RadioScore += s.RadioScore
	}
	n := float64(len(sections))
	return Scores{
		Cleverness:   roundTo(sum.Cleverness/n, 1),
		RhymeDensity: roundTo(sum.RhymeDensity/n, 1),
		Wordplay:     roundTo(sum.Wordplay/n, 1),
		RadioScore:   roundTo(sum.RadioScore/n, 1),
	}
}

// PredictPopularity weighs radio appeal heaviest, then cleverness, then
// wordplay, and maps the blend onto a High/Medium/Low level.
func PredictPopularity(overall Scores) Popularity {
	popScore := overall.RadioScore*0.5 + overall.Cleverness*0.3 + overall.Wordplay*0.2

	var level, description string
	switch {
	case popScore >= 80:
		level = "High"
		description = "Strong commercial potential with viral appeal"
	case popScore >= 60:
		level = "Medium"
		description = "Good potential for niche success"
	default:
		level = "Low"
		description = "More suited for underground/niche audiences"
	}

	return Popularity{
		Score:          roundTo(popScore, 1),
		Level:          level,
		Description:    description,
		ViralPotential: overall.RadioScore > 70,
		CriticalAppeal: overall.Cleverness > 75,
	}
}

// Suggestions lists up to five improvement tips for the weak axes,
// plus praise for the strong ones.
func Suggestions(overall Scores) []string {
	var suggestions []string
	if overall.Cleverness < 60 {
		suggestions = append(suggestions, "Add more metaphors and cultural references to increase cleverness")
	}
	if overall.RhymeDensity < 60 {
		suggestions = append(suggestions, "Incorporate more internal rhymes and complex rhyme schemes")
	}
	if overall.Wordplay < 60 {
		suggestions = append(suggestions, "Include more puns and punchlines to enhance wordplay")
	}
	if overall.RadioScore < 60 {
		suggestions = append(suggestions, "Simplify some lines and add more hook-like phrases for radio appeal")
	}
	if overall.Cleverness > 80 {
		suggestions = append(suggestions, "Excellent use of metaphors and clever wordplay!")
	}
	if overall.RhymeDensity > 80 {
		suggestions = append(suggestions, "Strong rhyme patterns and flow!")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Great work! Your lyrics show strong balance across all categories.")
	}
	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return suggestions
}

func clamp(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 100 {
		return 100
	}
	return roundTo(x, 1)
}

func roundTo(x float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(x*shift) / shift
}
