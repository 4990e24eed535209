package score

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/njayco/scoremybars/src/bars"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-3-5-haiku-latest"

// Scorer scores sections with an LLM when an API key is configured and
// falls back to rule-based scoring otherwise, or whenever a call fails.
// A nil Scorer is valid and always takes the rule-based path.
type Scorer struct {
	client  anthropic.Client
	model   anthropic.Model
	enabled bool
}

// NewScorer returns a Scorer backed by the Anthropic API. An empty apiKey
// yields a disabled scorer; an empty model selects DefaultModel.
func NewScorer(apiKey, model string) *Scorer {
	if apiKey == "" {
		return &Scorer{}
	}
	if model == "" {
		model = DefaultModel
	}
	return &Scorer{
		client:  anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:   anthropic.Model(model),
		enabled: true,
	}
}

// Enabled reports whether LLM scoring is configured.
func (s *Scorer) Enabled() bool {
	return s != nil && s.enabled
}

// ScoreSection scores one section. It never fails: any LLM problem is
// logged and answered with the rule-based scores instead.
func (s *Scorer) ScoreSection(ctx context.Context, section bars.Section, analysis bars.Analysis) Scores {
	fallback := RuleBased(section, analysis)
	if !s.Enabled() {
		return fallback
	}
	scores, err := s.callModel(ctx, section)
	if err != nil {
		log.Println("llm scoring failed, using rule-based scores,", err)
		return fallback
	}
	return scores
}

func (s *Scorer) callModel(ctx context.Context, section bars.Section) (Scores, error) {
	msg, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     s.model,
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(section))),
		},
	})
	if err != nil {
		return Scores{}, fmt.Errorf("llm api call: %w", err)
	}
	if len(msg.Content) == 0 {
		return Scores{}, fmt.Errorf("empty llm response")
	}
	return parseScores(msg.Content[0].Text)
}

func buildPrompt(section bars.Section) string {
	return fmt.Sprintf(`You are a hip-hop lyric analyst. Score the following %s section on four axes, each 0-100:
- cleverness: metaphors, double entendres, unique angles, cultural references
- rhyme_density: frequency and complexity of end, internal, and multi-syllabic rhymes
- wordplay: puns, punchlines, flipped meanings
- radio_score: catchiness, simplicity, hook potential

Lyrics:
%s

Output ONLY a valid JSON object, no markdown, no explanations:
{"cleverness": <n>, "rhyme_density": <n>, "wordplay": <n>, "radio_score": <n>}`, section.Type, section.Text)
}

// parseScores pulls the JSON object out of a model response that may be
// wrapped in prose or markdown fences.
func parseScores(response string) (Scores, error) {
	jsonStr, err := extractJSON(response)
	if err != nil {
		return Scores{}, err
	}
	var scores Scores
	if err := json.Unmarshal([]byte(jsonStr), &scores); err != nil {
		return Scores{}, fmt.Errorf("unmarshal llm scores: %w", err)
	}
	scores.Cleverness = clamp(scores.Cleverness)
	scores.RhymeDensity = clamp(scores.RhymeDensity)
	scores.Wordplay = clamp(scores.Wordplay)
	scores.RadioScore = clamp(scores.RadioScore)
	return scores, nil
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
