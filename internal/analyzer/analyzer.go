// Package analyzer extracts linguistic features from text and maps them to
// a weighted 0-100 human-likeness score with a letter grade and
// improvement suggestions.
package analyzer

import (
	"math"

	"github.com/evan-william/humanifyai/internal/ruleset"
	"github.com/evan-william/humanifyai/internal/transform"
	"github.com/evan-william/humanifyai/internal/types"
)

// Analyzer scores text against a fixed rule set. It holds no mutable
// state; concurrent Analyze calls are safe.
type Analyzer struct {
	rules        *ruleset.RuleSet
	contractions *transform.Table
	formal       *transform.Table
}

// New builds an Analyzer. The rule set is validated up front so a
// malformed weight table fails at startup, never mid-request.
func New(rs *ruleset.RuleSet) (*Analyzer, error) {
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{
		rules:        rs,
		contractions: transform.NewTable(rs.Contractions),
		formal:       transform.NewTable(rs.FormalSimplify),
	}, nil
}

// Analyze scores one text sample. Empty or whitespace-only input returns a
// defined zero result (score 0, grade F, zero counts, no suggestions)
// rather than an error.
func (a *Analyzer) Analyze(text string) types.AnalysisResult {
	raw, wordCount, sentenceCount := a.extract(text)

	features := make(map[string]float64, len(types.FeatureKeys))
	if wordCount == 0 {
		for _, key := range types.FeatureKeys {
			features[key] = 0
		}
		return types.AnalysisResult{
			Score:       0,
			Grade:       gradeFor(0),
			Features:    features,
			Suggestions: []string{},
		}
	}

	score := 0.0
	for _, key := range types.FeatureKeys {
		target := a.rules.FeatureTargets[key]
		features[key] = a.normalize(key, raw[key], wordCount, target)
		score += target.Weight * features[key]
	}
	score = round1(score)

	return types.AnalysisResult{
		Score:         score,
		Grade:         gradeFor(score),
		WordCount:     wordCount,
		SentenceCount: sentenceCount,
		Features:      features,
		Suggestions:   a.suggestions(features),
	}
}

// normalize maps a raw metric into [0,100] via its band curve, pinning
// variance-dependent features to neutral 50 on very short texts and the
// contraction rate to 50 when the text offers no contractable spots.
func (a *Analyzer) normalize(key string, raw float64, wordCount int, target ruleset.FeatureTarget) float64 {
	if key == "contraction_rate" && raw < 0 {
		return 50
	}
	if wordCount < minWordsForVariance && varianceDependent[key] {
		return 50
	}
	return bandScore(raw, target)
}

// minWordsForVariance is the floor below which spread-style metrics are
// meaningless and default to neutral.
const minWordsForVariance = 5

var varianceDependent = map[string]bool{
	"sentence_length_variance": true,
	"lexical_diversity":        true,
	"avg_syllables_per_word":   true,
	"rare_word_rate":           true,
}

// bandScore gives 100 inside [Low, High] and falls off linearly outside,
// reaching 0 one band-width away. Both too-low and too-high raw values are
// penalized symmetrically.
func bandScore(value float64, target ruleset.FeatureTarget) float64 {
	if value >= target.Low && value <= target.High {
		return 100
	}
	span := target.High - target.Low
	if span <= 0 {
		span = 1e-6
	}
	distance := math.Min(math.Abs(value-target.Low), math.Abs(value-target.High))
	return round1(100 * math.Max(0, 1-distance/span))
}

// gradeFor applies the fixed cut points: A>=90, B>=70, C>=50, D>=30, F.
func gradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 70:
		return "B"
	case score >= 50:
		return "C"
	case score >= 30:
		return "D"
	default:
		return "F"
	}
}

// suggestions evaluates the trigger table in priority order against the
// normalized features, capped at MaxSuggestions.
func (a *Analyzer) suggestions(features map[string]float64) []string {
	tips := []string{}
	for _, rule := range a.rules.Suggestions {
		if len(tips) >= a.rules.MaxSuggestions {
			break
		}
		if features[rule.Feature] < rule.Threshold {
			tips = append(tips, rule.Message)
		}
	}
	return tips
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
