// Package types provides type definitions for structured data used throughout the humanifyai system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// FeatureKeys is the fixed, ordered set of feature names every analysis
// produces. Extraction must emit every key even for degenerate input.
var FeatureKeys = []string{
	"avg_sentence_length",
	"sentence_length_variance",
	"lexical_diversity",
	"contraction_rate",
	"passive_voice_density",
	"formal_phrase_density",
	"filler_word_rate",
	"punctuation_density",
	"question_rate",
	"exclamation_rate",
	"first_person_rate",
	"hedge_word_rate",
	"conjunction_start_rate",
	"avg_syllables_per_word",
	"rare_word_rate",
}

// AnalysisResult holds the human-likeness score for one text sample.
// Feature values are normalized component scores in [0,100].
type AnalysisResult struct {
	Score         float64            `json:"score"`
	Grade         string             `json:"grade"`
	WordCount     int                `json:"word_count"`
	SentenceCount int                `json:"sentence_count"`
	Features      map[string]float64 `json:"features"`
	Suggestions   []string           `json:"suggestions"`
}

// TransformOptions toggles individual pipeline passes. Passive-voice
// rewriting has no toggle and always runs.
type TransformOptions struct {
	UseContractions bool `json:"use_contractions"`
	SimplifyFormal  bool `json:"simplify_formal"`
	VarySentences   bool `json:"vary_sentences"`
}

// DefaultTransformOptions returns the default option set (all passes on).
func DefaultTransformOptions() TransformOptions {
	return TransformOptions{
		UseContractions: true,
		SimplifyFormal:  true,
		VarySentences:   true,
	}
}

// TransformResult pairs the rewritten text with before/after scores so the
// caller can see what changed.
type TransformResult struct {
	OriginalText    string         `json:"original_text"`
	TransformedText string         `json:"transformed_text"`
	BeforeScore     AnalysisResult `json:"before_score"`
	AfterScore      AnalysisResult `json:"after_score"`
	Improvement     float64        `json:"improvement"`
}
