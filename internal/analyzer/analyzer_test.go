package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evan-william/humanifyai/internal/ruleset"
	"github.com/evan-william/humanifyai/internal/types"
)

func newAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := New(ruleset.Default())
	require.NoError(t, err)
	return a
}

const sampleText = `I'm not sure the new cache layer is the win we hoped for. It's fast,
sure, but the hit rate dropped once we enabled compression. Maybe the keys
are too long? We'll run the numbers again tomorrow and decide. Honestly,
I'd rather ship something simple that we understand.`

func TestNew_RejectsInvalidRuleSet(t *testing.T) {
	rs := ruleset.Default()
	rs.Contractions = nil
	a, err := New(rs)
	assert.Error(t, err)
	assert.Nil(t, a)
}

func TestAnalyze_ProducesEveryFeature(t *testing.T) {
	a := newAnalyzer(t)
	res := a.Analyze(sampleText)

	require.Len(t, res.Features, len(types.FeatureKeys))
	for _, key := range types.FeatureKeys {
		score, ok := res.Features[key]
		require.True(t, ok, "missing feature %s", key)
		assert.GreaterOrEqual(t, score, 0.0, key)
		assert.LessOrEqual(t, score, 100.0, key)
	}
	assert.Greater(t, res.WordCount, 0)
	assert.Greater(t, res.SentenceCount, 0)
	assert.GreaterOrEqual(t, res.Score, 0.0)
	assert.LessOrEqual(t, res.Score, 100.0)
}

func TestAnalyze_EmptyText(t *testing.T) {
	a := newAnalyzer(t)
	for _, text := range []string{"", "   ", "\n\t", "123 456 !?"} {
		res := a.Analyze(text)
		assert.Equal(t, 0.0, res.Score)
		assert.Equal(t, "F", res.Grade)
		assert.Equal(t, 0, res.WordCount)
		assert.Equal(t, 0, res.SentenceCount)
		require.Len(t, res.Features, len(types.FeatureKeys))
		for key, v := range res.Features {
			assert.Equal(t, 0.0, v, key)
		}
		require.NotNil(t, res.Suggestions)
		assert.Empty(t, res.Suggestions)
	}
}

func TestAnalyze_HumanTextOutscoresRoboticText(t *testing.T) {
	a := newAnalyzer(t)

	robotic := "It is important to note that the utilization of advanced methodologies " +
		"facilitates optimal outcomes. Furthermore, it has been demonstrated that " +
		"the implementation of such approaches is recommended. Moreover, it should " +
		"be noted that the aforementioned considerations are essential."

	human := a.Analyze(sampleText)
	machine := a.Analyze(robotic)
	assert.Greater(t, human.Score, machine.Score)
}

func TestAnalyze_ShortTextPinsVarianceFeatures(t *testing.T) {
	a := newAnalyzer(t)
	res := a.Analyze("Four words right here")

	require.Equal(t, 4, res.WordCount)
	assert.Equal(t, 50.0, res.Features["sentence_length_variance"])
	assert.Equal(t, 50.0, res.Features["lexical_diversity"])
	assert.Equal(t, 50.0, res.Features["avg_syllables_per_word"])
	assert.Equal(t, 50.0, res.Features["rare_word_rate"])
}

func TestAnalyze_NoContractionOpportunitiesIsNeutral(t *testing.T) {
	a := newAnalyzer(t)
	// Nothing here matches the contraction table and nothing is contracted
	// already, so the rate has no signal and scores neutral.
	res := a.Analyze("The quick brown fox jumped over the lazy sleeping dog near the old river bank.")
	assert.Equal(t, 50.0, res.Features["contraction_rate"])
}

func TestAnalyze_ContractionRatePresent(t *testing.T) {
	a := newAnalyzer(t)
	// One contraction present, one open opportunity ("they are") gives a
	// raw rate of 0.5, inside the target band.
	res := a.Analyze("It's great because they are great words written here today.")
	assert.Equal(t, 100.0, res.Features["contraction_rate"])
}

func TestAnalyze_SuggestionsCapped(t *testing.T) {
	a := newAnalyzer(t)
	robotic := "It is important to note that the utilization of advanced methodologies " +
		"facilitates optimal outcomes. Furthermore, it has been demonstrated that " +
		"the implementation of such approaches is recommended."
	res := a.Analyze(robotic)
	assert.LessOrEqual(t, len(res.Suggestions), 5)
	assert.NotEmpty(t, res.Suggestions)
}

func TestAnalyze_SafeForConcurrentUse(t *testing.T) {
	a := newAnalyzer(t)
	done := make(chan types.AnalysisResult, 8)
	for i := 0; i < 8; i++ {
		go func() { done <- a.Analyze(sampleText) }()
	}
	first := <-done
	for i := 1; i < 8; i++ {
		assert.Equal(t, first.Score, (<-done).Score)
	}
}

func TestGradeFor_CutPoints(t *testing.T) {
	cases := []struct {
		score float64
		grade string
	}{
		{100, "A"}, {90, "A"}, {89.9, "B"}, {72.4, "B"}, {70, "B"},
		{69.9, "C"}, {50, "C"}, {49.9, "D"}, {30, "D"}, {29.9, "F"}, {0, "F"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.grade, gradeFor(tc.score), "score %.1f", tc.score)
	}
}

func TestBandScore_InsideAndFalloff(t *testing.T) {
	target := ruleset.FeatureTarget{Low: 10, High: 20, Weight: 0.1}

	assert.Equal(t, 100.0, bandScore(10, target))
	assert.Equal(t, 100.0, bandScore(15, target))
	assert.Equal(t, 100.0, bandScore(20, target))

	// Half a band width outside scores 50; a full width outside scores 0.
	assert.Equal(t, 50.0, bandScore(5, target))
	assert.Equal(t, 50.0, bandScore(25, target))
	assert.Equal(t, 0.0, bandScore(0, target))
	assert.Equal(t, 0.0, bandScore(30, target))
	assert.Equal(t, 0.0, bandScore(45, target))
}

func TestCountSyllables(t *testing.T) {
	cases := map[string]int{
		"cat":       1,
		"the":       1,
		"paper":     2,
		"remember":  3,
		"strength":  1,
		"beautiful": 3,
		"ooze":      1,
	}
	for word, want := range cases {
		assert.Equal(t, want, countSyllables(word), word)
	}
}
