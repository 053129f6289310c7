package analyzer

import (
	"math"
	"regexp"
	"strings"

	"github.com/evan-william/humanifyai/internal/textkit"
)

// contractionPattern detects contractions already present in the text.
var contractionPattern = regexp.MustCompile(
	`(?i)\b(i'm|you're|he's|she's|it's|we're|they're|i've|you've|we've|they've|` +
		`i'd|you'd|he'd|she'd|we'd|they'd|i'll|you'll|he'll|she'll|we'll|they'll|` +
		`isn't|aren't|wasn't|weren't|haven't|hasn't|hadn't|won't|wouldn't|don't|` +
		`doesn't|didn't|can't|couldn't|shouldn't|mustn't|needn't|let's|that's|` +
		`who's|what's|here's|there's|when's|where's|why's|how's|would've|` +
		`could've|should've|must've)\b`)

// passivePattern is a heuristic for auxiliary-be + past participle.
var passivePattern = regexp.MustCompile(
	`(?i)\b(was|were|is|are|been|being)\s+([a-z]+ed|built|written|made|done|given|` +
		`taken|known|seen|found|used|called|considered|expected|required|provided|shown)\b`)

var punctuationPattern = regexp.MustCompile(`[.,;:!?"'—–-]`)

// extract computes the raw (un-normalized) value of every feature plus the
// word and sentence counts. Zero words short-circuits to all-zero raw
// values; contraction_rate uses -1 as the "no opportunities" sentinel.
func (a *Analyzer) extract(text string) (map[string]float64, int, int) {
	raw := map[string]float64{}
	sentences := textkit.Sentences(text)
	words := textkit.Words(strings.ToLower(text))

	wordCount := len(words)
	sentenceCount := len(sentences)
	if wordCount == 0 {
		return raw, 0, 0
	}
	nWords := float64(wordCount)
	nSentences := float64(sentenceCount)

	lengths := make([]float64, sentenceCount)
	questions, exclamations, conjunctionStarts, passives := 0, 0, 0, 0
	for i, s := range sentences {
		lengths[i] = float64(len(textkit.Words(s.Text)))
		if strings.HasSuffix(s.Text, "?") {
			questions++
		}
		if strings.HasSuffix(s.Text, "!") {
			exclamations++
		}
		if textkit.StartConjunctions[strings.ToLower(textkit.FirstWord(s.Text))] {
			conjunctionStarts++
		}
		if passivePattern.MatchString(s.Text) {
			passives++
		}
	}

	unique := map[string]bool{}
	fillers, firstPerson, hedges, rare := 0, 0, 0, 0
	syllables := 0
	for _, w := range words {
		unique[w] = true
		if textkit.FillerWords[w] {
			fillers++
		}
		if textkit.FirstPersonPronouns[w] {
			firstPerson++
		}
		if textkit.HedgeWords[w] {
			hedges++
		}
		if !textkit.CommonWords[w] {
			rare++
		}
		syllables += countSyllables(w)
	}

	raw["avg_sentence_length"] = mean(lengths)
	raw["sentence_length_variance"] = stddev(lengths)
	raw["lexical_diversity"] = float64(len(unique)) / nWords
	raw["contraction_rate"] = a.contractionRate(text)
	raw["passive_voice_density"] = float64(passives) / nSentences
	raw["formal_phrase_density"] = float64(a.formal.Count(text)) * 100 / nWords
	raw["filler_word_rate"] = float64(fillers) * 100 / nWords
	raw["punctuation_density"] = float64(len(punctuationPattern.FindAllString(text, -1))) / float64(len(text))
	raw["question_rate"] = float64(questions) / nSentences
	raw["exclamation_rate"] = float64(exclamations) / nSentences
	raw["first_person_rate"] = float64(firstPerson) / nWords
	raw["hedge_word_rate"] = float64(hedges) / nWords
	raw["conjunction_start_rate"] = float64(conjunctionStarts) / nSentences
	raw["avg_syllables_per_word"] = float64(syllables) / nWords
	raw["rare_word_rate"] = float64(rare) / nWords

	return raw, wordCount, sentenceCount
}

// contractionRate is contractions present over contractable opportunities,
// where opportunities are counted by running the contraction table in
// dry-run mode. Returns -1 when the text offers neither.
func (a *Analyzer) contractionRate(text string) float64 {
	present := len(contractionPattern.FindAllString(text, -1))
	open := a.contractions.Count(text)
	total := present + open
	if total == 0 {
		return -1
	}
	return float64(present) / float64(total)
}

// countSyllables is a rough vowel-group counter, good enough for
// statistical scoring.
func countSyllables(word string) int {
	word = strings.TrimRight(strings.ToLower(word), ".,!?;:")
	if len(word) <= 3 {
		return 1
	}
	word = strings.TrimSuffix(word, "e")
	count := 0
	inGroup := false
	for _, r := range word {
		if strings.ContainsRune("aeiouy", r) {
			if !inGroup {
				count++
			}
			inGroup = true
		} else {
			inGroup = false
		}
	}
	if count == 0 {
		return 1
	}
	return count
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return math.Sqrt(sum / float64(len(values)))
}
