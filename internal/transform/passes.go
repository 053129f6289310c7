package transform

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/evan-william/humanifyai/internal/ruleset"
	"github.com/evan-william/humanifyai/internal/textkit"
)

// Pass is one stage of the transformation pipeline. Apply is a pure
// function of its input; the same text always yields the same output.
type Pass interface {
	Name() string
	Apply(text string) string
}

type tablePass struct {
	name  string
	table *Table
}

func (p *tablePass) Name() string { return p.name }

func (p *tablePass) Apply(text string) string { return p.table.Apply(text) }

// NewPassiveVoiceRewriter rewrites the catalog of stock impersonal passive
// openers ("It has been shown that" and friends) to fixed active-voice
// equivalents. It is not a general passive-to-active transform and it
// always runs first, because later tables assume these openers are gone.
func NewPassiveVoiceRewriter(rs *ruleset.RuleSet) Pass {
	return &tablePass{name: "passive_rewrites", table: NewTable(rs.PassiveRewrites)}
}

// NewFormalSimplifier swaps transitions, filler openings, verbose
// constructions and formal verbs for casual equivalents.
func NewFormalSimplifier(rs *ruleset.RuleSet) Pass {
	return &tablePass{name: "formal_simplify", table: NewTable(rs.FormalSimplify)}
}

// NewContractionExpander forms contractions ("they are" -> "they're").
// Despite the historical name it only works toward contractions; existing
// ones are left untouched, which makes the pass idempotent.
func NewContractionExpander(rs *ruleset.RuleSet) Pass {
	return &tablePass{name: "contractions", table: NewTable(rs.Contractions)}
}

// varietyClass is the first-word class checked for paragraph-level
// monotony ("The ... This ... The ..." openings).
var varietyClass = map[string]bool{"the": true, "this": true, "it": true}

// SentenceVarietyInjector prepends casual openers to monotonous
// mid-paragraph sentences. Opener choice is round-robin over the injection
// ordinal, so the same input always produces the same output.
type SentenceVarietyInjector struct {
	openers []string
}

// NewSentenceVarietyInjector builds the variety pass from the rule set's
// opener list.
func NewSentenceVarietyInjector(rs *ruleset.RuleSet) *SentenceVarietyInjector {
	return &SentenceVarietyInjector{openers: rs.VarietyOpeners}
}

// Name implements Pass.
func (v *SentenceVarietyInjector) Name() string { return "sentence_variety" }

// Apply rewrites each paragraph independently; text outside paragraph
// spans (the blank-line separators) is copied through verbatim.
func (v *SentenceVarietyInjector) Apply(text string) string {
	spans := textkit.ParagraphSpans(text)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 64)
	prev := 0
	injected := 0
	for _, span := range spans {
		b.WriteString(text[prev:span[0]])
		b.WriteString(v.applyParagraph(text[span[0]:span[1]], &injected))
		prev = span[1]
	}
	b.WriteString(text[prev:])
	return b.String()
}

// applyParagraph flags monotonous sentences and injects openers. The first
// sentence of a paragraph is never modified.
func (v *SentenceVarietyInjector) applyParagraph(par string, injected *int) string {
	sentences := textkit.Sentences(par)
	if len(sentences) < 2 {
		return par
	}

	firstWords := make([]string, len(sentences))
	classCount := 0
	for i, s := range sentences {
		firstWords[i] = strings.ToLower(textkit.FirstWord(s.Text))
		if varietyClass[firstWords[i]] {
			classCount++
		}
	}

	var b strings.Builder
	b.Grow(len(par) + 64)
	prev := 0
	for i, s := range sentences {
		b.WriteString(par[prev:s.Start])
		if i > 0 && v.monotonous(firstWords, i, classCount) {
			opener := v.openers[*injected%len(v.openers)]
			*injected++
			b.WriteString(opener)
			b.WriteString(" ")
			b.WriteString(demoteFirstWord(s.Text))
		} else {
			b.WriteString(s.Text)
		}
		prev = s.End
	}
	b.WriteString(par[prev:])
	return b.String()
}

// monotonous reports whether sentence i repeats the opening of its
// predecessor, or belongs to a first-word class shared by three or more
// sentences in the paragraph.
func (v *SentenceVarietyInjector) monotonous(firstWords []string, i, classCount int) bool {
	if firstWords[i] == "" {
		return false
	}
	if firstWords[i] == firstWords[i-1] {
		return true
	}
	return classCount >= 3 && varietyClass[firstWords[i]]
}

// demoteFirstWord lowercases the sentence's leading word unless it looks
// like a proper noun (not on the common-word list).
func demoteFirstWord(sentence string) string {
	first := textkit.FirstWord(sentence)
	if first == "" || !textkit.CommonWords[strings.ToLower(first)] {
		return sentence
	}
	r, size := utf8.DecodeRuneInString(sentence)
	if !unicode.IsUpper(r) {
		return sentence
	}
	return string(unicode.ToLower(r)) + sentence[size:]
}
