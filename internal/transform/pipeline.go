package transform

import (
	"regexp"
	"strings"

	"github.com/evan-william/humanifyai/internal/ruleset"
	"github.com/evan-william/humanifyai/internal/types"
)

// Pipeline runs the four passes in their canonical order: passive voice
// (unconditional), formal simplification, contractions, sentence variety.
// Flags filter passes out but never reorder them.
type Pipeline struct {
	passive      Pass
	formal       Pass
	contractions Pass
	variety      Pass
}

// NewPipeline builds a pipeline from a validated rule set.
func NewPipeline(rs *ruleset.RuleSet) *Pipeline {
	return &Pipeline{
		passive:      NewPassiveVoiceRewriter(rs),
		formal:       NewFormalSimplifier(rs),
		contractions: NewContractionExpander(rs),
		variety:      NewSentenceVarietyInjector(rs),
	}
}

// Transform applies the enabled passes to text and returns the rewritten
// text. Whitespace-only input is returned unchanged.
func (p *Pipeline) Transform(text string, opts types.TransformOptions) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	result := p.passive.Apply(text)
	if opts.SimplifyFormal {
		result = p.formal.Apply(result)
	}
	if opts.UseContractions {
		result = p.contractions.Apply(result)
	}
	if opts.VarySentences {
		result = p.variety.Apply(result)
	}
	return tidy(result)
}

var (
	multiSpace     = regexp.MustCompile(` {2,}`)
	danglingComma  = regexp.MustCompile(`, *,`)
	spaceBeforeDot = regexp.MustCompile(` +\.`)
	leadingSpace   = regexp.MustCompile(`\n +`)
)

// tidy fixes artifacts left by deletions: doubled spaces, ", ," sequences
// and spaces before periods. Newlines are never collapsed, so line and
// paragraph breaks survive.
func tidy(text string) string {
	text = multiSpace.ReplaceAllString(text, " ")
	text = danglingComma.ReplaceAllString(text, ",")
	text = spaceBeforeDot.ReplaceAllString(text, ".")
	text = leadingSpace.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
