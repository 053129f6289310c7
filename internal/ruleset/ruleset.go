// Package ruleset holds the static configuration of the analyzer and the
// transformation pipeline: pattern tables, feature weights, normalization
// bands, suggestion rules and the opener list. A RuleSet is built once at
// startup and passed in; it is never mutated afterwards, so tests can
// substitute alternate tables without touching process-wide state.
package ruleset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/evan-william/humanifyai/internal/types"
)

//go:embed schema.json
var overrideSchema string

// Rule is one match -> replacement pair in a pass's pattern table. Match is
// stored lowercase; the match engine handles casing. An empty Replace means
// the matched span is deleted along with one adjacent space.
type Rule struct {
	Match   string `json:"match"`
	Replace string `json:"replace"`
}

// FeatureTarget defines the normalization band and scoring weight for one
// feature. Raw values inside [Low, High] score 100; outside, the score
// falls off linearly over one band width.
type FeatureTarget struct {
	Low    float64 `json:"low"`
	High   float64 `json:"high"`
	Weight float64 `json:"weight"`
}

// SuggestionRule emits Message when the named feature's normalized score is
// below Threshold. Rules are evaluated in table order (priority order).
type SuggestionRule struct {
	Feature   string  `json:"feature"`
	Threshold float64 `json:"threshold"`
	Message   string  `json:"message"`
}

// RuleSet is the complete static configuration of the core.
type RuleSet struct {
	PassiveRewrites []Rule                   `json:"passive_rewrites"`
	FormalSimplify  []Rule                   `json:"formal_simplify"`
	Contractions    []Rule                   `json:"contractions"`
	VarietyOpeners  []string                 `json:"variety_openers"`
	FeatureTargets  map[string]FeatureTarget `json:"feature_targets"`
	Suggestions     []SuggestionRule         `json:"suggestions"`
	MaxSuggestions  int                      `json:"max_suggestions"`
}

// InconsistencyError reports a malformed rule set. This is a programming or
// configuration defect and must stop startup rather than degrade scoring.
type InconsistencyError struct {
	Message string
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("ruleset inconsistency: %s", e.Message)
}

// LoadError reports a failure to read or parse a rule override file.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load ruleset %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load ruleset %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads a JSON rule set from path, validates it against the embedded
// schema and the internal consistency rules, and returns it. Pass an empty
// path to get the built-in defaults.
func Load(path string) (*RuleSet, error) {
	if path == "" {
		rs := Default()
		if err := rs.Validate(); err != nil {
			return nil, err
		}
		return rs, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "read failed", Cause: err}
	}

	schemaLoader := gojsonschema.NewStringLoader(overrideSchema)
	docLoader := gojsonschema.NewBytesLoader(data)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
	}
	if !result.Valid() {
		var sb strings.Builder
		for i, desc := range result.Errors() {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(desc.String())
		}
		return nil, &LoadError{Path: path, Message: sb.String()}
	}

	var rs RuleSet
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, &LoadError{Path: path, Message: "parse failed", Cause: err}
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return &rs, nil
}

// Validate checks the internal consistency contract: every feature key has
// a target, weights sum to 1.0, tables are populated, and every rule and
// suggestion is well formed.
func (rs *RuleSet) Validate() error {
	if len(rs.PassiveRewrites) == 0 || len(rs.FormalSimplify) == 0 || len(rs.Contractions) == 0 {
		return &InconsistencyError{Message: "a pattern table is empty"}
	}
	if len(rs.VarietyOpeners) == 0 {
		return &InconsistencyError{Message: "variety opener list is empty"}
	}
	if rs.MaxSuggestions <= 0 {
		return &InconsistencyError{Message: "max_suggestions must be positive"}
	}

	sum := 0.0
	for _, key := range types.FeatureKeys {
		target, ok := rs.FeatureTargets[key]
		if !ok {
			return &InconsistencyError{Message: fmt.Sprintf("missing feature target %q", key)}
		}
		if target.High < target.Low {
			return &InconsistencyError{Message: fmt.Sprintf("feature %q band is inverted", key)}
		}
		if target.Weight <= 0 {
			return &InconsistencyError{Message: fmt.Sprintf("feature %q weight must be positive", key)}
		}
		sum += target.Weight
	}
	// Report stray keys before the weight sum: an unknown key usually means
	// a typo that also throws the sum off.
	if len(rs.FeatureTargets) != len(types.FeatureKeys) {
		return &InconsistencyError{Message: "feature target table has unknown keys"}
	}
	if math.Abs(sum-1.0) > 1e-6 {
		return &InconsistencyError{Message: fmt.Sprintf("feature weights sum to %.4f, want 1.0", sum)}
	}

	for _, table := range [][]Rule{rs.PassiveRewrites, rs.FormalSimplify, rs.Contractions} {
		for _, r := range table {
			if strings.TrimSpace(r.Match) == "" {
				return &InconsistencyError{Message: "pattern rule with empty match"}
			}
			if r.Match != strings.ToLower(r.Match) {
				return &InconsistencyError{Message: fmt.Sprintf("pattern %q must be lowercase", r.Match)}
			}
		}
	}

	for _, s := range rs.Suggestions {
		if _, ok := rs.FeatureTargets[s.Feature]; !ok {
			return &InconsistencyError{Message: fmt.Sprintf("suggestion references unknown feature %q", s.Feature)}
		}
		if s.Message == "" {
			return &InconsistencyError{Message: fmt.Sprintf("suggestion for %q has no message", s.Feature)}
		}
	}

	return nil
}
