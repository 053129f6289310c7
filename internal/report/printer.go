// Package report provides formatted terminal output for analysis and
// transformation results.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/evan-william/humanifyai/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 64
	// maxFeaturesToShow limits the per-feature breakdown in verbose mode
	maxFeaturesToShow = 15
)

// Printer handles formatted output for the CLI.
type Printer struct {
	out     io.Writer
	verbose bool
}

// NewPrinter creates a Printer that writes to the given writer.
func NewPrinter(out io.Writer, verbose bool) *Printer {
	return &Printer{out: out, verbose: verbose}
}

// printBox prints a formatted box with a title and content.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a summary of one analysis result. Label names the
// input (a file path, URL or "stdin").
func (p *Printer) PrintAnalysis(label string, res types.AnalysisResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:     %.1f / 100 (grade %s)\n", res.Score, res.Grade))
	sb.WriteString(fmt.Sprintf("Words:     %d\n", res.WordCount))
	sb.WriteString(fmt.Sprintf("Sentences: %d\n", res.SentenceCount))

	if p.verbose && len(res.Features) > 0 {
		sb.WriteString("\nFeatures:\n")
		keys := make([]string, 0, len(res.Features))
		for k := range res.Features {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		shown := 0
		for _, k := range keys {
			if shown >= maxFeaturesToShow {
				break
			}
			sb.WriteString(fmt.Sprintf("  %-26s %6.1f\n", k, res.Features[k]))
			shown++
		}
	}

	if len(res.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, tip := range res.Suggestions {
			sb.WriteString(fmt.Sprintf("  • %s\n", tip))
		}
	}

	p.printBox("ANALYSIS: "+label, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTransform outputs the before/after summary of a transformation.
func (p *Printer) PrintTransform(res types.TransformResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Before:      %.1f (grade %s)\n", res.BeforeScore.Score, res.BeforeScore.Grade))
	sb.WriteString(fmt.Sprintf("After:       %.1f (grade %s)\n", res.AfterScore.Score, res.AfterScore.Grade))
	sb.WriteString(fmt.Sprintf("Improvement: %+.1f", res.Improvement))
	p.printBox("TRANSFORM", sb.String())
}
