package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/evan-william/humanifyai/internal/analyzer"
	"github.com/evan-william/humanifyai/internal/config"
	"github.com/evan-william/humanifyai/internal/report"
	"github.com/evan-william/humanifyai/internal/ruleset"
	"github.com/evan-william/humanifyai/internal/transform"
	"github.com/evan-william/humanifyai/internal/types"
)

var (
	transformNoContractions bool
	transformNoSimplify     bool
	transformNoVary         bool
	transformOutput         string
	transformVerbose        bool
	transformRules          string
)

var transformCmd = &cobra.Command{
	Use:   "transform [file | -]",
	Short: "Rewrite text to sound more human",
	Long: `Run the rewrite pipeline over a file or stdin and print the result.
Passive-voice rewriting always runs; the other passes can be switched
off individually. With -o the rewritten text goes to a file and the
before/after score summary is printed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTransform,
}

func init() {
	transformCmd.Flags().BoolVar(&transformNoContractions, "no-contractions", false, "Skip the contraction pass")
	transformCmd.Flags().BoolVar(&transformNoSimplify, "no-simplify", false, "Skip the formal-phrase simplification pass")
	transformCmd.Flags().BoolVar(&transformNoVary, "no-vary", false, "Skip the sentence-variety pass")
	transformCmd.Flags().StringVarP(&transformOutput, "output", "o", "", "Write the rewritten text to a file")
	transformCmd.Flags().BoolVarP(&transformVerbose, "verbose", "v", false, "Print the before/after score summary to stderr")
	transformCmd.Flags().StringVar(&transformRules, "rules", "", "Path to a rule-set override file")
	rootCmd.AddCommand(transformCmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	settings, err := config.FromEnv()
	if err != nil {
		return err
	}

	path := transformRules
	if path == "" {
		path = settings.RulesPath
	}
	rules, err := ruleset.Load(path)
	if err != nil {
		return err
	}

	a, err := analyzer.New(rules)
	if err != nil {
		return err
	}
	pipeline := transform.NewPipeline(rules)

	source := "-"
	if len(args) == 1 {
		source = args[0]
	}
	in := fileInput(source)
	text, err := in.load(cmd.Context())
	if err != nil {
		return err
	}
	if len(text) > settings.MaxTextLength {
		return fmt.Errorf("%s: text exceeds maximum length of %d characters", in.label, settings.MaxTextLength)
	}

	opts := types.TransformOptions{
		UseContractions: !transformNoContractions,
		SimplifyFormal:  !transformNoSimplify,
		VarySentences:   !transformNoVary,
	}

	before := a.Analyze(text)
	rewritten := pipeline.Transform(text, opts)
	after := a.Analyze(rewritten)

	result := types.TransformResult{
		OriginalText:    text,
		TransformedText: rewritten,
		BeforeScore:     before,
		AfterScore:      after,
		Improvement:     round1(after.Score - before.Score),
	}

	if transformOutput != "" {
		if err := os.WriteFile(transformOutput, []byte(rewritten), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", transformOutput, err)
		}
		report.NewPrinter(cmd.OutOrStdout(), transformVerbose).PrintTransform(result)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), rewritten)
	if transformVerbose {
		report.NewPrinter(cmd.ErrOrStderr(), true).PrintTransform(result)
	}
	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
