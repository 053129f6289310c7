package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/evan-william/humanifyai/internal/analyzer"
	"github.com/evan-william/humanifyai/internal/config"
	"github.com/evan-william/humanifyai/internal/htmltext"
	"github.com/evan-william/humanifyai/internal/report"
	"github.com/evan-william/humanifyai/internal/ruleset"
	"github.com/evan-william/humanifyai/internal/types"
)

// maxConcurrentInputs bounds parallel file reads and URL fetches.
const maxConcurrentInputs = 4

var (
	analyzeURLs    []string
	analyzeVerbose bool
	analyzeRules   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file... | -]",
	Short: "Score text files, URLs or stdin for human-likeness",
	Long: `Score one or more inputs for human-likeness. Pass file paths, "-" for
stdin, or --url to fetch and analyze a web page. Multiple inputs are
analyzed concurrently and reported in input order.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringArrayVar(&analyzeURLs, "url", nil, "URL to fetch and analyze (repeatable)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Show the per-feature breakdown")
	analyzeCmd.Flags().StringVar(&analyzeRules, "rules", "", "Path to a rule-set override file")
	rootCmd.AddCommand(analyzeCmd)
}

// input is one thing to analyze: a file, a URL, or stdin.
type input struct {
	label string
	load  func(ctx context.Context) (string, error)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	settings, err := config.FromEnv()
	if err != nil {
		return err
	}

	a, err := buildAnalyzer(settings, analyzeRules)
	if err != nil {
		return err
	}

	inputs := collectInputs(args, analyzeURLs)
	if len(inputs) == 0 {
		return fmt.Errorf("nothing to analyze: pass file paths, \"-\" for stdin, or --url")
	}

	results := make([]types.AnalysisResult, len(inputs))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(maxConcurrentInputs)
	for i, in := range inputs {
		g.Go(func() error {
			text, err := in.load(ctx)
			if err != nil {
				return err
			}
			if len(text) > settings.MaxTextLength {
				return fmt.Errorf("%s: text exceeds maximum length of %d characters", in.label, settings.MaxTextLength)
			}
			results[i] = a.Analyze(text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printer := report.NewPrinter(cmd.OutOrStdout(), analyzeVerbose)
	for i, in := range inputs {
		printer.PrintAnalysis(in.label, results[i])
	}
	return nil
}

// buildAnalyzer loads the rule set (flag wins over RULES_PATH) and builds
// the analyzer from it.
func buildAnalyzer(settings *config.Settings, rulesFlag string) (*analyzer.Analyzer, error) {
	path := rulesFlag
	if path == "" {
		path = settings.RulesPath
	}
	rules, err := ruleset.Load(path)
	if err != nil {
		return nil, err
	}
	return analyzer.New(rules)
}

func collectInputs(files, urls []string) []input {
	var inputs []input
	for _, path := range files {
		inputs = append(inputs, fileInput(path))
	}
	for _, u := range urls {
		inputs = append(inputs, input{
			label: u,
			load:  func(ctx context.Context) (string, error) { return htmltext.FromURL(ctx, u) },
		})
	}
	return inputs
}

func fileInput(path string) input {
	if path == "-" {
		return input{
			label: "stdin",
			load: func(context.Context) (string, error) {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return "", fmt.Errorf("failed to read stdin: %w", err)
				}
				return string(data), nil
			},
		}
	}
	return input{
		label: path,
		load: func(context.Context) (string, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return "", fmt.Errorf("failed to read %s: %w", path, err)
			}
			return string(data), nil
		},
	}
}
