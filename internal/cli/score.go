package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resumebench/internal/common"
	"resumebench/internal/service"
	"resumebench/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume-file]",
	Short: "Benchmark a resume against a job category",
	Long: `Score a resume against the TF-IDF profile of a job category built
from the reference corpus. The report includes cosine similarity, the
curated skill match ratio, matched and missing skills, and the top
terms that characterize the category.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if scoreCategory == "" {
			return fmt.Errorf("--category is required")
		}
		return applyFormatDefaults(cmd, &scoreConfig)
	},
	RunE: runScore,
}

var (
	scoreConfig   common.CommandConfig
	scoreCategory string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	scoreCmd.Flags().StringVarP(&scoreCategory, "category", "c", "", "Job category to benchmark against (required)")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
	_ = scoreCmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		logger := getLoggerFromContext(cmd.Context())
		svc, err := service.Shared(logger)
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		names := make([]string, 0)
		for _, info := range svc.Categories() {
			names = append(names, info.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	svc, err := service.Shared(logger)
	if err != nil {
		return err
	}

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(input string, cfg common.CommandConfig) {
		logger.Info("Starting resume benchmark",
			"category", scoreCategory,
			"resume_chars", len(input),
			"output_format", cfg.OutputFormat)
	}

	scoreOperation := func(ctx context.Context, text string) (types.ScoreReport, error) {
		return svc.Score(ctx, text, scoreCategory)
	}

	if err := common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		scoreConfig,
		args,
		createInput,
		scoreOperation,
		logDetails,
	); err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	logger.Info("Resume benchmark completed successfully")
	return nil
}
