package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resumebench/internal/common"
	"resumebench/internal/service"
	"resumebench/internal/types"
)

var reportCmd = &cobra.Command{
	Use:   "report [resume-file]",
	Short: "Produce a full diagnostic report for a resume",
	Long: `Run every analysis against a resume and produce a single diagnostic
report: benchmark score, extracted entities, timeline gaps and
overlaps, career advice, and readability diagnostics. The full
report requires the entity recognizer to be enabled.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if reportCategory == "" {
			return fmt.Errorf("--category is required")
		}
		return applyFormatDefaults(cmd, &reportConfig)
	},
	RunE: runReport,
}

var (
	reportConfig   common.CommandConfig
	reportCategory string
)

func init() {
	reportCmd.Flags().StringVarP(&reportConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	reportCmd.Flags().StringVar(&reportConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	reportCmd.Flags().StringVarP(&reportCategory, "category", "c", "", "Job category to benchmark against (required)")

	_ = reportCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runReport(cmd *cobra.Command, args []string) error {
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
		logger.Info("Starting diagnostic report",
			"category", reportCategory,
			"resume_chars", len(input),
			"output_format", cfg.OutputFormat)
	}

	reportOperation := func(ctx context.Context, text string) (types.DiagnosticReport, error) {
		return svc.Report(ctx, text, reportCategory)
	}

	if err := common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		reportConfig,
		args,
		createInput,
		reportOperation,
		logDetails,
	); err != nil {
		return fmt.Errorf("failed to build diagnostic report: %w", err)
	}
	logger.Info("Diagnostic report completed successfully")
	return nil
}
