package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resumebench/internal/common"
	"resumebench/internal/service"
	"resumebench/internal/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [resume-file]",
	Short: "Extract entities from a resume",
	Long: `Extract structured entities from a resume: skills, education,
experience, organizations, and employment date ranges. Entity
recognition requires the recognizer to be enabled and configured
with an API key.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return applyFormatDefaults(cmd, &parseConfig)
	},
	RunE: runParse,
}

var parseConfig common.CommandConfig

func init() {
	parseCmd.Flags().StringVarP(&parseConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	parseCmd.Flags().StringVar(&parseConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = parseCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runParse(cmd *cobra.Command, args []string) error {
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
		logger.Info("Starting entity extraction",
			"resume_chars", len(input),
			"output_format", cfg.OutputFormat)
	}

	parseOperation := func(ctx context.Context, text string) (types.Entities, error) {
		return svc.Parse(ctx, text)
	}

	if err := common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		parseConfig,
		args,
		createInput,
		parseOperation,
		logDetails,
	); err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	logger.Info("Entity extraction completed successfully")
	return nil
}
