package cli

import (
	"github.com/spf13/cobra"

	"resumebench/internal/common"
	"resumebench/internal/service"
)

var adviseCmd = &cobra.Command{
	Use:   "advise [category]",
	Short: "Suggest career paths and upskilling resources",
	Long: `Suggest the role matching a job category, the next roles on its
career path, and upskilling resources for missing skills.

Example:
  resumebench advise "Data Science" --missing nlp --missing spark`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return applyFormatDefaults(cmd, &adviseConfig)
	},
	RunE: runAdvise,
}

var (
	adviseConfig  common.CommandConfig
	adviseMissing []string
)

func init() {
	adviseCmd.Flags().StringVarP(&adviseConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	adviseCmd.Flags().StringVar(&adviseConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	adviseCmd.Flags().StringArrayVar(&adviseMissing, "missing", nil, "Missing skill to find upskilling resources for (repeatable)")

	_ = adviseCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAdvise(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	svc, err := service.Shared(logger)
	if err != nil {
		return err
	}

	logger.Info("Generating career advice",
		"category", args[0],
		"missing_skills", len(adviseMissing))

	advice := svc.Advise(cmd.Context(), args[0], adviseMissing)

	outputHandler := common.NewOutputHandler(logger)
	return outputHandler.HandleOutput(advice, adviseConfig)
}
