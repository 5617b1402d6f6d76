package cli

import (
	"github.com/spf13/cobra"

	"resumebench/internal/common"
	"resumebench/internal/service"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline [date-range...]",
	Short: "Analyze employment date ranges for gaps and overlaps",
	Long: `Analyze a list of employment date ranges for unexplained gaps and
overlapping positions. Each argument is a date range such as
"Jan 2020 - Mar 2022" or "2019 - present".

Example:
  resumebench timeline "Jan 2020 - Mar 2022" "Jun 2022 - present"`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return applyFormatDefaults(cmd, &timelineConfig)
	},
	RunE: runTimeline,
}

var (
	timelineConfig       common.CommandConfig
	timelineGapThreshold int
)

func init() {
	timelineCmd.Flags().StringVarP(&timelineConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	timelineCmd.Flags().StringVar(&timelineConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	timelineCmd.Flags().IntVar(&timelineGapThreshold, "gap-threshold", 0, "Months a gap must exceed to be flagged (default from config)")

	_ = timelineCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runTimeline(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	svc, err := service.Shared(logger)
	if err != nil {
		return err
	}

	logger.Info("Starting timeline analysis",
		"date_ranges", len(args),
		"output_format", timelineConfig.OutputFormat)

	report := svc.Timeline(cmd.Context(), args, timelineGapThreshold)

	outputHandler := common.NewOutputHandler(logger)
	return outputHandler.HandleOutput(report, timelineConfig)
}
