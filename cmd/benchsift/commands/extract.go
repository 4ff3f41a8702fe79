package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/benchsift/config"
	"github.com/teranos/benchsift/errors"
	"github.com/teranos/benchsift/logger"
	"github.com/teranos/benchsift/pipeline"
)

// ExtractCmd runs the extraction pipeline once over all configured datasets
var ExtractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract benchmark results into plot-data artifacts",
	Long: `Extract the median point estimate from every measurement document under
each configured dataset root and write one ordered (index, time) tuple list
per dataset.

A dataset that fails (malformed directory names, corrupt documents, write
errors) is reported and skipped; the remaining datasets still run. The exit
status is non-zero when any dataset failed.

Examples:
  benchsift extract                 # Use benchsift.toml found by upward search
  benchsift extract -c custom.toml  # Use an explicit config file
  benchsift extract --json          # Structured events for machine consumption`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		verbosity, _ := cmd.Flags().GetCount("verbose")
		return runExtract(configPath, jsonOutput, verbosity)
	},
}

func init() {
	ExtractCmd.Flags().StringP("config", "c", "", "Path to config file (default: search for benchsift.toml upward)")
}

// loadConfig loads an explicit config file, or the merged user/project config
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromFile(configPath)
	}
	return config.Load()
}

// newEmitter picks the operator-visible progress channel
func newEmitter(jsonOutput bool, verbosity int) pipeline.Emitter {
	if jsonOutput {
		return pipeline.NewJSONEmitter()
	}
	return pipeline.NewCLIEmitter(verbosity)
}

// runExtract runs the pipeline once
func runExtract(configPath string, jsonOutput bool, verbosity int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	runner := pipeline.NewRunner(logger.Logger, newEmitter(jsonOutput, verbosity))

	summary, err := runner.Run(cfg.Datasets)
	if err != nil {
		return err
	}

	if summary.Failed > 0 {
		return errors.Newf("%d of %d dataset(s) failed", summary.Failed, len(summary.Datasets))
	}
	return nil
}
