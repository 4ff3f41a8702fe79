package commands

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/benchsift/errors"
	"github.com/teranos/benchsift/logger"
	"github.com/teranos/benchsift/pipeline"
)

// WatchCmd keeps the artifacts in sync with the dataset trees
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-extract whenever a dataset tree changes",
	Long: `Watch every configured dataset root and re-run the extraction pipeline
whenever the benchmarking harness writes new measurement documents.

Rapid bursts of file changes are debounced (watch.debounce_ms, default 500ms)
so a full harness run triggers one extraction, not hundreds. Writes to the
output artifacts themselves are ignored.

Runs until interrupted (Ctrl-C).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		verbosity, _ := cmd.Flags().GetCount("verbose")
		return runWatch(configPath, jsonOutput, verbosity)
	},
}

func init() {
	WatchCmd.Flags().StringP("config", "c", "", "Path to config file (default: search for benchsift.toml upward)")
}

func runWatch(configPath string, jsonOutput bool, verbosity int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	runner := pipeline.NewRunner(logger.Logger, newEmitter(jsonOutput, verbosity))
	debounce := time.Duration(cfg.DebounceMs()) * time.Millisecond

	watcher, err := pipeline.NewWatcher(runner, cfg.Datasets, debounce, logger.Logger)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		return errors.Wrap(err, "failed to start watcher")
	}

	if !jsonOutput {
		pterm.Printf("Watching %d dataset(s), debounce %s. Ctrl-C to stop.\n",
			len(cfg.Datasets), debounce)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh

	logger.Infow("Shutting down watcher", "signal", sig.String())
	return nil
}
