package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/benchsift/cmd/benchsift/commands"
	"github.com/teranos/benchsift/logger"
)

var rootCmd = &cobra.Command{
	Use:   "benchsift",
	Short: "benchsift - extract criterion benchmark results for plotting",
	Long: `benchsift - criterion benchmark result extraction.

benchsift walks the directory trees a criterion benchmarking harness writes,
correlates each measurement document with the input-size index encoded in
its directory name, and emits ordered (index, time) tuple lists for the
external plotting scripts.

Available commands:
  extract - Extract all configured datasets once
  watch   - Re-extract whenever a dataset tree changes
  init    - Write a starter benchsift.toml
  version - Show version information

Examples:
  benchsift init                    # Write a starter config
  benchsift extract                 # Extract using benchsift.toml
  benchsift extract -c custom.toml  # Extract with an explicit config
  benchsift watch -v                # Keep artifacts fresh while benchmarking`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize global logger before any command runs
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(verbosity, jsonOutput); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Emit machine-readable JSON output")

	rootCmd.AddCommand(commands.ExtractCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.InitCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
