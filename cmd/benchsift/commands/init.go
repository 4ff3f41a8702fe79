package commands

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/benchsift/config"
	"github.com/teranos/benchsift/errors"
)

const configHeader = `# benchsift configuration
#
# Each [[datasets]] entry pairs one benchmark result tree with the plot-data
# artifact extracted from it. Datasets are processed independently.
`

// InitCmd writes a starter config into the current directory
var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter benchsift.toml",
	Long: `Write a starter benchsift.toml into the current directory with example
dataset entries to edit.

Refuses to overwrite an existing config unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return runInit(force)
	},
}

func init() {
	InitCmd.Flags().Bool("force", false, "Overwrite an existing benchsift.toml")
}

func runInit(force bool) error {
	if _, err := os.Stat(config.ConfigFileName); err == nil && !force {
		return errors.Newf("%s already exists (use --force to overwrite)", config.ConfigFileName)
	}

	starter := config.Config{
		Datasets: []config.DatasetConfig{
			{
				Root:   "regs-r1cs-fib-benchmark-results/data",
				Output: "plots/r1cs-results.txt",
			},
			{
				Root:   "regs-omc-fib-benchmark-results/data",
				Output: "plots/omc-results.txt",
			},
		},
		Watch: config.WatchConfig{
			DebounceMs: config.DefaultDebounceMs,
		},
	}

	body, err := toml.Marshal(starter)
	if err != nil {
		return errors.Wrap(err, "failed to serialize starter config")
	}

	content := append([]byte(configHeader+"\n"), body...)
	if err := os.WriteFile(config.ConfigFileName, content, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", config.ConfigFileName)
	}

	pterm.Success.Printf("Wrote %s, edit the dataset entries to match your trees\n", config.ConfigFileName)
	return nil
}
