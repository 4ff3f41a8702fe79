package config

import "fmt"

// Config represents the benchsift configuration: the static list of dataset
// root / output artifact pairs plus watch-mode tuning.
type Config struct {
	Datasets []DatasetConfig `mapstructure:"datasets" toml:"datasets"`
	Watch    WatchConfig     `mapstructure:"watch" toml:"watch"`
}

// DatasetConfig names one benchmark result tree and the plot-data artifact
// derived from it. Each configured dataset is processed independently.
type DatasetConfig struct {
	// Root is the filesystem subtree holding the harness output for one
	// benchmark suite run (e.g. "regs-r1cs-fib-benchmark-results/data").
	Root string `mapstructure:"root" toml:"root"`

	// Output is the path of the plot-data artifact written for this dataset,
	// consumed by the external plotting tool.
	Output string `mapstructure:"output" toml:"output"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	DebounceMs int `mapstructure:"debounce_ms" toml:"debounce_ms"` // Debounce for rapid file changes (default: 500)
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Datasets: %d, Watch: {DebounceMs: %d}}",
		len(c.Datasets), c.Watch.DebounceMs)
}
