package config

import "github.com/spf13/viper"

// Default watch-mode debounce, long enough to coalesce a harness writing a
// whole measurement directory.
const DefaultDebounceMs = 500

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("watch.debounce_ms", DefaultDebounceMs)
}

// DebounceMs returns the watch debounce with the default applied for zero values
func (c *Config) DebounceMs() int {
	if c.Watch.DebounceMs == 0 {
		return DefaultDebounceMs
	}
	return c.Watch.DebounceMs
}
