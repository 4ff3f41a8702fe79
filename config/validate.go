package config

import "github.com/teranos/benchsift/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// An empty dataset list is valid at load time; commands that need
	// datasets check for ErrNoDatasets themselves.

	seenOutputs := make(map[string]int)
	for i, ds := range c.Datasets {
		if ds.Root == "" {
			return errors.Newf("datasets[%d].root cannot be empty", i)
		}
		if ds.Output == "" {
			return errors.Newf("datasets[%d].output cannot be empty", i)
		}
		if j, dup := seenOutputs[ds.Output]; dup {
			return errors.Newf("datasets[%d] and datasets[%d] both write to %q", j, i, ds.Output)
		}
		seenOutputs[ds.Output] = i
	}

	// Debounce: 0 = use default, negative = invalid
	if c.Watch.DebounceMs < 0 {
		return errors.Newf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMs)
	}

	return nil
}
