package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/benchsift/config"
)

func writeMeasurementTree(t *testing.T, root string, dir string, pointEstimate float64) {
	t.Helper()
	buf, err := cbor.Marshal(map[string]interface{}{
		"estimates": map[string]interface{}{
			"median": map[string]interface{}{
				"point_estimate": pointEstimate,
			},
		},
	})
	require.NoError(t, err)

	full := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(full, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(full, "measurement.cbor"), buf, 0644))
}

func writeConfig(t *testing.T, datasets ...config.DatasetConfig) string {
	t.Helper()
	content := ""
	for _, d := range datasets {
		content += fmt.Sprintf("[[datasets]]\nroot = %q\noutput = %q\n\n", d.Root, d.Output)
	}
	path := filepath.Join(t.TempDir(), "benchsift.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunExtractEndToEnd(t *testing.T) {
	root := t.TempDir()
	writeMeasurementTree(t, root, "2th fibonacci number", 20.0)
	writeMeasurementTree(t, root, "1th fibonacci number", 10.0)

	output := filepath.Join(t.TempDir(), "results.txt")
	configPath := writeConfig(t, config.DatasetConfig{Root: root, Output: output})

	require.NoError(t, runExtract(configPath, true, 0))

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "[(1, 10.0), (2, 20.0)]", string(content))
}

func TestRunExtractFailedDatasetExitsNonzero(t *testing.T) {
	badRoot := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(badRoot, "not an index"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(badRoot, "not an index", "measurement.cbor"), []byte{0xa0}, 0644))

	goodRoot := t.TempDir()
	writeMeasurementTree(t, goodRoot, "1th fibonacci number", 10.0)

	outDir := t.TempDir()
	goodOutput := filepath.Join(outDir, "good.txt")
	configPath := writeConfig(t,
		config.DatasetConfig{Root: badRoot, Output: filepath.Join(outDir, "bad.txt")},
		config.DatasetConfig{Root: goodRoot, Output: goodOutput},
	)

	err := runExtract(configPath, true, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 dataset(s) failed")

	// The healthy dataset still produced its artifact
	content, readErr := os.ReadFile(goodOutput)
	require.NoError(t, readErr)
	assert.Equal(t, "[(1, 10.0)]", string(content))
}

func TestRunExtractMissingConfig(t *testing.T) {
	err := runExtract(filepath.Join(t.TempDir(), "nope.toml"), true, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRunInit(t *testing.T) {
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	require.NoError(t, runInit(false))

	cfg, err := config.LoadFromFile(config.ConfigFileName)
	require.NoError(t, err)
	assert.Len(t, cfg.Datasets, 2)
	assert.Equal(t, config.DefaultDebounceMs, cfg.Watch.DebounceMs)

	// Existing config is not clobbered without --force
	err = runInit(false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, runInit(true))
}
