package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/benchsift/config"
	"github.com/teranos/benchsift/errors"
)

// writeEstimates drops a harness-shaped measurement document into
// root/<dir>/measurement.cbor
func writeEstimates(t *testing.T, root string, dir string, pointEstimate float64) {
	t.Helper()
	buf, err := cbor.Marshal(map[string]interface{}{
		"estimates": map[string]interface{}{
			"median": map[string]interface{}{
				"point_estimate": pointEstimate,
				"standard_error": 0.1,
			},
		},
	})
	require.NoError(t, err)

	full := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(full, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(full, "measurement.cbor"), buf, 0644))
}

func readArtifact(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestRunWritesOrderedArtifact(t *testing.T) {
	root := t.TempDir()
	writeEstimates(t, root, "3th fibonacci number", 30.0)
	writeEstimates(t, root, "1th fibonacci number", 10.0)
	writeEstimates(t, root, "2th fibonacci number", 20.0)

	output := filepath.Join(t.TempDir(), "results.txt")

	summary, err := NewRunner(nil, nil).Run([]config.DatasetConfig{
		{Root: root, Output: output},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Succeeded)
	assert.Zero(t, summary.Failed)
	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, "[(1, 10.0), (2, 20.0), (3, 30.0)]", readArtifact(t, output))
}

func TestRunEmptyTreeWritesEmptyList(t *testing.T) {
	output := filepath.Join(t.TempDir(), "results.txt")

	summary, err := NewRunner(nil, nil).Run([]config.DatasetConfig{
		{Root: t.TempDir(), Output: output},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, "[]", readArtifact(t, output))
}

func TestRunBadDatasetDoesNotBlockOthers(t *testing.T) {
	badRoot := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(badRoot, "abc"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(badRoot, "abc", "measurement.cbor"), []byte{0xa0}, 0644))

	goodRoot := t.TempDir()
	writeEstimates(t, goodRoot, "5th fibonacci number", 50.0)

	outDir := t.TempDir()
	badOutput := filepath.Join(outDir, "bad.txt")
	goodOutput := filepath.Join(outDir, "good.txt")

	summary, err := NewRunner(nil, nil).Run([]config.DatasetConfig{
		{Root: badRoot, Output: badOutput},
		{Root: goodRoot, Output: goodOutput},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Succeeded)

	require.Len(t, summary.Datasets, 2)
	assert.False(t, summary.Datasets[0].Success)
	assert.Contains(t, summary.Datasets[0].Message, "abc")

	assert.True(t, summary.Datasets[1].Success)
	assert.Equal(t, "[(5, 50.0)]", readArtifact(t, goodOutput))

	// The failed dataset writes nothing
	_, statErr := os.Stat(badOutput)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunCountsDroppedDocuments(t *testing.T) {
	root := t.TempDir()
	writeEstimates(t, root, "1th fibonacci number", 10.0)

	// Valid CBOR without the estimate shape: dropped, not fatal
	noEstimates, err := cbor.Marshal(map[string]interface{}{"iterations": 100})
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "2th fibonacci number"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "2th fibonacci number", "measurement.cbor"), noEstimates, 0644))

	output := filepath.Join(t.TempDir(), "results.txt")

	summary, err := NewRunner(nil, nil).Run([]config.DatasetConfig{
		{Root: root, Output: output},
	})
	require.NoError(t, err)

	require.Len(t, summary.Datasets, 1)
	result := summary.Datasets[0]
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Located)
	assert.Equal(t, 1, result.Extracted)
	assert.Equal(t, 1, result.Dropped)
	assert.Equal(t, "[(1, 10.0)]", readArtifact(t, output))
}

func TestRunCreatesOutputDirectory(t *testing.T) {
	root := t.TempDir()
	writeEstimates(t, root, "1th fibonacci number", 10.0)

	output := filepath.Join(t.TempDir(), "plots", "nested", "results.txt")

	summary, err := NewRunner(nil, nil).Run([]config.DatasetConfig{
		{Root: root, Output: output},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, "[(1, 10.0)]", readArtifact(t, output))
}

func TestRunNoDatasets(t *testing.T) {
	_, err := NewRunner(nil, nil).Run(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNoDatasets))
}
