// Package pipeline orchestrates benchmark extraction: for each configured
// dataset it locates measurement files, extracts the median point estimate
// per input size, and writes the plot-data artifact. Datasets are fully
// independent; one bad dataset never blocks the others.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/benchsift/config"
	"github.com/teranos/benchsift/criterion"
	"github.com/teranos/benchsift/errors"
)

// Runner executes the locate -> extract -> render pipeline over configured
// datasets.
type Runner struct {
	logger  *zap.SugaredLogger
	emitter Emitter
}

// DatasetResult is the outcome of one dataset's pipeline
type DatasetResult struct {
	Root      string    `json:"root"`
	Output    string    `json:"output"`
	Located   int       `json:"located"`
	Extracted int       `json:"extracted"`
	Dropped   int       `json:"dropped"`
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// RunSummary is the outcome of one whole run across all datasets
type RunSummary struct {
	RunID     string          `json:"run_id"`
	Datasets  []DatasetResult `json:"datasets"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
	StartTime time.Time       `json:"start_time"`
	EndTime   time.Time       `json:"end_time"`
}

// NewRunner creates a pipeline runner. A nil emitter silences progress
// output; a nil logger falls back to a no-op logger.
func NewRunner(logger *zap.SugaredLogger, emitter Emitter) *Runner {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if emitter == nil {
		emitter = NopEmitter{}
	}
	return &Runner{
		logger:  logger.Named("pipeline"),
		emitter: emitter,
	}
}

// Run processes every configured dataset in order. Dataset-fatal errors
// (malformed index names, corrupt documents, write failures) are reported
// and recorded in the summary while the remaining datasets still run. The
// returned error is reserved for the run being impossible at all.
func (r *Runner) Run(datasets []config.DatasetConfig) (*RunSummary, error) {
	if len(datasets) == 0 {
		return nil, errors.WithHint(errors.ErrNoDatasets,
			"add [[datasets]] entries to benchsift.toml or run 'benchsift init'")
	}

	summary := &RunSummary{
		RunID:     uuid.NewString(),
		StartTime: time.Now(),
	}

	for _, ds := range datasets {
		result := r.runDataset(ds)
		summary.Datasets = append(summary.Datasets, result)
		if result.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
		r.emitter.EmitDataset(result)
	}

	summary.EndTime = time.Now()
	r.emitter.EmitComplete(summary)

	r.logger.Infow("run complete",
		"run_id", summary.RunID,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed)

	return summary, nil
}

// runDataset runs one dataset's pipeline end to end
func (r *Runner) runDataset(ds config.DatasetConfig) DatasetResult {
	result := DatasetResult{
		Root:      ds.Root,
		Output:    ds.Output,
		StartTime: time.Now(),
	}

	r.emitter.EmitStage("locate", ds.Root)

	located, err := criterion.Locate(ds.Root)
	if err != nil {
		return r.failDataset(result, "locate", err)
	}
	result.Located = len(located)
	r.logger.Debugw("located measurement files",
		"root", ds.Root,
		"count", len(located))

	r.emitter.EmitStage("extract", ds.Root)

	points, dropped, err := criterion.Extract(located)
	if err != nil {
		return r.failDataset(result, "extract", err)
	}
	result.Extracted = len(points)
	result.Dropped = dropped
	if dropped > 0 {
		// Shape misses are non-fatal but silent loss hides holes in the
		// plotted series, so always surface the count.
		r.logger.Warnw("documents dropped: estimate shape missing",
			"root", ds.Root,
			"dropped", dropped)
	}

	if err := writeArtifact(ds.Output, FormatPoints(points)); err != nil {
		return r.failDataset(result, "write", err)
	}

	result.Success = true
	result.Message = fmt.Sprintf("wrote %d points to %s", len(points), ds.Output)
	result.EndTime = time.Now()

	r.logger.Infow("dataset extracted",
		"root", ds.Root,
		"output", ds.Output,
		"points", len(points),
		"dropped", dropped)

	return result
}

// failDataset records a dataset-fatal error and reports it to the operator
func (r *Runner) failDataset(result DatasetResult, stage string, err error) DatasetResult {
	result.Success = false
	result.Message = err.Error()
	result.EndTime = time.Now()

	r.logger.Errorw("dataset failed",
		"root", result.Root,
		"stage", stage,
		"error", err)
	r.emitter.EmitError(stage, err)

	return result
}

// writeArtifact writes the rendered tuple list as the single line of the
// output artifact
func writeArtifact(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create output directory for %s", path)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, "failed to write artifact %s", path)
	}
	return nil
}
