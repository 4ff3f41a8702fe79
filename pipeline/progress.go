package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
)

// Emitter is the operator-visible channel for pipeline progress and errors.
//
// Implementations:
//   - CLIEmitter: pretty-printed terminal output using pterm
//   - JSONEmitter: structured JSON events for machine consumption
//   - NopEmitter: silence, for tests and library use
type Emitter interface {
	// EmitStage announces a pipeline stage for one dataset
	EmitStage(stage string, message string)

	// EmitDataset reports one finished dataset, successful or not
	EmitDataset(result DatasetResult)

	// EmitError reports a dataset-fatal error
	EmitError(stage string, err error)

	// EmitComplete reports the whole run
	EmitComplete(summary *RunSummary)
}

// ProgressEvent is one structured JSON progress event
type ProgressEvent struct {
	Type      string                 `json:"type"` // "stage", "dataset", "complete", "error"
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// CLIEmitter outputs pretty-printed progress to the terminal
type CLIEmitter struct {
	verbosity int
}

// NewCLIEmitter creates a CLI progress emitter for terminal output
func NewCLIEmitter(verbosity int) *CLIEmitter {
	return &CLIEmitter{verbosity: verbosity}
}

func (e *CLIEmitter) EmitStage(stage string, message string) {
	if e.verbosity >= 1 {
		pterm.Printf("%s %s: %s\n", pterm.Gray("·"), pterm.LightCyan(stage), message)
	}
}

func (e *CLIEmitter) EmitDataset(result DatasetResult) {
	if !result.Success {
		pterm.Error.Printf("%s: %s\n", result.Root, result.Message)
		return
	}

	line := fmt.Sprintf("%s → %s (%s points", result.Root, result.Output,
		pterm.Green(fmt.Sprintf("%d", result.Extracted)))
	if result.Dropped > 0 {
		line += fmt.Sprintf(", %s dropped", pterm.Yellow(fmt.Sprintf("%d", result.Dropped)))
	}
	line += ")"
	pterm.Success.Println(line)
}

func (e *CLIEmitter) EmitError(stage string, err error) {
	pterm.Error.Printf("Error in %s: %v\n", stage, err)
}

func (e *CLIEmitter) EmitComplete(summary *RunSummary) {
	if summary.Failed == 0 {
		pterm.Printf("%s %d dataset(s) extracted\n", pterm.Green("✓"), summary.Succeeded)
	} else {
		pterm.Printf("%s %d of %d dataset(s) failed\n", pterm.Red("✗"),
			summary.Failed, len(summary.Datasets))
	}
	if e.verbosity >= 1 {
		pterm.Printf("  run %s in %s\n", summary.RunID,
			summary.EndTime.Sub(summary.StartTime).Round(time.Millisecond))
	}
}

// JSONEmitter outputs structured JSON events to stdout
type JSONEmitter struct {
	encoder *json.Encoder
}

// NewJSONEmitter creates a JSON progress emitter for structured output
func NewJSONEmitter() *JSONEmitter {
	return &JSONEmitter{
		encoder: json.NewEncoder(os.Stdout),
	}
}

func (e *JSONEmitter) EmitStage(stage string, message string) {
	e.encoder.Encode(ProgressEvent{
		Type:      "stage",
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"stage":   stage,
			"message": message,
		},
	})
}

func (e *JSONEmitter) EmitDataset(result DatasetResult) {
	e.encoder.Encode(ProgressEvent{
		Type:      "dataset",
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"result": result,
		},
	})
}

func (e *JSONEmitter) EmitError(stage string, err error) {
	e.encoder.Encode(ProgressEvent{
		Type:      "error",
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"stage": stage,
			"error": err.Error(),
		},
	})
}

func (e *JSONEmitter) EmitComplete(summary *RunSummary) {
	e.encoder.Encode(ProgressEvent{
		Type:      "complete",
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"summary": summary,
		},
	})
}

// NopEmitter discards all events
type NopEmitter struct{}

func (NopEmitter) EmitStage(string, string)      {}
func (NopEmitter) EmitDataset(DatasetResult)     {}
func (NopEmitter) EmitError(string, error)       {}
func (NopEmitter) EmitComplete(*RunSummary)      {}
