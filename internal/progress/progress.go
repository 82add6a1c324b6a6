package progress

import "time"

// Stage identifies which part of the generation pipeline is active.
type Stage string

const (
	StageIngest    Stage = "ingest"
	StageCompile   Stage = "compile"
	StageInvoke    Stage = "invoke"
	StageNormalize Stage = "normalize"
	StageAnalyze   Stage = "analyze"
	StageSave      Stage = "save"
	StageComplete  Stage = "complete"
)

// Event carries progress information from the pipeline to the renderer.
type Event struct {
	Stage   Stage
	Message string
	Percent float64 // 0.0–1.0
	Elapsed time.Duration
	Error   error
	// ScriptID and Title are set on StageComplete.
	ScriptID string
	Title    string
	// Segments is the generated segment count, set on StageComplete.
	Segments int
}

// Callback is the function signature for progress event handlers.
type Callback func(Event)

// NopCallback is a no-op progress callback for tests and silent mode.
func NopCallback(Event) {}

// NewEvent creates an Event with common fields populated.
func NewEvent(stage Stage, msg string, pct float64, start time.Time) Event {
	return Event{
		Stage:   stage,
		Message: msg,
		Percent: pct,
		Elapsed: time.Since(start),
	}
}
