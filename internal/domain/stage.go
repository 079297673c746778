package domain

import "fmt"

// Stage names one step of the hydrate pipeline.
type Stage string

// Hydrate pipeline stages, in execution order.
const (
	StageConfig   Stage = "config"
	StageFetch    Stage = "fetch"
	StageTemplate Stage = "template"
	StageRender   Stage = "render"
	StageWrite    Stage = "write"
)

// StageError reports which stage of a hydrate run failed.
// Fields are ordered to minimize memory padding.
type StageError struct {
	Err   error
	Stage Stage
	Key   string // Issue key being processed, may be empty
}

// NewStageError wraps err with the failing stage. A nil err yields nil.
func NewStageError(stage Stage, key string, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Key: key, Err: err}
}

func (e *StageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Key, e.Err)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}
