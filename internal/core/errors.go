package core

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned when a training run is started with zero rows.
	ErrEmptyDataset = errors.New("dataset has no rows")

	// ErrInsufficientData is returned when a class has too few examples to
	// satisfy stratified splitting and cross-validation.
	ErrInsufficientData = errors.New("not enough examples per class for stratified folds")

	// ErrNoViableModel is returned when every candidate failed to train.
	ErrNoViableModel = errors.New("no candidate model trained successfully")
)

// SchemaError indicates a feature-field mismatch inside one dataset build.
// With a fixed extractor it should be unreachable; it exists as an internal
// consistency check.
type SchemaError struct {
	Row  int
	Want int
	Got  int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("feature schema mismatch at row %d: want %d columns, got %d", e.Row, e.Want, e.Got)
}

// CandidateFitError wraps a single candidate's training failure. It is
// recovered locally: the candidate is excluded from the comparison and the
// run continues.
type CandidateFitError struct {
	ModelType string
	Err       error
}

func (e *CandidateFitError) Error() string {
	return fmt.Sprintf("candidate %s failed to fit: %v", e.ModelType, e.Err)
}

func (e *CandidateFitError) Unwrap() error {
	return e.Err
}

// PersistenceError indicates that writing or reading one of the run's output
// artifacts failed. Always fatal to the run.
type PersistenceError struct {
	Artifact string
	Err      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist %s: %v", e.Artifact, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
