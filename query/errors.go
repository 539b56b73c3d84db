package query

import (
	"fmt"
)

// Error types for query operations
type (
	// CompilationError indicates a query expression could not be compiled
	CompilationError struct {
		Expression string
		Reason     string
		Err        error
	}

	// EvaluationError indicates a query failed against a page
	EvaluationError struct {
		Expression string
		Reason     string
		Err        error
	}
)

func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("compilation error in '%s': %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error in '%s': %s: %v", e.Expression, e.Reason, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
