package model

import "fmt"

// InputMissingError reports an analysis request without a resume or with a
// blank job description. No computation is attempted.
type InputMissingError struct {
	Field string // "resume" or "job_description"
}

func (e *InputMissingError) Error() string {
	return fmt.Sprintf("missing input: %s", e.Field)
}

// DocumentReadError reports a resume that could not be read or that yielded
// no extractable text. Err is nil in the latter case.
type DocumentReadError struct {
	Name string
	Err  error
}

func (e *DocumentReadError) Error() string {
	cause := "no extractable text"
	if e.Err != nil {
		cause = e.Err.Error()
	}
	if e.Name == "" {
		return "read document: " + cause
	}
	return fmt.Sprintf("read document %q: %s", e.Name, cause)
}

func (e *DocumentReadError) Unwrap() error {
	return e.Err
}

// InvalidInputError is a scorer precondition violation. Callers are expected
// to validate before scoring, so seeing one means a caller bug.
type InvalidInputError struct {
	Field string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s is blank", e.Field)
}
