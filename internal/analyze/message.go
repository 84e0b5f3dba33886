package analyze

import (
	"errors"

	"github.com/amishk599/resumatch/internal/model"
)

// User-facing texts for failed analyses.
const (
	MsgInputMissing = "Please upload a resume and paste a job description."
	MsgDocumentRead = "Could not extract text from the resume. Try another file."
	MsgFailed       = "Analysis failed. Please try again."
)

// UserMessage converts an Analyze error into a short message for the user.
func UserMessage(err error) string {
	var missing *model.InputMissingError
	if errors.As(err, &missing) {
		return MsgInputMissing
	}
	var readErr *model.DocumentReadError
	if errors.As(err, &readErr) {
		return MsgDocumentRead
	}
	return MsgFailed
}
