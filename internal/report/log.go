package report

import (
	"log/slog"

	"github.com/amishk599/resumatch/internal/analyze"
)

// Ensure LogReporter implements Reporter.
var _ Reporter = (*LogReporter)(nil)

// LogReporter writes reports to the given logger as structured messages.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter returns a reporter that logs each report via slog.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Report logs the resume, percentage and both skill lists.
// Returns nil (stdout logging does not fail).
func (l *LogReporter) Report(r analyze.Report) error {
	l.logger.Info("match result",
		"id", r.ID.String(),
		"resume", r.ResumeName,
		"percent", r.Percent,
		"matched", r.Result.Matched,
		"missing", r.Result.Missing,
	)
	return nil
}
