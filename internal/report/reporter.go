package report

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/amishk599/resumatch/internal/analyze"
)

// Reporter writes one analysis report somewhere.
type Reporter interface {
	Report(r analyze.Report) error
}

// New returns the reporter for format: "text", "json" or "log".
func New(format string, w io.Writer, width int, logger *slog.Logger) (Reporter, error) {
	switch format {
	case "", "text":
		return NewTextReporter(w, width), nil
	case "json":
		return NewJSONReporter(w), nil
	case "log":
		return NewLogReporter(logger), nil
	default:
		return nil, fmt.Errorf("unknown report format %q (want text, json or log)", format)
	}
}

// TextReporter writes the styled layout produced by Render.
type TextReporter struct {
	w     io.Writer
	width int
}

func NewTextReporter(w io.Writer, width int) *TextReporter {
	return &TextReporter{w: w, width: width}
}

func (t *TextReporter) Report(r analyze.Report) error {
	_, err := io.WriteString(t.w, Render(r, t.width))
	return err
}

// jsonReport is the machine readable shape of a report.
type jsonReport struct {
	ID            string    `json:"id"`
	Resume        string    `json:"resume"`
	Score         float64   `json:"score"`
	Percent       float64   `json:"percent"`
	MatchedSkills []string  `json:"matched_skills"`
	MissingSkills []string  `json:"missing_skills"`
	CreatedAt     time.Time `json:"created_at"`
}

// JSONReporter writes one indented JSON object per report.
type JSONReporter struct {
	w io.Writer
}

func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

func (j *JSONReporter) Report(r analyze.Report) error {
	out := jsonReport{
		ID:            r.ID.String(),
		Resume:        r.ResumeName,
		Score:         r.Result.Score,
		Percent:       r.Percent,
		MatchedSkills: nonNil(r.Result.Matched),
		MissingSkills: nonNil(r.Result.Missing),
		CreatedAt:     r.CreatedAt,
	}
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding report %s: %w", r.ID, err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
