// Package analyze runs one resume analysis request end to end:
// validate -> extract -> score -> record.
package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amishk599/resumatch/internal/model"
)

// Request is one "Analyze" action.
type Request struct {
	ResumeName     string // file name, used for type detection and reporting
	Resume         []byte
	JobDescription string
}

// Report is the result of a successful analysis.
type Report struct {
	ID         uuid.UUID
	ResumeName string
	CreatedAt  time.Time
	Result     model.MatchResult
	Percent    float64 // Result.Score as a percentage, two decimals
}

// Record converts the report into its history form.
func (r Report) Record() model.Record {
	return model.Record{
		ID:         r.ID.String(),
		ResumeName: r.ResumeName,
		Percent:    r.Percent,
		Matched:    r.Result.Matched,
		Missing:    r.Result.Missing,
		CreatedAt:  r.CreatedAt,
	}
}

// Service owns the analysis pipeline for a single request. It keeps no
// per-request state, so one Service serves every request of the process.
type Service struct {
	extractor model.Extractor
	scorer    model.MatchScorer
	history   model.HistoryStore
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a Service wired with its collaborators. Use
// store.NewNopStore for history when nothing should be persisted.
func NewService(extractor model.Extractor, scorer model.MatchScorer, history model.HistoryStore, logger *slog.Logger) *Service {
	return &Service{
		extractor: extractor,
		scorer:    scorer,
		history:   history,
		logger:    logger,
		now:       time.Now,
	}
}

// Analyze runs the pipeline. Either a full Report or an error is returned,
// never both. Missing inputs fail with *model.InputMissingError before any
// work is done; unreadable resumes or resumes without text fail with
// *model.DocumentReadError and are never scored.
func (s *Service) Analyze(ctx context.Context, req Request) (Report, error) {
	if len(req.Resume) == 0 {
		return Report{}, &model.InputMissingError{Field: "resume"}
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return Report{}, &model.InputMissingError{Field: "job_description"}
	}

	text, err := s.extractor.Extract(req.ResumeName, req.Resume)
	if err != nil {
		return Report{}, fmt.Errorf("analyzing %s: %w", req.ResumeName, err)
	}
	if strings.TrimSpace(text) == "" {
		return Report{}, &model.DocumentReadError{Name: req.ResumeName}
	}

	if err := ctx.Err(); err != nil {
		return Report{}, fmt.Errorf("analyzing %s: %w", req.ResumeName, err)
	}

	result, err := s.scorer.Score(text, req.JobDescription)
	if err != nil {
		return Report{}, fmt.Errorf("analyzing %s: scoring: %w", req.ResumeName, err)
	}

	report := Report{
		ID:         uuid.New(),
		ResumeName: req.ResumeName,
		CreatedAt:  s.now(),
		Result:     result,
		Percent:    Percent(result.Score),
	}

	// A history failure must not hide a computed result.
	if err := s.history.Save(report.Record()); err != nil {
		s.logger.Warn("failed to save analysis history", "resume", req.ResumeName, "error", err)
	}

	s.logger.Info("analyzed resume",
		"resume", req.ResumeName,
		"percent", report.Percent,
		"matched", len(result.Matched),
		"missing", len(result.Missing),
	)
	return report, nil
}

// Percent converts a similarity in [0,1] to a percentage rounded to two
// decimals.
func Percent(score float64) float64 {
	return math.Round(score*100*100) / 100
}
