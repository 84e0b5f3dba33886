package model

import "time"

// MatchResult is the outcome of scoring one resume against one job description.
type MatchResult struct {
	Score   float64  // cosine similarity in [0,1]
	Matched []string // catalog skills found in both texts, catalog order
	Missing []string // catalog skills found only in the job description, catalog order
}

// Record is a persisted analysis, written only when history is enabled.
type Record struct {
	ID         string
	ResumeName string
	Percent    float64
	Matched    []string
	Missing    []string
	CreatedAt  time.Time
}

// Extractor turns an uploaded resume into plain text.
type Extractor interface {
	Extract(name string, data []byte) (string, error)
}

// HistoryStore keeps past analyses for the history command.
type HistoryStore interface {
	Save(rec Record) error
	Recent(limit int) ([]Record, error)
	Cleanup(olderThan time.Duration) error
}

// MatchScorer scores resume text against a job description.
type MatchScorer interface {
	Score(resume, job string) (MatchResult, error)
}
