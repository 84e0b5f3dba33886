// Package match scores a resume against a job description.
package match

import (
	"strings"

	"github.com/amishk599/resumatch/internal/model"
	"github.com/amishk599/resumatch/internal/skills"
	"github.com/amishk599/resumatch/internal/tfidf"
)

// Scorer combines the TF-IDF similarity of two texts with a skill-catalog
// comparison. It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	catalog skills.Catalog
}

// NewScorer returns a Scorer that classifies skills against catalog.
func NewScorer(catalog skills.Catalog) *Scorer {
	return &Scorer{catalog: catalog}
}

// Score computes the similarity of resume and job and the skill overlap.
// Both texts must be non-blank.
func (s *Scorer) Score(resume, job string) (model.MatchResult, error) {
	if strings.TrimSpace(resume) == "" {
		return model.MatchResult{}, &model.InvalidInputError{Field: "resume"}
	}
	if strings.TrimSpace(job) == "" {
		return model.MatchResult{}, &model.InvalidInputError{Field: "job_description"}
	}

	matched, missing := s.catalog.Compare(resume, job)
	return model.MatchResult{
		Score:   tfidf.Similarity(resume, job),
		Matched: matched,
		Missing: missing,
	}, nil
}
