// Package skills holds the skill catalog and the substring comparison of a
// resume and a job description against it.
package skills

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var defaultSkills = []string{
	"python", "java", "c++", "c", "html", "css", "javascript",
	"machine learning", "deep learning", "nlp", "data science",
	"computer vision", "pandas", "numpy", "matplotlib", "seaborn",
	"tensorflow", "keras", "pytorch", "sql", "mongodb", "git",
	"github", "streamlit", "flask", "fastapi", "scikit-learn",
	"power bi", "excel", "tableau",
}

// Catalog is an ordered, immutable list of lowercase skill tokens.
type Catalog struct {
	skills []string
}

// Default returns the built-in catalog.
func Default() Catalog {
	c, _ := NewCatalog(defaultSkills)
	return c
}

// NewCatalog lowercases and trims each entry, drops blanks and duplicates
// (the first occurrence wins) and rejects an empty result.
func NewCatalog(entries []string) (Catalog, error) {
	seen := make(map[string]bool, len(entries))
	var out []string
	for _, e := range entries {
		s := lower(strings.TrimSpace(e))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	if len(out) == 0 {
		return Catalog{}, errors.New("skill catalog is empty")
	}
	return Catalog{skills: out}, nil
}

// Skills returns a copy of the catalog entries in order.
func (c Catalog) Skills() []string {
	return append([]string(nil), c.skills...)
}

// Len returns the number of skills.
func (c Catalog) Len() int {
	return len(c.skills)
}

// Compare classifies every catalog skill against the two texts. A skill is
// matched when both texts contain it and missing when only the job
// description does. Containment is a case-insensitive substring check, so
// "c" is found inside "excel".
func (c Catalog) Compare(resume, job string) (matched, missing []string) {
	resumeLower := lower(resume)
	jobLower := lower(job)

	for _, s := range c.skills {
		if !strings.Contains(jobLower, s) {
			continue
		}
		if strings.Contains(resumeLower, s) {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	return matched, missing
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
