// Package tfidf builds a TF-IDF vector space over a handful of documents and
// compares them with cosine similarity.
//
// Weighting follows the common defaults of bag-of-words vectorizers:
// lowercase tokens of two or more word characters, raw term counts,
// smoothed inverse document frequency ln((1+n)/(1+df)) + 1 and L2
// normalised rows.
package tfidf

import (
	"math"
	"regexp"
	"sort"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var wordRun = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize lowercases text and splits it into runs of word characters,
// keeping only runs of at least two runes.
func Tokenize(text string) []string {
	lower := cases.Lower(language.Und).String(text)
	runs := wordRun.FindAllString(lower, -1)
	tokens := runs[:0]
	for _, r := range runs {
		if utf8.RuneCountInString(r) >= 2 {
			tokens = append(tokens, r)
		}
	}
	return tokens
}

// Vector is a dense row over a Space's vocabulary.
type Vector []float64

// Space is a fitted vocabulary with its idf weights and the normalised
// vectors of the documents it was fitted on.
type Space struct {
	Vocabulary []string // sorted
	IDF        []float64
	rows       []Vector
}

// Fit builds the vector space over exactly the given documents.
func Fit(docs ...string) *Space {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for i, d := range docs {
		counts[i] = make(map[string]int)
		for _, tok := range Tokenize(d) {
			if counts[i][tok] == 0 {
				df[tok]++
			}
			counts[i][tok]++
		}
	}

	vocab := make([]string, 0, len(df))
	for tok := range df {
		vocab = append(vocab, tok)
	}
	sort.Strings(vocab)

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for j, tok := range vocab {
		idf[j] = math.Log((1+n)/(1+float64(df[tok]))) + 1
	}

	rows := make([]Vector, len(docs))
	for i := range docs {
		row := make(Vector, len(vocab))
		for j, tok := range vocab {
			row[j] = float64(counts[i][tok]) * idf[j]
		}
		rows[i] = normalize(row)
	}

	return &Space{Vocabulary: vocab, IDF: idf, rows: rows}
}

// Row returns the normalised vector of the i-th fitted document.
func (s *Space) Row(i int) Vector {
	return s.rows[i]
}

// Len returns the number of fitted documents.
func (s *Space) Len() int {
	return len(s.rows)
}

// Cosine returns the cosine of the angle between a and b, clamped to [0,1].
// A zero vector has similarity 0 with everything.
func Cosine(a, b Vector) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(na) * math.Sqrt(nb))
	return math.Max(0, math.Min(1, sim))
}

// Similarity fits a two-document space over a and b and returns the cosine
// similarity of their vectors.
func Similarity(a, b string) float64 {
	s := Fit(a, b)
	return Cosine(s.Row(0), s.Row(1))
}

func normalize(v Vector) Vector {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return v
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
	return v
}
