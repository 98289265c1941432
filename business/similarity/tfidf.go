package similarity

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

// ErrEmptyVocabulary is returned when no document yields a single term.
var ErrEmptyVocabulary = errors.New("empty vocabulary: documents contain no terms")

// A term is a run of at least two word characters.
var termRe = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// TFIDF is a fitted document-term matrix. Row i belongs to document i;
// column j belongs to Vocabulary[j].
type TFIDF struct {
	Vocabulary []string
	Rows       [][]float64
}

// Terms splits a document into lowercase terms.
func Terms(doc string) []string {
	return termRe.FindAllString(strings.ToLower(doc), -1)
}

// FitTransform weights raw term counts with the smoothed inverse document
// frequency ln((1+n)/(1+df))+1 and L2-normalizes every row. The vocabulary is
// sorted so that column order does not depend on map iteration.
func FitTransform(docs []string) (*TFIDF, error) {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)

	for i, doc := range docs {
		tf := make(map[string]int)
		for _, term := range Terms(doc) {
			tf[term]++
		}
		for term := range tf {
			df[term]++
		}
		counts[i] = tf
	}

	if len(df) == 0 {
		return nil, ErrEmptyVocabulary
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	column := make(map[string]int, len(vocab))
	idf := make([]float64, len(vocab))
	n := float64(len(docs))
	for j, term := range vocab {
		column[term] = j
		idf[j] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	rows := make([][]float64, len(docs))
	for i, tf := range counts {
		row := make([]float64, len(vocab))
		for term, c := range tf {
			j := column[term]
			row[j] = float64(c) * idf[j]
		}
		normalizeL2(row)
		rows[i] = row
	}

	return &TFIDF{Vocabulary: vocab, Rows: rows}, nil
}

func normalizeL2(v []float64) {
	norm := Norm(v)
	if norm == 0 {
		return
	}
	for i := range v {
		v[i] /= norm
	}
}
