package textnorm

import (
	sastrawi "github.com/RadhiFadlillah/go-sastrawi"
)

// Stemmer reduces a single lowercase word to its root form.
type Stemmer interface {
	Stem(word string) string
}

// SastrawiStemmer strips and restores Indonesian affixes against the
// Sastrawi root-word dictionary.
type SastrawiStemmer struct {
	stemmer sastrawi.Stemmer
}

func NewSastrawiStemmer() *SastrawiStemmer {
	return &SastrawiStemmer{
		stemmer: sastrawi.NewStemmer(sastrawi.DefaultDictionary()),
	}
}

func (s *SastrawiStemmer) Stem(word string) string {
	return s.stemmer.Stem(word)
}
