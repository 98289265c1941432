package textnorm

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var embeddedLexicon []byte

// Lexicon is the slang and stopword table used by the Normalizer.
// It is read-only once loaded.
type Lexicon struct {
	Version   string
	unigrams  map[string]string
	bigrams   map[string]string
	stopwords map[string]struct{}
}

type lexiconFile struct {
	Version string `yaml:"version"`
	Slang   struct {
		Unigram map[string]string `yaml:"unigram"`
		Bigram  map[string]string `yaml:"bigram"`
	} `yaml:"slang"`
	ChatStopwords []string `yaml:"chat_stopwords"`
	Stopwords     []string `yaml:"stopwords"`
}

// DefaultLexicon returns the lexicon compiled into the binary.
func DefaultLexicon() (*Lexicon, error) {
	return LoadLexicon(bytes.NewReader(embeddedLexicon))
}

// MustDefaultLexicon is DefaultLexicon for program start-up, panicking on a
// malformed embedded table.
func MustDefaultLexicon() *Lexicon {
	lex, err := DefaultLexicon()
	if err != nil {
		panic(err)
	}
	return lex
}

// LoadLexiconFile reads a lexicon from path, or returns the embedded one when
// path is empty.
func LoadLexiconFile(path string) (*Lexicon, error) {
	if path == "" {
		return DefaultLexicon()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	defer f.Close()

	return LoadLexicon(f)
}

// LoadLexicon parses a YAML lexicon.
func LoadLexicon(r io.Reader) (*Lexicon, error) {
	var f lexiconFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode lexicon: %w", err)
	}
	if f.Version == "" {
		return nil, errors.New("lexicon version is required")
	}

	lex := &Lexicon{
		Version:   f.Version,
		unigrams:  make(map[string]string, len(f.Slang.Unigram)),
		bigrams:   make(map[string]string, len(f.Slang.Bigram)),
		stopwords: make(map[string]struct{}, len(f.Stopwords)+len(f.ChatStopwords)),
	}

	for k, v := range f.Slang.Unigram {
		lex.unigrams[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	for k, v := range f.Slang.Bigram {
		key := strings.Join(strings.Fields(strings.ToLower(k)), " ")
		if strings.Count(key, " ") != 1 {
			return nil, fmt.Errorf("bigram %q must contain exactly two tokens", k)
		}
		lex.bigrams[key] = strings.TrimSpace(v)
	}
	for _, list := range [][]string{f.Stopwords, f.ChatStopwords} {
		for _, w := range list {
			lex.stopwords[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
		}
	}

	return lex, nil
}

func (l *Lexicon) unigram(token string) (string, bool) {
	v, ok := l.unigrams[token]
	return v, ok
}

func (l *Lexicon) bigram(first, second string) (string, bool) {
	v, ok := l.bigrams[first+" "+second]
	return v, ok
}

// IsStopword reports whether token is in the stopword set.
func (l *Lexicon) IsStopword(token string) bool {
	_, ok := l.stopwords[token]
	return ok
}
