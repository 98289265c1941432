package summarizer

import (
	"fmt"
	"strings"
	"time"

	"mySmartMarket/business/similarity"
	"mySmartMarket/business/textnorm"
	"mySmartMarket/pkg/logger"
	"mySmartMarket/pkg/metrics"
)

const (
	// NoContentSentinel is returned when nothing in the input can be summarized.
	NoContentSentinel = "Hasil tidak ditemukan"
	// ApologySentinel is returned when summarization fails unexpectedly.
	ApologySentinel = "Gagal membuat rangkuman review karena masalah teknis."
)

// Degradation stages reported to metrics.
const (
	stageTFIDF      = "tfidf"
	stageCentrality = "centrality"
	stagePanic      = "panic"
)

type unit struct {
	position int
	text     string
	tokens   []string
}

// Summarizer picks the most central units of a set of reviews with LexRank.
// It never fails: degenerate inputs and internal errors map to a fixed text.
type Summarizer struct {
	cfg        Config
	normalizer *textnorm.Normalizer
}

func New(cfg Config, normalizer *textnorm.Normalizer) *Summarizer {
	return &Summarizer{
		cfg:        cfg.sanitize(),
		normalizer: normalizer,
	}
}

func (s *Summarizer) Config() Config {
	return s.cfg
}

// Summarize returns the TopK most central units joined by Separator, in the
// order they appear in units.
func (s *Summarizer) Summarize(units []string) (summary string) {
	start := time.Now()
	defer func() {
		metrics.SummarizeDuration.Observe(time.Since(start).Seconds())
	}()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("summarizer panic recovered", "panic", fmt.Sprint(r), "units", len(units))
			metrics.SummarizeDegradations.WithLabelValues(stagePanic).Inc()
			summary = ApologySentinel
		}
	}()

	if len(units) == 0 {
		return NoContentSentinel
	}

	eligible := s.eligible(units)
	switch len(eligible) {
	case 0:
		return NoContentSentinel
	case 1:
		return eligible[0].text
	}

	docs := make([]string, len(eligible))
	for i, u := range eligible {
		docs[i] = strings.Join(u.tokens, " ")
	}

	tfidf, err := similarity.FitTransform(docs)
	if err != nil {
		s.degrade(stageTFIDF, err, len(eligible))
		return s.fallback(eligible)
	}

	adj := s.graph(similarity.CosineMatrix(tfidf.Rows))

	scores, err := pageRank(adj, s.cfg.Damping, s.cfg.MaxIterations, s.cfg.Tolerance)
	if err != nil {
		s.degrade(stageCentrality, err, len(eligible))
		return s.fallback(eligible)
	}

	return s.pick(eligible, scores)
}

func (s *Summarizer) eligible(units []string) []unit {
	if len(units) > s.cfg.MaxUnits {
		units = units[:s.cfg.MaxUnits]
	}

	out := make([]unit, 0, len(units))
	for i, text := range units {
		tokens := s.normalizer.Tokens(text, textnorm.ModeReviewSentence)
		if len(tokens) == 0 {
			continue
		}
		out = append(out, unit{position: i, text: text, tokens: tokens})
	}
	return out
}

// graph keeps edges whose similarity is above the threshold. The diagonal is
// always empty.
func (s *Summarizer) graph(sim [][]float64) [][]float64 {
	adj := make([][]float64, len(sim))
	for i, row := range sim {
		adj[i] = make([]float64, len(row))
		for j, w := range row {
			if i != j && w > s.cfg.Threshold {
				adj[i][j] = w
			}
		}
	}
	return adj
}

func (s *Summarizer) degrade(stage string, err error, units int) {
	logger.Warn("summarizer falling back to extractive scoring", "stage", stage, "error", err, "units", units)
	metrics.SummarizeDegradations.WithLabelValues(stage).Inc()
}
