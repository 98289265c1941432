package summarizer

import (
	"strings"

	"mySmartMarket/business/similarity"
)

// fallbackScores rates each unit by its token count plus its distinct token
// count. Normalized text is already free of stopwords.
func fallbackScores(units []unit) []float64 {
	scores := make([]float64, len(units))
	for i, u := range units {
		seen := make(map[string]struct{}, len(u.tokens))
		for _, t := range u.tokens {
			seen[t] = struct{}{}
		}
		scores[i] = float64(len(u.tokens) + len(seen))
	}
	return scores
}

func (s *Summarizer) fallback(units []unit) string {
	return s.pick(units, fallbackScores(units))
}

// pick keeps the TopK best scored units and joins them in input order.
func (s *Summarizer) pick(units []unit, scores []float64) string {
	ranked := similarity.TopK(scores, s.cfg.TopK, nil)

	chosen := make([]bool, len(units))
	for _, r := range ranked {
		chosen[r.Index] = true
	}

	parts := make([]string, 0, len(ranked))
	for i, u := range units {
		if chosen[i] {
			parts = append(parts, u.text)
		}
	}
	return strings.Join(parts, s.cfg.Separator)
}
