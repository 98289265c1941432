package summarizer

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mySmartMarket/business/textnorm"
	"mySmartMarket/pkg/metrics"
)

func newTestSummarizer(t *testing.T, mutate func(*Config)) *Summarizer {
	t.Helper()
	lex, err := textnorm.DefaultLexicon()
	require.NoError(t, err)

	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg, textnorm.NewNormalizer(lex, nil))
}

func TestSummarize_Empty(t *testing.T) {
	s := newTestSummarizer(t, nil)

	assert.Equal(t, NoContentSentinel, s.Summarize(nil))
	assert.Equal(t, NoContentSentinel, s.Summarize([]string{}))
}

func TestSummarize_NothingEligible(t *testing.T) {
	s := newTestSummarizer(t, nil)

	assert.Equal(t, NoContentSentinel, s.Summarize([]string{"123", "!!!", "ya di"}))
}

func TestSummarize_SingleUnitVerbatim(t *testing.T) {
	s := newTestSummarizer(t, nil)

	assert.Equal(t, "only one sentence.", s.Summarize([]string{"only one sentence."}))
	assert.Equal(t, "Kurir ramah!", s.Summarize([]string{"!!!", "Kurir ramah!"}))
}

func TestSummarize_ThreeReviews(t *testing.T) {
	s := newTestSummarizer(t, func(c *Config) {
		c.TopK = 2
		c.Threshold = 0.1
	})

	reviews := []string{
		"Barang bagus sesuai deskripsi.",
		"Pengiriman cepat dan aman.",
		"Barang bagus dan pengiriman cepat sekali.",
	}

	got := s.Summarize(reviews)

	parts := strings.Split(got, ",")
	require.Len(t, parts, 2)
	assert.Equal(t, reviews[1], parts[0])
	assert.Equal(t, reviews[2], parts[1])
}

func TestSummarize_SourceOrder(t *testing.T) {
	s := newTestSummarizer(t, func(c *Config) {
		c.TopK = 3
		c.Separator = "|"
	})

	reviews := []string{
		"jahitan rapi sekali",
		"kualitas kain tebal",
		"warna cerah",
		"kualitas kain tebal warna cerah jahitan rapi",
		"ukuran pas",
	}

	parts := strings.Split(s.Summarize(reviews), "|")
	require.Len(t, parts, 3)

	last := -1
	for _, p := range parts {
		idx := indexOf(reviews, p)
		require.GreaterOrEqual(t, idx, 0, "summary part %q not in input", p)
		assert.Greater(t, idx, last)
		last = idx
	}
	assert.Contains(t, parts, reviews[3])
}

func TestSummarize_MaxUnits(t *testing.T) {
	s := newTestSummarizer(t, func(c *Config) {
		c.MaxUnits = 2
		c.TopK = 5
	})

	got := s.Summarize([]string{"kualitas kain tebal", "kain tebal", "warna cerah mantap"})
	assert.Equal(t, "kualitas kain tebal,kain tebal", got)
}

func TestSummarize_CentralityFailureFallsBack(t *testing.T) {
	s := newTestSummarizer(t, func(c *Config) {
		c.TopK = 2
		c.MaxIterations = 1
	})
	counter := metrics.SummarizeDegradations.WithLabelValues(stageCentrality)
	before := testutil.ToFloat64(counter)

	got := s.Summarize([]string{
		"kualitas kain tebal",
		"warna cerah",
		"kualitas kain tebal warna cerah jahitan rapi",
	})

	assert.Equal(t, "kualitas kain tebal,kualitas kain tebal warna cerah jahitan rapi", got)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestSummarize_PanicReturnsApology(t *testing.T) {
	s := New(DefaultConfig(), nil)
	counter := metrics.SummarizeDegradations.WithLabelValues(stagePanic)
	before := testutil.ToFloat64(counter)

	assert.Equal(t, ApologySentinel, s.Summarize([]string{"barang bagus", "kurir ramah"}))
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestFallbackScores(t *testing.T) {
	units := []unit{
		{position: 0, tokens: []string{"bagus", "bagus", "bagus"}},
		{position: 1, tokens: []string{"kain", "tebal"}},
		{position: 2},
	}

	assert.Equal(t, []float64{4, 4, 0}, fallbackScores(units))
}

func TestConfigSanitize(t *testing.T) {
	c := Config{Threshold: 0.2, Damping: 1.5}.sanitize()

	assert.Equal(t, defaultTopK, c.TopK)
	assert.Equal(t, defaultMaxUnits, c.MaxUnits)
	assert.Equal(t, defaultDamping, c.Damping)
	assert.Equal(t, defaultMaxIterations, c.MaxIterations)
	assert.Equal(t, defaultTolerance, c.Tolerance)
	assert.Equal(t, 0.2, c.Threshold)
	assert.Equal(t, "", c.Separator)
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
