package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Time spent building features and ranking one recommendation request
	RecommendDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommender_duration_seconds",
		Help:    "Latency of content-based recommendation over the catalog snapshot",
		Buckets: prometheus.DefBuckets,
	})

	// Recommendation requests by outcome (ok, not_found, empty_corpus, error)
	RecommendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommender_requests_total",
		Help: "Total number of recommendation requests by outcome",
	}, []string{"outcome"})

	// Number of records in the last catalog snapshot vectorized
	CatalogSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "recommender_catalog_size",
		Help: "Number of catalog records in the most recent feature matrix",
	})

	SummarizeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "summarizer_duration_seconds",
		Help:    "Latency of review summarization",
		Buckets: prometheus.DefBuckets,
	})

	// Summaries that fell back from the LexRank path, by failing stage
	SummarizeDegradations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "summarizer_degradations_total",
		Help: "Total number of summaries produced by a fallback path, by stage",
	}, []string{"stage"})
)

func Init() {
	prometheus.MustRegister(
		RecommendDuration,
		RecommendRequests,
		CatalogSize,
		SummarizeDuration,
		SummarizeDegradations,
	)
}
