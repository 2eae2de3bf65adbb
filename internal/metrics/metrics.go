package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type Metrics struct {
	upstreamRequests   *prometheus.CounterVec
	upstreamRetries    *prometheus.CounterVec
	matchCacheHits     prometheus.Counter
	participantMissing prometheus.Counter
	cachedMatches      prometheus.Gauge
	queryDuration      *prometheus.HistogramVec
}

func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		upstreamRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "arena_upstream_requests_total", Help: "Upstream API responses by endpoint and status"},
			[]string{"endpoint", "status"},
		),
		upstreamRetries: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "arena_upstream_retries_total", Help: "Upstream requests scheduled for retry"},
			[]string{"endpoint"},
		),
		matchCacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "arena_match_cache_hits_total", Help: "Match details served from the in-memory cache"},
		),
		participantMissing: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "arena_match_participant_missing_total", Help: "Fetched matches that did not include the queried player"},
		),
		cachedMatches: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "arena_match_cache_matches", Help: "Distinct matches held in the in-memory cache"},
		),
		queryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "arena_query_duration_seconds",
				Help:    "End-to-end arena report duration",
				Buckets: []float64{.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(m.upstreamRequests, m.upstreamRetries, m.matchCacheHits, m.participantMissing, m.cachedMatches, m.queryDuration)
	return m
}

// Upstream records one upstream response; status 0 means the request never got one.
func (m *Metrics) Upstream(endpoint string, status int) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.upstreamRequests.WithLabelValues(endpoint, label).Inc()
}

func (m *Metrics) Retry(endpoint string) {
	m.upstreamRetries.WithLabelValues(endpoint).Inc()
}

func (m *Metrics) CacheHit() {
	m.matchCacheHits.Inc()
}

func (m *Metrics) ParticipantMissing() {
	m.participantMissing.Inc()
}

func (m *Metrics) CachedMatches(n int) {
	m.cachedMatches.Set(float64(n))
}

func (m *Metrics) ObserveQuery(outcome string, d time.Duration) {
	m.queryDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

var Module = fx.Options(
	fx.Provide(NewRegistry),
	fx.Provide(func(reg *prometheus.Registry) prometheus.Registerer { return reg }),
	fx.Provide(New),
)
