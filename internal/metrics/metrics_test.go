package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Upstream("match", 200)
	m.Upstream("match", 200)
	m.Upstream("match", 503)
	m.Upstream("account", 0)
	m.Retry("match")
	m.CacheHit()
	m.ParticipantMissing()
	m.CachedMatches(3)
	m.ObserveQuery("ok", 2*time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("match", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("match", "503")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("account", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRetries.WithLabelValues("match")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.matchCacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.participantMissing))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.cachedMatches))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 6)
}
