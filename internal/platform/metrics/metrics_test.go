package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollectorRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)
	require.NotNil(t, c.Handler())

	c.TripsPlanned.Inc()
	c.GeocodeCalls.WithLabelValues("primary", "ok").Inc()
	c.RouteCalls.WithLabelValues("error").Inc()
	c.HTTPRequests.WithLabelValues("POST", "/api/trips", "201").Inc()
	c.HTTPDurations.WithLabelValues("POST", "/api/trips").Observe(0.42)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 5)
}

func TestNewCollectorDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	assert.Error(t, err)
}
