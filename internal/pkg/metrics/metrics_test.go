package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithRegistry(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	require.NotNil(t, m)
	assert.NotNil(t, m.HTTPRequestsTotal)
	assert.NotNil(t, m.HTTPRequestDuration)
	assert.NotNil(t, m.ReservationsTotal)
	assert.NotNil(t, m.ReservationDuration)
	assert.NotNil(t, m.ReservedSpotsPerRequest)
}

func TestHTTPMetrics(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/events", "200").Inc()
	m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/events/:event_id/reserve", "201").Inc()
	m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/events/:event_id/reserve", "409").Inc()
	m.HTTPRequestDuration.WithLabelValues("GET", "/api/v1/events").Observe(0.025)

	assert.Equal(t, 3, testutil.CollectAndCount(m.HTTPRequestsTotal, "http_requests_total"))
	assert.Equal(t, 1.0,
		testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/events", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPRequestDuration, "http_request_duration_seconds"))
}

func TestReservationMetrics(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.ReservationsTotal.WithLabelValues("success").Inc()
	m.ReservationsTotal.WithLabelValues("success").Inc()
	m.ReservationsTotal.WithLabelValues("conflict").Inc()
	m.ReservationsTotal.WithLabelValues("not_found").Inc()

	assert.Equal(t, 3, testutil.CollectAndCount(m.ReservationsTotal, "spot_reservations_total"))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReservationsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationsTotal.WithLabelValues("conflict")))

	m.ReservationDuration.Observe(0.015)
	m.ReservedSpotsPerRequest.Observe(3)

	assert.Equal(t, 1, testutil.CollectAndCount(m.ReservationDuration, "spot_reservation_duration_seconds"))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ReservedSpotsPerRequest, "spot_reservation_request_size"))
}

func TestGet(t *testing.T) {
	old := defaultMetrics
	defer func() { defaultMetrics = old }()

	// Init はデフォルトレジストリに登録してしまうため、ここでは直接差し替える
	m := NewWithRegistry(prometheus.NewRegistry())
	defaultMetrics = m

	assert.Equal(t, m, Get())
}
