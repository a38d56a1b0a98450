package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollector_CountsAndServes(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.PatientsCreated.Inc()
	c.Appointments.WithLabelValues(OutcomeBooked).Inc()
	c.Appointments.WithLabelValues(OutcomeBooked).Inc()
	c.RecordsSkipped.WithLabelValues("staff").Add(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.PatientsCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Appointments.WithLabelValues(OutcomeBooked)))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.RecordsSkipped.WithLabelValues("staff")))

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "clinic_records_patients_created_total 1")
}

func TestNewCollector_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewCollector(prometheus.NewRegistry())
		NewCollector(prometheus.NewRegistry())
	})
}
