package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "clinic"

// Appointment outcomes used as the "outcome" label.
const (
	OutcomeBooked        = "booked"
	OutcomeAlreadyBooked = "already_booked"
	OutcomeCancelled     = "cancelled"
)

type Collector struct {
	PatientsCreated prometheus.Counter
	PatientsUpdated prometheus.Counter
	StaffCreated    prometheus.Counter
	Appointments    *prometheus.CounterVec
	BillsCompleted  prometheus.Counter
	BilledCents     prometheus.Counter
	RecordsSkipped  *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewCollector registers the clinic metrics on reg.
func NewCollector(reg *prometheus.Registry) *Collector {
	f := promauto.With(reg)
	return &Collector{
		PatientsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "records",
			Name:      "patients_created_total",
			Help:      "Total number of patient records added interactively.",
		}),
		PatientsUpdated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "records",
			Name:      "patients_updated_total",
			Help:      "Total number of patient record updates.",
		}),
		StaffCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "records",
			Name:      "staff_created_total",
			Help:      "Total number of staff records added interactively.",
		}),
		Appointments: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "schedule",
			Name:      "appointments_total",
			Help:      "Appointment operations by outcome.",
		}, []string{"outcome"}),
		BillsCompleted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pharmacy",
			Name:      "bills_completed_total",
			Help:      "Total number of bills finished.",
		}),
		BilledCents: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pharmacy",
			Name:      "billed_cents_total",
			Help:      "Sum of finished bills in cents.",
		}),
		RecordsSkipped: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "records_skipped_total",
			Help:      "Malformed lines dropped while loading, by record kind.",
		}, []string{"kind"}),
		gatherer: reg,
	}
}

// Handler serves the registry the collector was created with.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
