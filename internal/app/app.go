// Package app wires the clinic components together for the console session
// and the optional status server.
package app

import (
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/openclintech/go-clinic-records/internal/console"
	"github.com/openclintech/go-clinic-records/internal/httpapi/middleware"
	"github.com/openclintech/go-clinic-records/internal/metrics"
	"github.com/openclintech/go-clinic-records/internal/pharmacy"
	"github.com/openclintech/go-clinic-records/internal/schedule"
	"github.com/openclintech/go-clinic-records/internal/storage"
)

type Deps struct {
	Patients storage.PatientStore
	Staff    storage.StaffStore
	Book     *schedule.Book
	Catalog  *pharmacy.Catalog
	Metrics  *metrics.Collector
	Logger   *zap.Logger
}

// NewConsole returns the interactive controller reading from in and writing
// to out.
func NewConsole(d Deps, in io.Reader, out io.Writer) *console.Controller {
	return console.New(console.Deps{
		Patients: d.Patients,
		Staff:    d.Staff,
		Book:     d.Book,
		Catalog:  d.Catalog,
		Metrics:  d.Metrics,
		Logger:   d.Logger,
	}, in, out)
}

// NewStatusHandler returns the read-only status server handler.
func NewStatusHandler(d Deps) http.Handler {
	mux := http.NewServeMux()

	registerRoutes(mux, d)

	// Middlewares (outermost -> innermost)
	var h http.Handler = mux
	h = middleware.Recover(d.Logger)(h)
	h = middleware.RequestID()(h)
	h = middleware.Logging(d.Logger)(h)

	h = http.TimeoutHandler(h, 15*time.Second, `{"error":"request timed out","status":503}`)

	return h
}
