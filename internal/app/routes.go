package app

import (
	"net/http"

	"github.com/openclintech/go-clinic-records/internal/httpapi/handlers"
)

func registerRoutes(mux *http.ServeMux, d Deps) {
	mux.Handle("/", handlers.Root())
	mux.Handle("/ping", handlers.Ping())

	mux.Handle("/summary", handlers.Summary(d.Patients, d.Book))
	mux.Handle("/export.xlsx", handlers.Export(d.Patients, d.Staff))

	if d.Metrics != nil {
		mux.Handle("/metrics", d.Metrics.Handler())
	}
}
