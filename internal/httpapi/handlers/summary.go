package handlers

import (
	"net/http"
	"time"

	"github.com/openclintech/go-clinic-records/internal/httpapi/respond"
	"github.com/openclintech/go-clinic-records/internal/schedule"
	"github.com/openclintech/go-clinic-records/internal/storage"
)

type SummaryResponse struct {
	Patients    int    `json:"patients"`
	Staff       int    `json:"staff"`
	BookedSlots int    `json:"booked_slots"`
	FreeSlots   int    `json:"free_slots"`
	Time        string `json:"time"`
}

// Summary reports record counts. It never exposes patient details.
func Summary(patients storage.PatientStore, book *schedule.Book) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respond.MethodNotAllowed(w, http.MethodGet)
			return
		}
		size, booked := book.Size(), book.Booked()
		respond.JSON(w, http.StatusOK, SummaryResponse{
			Patients:    patients.Len(),
			Staff:       size,
			BookedSlots: booked,
			FreeSlots:   size - booked,
			Time:        time.Now().UTC().Format(time.RFC3339),
		})
	})
}
