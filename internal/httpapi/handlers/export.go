package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/openclintech/go-clinic-records/internal/httpapi/respond"
	"github.com/openclintech/go-clinic-records/internal/report"
	"github.com/openclintech/go-clinic-records/internal/storage"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func Export(patients storage.PatientStore, staff storage.StaffStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respond.MethodNotAllowed(w, http.MethodGet)
			return
		}

		// Build the whole workbook first so a failure can still be reported
		// with a proper status code.
		var buf bytes.Buffer
		if err := report.Export(&buf, patients.All(), staff.Slots()); err != nil {
			respond.Error(w, http.StatusInternalServerError, "failed to build export")
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="clinic-records.xlsx"`)
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	})
}
