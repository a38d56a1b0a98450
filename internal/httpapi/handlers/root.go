package handlers

import (
	"net/http"

	"github.com/openclintech/go-clinic-records/internal/httpapi/respond"
)

func Root() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			respond.Error(w, http.StatusNotFound, "not found")
			return
		}
		respond.JSON(w, http.StatusOK, map[string]any{
			"ok": true,
			"paths": []string{
				"/ping",
				"/summary (GET record counts)",
				"/metrics (GET prometheus metrics)",
				"/export.xlsx (GET spreadsheet of all records)",
			},
		})
	})
}
