package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/openclintech/go-clinic-records/internal/clinic"
	"github.com/openclintech/go-clinic-records/internal/httpapi/handlers"
	"github.com/openclintech/go-clinic-records/internal/schedule"
	"github.com/openclintech/go-clinic-records/internal/storage/memory"
)

func seed(t *testing.T) (*memory.PatientStore, *memory.StaffStore, *schedule.Book) {
	t.Helper()
	patients := memory.NewPatientStore()
	require.NoError(t, patients.Add(clinic.NewPatient("Jane Doe", clinic.PatientDetails{ConditionHistory: "Asthma", PrescribedMedication: "Inhaler", Treatment: "Rest"})))

	staff := memory.NewStaffStore()
	_, err := staff.Add(clinic.Staff{Name: "Dr. Smith", Role: "Doctor", Contact: "555-0100"})
	require.NoError(t, err)
	_, err = staff.Add(clinic.Staff{Name: "Nurse Joy", Role: "Nurse", Contact: "555-0101"})
	require.NoError(t, err)

	book := schedule.NewBook(staff, nil)
	require.NoError(t, book.Book(0, "Jane Doe", "9:00-11:00 AM", clinic.ShiftMorning))
	return patients, staff, book
}

func TestPing(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.Ping().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["pong"])
}

func TestPing_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.Ping().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ping", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestRoot_UnknownPath(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.Root().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSummary_Counts(t *testing.T) {
	patients, _, book := seed(t)

	rec := httptest.NewRecorder()
	handlers.Summary(patients, book).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summary", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got handlers.SummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1, got.Patients)
	assert.Equal(t, 2, got.Staff)
	assert.Equal(t, 1, got.BookedSlots)
	assert.Equal(t, 1, got.FreeSlots)
	assert.NotEmpty(t, got.Time)
}

func TestExport_Workbook(t *testing.T) {
	patients, staff, _ := seed(t)

	rec := httptest.NewRecorder()
	handlers.Export(patients, staff).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export.xlsx", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Patients")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Jane Doe", rows[1][0])
}
