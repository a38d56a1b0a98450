package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/openclintech/go-clinic-records/internal/clinic"
	"github.com/openclintech/go-clinic-records/internal/storage/memory"
)

func TestExport(t *testing.T) {
	patients := memory.NewPatientStore()
	require.NoError(t, patients.Add(clinic.Patient{Name: "Alice", ConditionHistory: "asthma", PrescribedMedication: "salbutamol", Treatment: "inhaler"}))

	staff := memory.NewStaffStore()
	_, _ = staff.Add(clinic.Staff{Name: "Dr. Smith", Role: "Surgeon", Contact: "555-0100"})
	_, _ = staff.Add(clinic.Staff{Name: "Nurse Kim", Role: "Nurse", Contact: "555-0101"})
	require.NoError(t, staff.UpdateSlot(1, func(s *clinic.Slot) error {
		return s.Book("Alice", "2:00 PM", clinic.ShiftEvening)
	}))

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, patients.All(), staff.Slots()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{PatientsSheet, StaffSheet}, f.GetSheetList())

	rows, err := f.GetRows(PatientsSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		PatientsHeader,
		{"Alice", "asthma", "salbutamol", "inhaler"},
	}, rows)

	rows, err = f.GetRows(StaffSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, StaffHeader, rows[0])
	require.GreaterOrEqual(t, len(rows[1]), 4)
	assert.Equal(t, []string{"Dr. Smith", "Surgeon", "555-0100", "No"}, rows[1][:4])
	assert.Equal(t, []string{"Nurse Kim", "Nurse", "555-0101", "Yes", "Alice", "2:00 PM", "Evening"}, rows[2])
}
