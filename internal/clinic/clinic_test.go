package clinic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatient_Display(t *testing.T) {
	p := NewPatient("Jane Doe", PatientDetails{
		ConditionHistory:     "Asthma",
		PrescribedMedication: "Inhaler",
		Treatment:            "Rest",
	})

	want := "\nPatient: Jane Doe\n" +
		"Condition History: Asthma\n" +
		"Prescribed Medications: Inhaler\n" +
		"Treatments: Rest\n" +
		"---------------------------------\n"
	assert.Equal(t, want, p.Display())
	assert.Equal(t, "Jane Doe", p.DisplayName())
}

func TestPatient_ApplyKeepsName(t *testing.T) {
	p := NewPatient("Jane Doe", PatientDetails{ConditionHistory: "a", PrescribedMedication: "b", Treatment: "c"})
	p.Apply(PatientDetails{ConditionHistory: "x", PrescribedMedication: "y", Treatment: "z"})

	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, PatientDetails{ConditionHistory: "x", PrescribedMedication: "y", Treatment: "z"}, p.Details())
}

func TestStaff_Display(t *testing.T) {
	var d Displayer = Staff{Name: "Dr. Smith", Role: "Doctor", Contact: "555-0100"}
	assert.Equal(t, "Dr. Smith (Doctor), Contact: 555-0100", d.Display())
	assert.Equal(t, "Dr. Smith", d.DisplayName())
}

func TestStaffTable(t *testing.T) {
	out := StaffTable([]Staff{{Name: "Dr. Smith", Role: "Doctor", Contact: "555-0100"}})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("-", 55), lines[1])
	assert.Equal(t, "Dr. Smith"+strings.Repeat(" ", 16)+"Doctor"+strings.Repeat(" ", 9)+"555-0100"+strings.Repeat(" ", 7), lines[2])
}

func TestSlot_BookAndCancel(t *testing.T) {
	var s Slot
	assert.Equal(t, "Dr. Smith has no appointments.", s.Describe("Dr. Smith"))

	require.NoError(t, s.Book("Jane Doe", "9:00-11:00 AM", ShiftMorning))
	assert.Equal(t, "Dr. Smith is booked for: Jane Doe at 9:00-11:00 AM (Morning)", s.Describe("Dr. Smith"))

	err := s.Book("John Roe", "1:00-3:00 PM", ShiftEvening)
	assert.ErrorIs(t, err, ErrAlreadyBooked)
	assert.Equal(t, "Jane Doe", s.PatientName)

	s.Cancel()
	assert.Equal(t, Slot{}, s)
	s.Cancel()
	assert.False(t, s.Booked)
}

func TestShift_IsValid(t *testing.T) {
	assert.True(t, ShiftMorning.IsValid())
	assert.True(t, ShiftEvening.IsValid())
	assert.False(t, Shift("Night").IsValid())
}
