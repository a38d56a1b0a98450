package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openclintech/go-clinic-records/internal/clinic"
)

func TestSlotLabels(t *testing.T) {
	assert.Equal(t, []string{"8:00 AM", "8:30 AM", "9:00 AM", "9:30 AM"}, SlotLabels(clinic.ShiftMorning))
	assert.Equal(t, []string{"2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM"}, SlotLabels(clinic.ShiftEvening))
	assert.Empty(t, SlotLabels(clinic.Shift("Night")))

	// Callers get a copy.
	l := SlotLabels(clinic.ShiftMorning)
	l[0] = "changed"
	assert.Equal(t, "8:00 AM", SlotLabels(clinic.ShiftMorning)[0])
}

func TestSlotLabel(t *testing.T) {
	got, err := SlotLabel(clinic.ShiftEvening, 4)
	assert.NoError(t, err)
	assert.Equal(t, "3:30 PM", got)

	for _, choice := range []int{0, 5, -1} {
		_, err := SlotLabel(clinic.ShiftMorning, choice)
		assert.ErrorIs(t, err, clinic.ErrInvalidSelection, "choice %d", choice)
	}
}

func TestShiftFromChoice(t *testing.T) {
	s, err := ShiftFromChoice(1)
	assert.NoError(t, err)
	assert.Equal(t, clinic.ShiftMorning, s)

	s, err = ShiftFromChoice(2)
	assert.NoError(t, err)
	assert.Equal(t, clinic.ShiftEvening, s)

	_, err = ShiftFromChoice(3)
	assert.ErrorIs(t, err, clinic.ErrInvalidSelection)
}
