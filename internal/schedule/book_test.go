package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclintech/go-clinic-records/internal/clinic"
	"github.com/openclintech/go-clinic-records/internal/storage/memory"
)

func newTestBook(t *testing.T, names ...string) (*Book, *memory.StaffStore) {
	t.Helper()
	staff := memory.NewStaffStore()
	for _, n := range names {
		_, err := staff.Add(clinic.Staff{Name: n, Role: "Doctor", Contact: "555"})
		require.NoError(t, err)
	}
	return NewBook(staff, nil), staff
}

func TestBook_BookViewCancel(t *testing.T) {
	b, _ := newTestBook(t, "Dr. Smith")

	require.NoError(t, b.Book(0, "Alice", "8:00 AM", clinic.ShiftMorning))

	slot, err := b.Slot(0)
	require.NoError(t, err)
	assert.True(t, slot.Booked)
	assert.Equal(t, "Alice", slot.PatientName)
	assert.Equal(t, "8:00 AM", slot.TimeSlot)
	assert.Equal(t, clinic.ShiftMorning, slot.Shift)

	line, err := b.View(0)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Smith is booked for: Alice at 8:00 AM (Morning)", line)

	require.NoError(t, b.Cancel(0))
	slot, _ = b.Slot(0)
	assert.Equal(t, clinic.Slot{}, slot)

	line, _ = b.View(0)
	assert.Equal(t, "Dr. Smith has no appointments.", line)
}

func TestBook_AlreadyBookedKeepsExisting(t *testing.T) {
	b, _ := newTestBook(t, "Dr. Smith")
	require.NoError(t, b.Book(0, "Alice", "8:00 AM", clinic.ShiftMorning))

	err := b.Book(0, "Bob", "2:30 PM", clinic.ShiftEvening)
	assert.ErrorIs(t, err, clinic.ErrAlreadyBooked)

	slot, _ := b.Slot(0)
	assert.Equal(t, clinic.Slot{Booked: true, PatientName: "Alice", TimeSlot: "8:00 AM", Shift: clinic.ShiftMorning}, slot)
}

func TestBook_CancelFreeSlotIsNoop(t *testing.T) {
	b, _ := newTestBook(t, "Dr. Smith")
	assert.NoError(t, b.Cancel(0))
	assert.NoError(t, b.Cancel(0))
	assert.Zero(t, b.Booked())
}

func TestBook_UnknownIndex(t *testing.T) {
	b, _ := newTestBook(t, "Dr. Smith")

	assert.ErrorIs(t, b.Book(1, "Alice", "8:00 AM", clinic.ShiftMorning), clinic.ErrStaffNotFound)
	assert.ErrorIs(t, b.Cancel(-1), clinic.ErrStaffNotFound)
	_, err := b.View(5)
	assert.ErrorIs(t, err, clinic.ErrStaffNotFound)
}

func TestBook_InvalidShift(t *testing.T) {
	b, _ := newTestBook(t, "Dr. Smith")
	assert.ErrorIs(t, b.Book(0, "Alice", "8:00 AM", clinic.Shift("Night")), clinic.ErrInvalidSelection)
	assert.Zero(t, b.Booked())
}

func TestBook_SizeFollowsStaff(t *testing.T) {
	b, staff := newTestBook(t, "A", "B")
	require.NoError(t, b.Book(1, "Alice", "9:00 AM", clinic.ShiftMorning))

	before := b.Size()
	_, err := staff.Add(clinic.Staff{Name: "C"})
	require.NoError(t, err)
	assert.Equal(t, before+1, b.Size())

	slot, err := b.Slot(2)
	require.NoError(t, err)
	assert.False(t, slot.Booked, "new staff start with a free slot")

	assert.Equal(t, []string{
		"A has no appointments.",
		"B is booked for: Alice at 9:00 AM (Morning)",
		"C has no appointments.",
	}, b.ViewAll())
	assert.Equal(t, 1, b.Booked())
}
