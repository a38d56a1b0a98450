// Package schedule implements the appointment book: one slot per staff
// member, each either free or booked.
package schedule

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/openclintech/go-clinic-records/internal/clinic"
	"github.com/openclintech/go-clinic-records/internal/storage"
)

// Book operates on the slots held by a StaffStore. Indices are 0-based
// positions in the staff list.
type Book struct {
	staff storage.StaffStore
	log   *zap.Logger
}

func NewBook(staff storage.StaffStore, log *zap.Logger) *Book {
	if log == nil {
		log = zap.NewNop()
	}
	return &Book{staff: staff, log: log}
}

// Book reserves the slot at index. A booked slot is left untouched and
// clinic.ErrAlreadyBooked is returned.
func (b *Book) Book(index int, patientName, timeSlot string, shift clinic.Shift) error {
	if !shift.IsValid() {
		return fmt.Errorf("shift %q: %w", shift, clinic.ErrInvalidSelection)
	}
	err := b.staff.UpdateSlot(index, func(s *clinic.Slot) error {
		return s.Book(patientName, timeSlot, shift)
	})
	if err != nil {
		return err
	}
	b.log.Info("appointment booked",
		zap.Int("staff_index", index),
		zap.String("time_slot", timeSlot),
		zap.String("shift", string(shift)),
	)
	return nil
}

// Cancel frees the slot at index. Cancelling a free slot is not an error.
func (b *Book) Cancel(index int) error {
	var wasBooked bool
	err := b.staff.UpdateSlot(index, func(s *clinic.Slot) error {
		wasBooked = s.Booked
		s.Cancel()
		return nil
	})
	if err != nil {
		return err
	}
	if wasBooked {
		b.log.Info("appointment cancelled", zap.Int("staff_index", index))
	}
	return nil
}

func (b *Book) Slot(index int) (clinic.Slot, error) {
	_, slot, err := b.staff.Get(index)
	return slot, err
}

// View describes the slot at index using the owning staff member's name.
func (b *Book) View(index int) (string, error) {
	st, slot, err := b.staff.Get(index)
	if err != nil {
		return "", err
	}
	return slot.Describe(st.Name), nil
}

func (b *Book) ViewAll() []string {
	out := make([]string, 0, b.staff.Len())
	for st, slot := range b.staff.Slots() {
		out = append(out, slot.Describe(st.Name))
	}
	return out
}

func (b *Book) Size() int {
	return b.staff.Len()
}

// Booked counts booked slots.
func (b *Book) Booked() int {
	n := 0
	for _, slot := range b.staff.Slots() {
		if slot.Booked {
			n++
		}
	}
	return n
}
