package storage

import (
	"iter"

	"github.com/openclintech/go-clinic-records/internal/clinic"
)

// PatientStore keeps patients in insertion order. Names are not unique;
// lookups by name resolve to the first match.
type PatientStore interface {
	Add(p clinic.Patient) error
	Find(name string) (patient clinic.Patient, ok bool, err error)

	// Update overwrites the mutable fields of the first patient named name.
	// Returns clinic.ErrPatientNotFound if there is none.
	Update(name string, d clinic.PatientDetails) error

	// All iterates over a snapshot taken when iteration starts.
	All() iter.Seq[clinic.Patient]
	Len() int
}

// StaffStore keeps staff in insertion order. Every staff member owns exactly
// one appointment slot, so the slot count always equals Len.
type StaffStore interface {
	// Add appends a staff member with a free slot and returns its index.
	Add(s clinic.Staff) (int, error)
	Get(index int) (staff clinic.Staff, slot clinic.Slot, err error)

	// UpdateSlot runs fn against the slot at index while holding the store's
	// write lock. Returns clinic.ErrStaffNotFound for an unknown index.
	UpdateSlot(index int, fn func(*clinic.Slot) error) error

	All() iter.Seq2[int, clinic.Staff]
	Slots() iter.Seq2[clinic.Staff, clinic.Slot]
	Len() int
}
