package clinic

import "fmt"

type Shift string

const (
	ShiftMorning Shift = "Morning"
	ShiftEvening Shift = "Evening"
)

func (s Shift) IsValid() bool {
	switch s {
	case ShiftMorning, ShiftEvening:
		return true
	}
	return false
}

// Slot is the single appointment slot owned by a staff member.
//
//	free -> booked  (Book)
//	booked -> free  (Cancel)
type Slot struct {
	Booked      bool
	PatientName string
	TimeSlot    string
	Shift       Shift
}

func (s *Slot) Book(patientName, timeSlot string, shift Shift) error {
	if s.Booked {
		return ErrAlreadyBooked
	}
	s.Booked = true
	s.PatientName = patientName
	s.TimeSlot = timeSlot
	s.Shift = shift
	return nil
}

// Cancel frees the slot. Cancelling a free slot is a no-op.
func (s *Slot) Cancel() {
	*s = Slot{}
}

// Describe renders the slot for the staff member who owns it.
func (s Slot) Describe(staffName string) string {
	if !s.Booked {
		return staffName + " has no appointments."
	}
	return fmt.Sprintf("%s is booked for: %s at %s (%s)", staffName, s.PatientName, s.TimeSlot, s.Shift)
}
