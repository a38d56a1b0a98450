package clinic

import "errors"

var (
	ErrPatientNotFound  = errors.New("patient not found")
	ErrStaffNotFound    = errors.New("staff member not found")
	ErrAlreadyBooked    = errors.New("appointment slot is already booked")
	ErrInvalidSelection = errors.New("invalid selection")
)
