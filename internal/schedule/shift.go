package schedule

import "github.com/openclintech/go-clinic-records/internal/clinic"

var slotLabels = map[clinic.Shift][]string{
	clinic.ShiftMorning: {"8:00 AM", "8:30 AM", "9:00 AM", "9:30 AM"},
	clinic.ShiftEvening: {"2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM"},
}

// Shifts lists the shifts in menu order.
func Shifts() []clinic.Shift {
	return []clinic.Shift{clinic.ShiftMorning, clinic.ShiftEvening}
}

// ShiftFromChoice maps a 1-based menu choice to a shift.
func ShiftFromChoice(choice int) (clinic.Shift, error) {
	shifts := Shifts()
	if choice < 1 || choice > len(shifts) {
		return "", clinic.ErrInvalidSelection
	}
	return shifts[choice-1], nil
}

// SlotLabels returns the bookable times of a shift in half-hour steps.
func SlotLabels(shift clinic.Shift) []string {
	labels := slotLabels[shift]
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

// SlotLabel returns the time for a 1-based choice within shift.
func SlotLabel(shift clinic.Shift, choice int) (string, error) {
	labels := slotLabels[shift]
	if choice < 1 || choice > len(labels) {
		return "", clinic.ErrInvalidSelection
	}
	return labels[choice-1], nil
}
