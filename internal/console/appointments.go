package console

import (
	"errors"

	"github.com/openclintech/go-clinic-records/internal/clinic"
	"github.com/openclintech/go-clinic-records/internal/metrics"
	"github.com/openclintech/go-clinic-records/internal/schedule"
)

const appointmentMenu = `
===== Appointment Management =====
1. Book Appointment
2. Cancel Appointment
3. View Appointments
Enter choice: `

func (c *Controller) appointmentMenu() error {
	choice, ok, err := c.promptInt(appointmentMenu)
	if err != nil {
		return err
	}
	if !ok {
		c.printf("Invalid option.\n")
		return nil
	}

	switch choice {
	case 1:
		return c.bookAppointment()
	case 2:
		return c.cancelAppointment()
	case 3:
		for _, line := range c.d.Book.ViewAll() {
			c.printf("%s\n", line)
		}
	default:
		c.printf("Invalid option.\n")
	}
	return nil
}

// chooseStaff lists staff and returns the 0-based index picked by the user.
// ok is false when the choice was invalid and has already been reported.
func (c *Controller) chooseStaff() (index int, ok bool, err error) {
	if c.d.Staff.Len() == 0 {
		c.printf("No staff members available.\n")
		return 0, false, nil
	}
	for i, s := range c.d.Staff.All() {
		c.printf("%d. %s\n", i+1, s.Display())
	}
	n, ok, err := c.promptInt("Choose staff #: ")
	if err != nil {
		return 0, false, err
	}
	if !ok || n < 1 || n > c.d.Staff.Len() {
		c.printf("Invalid staff selection.\n")
		return 0, false, nil
	}
	return n - 1, true, nil
}

func (c *Controller) bookAppointment() error {
	idx, ok, err := c.chooseStaff()
	if err != nil || !ok {
		return err
	}

	slot, err := c.d.Book.Slot(idx)
	if err != nil {
		return err
	}
	if slot.Booked {
		c.alreadyBooked()
		return nil
	}

	n, ok, err := c.promptInt("1. Morning\n2. Evening\nEnter shift: ")
	if err != nil {
		return err
	}
	shift, shiftErr := schedule.ShiftFromChoice(n)
	if !ok || shiftErr != nil {
		c.printf("Invalid selection.\n")
		return nil
	}

	for i, label := range schedule.SlotLabels(shift) {
		c.printf("%d. %s\n", i+1, label)
	}
	n, ok, err = c.promptInt("Choose time slot: ")
	if err != nil {
		return err
	}
	timeSlot, slotErr := schedule.SlotLabel(shift, n)
	if !ok || slotErr != nil {
		c.printf("Invalid selection.\n")
		return nil
	}

	patientName, err := c.prompt("Enter patient name: ")
	if err != nil {
		return err
	}

	err = c.d.Book.Book(idx, patientName, timeSlot, shift)
	switch {
	case errors.Is(err, clinic.ErrAlreadyBooked):
		c.alreadyBooked()
		return nil
	case err != nil:
		return err
	}
	if c.d.Metrics != nil {
		c.d.Metrics.Appointments.WithLabelValues(metrics.OutcomeBooked).Inc()
	}
	c.printf("Appointment booked.\n")
	return nil
}

func (c *Controller) alreadyBooked() {
	if c.d.Metrics != nil {
		c.d.Metrics.Appointments.WithLabelValues(metrics.OutcomeAlreadyBooked).Inc()
	}
	c.printf("Already booked.\n")
}

func (c *Controller) cancelAppointment() error {
	idx, ok, err := c.chooseStaff()
	if err != nil || !ok {
		return err
	}
	if err := c.d.Book.Cancel(idx); err != nil {
		if errors.Is(err, clinic.ErrStaffNotFound) {
			c.printf("Invalid staff selection.\n")
			return nil
		}
		return err
	}
	if c.d.Metrics != nil {
		c.d.Metrics.Appointments.WithLabelValues(metrics.OutcomeCancelled).Inc()
	}
	c.printf("Appointment cancelled.\n")
	return nil
}
