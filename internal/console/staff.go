package console

import (
	"go.uber.org/zap"

	"github.com/openclintech/go-clinic-records/internal/clinic"
)

const staffMenu = `
===== Staff Management =====
1. Add Staff
2. View Staff
Enter choice: `

func (c *Controller) staffMenu() error {
	choice, ok, err := c.promptInt(staffMenu)
	if err != nil {
		return err
	}
	if !ok {
		c.printf("Invalid option.\n")
		return nil
	}

	switch choice {
	case 1:
		return c.addStaff()
	case 2:
		var all []clinic.Staff
		for _, s := range c.d.Staff.All() {
			all = append(all, s)
		}
		c.printf("\n--- Staff List ---\n%s", clinic.StaffTable(all))
	default:
		c.printf("Invalid option.\n")
	}
	return nil
}

func (c *Controller) addStaff() error {
	var s clinic.Staff
	if err := c.promptFields(
		field{"Name: ", &s.Name},
		field{"Role: ", &s.Role},
		field{"Contact: ", &s.Contact},
	); err != nil {
		return err
	}

	idx, err := c.d.Staff.Add(s)
	if err != nil {
		return err
	}
	if c.d.Metrics != nil {
		c.d.Metrics.StaffCreated.Inc()
	}
	c.log.Info("staff added", zap.Int("staff_index", idx))
	c.printf("Staff added.\n")
	return nil
}
