package console

import (
	"go.uber.org/zap"

	"github.com/openclintech/go-clinic-records/internal/pharmacy"
)

const pharmacyMenu = `
===== Pharmacy =====
1. View Medications
2. Calculate Bill
3. Back
Enter choice: `

func (c *Controller) pharmacyMenu() error {
	for {
		choice, ok, err := c.promptInt(pharmacyMenu)
		if err != nil {
			return err
		}
		if !ok {
			c.printf("Invalid option.\n")
			continue
		}

		switch choice {
		case 1:
			c.showMedications()
		case 2:
			if err := c.calculateBill(); err != nil {
				return err
			}
		case 3:
			return nil
		default:
			c.printf("Invalid option.\n")
		}
	}
}

func (c *Controller) showMedications() {
	c.printf("\n===== Medications Available =====\n")
	for i, m := range c.d.Catalog.List() {
		c.printf("%d. %s - %s\n", i+1, m.Name, m.Price)
	}
}

// calculateBill feeds selections into a pharmacy.Bill until the user
// enters the finishing selection.
func (c *Controller) calculateBill() error {
	bill := pharmacy.NewBill(c.d.Catalog)
	c.printf("\nEnter medication number to add to bill (%d to finish): ", pharmacy.FinishSelection)
	for {
		n, ok, err := c.promptInt("")
		if err != nil {
			return err
		}
		if !ok {
			c.printf("Invalid choice. Try again.\n")
			continue
		}
		done, err := bill.Add(n)
		if err != nil {
			c.printf("Invalid choice. Try again.\n")
			continue
		}
		if done {
			break
		}
		c.printf("Added. Current total: %s\n", bill.Total())
	}

	if c.d.Metrics != nil {
		c.d.Metrics.BillsCompleted.Inc()
		c.d.Metrics.BilledCents.Add(float64(bill.Total()))
	}
	c.log.Info("bill completed", zap.Int("items", bill.Items()), zap.Int64("total_cents", int64(bill.Total())))
	c.printf("\nFinal Bill: %s\n", bill.Total())
	return nil
}
