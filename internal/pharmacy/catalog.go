// Package pharmacy holds the medication price list and billing.
package pharmacy

import (
	"fmt"

	"github.com/openclintech/go-clinic-records/internal/clinic"
)

// Cents is an amount of money in US cents.
type Cents int64

func (c Cents) String() string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s$%d.%02d", sign, c/100, c%100)
}

type Medication struct {
	Name  string
	Price Cents
}

type Catalog struct {
	meds []Medication
}

// DefaultCatalog is the clinic's fixed price list.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Medication{
		{Name: "Aspirin", Price: 1000},
		{Name: "Paracetamol", Price: 850},
		{Name: "Amoxicillin", Price: 1500},
	})
}

func NewCatalog(meds []Medication) *Catalog {
	c := &Catalog{meds: make([]Medication, len(meds))}
	copy(c.meds, meds)
	return c
}

func (c *Catalog) List() []Medication {
	out := make([]Medication, len(c.meds))
	copy(out, c.meds)
	return out
}

func (c *Catalog) Len() int { return len(c.meds) }

// PriceOf returns the price for a 1-based selection.
func (c *Catalog) PriceOf(selection int) (Cents, error) {
	m, err := c.Get(selection)
	if err != nil {
		return 0, err
	}
	return m.Price, nil
}

func (c *Catalog) Get(selection int) (Medication, error) {
	if selection < 1 || selection > len(c.meds) {
		return Medication{}, clinic.ErrInvalidSelection
	}
	return c.meds[selection-1], nil
}
