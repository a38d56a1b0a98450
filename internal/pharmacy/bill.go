package pharmacy

// FinishSelection ends a bill.
const FinishSelection = 0

// Bill accumulates prices of selected medications.
type Bill struct {
	catalog *Catalog
	total   Cents
	items   int
	done    bool
}

func NewBill(c *Catalog) *Bill {
	return &Bill{catalog: c}
}

// Add applies one selection. FinishSelection closes the bill and adds
// nothing. An invalid selection leaves the total unchanged and returns
// clinic.ErrInvalidSelection. Selections after the bill is closed are ignored.
func (b *Bill) Add(selection int) (done bool, err error) {
	if b.done {
		return true, nil
	}
	if selection == FinishSelection {
		b.done = true
		return true, nil
	}
	price, err := b.catalog.PriceOf(selection)
	if err != nil {
		return false, err
	}
	b.total += price
	b.items++
	return false, nil
}

func (b *Bill) Total() Cents { return b.total }
func (b *Bill) Items() int   { return b.items }
func (b *Bill) Done() bool   { return b.done }

type BillStep struct {
	Selection    int
	Valid        bool
	RunningTotal Cents
}

type BillSummary struct {
	Total Cents
	Steps []BillStep
	// Finished reports whether a FinishSelection was seen.
	Finished bool
}

// Tally runs selections through a fresh bill, stopping at the first
// FinishSelection. The finishing selection is recorded as a valid step.
func Tally(c *Catalog, selections []int) BillSummary {
	b := NewBill(c)
	var sum BillSummary
	for _, sel := range selections {
		done, err := b.Add(sel)
		sum.Steps = append(sum.Steps, BillStep{
			Selection:    sel,
			Valid:        err == nil,
			RunningTotal: b.Total(),
		})
		if done {
			sum.Finished = true
			break
		}
	}
	sum.Total = b.Total()
	return sum
}
