package memory

import (
	"iter"
	"slices"
	"sync"

	"github.com/openclintech/go-clinic-records/internal/clinic"
)

// staffEntry keeps a staff member and their slot together so the two can
// never drift out of alignment.
type staffEntry struct {
	staff clinic.Staff
	slot  clinic.Slot
}

type StaffStore struct {
	mu      sync.RWMutex
	entries []staffEntry
}

func NewStaffStore() *StaffStore {
	return &StaffStore{}
}

func (s *StaffStore) Add(st clinic.Staff) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, staffEntry{staff: st})
	return len(s.entries) - 1, nil
}

func (s *StaffStore) Get(index int) (clinic.Staff, clinic.Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.entries) {
		return clinic.Staff{}, clinic.Slot{}, clinic.ErrStaffNotFound
	}
	e := s.entries[index]
	return e.staff, e.slot, nil
}

func (s *StaffStore) UpdateSlot(index int, fn func(*clinic.Slot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.entries) {
		return clinic.ErrStaffNotFound
	}
	// fn works on a copy so a failed transition leaves the slot untouched.
	slot := s.entries[index].slot
	if err := fn(&slot); err != nil {
		return err
	}
	s.entries[index].slot = slot
	return nil
}

func (s *StaffStore) All() iter.Seq2[int, clinic.Staff] {
	return func(yield func(int, clinic.Staff) bool) {
		for i, e := range s.snapshot() {
			if !yield(i, e.staff) {
				return
			}
		}
	}
}

func (s *StaffStore) Slots() iter.Seq2[clinic.Staff, clinic.Slot] {
	return func(yield func(clinic.Staff, clinic.Slot) bool) {
		for _, e := range s.snapshot() {
			if !yield(e.staff, e.slot) {
				return
			}
		}
	}
}

func (s *StaffStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *StaffStore) snapshot() []staffEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}
