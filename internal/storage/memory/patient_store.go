package memory

import (
	"iter"
	"slices"
	"sync"

	"github.com/openclintech/go-clinic-records/internal/clinic"
)

type PatientStore struct {
	mu   sync.RWMutex
	data []clinic.Patient
}

func NewPatientStore() *PatientStore {
	return &PatientStore{}
}

func (s *PatientStore) Add(p clinic.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, p)
	return nil
}

func (s *PatientStore) Find(name string) (clinic.Patient, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(name)
	if i < 0 {
		return clinic.Patient{}, false, nil
	}
	return s.data[i], true, nil
}

func (s *PatientStore) Update(name string, d clinic.PatientDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(name)
	if i < 0 {
		return clinic.ErrPatientNotFound
	}
	s.data[i].Apply(d)
	return nil
}

func (s *PatientStore) All() iter.Seq[clinic.Patient] {
	return func(yield func(clinic.Patient) bool) {
		for _, p := range s.snapshot() {
			if !yield(p) {
				return
			}
		}
	}
}

func (s *PatientStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// indexOf must be called with mu held.
func (s *PatientStore) indexOf(name string) int {
	return slices.IndexFunc(s.data, func(p clinic.Patient) bool {
		return p.Name == name
	})
}

func (s *PatientStore) snapshot() []clinic.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data)
}
