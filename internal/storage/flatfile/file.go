package flatfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/openclintech/go-clinic-records/internal/storage"
)

// Paths names the two record files.
type Paths struct {
	Patients string
	Staff    string
}

type LoadStats struct {
	Patients ReadStats
	Staff    ReadStats
}

func (s LoadStats) Skipped() int {
	return s.Patients.Skipped + s.Staff.Skipped
}

// Load fills the stores from the files in p. A missing file counts as an
// empty one.
func Load(p Paths, patients storage.PatientStore, staff storage.StaffStore, log *zap.Logger) (LoadStats, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var stats LoadStats

	err := readFile(p.Staff, func(r io.Reader) error {
		recs, st, err := ReadStaff(r)
		stats.Staff = st
		if err != nil {
			return err
		}
		for _, s := range recs {
			if _, err := staff.Add(s); err != nil {
				return fmt.Errorf("adding staff %q: %w", s.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("loading staff from %s: %w", p.Staff, err)
	}

	err = readFile(p.Patients, func(r io.Reader) error {
		recs, st, err := ReadPatients(r)
		stats.Patients = st
		if err != nil {
			return err
		}
		for _, pt := range recs {
			if err := patients.Add(pt); err != nil {
				return fmt.Errorf("adding patient %q: %w", pt.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("loading patients from %s: %w", p.Patients, err)
	}

	log.Debug("records loaded",
		zap.Int("staff", stats.Staff.Records),
		zap.Int("staff_skipped", stats.Staff.Skipped),
		zap.Int("patients", stats.Patients.Records),
		zap.Int("patients_skipped", stats.Patients.Skipped),
	)
	return stats, nil
}

// Save writes both stores back to the files in p. Each file is written to a
// temporary file in the same directory and renamed into place.
func Save(p Paths, patients storage.PatientStore, staff storage.StaffStore) error {
	if err := writeFileAtomic(p.Staff, func(w io.Writer) error {
		return WriteStaff(w, staff.All())
	}); err != nil {
		return fmt.Errorf("saving staff to %s: %w", p.Staff, err)
	}
	if err := writeFileAtomic(p.Patients, func(w io.Writer) error {
		return WritePatients(w, patients.All())
	}); err != nil {
		return fmt.Errorf("saving patients to %s: %w", p.Patients, err)
	}
	return nil
}

func readFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(f)
}

func writeFileAtomic(path string, fn func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = fn(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
