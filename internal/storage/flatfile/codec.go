// Package flatfile reads and writes patient and staff records as
// pipe-delimited lines:
//
//	name|role|contact
//	name|conditionHistory|prescribedMedication|treatment
//
// There is no header and no escaping. Lines with too few fields or an empty
// field are skipped.
package flatfile

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/openclintech/go-clinic-records/internal/clinic"
)

const (
	delimiter   = "|"
	patientCols = 4
	staffCols   = 3

	maxLineSize = 1024 * 1024
)

// ReadStats counts what a read kept and dropped.
type ReadStats struct {
	Records int
	Skipped int
}

func ReadPatients(r io.Reader) ([]clinic.Patient, ReadStats, error) {
	var out []clinic.Patient
	stats, err := readLines(r, patientCols, func(f []string) {
		out = append(out, clinic.Patient{
			Name:                 f[0],
			ConditionHistory:     f[1],
			PrescribedMedication: f[2],
			Treatment:            f[3],
		})
	})
	return out, stats, err
}

func ReadStaff(r io.Reader) ([]clinic.Staff, ReadStats, error) {
	var out []clinic.Staff
	stats, err := readLines(r, staffCols, func(f []string) {
		out = append(out, clinic.Staff{Name: f[0], Role: f[1], Contact: f[2]})
	})
	return out, stats, err
}

func WritePatients(w io.Writer, patients iter.Seq[clinic.Patient]) error {
	bw := bufio.NewWriter(w)
	for p := range patients {
		if err := writeLine(bw, p.Name, p.ConditionHistory, p.PrescribedMedication, p.Treatment); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func WriteStaff(w io.Writer, staff iter.Seq2[int, clinic.Staff]) error {
	bw := bufio.NewWriter(w)
	for _, s := range staff {
		if err := writeLine(bw, s.Name, s.Role, s.Contact); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SplitFields returns the first n fields of line, or ok=false when the line
// has fewer than n fields or any of them is empty. Extra fields are ignored.
func SplitFields(line string, n int) (fields []string, ok bool) {
	line = strings.TrimSuffix(line, "\r")
	parts := strings.SplitN(line, delimiter, n+1)
	if len(parts) < n {
		return nil, false
	}
	parts = parts[:n]
	for _, p := range parts {
		if p == "" {
			return nil, false
		}
	}
	return parts, true
}

func readLines(r io.Reader, n int, emit func([]string)) (ReadStats, error) {
	var stats ReadStats
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		fields, ok := SplitFields(sc.Text(), n)
		if !ok {
			stats.Skipped++
			continue
		}
		emit(fields)
		stats.Records++
	}
	if err := sc.Err(); err != nil {
		return stats, fmt.Errorf("reading records: %w", err)
	}
	return stats, nil
}

var fieldSanitizer = strings.NewReplacer(delimiter, " ", "\r", " ", "\n", " ")

func writeLine(w *bufio.Writer, fields ...string) error {
	for i, f := range fields {
		if i > 0 {
			if _, err := w.WriteString(delimiter); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(fieldSanitizer.Replace(f)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}
