// Package report exports clinic records as an xlsx workbook.
package report

import (
	"fmt"
	"io"
	"iter"

	"github.com/xuri/excelize/v2"

	"github.com/openclintech/go-clinic-records/internal/clinic"
)

const (
	PatientsSheet = "Patients"
	StaffSheet    = "Staff"
)

var (
	PatientsHeader = []string{"Name", "Condition History", "Prescribed Medication", "Treatment"}
	StaffHeader    = []string{"Name", "Role", "Contact", "Booked", "Patient", "Time", "Shift"}
)

// Export writes a workbook with one sheet of patients and one of staff with
// their appointment slot.
func Export(w io.Writer, patients iter.Seq[clinic.Patient], staff iter.Seq2[clinic.Staff, clinic.Slot]) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	var patientRows [][]any
	for p := range patients {
		patientRows = append(patientRows, []any{p.Name, p.ConditionHistory, p.PrescribedMedication, p.Treatment})
	}
	var staffRows [][]any
	for s, slot := range staff {
		booked := "No"
		if slot.Booked {
			booked = "Yes"
		}
		staffRows = append(staffRows, []any{s.Name, s.Role, s.Contact, booked, slot.PatientName, slot.TimeSlot, string(slot.Shift)})
	}

	if err := f.SetSheetName("Sheet1", PatientsSheet); err != nil {
		return fmt.Errorf("renaming default sheet: %w", err)
	}
	if err := writeSheet(f, PatientsSheet, PatientsHeader, patientRows, headerStyle); err != nil {
		return err
	}
	if _, err := f.NewSheet(StaffSheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", StaffSheet, err)
	}
	if err := writeSheet(f, StaffSheet, StaffHeader, staffRows, headerStyle); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any, headerStyle int) error {
	row := make([]any, len(header))
	for i, h := range header {
		row[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
		return fmt.Errorf("writing %s header: %w", sheet, err)
	}

	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("styling %s header: %w", sheet, err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+2, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 22); err != nil {
		return fmt.Errorf("sizing %s columns: %w", sheet, err)
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
