package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/resume-screener/internal/types"
)

const sheetName = "Candidates"

// WriteXLSX writes records as a single-sheet workbook with a bold header row
// and one row per record in the order given.
func WriteXLSX(w io.Writer, records []*types.ResumeRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return &WriteError{Format: FormatXLSX, Cause: err}
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return &WriteError{Format: FormatXLSX, Cause: err}
	}

	if err := writeRow(f, 1, columns); err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
		_ = f.SetCellStyle(sheetName, "A1", endCell, headerStyle)
	}

	for i, record := range records {
		if err := writeRow(f, i+2, recordRow(record)); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return &WriteError{Format: FormatXLSX, Cause: err}
	}
	return nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return &WriteError{Format: FormatXLSX, Cause: err}
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
		return &WriteError{Format: FormatXLSX, Cause: err}
	}
	return nil
}
