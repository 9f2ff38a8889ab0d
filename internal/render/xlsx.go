package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"parseit/internal/parse"
)

// XLSX writes the batch as a single-sheet workbook: headers on row 1,
// records below.
func XLSX(path string, batch *parse.RowBatch) error {
	if path == "" {
		return fmt.Errorf("xlsx output requires an output file (--out)")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	writeRow := func(row int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		return f.SetSheetRow(sheet, cell, &values)
	}

	if err := writeRow(1, batch.Headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	for i, record := range batch.Records {
		if err := writeRow(i+2, record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}
