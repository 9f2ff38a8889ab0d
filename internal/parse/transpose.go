package parse

import (
	"fmt"
	"strconv"
)

// Transpose flattens a wide batch into long format: one output record per
// cell, carrying the 1-based row number, the column name and the value.
// Order is preserved, all cells of a record before any cell of the next.
// Records shorter than the header keep their own length; a cell past the
// header gets a synthetic col_<n> label.
func Transpose(batch *RowBatch) *RowBatch {
	out := &RowBatch{
		Headers: []string{"#", "Columna", "Valor"},
		Records: make([][]string, 0, len(batch.Records)*len(batch.Headers)),
	}

	for i, record := range batch.Records {
		rowNum := strconv.Itoa(i + 1)
		for j, value := range record {
			name := fmt.Sprintf("col_%d", j+1)
			if j < len(batch.Headers) {
				name = batch.Headers[j]
			}
			out.Records = append(out.Records, []string{rowNum, name, value})
		}
	}

	return out
}
