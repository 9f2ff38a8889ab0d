// Package render serializes decoded row batches. Text modes (csv, table,
// sql, html) write to an io.Writer; file modes (xlsx, sqlite) write to the
// path in Options; term opens an interactive viewer. Renderers never alter
// decoding semantics, they only serialize what they are given.
package render

import (
	"fmt"
	"os"

	"parseit/internal/parse"
)

// Options carries renderer parameters.
type Options struct {
	Delimiter string // csv field delimiter, "," when empty
	OutPath   string // destination file for xlsx and sqlite output
}

// Write serializes the batch in the requested output mode.
func Write(mode string, batch *parse.RowBatch, opts Options) error {
	switch mode {
	case "csv":
		return CSV(os.Stdout, batch, opts.Delimiter)
	case "table":
		return Table(os.Stdout, batch)
	case "sql":
		return SQL(os.Stdout, batch)
	case "html":
		return HTML(os.Stdout, batch)
	case "xlsx":
		return XLSX(opts.OutPath, batch)
	case "sqlite":
		return SQLite(opts.OutPath, batch)
	case "term":
		return Interactive(batch)
	default:
		return fmt.Errorf("unknown output type: %s", mode)
	}
}

// pad returns the record extended with empty strings to the given width.
// Truncated records are shorter than the header; file and viewer outputs
// need rectangular data.
func pad(record []string, width int) []string {
	if len(record) >= width {
		return record
	}
	out := make([]string, width)
	copy(out, record)
	return out
}
