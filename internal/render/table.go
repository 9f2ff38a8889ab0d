package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"parseit/internal/parse"
)

// Table writes the batch as an aligned plain-text table with a separator
// line under the header.
func Table(w io.Writer, batch *parse.RowBatch) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(batch.Headers, "\t"))

	separators := make([]string, len(batch.Headers))
	for i, h := range batch.Headers {
		separators[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(separators, "\t"))

	for _, record := range batch.Records {
		fmt.Fprintln(tw, strings.Join(record, "\t"))
	}

	return tw.Flush()
}
