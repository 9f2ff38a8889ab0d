package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"parseit/internal/parse"
)

// CSV writes the batch as delimited text: a plain header line, then one line
// per record with every value quoted and inner quotes doubled.
func CSV(w io.Writer, batch *parse.RowBatch, delimiter string) error {
	if delimiter == "" {
		delimiter = ","
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, strings.Join(batch.Headers, delimiter)); err != nil {
		return err
	}

	for _, record := range batch.Records {
		quoted := make([]string, len(record))
		for i, v := range record {
			quoted[i] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
		}
		if _, err := fmt.Fprintln(bw, strings.Join(quoted, delimiter)); err != nil {
			return err
		}
	}

	return bw.Flush()
}
