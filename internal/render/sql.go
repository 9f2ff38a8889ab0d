package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"parseit/internal/parse"
)

// tableName is the table used by the sql and sqlite outputs.
const tableName = "processed_data"

// SQL writes a self-contained script: DROP TABLE / CREATE TABLE with one
// VARCHAR(255) column per header, followed by an INSERT per record.
func SQL(w io.Writer, batch *parse.RowBatch) error {
	bw := bufio.NewWriter(w)
	headers := columnNames(batch.Headers)

	fmt.Fprintln(bw, "--------------------------------------------------------")
	fmt.Fprintf(bw, "-- DDL: table '%s'\n", tableName)
	fmt.Fprintln(bw, "--------------------------------------------------------")
	fmt.Fprintf(bw, "DROP TABLE IF EXISTS %s;\n", tableName)
	fmt.Fprintf(bw, "CREATE TABLE %s (\n", tableName)

	columns := make([]string, len(headers))
	for i, h := range headers {
		columns[i] = fmt.Sprintf("    %s VARCHAR(255) NULL", h)
	}
	fmt.Fprintln(bw, strings.Join(columns, ",\n"))
	fmt.Fprint(bw, ");\n\n")

	fmt.Fprintln(bw, "--------------------------------------------------------")
	fmt.Fprintf(bw, "-- DML: %d records\n", len(batch.Records))
	fmt.Fprintln(bw, "--------------------------------------------------------")

	for _, record := range batch.Records {
		values := make([]string, len(record))
		for i, v := range record {
			values[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
		}
		fmt.Fprintf(bw, "INSERT INTO %s (%s) VALUES (%s);\n",
			tableName,
			strings.Join(headers[:len(record)], ", "),
			strings.Join(values, ", "))
	}

	return bw.Flush()
}

// columnNames turns display headers into SQL identifiers: spaces become
// underscores and the result is upper-cased.
func columnNames(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = strings.ToUpper(strings.ReplaceAll(h, " ", "_"))
	}
	return out
}
