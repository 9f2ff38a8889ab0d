// Package parse implements the fixed-width record engine: format deduction
// from record length, positional field extraction with lookup-table
// substitution, locale-aware numeric formatting, and the optional wide-to-long
// transposition. Input lines are decoded from the legacy Windows-1252
// character set before slicing, so field offsets count characters of that set
// (one byte each in the source file).
package parse

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"parseit/internal/config"
)

// Options controls how records are decoded and rendered.
type Options struct {
	Thousands bool // group integer digits of amounts with '.' separators
	NoTables  bool // suppress lookup-table substitution
	Long      bool // transpose the batch into row/column/value triples
}

// RowBatch is an ordered header plus the decoded records, positionally
// aligned with it. A record may be shorter than the header when the source
// line was truncated.
type RowBatch struct {
	Headers []string
	Records [][]string
}

// Parser decodes fixed-width lines against a schema. The schema is borrowed
// and never mutated.
type Parser struct {
	schema *config.Schema
	opts   Options
	logger *zap.Logger
}

// New creates a Parser. A nil logger is replaced with a nop logger.
func New(schema *config.Schema, opts Options, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{schema: schema, opts: opts, logger: logger}
}

// File decodes every line of the data file under the given field list and
// returns the resulting batch, transposed if the Long option is set.
func (p *Parser) File(path string, fields []config.Field) (*RowBatch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file %s: %w", path, err)
	}
	defer f.Close()

	headers := make([]string, 0, len(fields))
	for _, fd := range fields {
		headers = append(headers, fd.Name)
	}
	batch := &RowBatch{Headers: headers}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := decodeLegacy(scanner.Bytes())
		batch.Records = append(batch.Records, p.decode(line, fields, lineNum))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if p.opts.Long {
		return Transpose(batch), nil
	}
	return batch, nil
}

// Decode slices one already-decoded line into field values.
func (p *Parser) Decode(line string, fields []config.Field) []string {
	return p.decode(line, fields, 0)
}

// decode walks the field list with a running cursor. When a field's range
// exceeds the line, it emits a single empty value for that field and stops;
// the short record is kept and the run continues with the next line.
func (p *Parser) decode(line string, fields []config.Field, lineNum int) []string {
	runes := []rune(line)
	record := make([]string, 0, len(fields))
	pos := 0

	for _, field := range fields {
		end := pos + field.Len
		if end > len(runes) {
			p.logger.Warn("line too short, field incomplete",
				zap.Int("line", lineNum),
				zap.String("field", field.Name))
			record = append(record, "")
			break
		}

		raw := strings.TrimSpace(string(runes[pos:end]))
		value := raw

		// Lookup tables annotate coded values; an absent table or code
		// leaves the raw value untouched.
		if field.Type == "table" && !p.opts.NoTables {
			if table, ok := p.schema.Tables[field.Param1]; ok {
				if desc, ok := table[raw]; ok {
					value = raw + " - " + desc
				}
			}
		}

		if field.Type == "zamount" || field.Type == "amount" {
			value = FormatValue(value, field.Type, p.opts.Thousands, decimalPlaces(field))
		}

		record = append(record, value)
		pos = end
	}

	return record
}

// decimalPlaces parses the decimal-place count from param1, defaulting to 2.
func decimalPlaces(field config.Field) int {
	places, err := strconv.Atoi(strings.TrimSpace(field.Param1))
	if err != nil || places < 0 {
		return 2
	}
	return places
}

// decodeLegacy converts a raw line from Windows-1252 to UTF-8.
func decodeLegacy(raw []byte) string {
	out, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(out)
}
