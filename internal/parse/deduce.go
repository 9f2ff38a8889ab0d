package parse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"parseit/internal/config"
)

// FirstLineLength reads only the first record of the data file, decodes it
// under Windows-1252, strips the line terminator and any trailing whitespace,
// and returns its length in characters.
func FirstLineLength(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open data file %s: %w", path, err)
	}
	defer f.Close()

	raw, err := bufio.NewReader(f).ReadBytes('\n')
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("failed to read first record of %s: %w", path, err)
	}

	line := strings.TrimRightFunc(decodeLegacy(raw), unicode.IsSpace)
	return utf8.RuneCountInString(line), nil
}

// Deduce infers which format applies to a data file by matching the length
// of its first record against the computed length of every known format.
// Candidates are scanned in lexicographic name order, so the result is
// deterministic even when several formats share a length: the smallest
// matching name wins.
func Deduce(path string, formats map[string]config.Format) (string, error) {
	length, err := FirstLineLength(path)
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if formats[name].Length() == length {
			return name, nil
		}
	}

	return "", fmt.Errorf("could not identify the format: no format matches a record length of %d characters", length)
}
