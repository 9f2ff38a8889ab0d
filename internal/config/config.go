// Package config defines the parseit schema: the set of known fixed-width
// record formats, the lookup tables used to annotate coded values, and the
// shortcut aliases for format names. The schema is loaded once from a YAML
// file and is read-only for the lifetime of a run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the schema file name searched for when no explicit path is
// given. It is looked up in the working directory first, then next to the
// executable.
const ConfigFile = "parseit.yaml"

// Field defines one column of a fixed-width record.
type Field struct {
	Name   string `yaml:"name"`
	Len    int    `yaml:"len"`
	Type   string `yaml:"type"`   // text, table, zamount, amount, numeric
	Param1 string `yaml:"param1"` // table: lookup table name; amounts: decimal places
	Param2 string `yaml:"param2"`
}

// Format is a named, ordered sequence of fields. Category and Delimiter are
// carried from the schema file for diagnostics but do not affect decoding.
type Format struct {
	Category  string  `yaml:"category"`
	Delimiter string  `yaml:"delimiter"`
	Fields    []Field `yaml:"fields"`
}

// Schema is the full configuration: format name -> definition, lookup table
// name -> (code -> description), and shortcut alias -> format name.
type Schema struct {
	Formats   map[string]Format            `yaml:"formats"`
	Tables    map[string]map[string]string `yaml:"tables"`
	Shortcuts map[string]string            `yaml:"shortcuts"`
}

// Load reads and parses a schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	// Tolerate a UTF-8 BOM left behind by Windows editors.
	text := strings.TrimPrefix(string(data), "\uFEFF")

	schema := &Schema{}
	if err := yaml.Unmarshal([]byte(text), schema); err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", path, err)
	}
	return schema, nil
}

// LoadFromSearchPaths tries the working directory first, then the directory
// of the running executable, and loads the first schema file that exists.
func LoadFromSearchPaths() (*Schema, error) {
	var searched []string

	if cwd, err := os.Getwd(); err == nil {
		searched = append(searched, filepath.Join(cwd, ConfigFile))
	}
	if exe, err := os.Executable(); err == nil {
		searched = append(searched, filepath.Join(filepath.Dir(exe), ConfigFile))
	}

	for _, path := range searched {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	return nil, fmt.Errorf("schema file %q not found in any search path (%s)",
		ConfigFile, strings.Join(searched, ", "))
}

// Resolve returns the format definition for name, following one level of
// shortcut aliasing. The returned error identifies the unknown name.
func (s *Schema) Resolve(name string) (Format, error) {
	if f, ok := s.Formats[name]; ok {
		return f, nil
	}
	if alias, ok := s.Shortcuts[name]; ok {
		if f, ok := s.Formats[alias]; ok {
			return f, nil
		}
		return Format{}, fmt.Errorf("shortcut %q points to unknown format %q", name, alias)
	}
	return Format{}, fmt.Errorf("format %q not found in schema", name)
}

// Length returns the total record length of a field list: the sum of the
// declared field widths. An empty field list has length 0.
func Length(fields []Field) int {
	total := 0
	for _, f := range fields {
		total += f.Len
	}
	return total
}

// Length returns the total record length of the format.
func (f Format) Length() int {
	return Length(f.Fields)
}
