package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const testSchema = `formats:
  f931:
    category: tax
    fields:
      - name: CUIT
        len: 11
        type: text
      - name: Province
        len: 2
        type: table
        param1: provinces
      - name: Amount
        len: 8
        type: zamount
        param1: "2"
tables:
  provinces:
    "01": Buenos Aires
shortcuts:
  "931": f931
`

// setupRun writes a schema and a one-record data file into a temp dir and
// points the command globals at them.
func setupRun(t *testing.T) {
	t.Helper()
	dir := t.TempDir()

	configPath = filepath.Join(dir, "parseit.yaml")
	if err := os.WriteFile(configPath, []byte(testSchema), 0o644); err != nil {
		t.Fatalf("write schema: %v", err)
	}

	dataFile = filepath.Join(dir, "data.dat")
	if err := os.WriteFile(dataFile, []byte("20123456789"+"01"+"00012345"+"\n"), 0o644); err != nil {
		t.Fatalf("write data: %v", err)
	}

	formatName = ""
	outputType = "csv"
	outPath = ""
	delimiter = ","
	longFormat = false
	noTables = false
	thousands = false
	logger = zap.NewNop()
}

func TestRunDecode_DeducedFormat(t *testing.T) {
	setupRun(t)

	output := captureOutput(t, func() {
		if err := runDecode(&cobra.Command{}, nil); err != nil {
			t.Fatalf("runDecode returned error: %v", err)
		}
	})

	if !strings.Contains(output, "CUIT,Province,Amount") {
		t.Fatalf("expected header line, got: %s", output)
	}
	if !strings.Contains(output, `"01 - Buenos Aires"`) {
		t.Fatalf("expected lookup substitution, got: %s", output)
	}
	if !strings.Contains(output, `"123,45"`) {
		t.Fatalf("expected formatted amount, got: %s", output)
	}
}

func TestRunDecode_ShortcutFormat(t *testing.T) {
	setupRun(t)
	formatName = "931"

	output := captureOutput(t, func() {
		if err := runDecode(&cobra.Command{}, nil); err != nil {
			t.Fatalf("runDecode returned error: %v", err)
		}
	})

	if !strings.Contains(output, "20123456789") {
		t.Fatalf("expected decoded record, got: %s", output)
	}
}

func TestRunDecode_RequiresDataFile(t *testing.T) {
	setupRun(t)
	dataFile = ""

	if err := runDecode(&cobra.Command{}, nil); err == nil {
		t.Fatal("expected error without --data")
	}
}

func TestRunDecode_UnknownFormat(t *testing.T) {
	setupRun(t)
	formatName = "ghost"

	if err := runDecode(&cobra.Command{}, nil); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestRunDeduce(t *testing.T) {
	setupRun(t)

	output := captureOutput(t, func() {
		if err := runDeduce(&cobra.Command{}, []string{dataFile}); err != nil {
			t.Fatalf("runDeduce returned error: %v", err)
		}
	})

	if strings.TrimSpace(output) != "f931" {
		t.Fatalf("expected f931, got: %s", output)
	}
}

func TestListFormats(t *testing.T) {
	setupRun(t)

	output := captureOutput(t, func() {
		if err := listFormats(&cobra.Command{}, nil); err != nil {
			t.Fatalf("listFormats returned error: %v", err)
		}
	})

	if !strings.Contains(output, "f931") || !strings.Contains(output, "21 chars") {
		t.Fatalf("expected format listing with record length, got: %s", output)
	}
}

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origOut := os.Stdout
	rOut, wOut, _ := os.Pipe()
	os.Stdout = wOut

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		done <- buf.String()
	}()

	fn()

	_ = wOut.Close()
	os.Stdout = origOut
	return <-done
}
