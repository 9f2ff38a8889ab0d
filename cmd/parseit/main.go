package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"parseit/internal/config"
	"parseit/internal/parse"
	"parseit/internal/render"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Decode flags
	dataFile   string
	formatName string
	outputType string
	outPath    string
	delimiter  string
	longFormat bool
	noTables   bool
	thousands  bool

	// Logger
	logger *zap.Logger
)

// rootCmd decodes a fixed-width data file and renders it.
var rootCmd = &cobra.Command{
	Use:   "parseit",
	Short: "Decode fixed-width data files using declarative format definitions",
	Long: `parseit interprets legacy fixed-length record files (tax and accounting
extracts) whose layout is described in a schema file rather than hard-coded.

Each line of the data file is sliced into named fields, coded values are
resolved against lookup tables, and numeric fields are rendered as exact
decimals. When no format is named, the format is deduced from the length of
the file's first record.

Examples:
  parseit --data extract.dat --format f931
  parseit --data extract.dat --output table
  parseit --data extract.dat --output sqlite --out extract.db`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDecode,
}

// formatsCmd lists the formats known to the schema.
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the formats defined in the schema with their record lengths",
	RunE:  listFormats,
}

// deduceCmd runs only the format deduction step.
var deduceCmd = &cobra.Command{
	Use:   "deduce [data-file]",
	Short: "Infer which format matches a data file's record length",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeduce,
}

// runDecode is the main pipeline: resolve the format, decode the file,
// hand the batch to the selected renderer.
func runDecode(cmd *cobra.Command, args []string) error {
	if dataFile == "" {
		return fmt.Errorf("--data is required")
	}

	schema, err := loadSchema()
	if err != nil {
		return err
	}

	name := formatName
	if name == "" {
		name, err = parse.Deduce(dataFile, schema.Formats)
		if err != nil {
			return err
		}
		logger.Info("format deduced", zap.String("format", name), zap.String("file", dataFile))
	}

	format, err := schema.Resolve(name)
	if err != nil {
		return err
	}

	parser := parse.New(schema, parse.Options{
		Thousands: thousands,
		NoTables:  noTables,
		Long:      longFormat,
	}, logger)

	batch, err := parser.File(dataFile, format.Fields)
	if err != nil {
		return err
	}

	logger.Debug("file decoded",
		zap.String("format", name),
		zap.Int("records", len(batch.Records)))

	return render.Write(outputType, batch, render.Options{
		Delimiter: delimiter,
		OutPath:   outPath,
	})
}

// listFormats prints every format with its category, field count and
// computed record length.
func listFormats(cmd *cobra.Command, args []string) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	for _, name := range sortedNames(schema.Formats) {
		format := schema.Formats[name]
		fmt.Printf("%-20s %-12s %3d fields  %4d chars\n",
			name, format.Category, len(format.Fields), format.Length())
	}
	return nil
}

func runDeduce(cmd *cobra.Command, args []string) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	name, err := parse.Deduce(args[0], schema.Formats)
	if err != nil {
		return err
	}
	fmt.Println(name)
	return nil
}

// loadSchema honors an explicit --config path, falling back to the standard
// search paths (working directory, executable directory).
func loadSchema() (*config.Schema, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.LoadFromSearchPaths()
}

func sortedNames(formats map[string]config.Format) []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the schema file (default: search parseit.yaml)")

	rootCmd.Flags().StringVarP(&dataFile, "data", "d", "", "Path to the fixed-width data file")
	rootCmd.Flags().StringVarP(&formatName, "format", "f", "", "Format name or shortcut (default: deduce from record length)")
	rootCmd.Flags().StringVarP(&outputType, "output", "o", "csv", "Output type: csv, table, sql, sqlite, html, xlsx, term")
	rootCmd.Flags().StringVar(&outPath, "out", "", "Output file for xlsx and sqlite modes")
	rootCmd.Flags().StringVar(&delimiter, "delimiter", ",", "Field delimiter for csv output")
	rootCmd.Flags().BoolVarP(&longFormat, "long", "l", false, "Transpose output to row/column/value triples")
	rootCmd.Flags().BoolVar(&noTables, "no-tables", false, "Suppress lookup-table substitution")
	rootCmd.Flags().BoolVarP(&thousands, "thousands", "n", false, "Group amounts with thousands separators")

	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(deduceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
