package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vegasq/daxcat/dax"
	"github.com/vegasq/daxcat/output"
	"github.com/vegasq/daxcat/reader"
)

// expressionList collects repeated -e flags
type expressionList []string

func (e *expressionList) String() string {
	return strings.Join(*e, "; ")
}

func (e *expressionList) Set(value string) error {
	*e = append(*e, value)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, loads the table and prints results. It returns the
// process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("daxcat", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var exprs expressionList
	flags.Var(&exprs, "e", "DAX expression to evaluate (repeatable), e.g. \"SUM([Sales])\"")
	formatFlag := flags.String("f", "grid", "Output format for the table: "+strings.Join(output.Names(), ", "))
	showFlag := flags.Bool("show", false, "Print the table (default when no -e is given)")
	schemaFlag := flags.Bool("schema", false, "Show schema information instead of data")
	delimFlag := flags.String("d", "", "CSV field delimiter (default ',' or tab for .tsv)")
	encodingFlag := flags.String("encoding", "", "CSV character encoding, e.g. latin1, shift_jis (default utf-8)")
	logLevelFlag := flags.String("log-level", "warn", "Log level: trace, debug, info, warn, error")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: daxcat [options] <file>\n\n")
		fmt.Fprintf(stderr, "Evaluate DAX aggregate expressions over CSV, Parquet or YAML tables.\n\n")
		fmt.Fprintf(stderr, "IMPORTANT: All flags must come BEFORE file arguments.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  daxcat sales.csv\n")
		fmt.Fprintf(stderr, "  daxcat -e \"SUM([Sales])\" -e \"DISTINCTCOUNT([Product])\" sales.parquet\n")
		fmt.Fprintf(stderr, "  daxcat -f csv -show sales.yaml\n")
		fmt.Fprintf(stderr, "  daxcat -schema sales.parquet\n")
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level, err := zerolog.ParseLevel(*logLevelFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid -log-level %q\n", *logLevelFlag)
		return 1
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()

	if *schemaFlag && len(exprs) > 0 {
		fmt.Fprintf(stderr, "Error: -schema and -e cannot be used together\n")
		return 1
	}

	if flags.NArg() < 1 {
		fmt.Fprintf(stderr, "Error: missing input file argument\n\n")
		flags.Usage()
		return 1
	}
	filename := flags.Arg(0)

	formatter, err := output.New(*formatFlag, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	opts := reader.CSVOptions{Encoding: *encodingFlag}
	if *delimFlag != "" {
		delim, err := parseDelimiter(*delimFlag)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		opts.Delimiter = delim
	}

	if *schemaFlag {
		schema, err := schemaTable(filename, opts)
		if err != nil {
			reportReadError(stderr, filename, err)
			return 1
		}
		if err := formatter.Format(schema); err != nil {
			fmt.Fprintf(stderr, "Error formatting output: %v\n", err)
			return 1
		}
		return 0
	}

	table, err := reader.ReadFile(filename, opts)
	if err != nil {
		reportReadError(stderr, filename, err)
		return 1
	}
	log.Info().
		Str("file", filename).
		Int("columns", table.Len()).
		Int("rows", table.RowCount()).
		Msg("loaded table")

	if *showFlag || len(exprs) == 0 {
		if err := formatter.Format(table); err != nil {
			fmt.Fprintf(stderr, "Error formatting output: %v\n", err)
			return 1
		}
	}

	status := 0
	for _, expr := range exprs {
		result, err := table.Evaluate(expr)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", expr, err)
			status = 1
			continue
		}
		fmt.Fprintf(stdout, "%s = %s\n", expr, output.FormatCell(result))
	}
	return status
}

// parseDelimiter accepts a single character or the escape \t
func parseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return r, nil
}

func reportReadError(stderr io.Writer, filename string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(stderr, "Error: file '%s' not found\n", filename)
		fmt.Fprintf(stderr, "Please check the file path and try again.\n")
		return
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
}

// schemaTable describes the columns of filename as a table. Parquet files
// report their physical schema; other formats report the loaded columns.
func schemaTable(filename string, opts reader.CSVOptions) (*dax.Table, error) {
	if reader.DetectFormat(filename) == reader.FormatParquet {
		infos, err := reader.ExtractSchemaInfo(filename)
		if err != nil {
			return nil, err
		}
		var names, physical, logical, kinds, optional, repeated []interface{}
		for _, info := range infos {
			names = append(names, info.Name)
			physical = append(physical, info.PhysicalType)
			logical = append(logical, info.LogicalType)
			kinds = append(kinds, info.Kind)
			optional = append(optional, info.Optional)
			repeated = append(repeated, info.Repeated)
		}
		return dax.Build(
			dax.Col("name", names...),
			dax.Col("physical_type", physical...),
			dax.Col("logical_type", logical...),
			dax.Col("kind", kinds...),
			dax.Col("optional", optional...),
			dax.Col("repeated", repeated...),
		), nil
	}

	table, err := reader.ReadFile(filename, opts)
	if err != nil {
		return nil, err
	}
	var names, kinds, counts []interface{}
	for _, name := range table.ColumnNames() {
		values, _ := table.Column(name)
		count, _ := table.Count(name)
		names = append(names, name)
		kinds = append(kinds, columnKind(values).String())
		counts = append(counts, count)
	}
	return dax.Build(
		dax.Col("name", names...),
		dax.Col("kind", kinds...),
		dax.Col("count", counts...),
	), nil
}

// columnKind returns the kind of the first non-null entry
func columnKind(values []dax.Value) dax.Kind {
	for _, v := range values {
		if !v.IsNull() {
			return v.Kind()
		}
	}
	return dax.KindNull
}
