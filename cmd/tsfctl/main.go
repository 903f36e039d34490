// Command tsfctl is a small command-line tool for creating, inspecting, and
// streaming TSF time-series files.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/scottix/rtimedb/exec"
	"github.com/scottix/rtimedb/format"
	"github.com/scottix/rtimedb/ingest"
	"github.com/scottix/rtimedb/reader"
	"github.com/scottix/rtimedb/writer"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "tsfctl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	})))

	if len(args) == 0 {
		return fmt.Errorf("usage: tsfctl <create|read|stream|astream> ...")
	}

	switch args[0] {
	case "create":
		return runCreate(args[1:])
	case "read":
		return runRead(args[1:])
	case "stream", "astream":
		return runStream(args[1:])
	default:
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
}

// logLevel reads TSF_LOG_LEVEL (debug|info|warn|error), defaulting to info.
// This mirrors the env-driven log filter used by the CLI this tool's
// behavior is modeled on, ported to Go's structured-logging idiom.
func logLevel() slog.Level {
	switch strings.ToLower(os.Getenv("TSF_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runCreate(args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	inputFile := fs.String("input-file", "", "headerless CSV with timestamp,temperature columns")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("usage: tsfctl create FILE --input-file CSV")
	}
	outPath := fs.Arg(0)
	// Flags may also follow FILE, as in the usage line; parse what remains.
	if err := fs.Parse(fs.Args()[1:]); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("usage: tsfctl create FILE --input-file CSV")
	}
	if *inputFile == "" {
		return fmt.Errorf("--input-file is required")
	}

	in, err := os.Open(*inputFile)
	if err != nil {
		return err
	}
	defer in.Close()

	cols, err := ingest.ParseCSV(in)
	if err != nil {
		return err
	}

	w, err := writer.Open(outPath)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.AddColumnHeader("metric_time", format.Int32, format.EncodingNone, format.CompressionNone, format.NoneMeta(), true); err != nil {
		return err
	}
	if err := w.AddColumnHeader("temperature", format.Int8, format.EncodingNone, format.CompressionNone, format.NoneMeta(), false); err != nil {
		return err
	}
	if err := w.AddColumnData(cols.TimestampVec()); err != nil {
		return err
	}
	if err := w.AddColumnData(cols.TemperatureVec()); err != nil {
		return err
	}

	start, end := cols.DateRange()
	if err := w.UpdateSegmentDates(start, end); err != nil {
		return err
	}

	return w.TrySave()
}

func runRead(args []string) error {
	fs := flag.NewFlagSet("read", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: tsfctl read FILE")
	}

	r, err := reader.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	if err := r.ReadAll(); err != nil {
		return err
	}

	fmt.Printf("rows=%d columns=%d\n", r.RowCount(), r.ColumnCount())
	for i := range r.ColumnCount() {
		fmt.Printf("  column[%d]=%s\n", i, r.ColumnName(i))
	}
	return nil
}

// runStream backs both the stream and astream subcommands: both reduce to
// the same full-column scan, and there is no separate async I/O
// implementation, so one code path serves them.
func runStream(args []string) error {
	fs := flag.NewFlagSet("stream", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: tsfctl stream FILE")
	}

	r, err := reader.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	if err := r.ReadAll(); err != nil {
		return err
	}

	scan := exec.NewScan(r)
	for row := range scan.Rows() {
		parts := make([]string, len(row.Values))
		for i, v := range row.Values {
			parts[i] = v.RenderText()
		}
		fmt.Println(strings.Join(parts, ","))
	}
	return nil
}
