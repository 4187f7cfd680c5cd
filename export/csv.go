package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pevans/pressroom/pressitem"
)

// DefaultDelimiter separates fields in the exported file.
const DefaultDelimiter = ';'

// WriteError describes a failure to write the export file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Observer receives the outcome of a write.
type Observer interface {
	Written(path string, count int)
	WriteFailed(path string, err error)
}

type nopObserver struct{}

func (nopObserver) Written(string, int)       {}
func (nopObserver) WriteFailed(string, error) {}

// CSVWriter writes records to a delimited file with a Title, Link, Date,
// Source header row.
type CSVWriter struct {
	path      string
	delimiter rune
	observer  Observer
}

// NewCSVWriter creates a writer for path. The file is replaced on every
// Write.
func NewCSVWriter(path string, observer Observer) *CSVWriter {
	if observer == nil {
		observer = nopObserver{}
	}
	return &CSVWriter{
		path:      path,
		delimiter: DefaultDelimiter,
		observer:  observer,
	}
}

// Path returns the output file path.
func (w *CSVWriter) Path() string {
	return w.path
}

// Write replaces the output file with records. Failures are reported to the
// observer and returned as a *WriteError.
func (w *CSVWriter) Write(records []pressitem.Record) error {
	if err := w.write(records); err != nil {
		werr := &WriteError{Path: w.path, Err: err}
		w.observer.WriteFailed(w.path, werr)
		return werr
	}

	w.observer.Written(w.path, len(records))
	return nil
}

func (w *CSVWriter) write(records []pressitem.Record) error {
	// 0644: the export is meant to be shared
	file, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}

	out := csv.NewWriter(file)
	out.Comma = w.delimiter

	if err := gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(out)); err != nil {
		file.Close()
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
