// Package csv provides a CSV-file implementation of harvest.RecordSink.
package csv

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/harvestkit/harvest"
)

// Ensure Writer implements harvest.RecordSink at compile time.
var _ harvest.RecordSink = (*Writer)(nil)

// Writer writes the final record set to a CSV file: one header row with the
// schema's field names, then one row per record in acceptance order.
type Writer struct {
	path string
}

// NewWriter creates a Writer that writes to the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteRecords writes all records to the configured file, replacing any
// previous content.
func (w *Writer) WriteRecords(ctx context.Context, schema harvest.Schema, records []*harvest.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(w.path)
	if err != nil {
		return err
	}

	if err := Encode(f, schema, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes the header row and record rows to w, fields in the schema's
// declared order.
func Encode(w io.Writer, schema harvest.Schema, records []*harvest.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(schema.FieldNames()); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec.Row(schema)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
