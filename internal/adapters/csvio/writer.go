package csvio

import (
	"encoding/csv"
	"io"
	"os"

	"vaultdedup/internal/core/domain"
	"vaultdedup/internal/platform/errors"
	"vaultdedup/internal/platform/logx"
)

// Writer emits records back to CSV under the original header, so the
// output stays loadable by the tool that produced the input.
type Writer struct {
	logger logx.Logger
}

// NewWriter creates a writer.
func NewWriter(logger logx.Logger) *Writer {
	return &Writer{logger: logger.With("component", "csv-writer")}
}

// WriteFile writes the surviving records followed by the passthrough
// records to path, creating or truncating it.
func (w *Writer) WriteFile(path string, header []string, kept, passthrough []domain.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(errors.ErrUnwritableOutput, "create %s: %v", path, err)
	}

	if err := w.Write(f, header, kept, passthrough); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(errors.ErrUnwritableOutput, "close %s: %v", path, err)
	}

	w.logger.Debug("export written",
		"file", path,
		"kept", len(kept),
		"passthrough", len(passthrough),
	)
	return nil
}

// Write emits the header and then every record row, columns in header
// order. Columns a record does not carry come out empty.
func (w *Writer) Write(dst io.Writer, header []string, kept, passthrough []domain.Record) error {
	cw := csv.NewWriter(dst)

	if err := cw.Write(header); err != nil {
		return errors.Wrapf(errors.ErrUnwritableOutput, "write header: %v", err)
	}
	for _, rec := range kept {
		if err := cw.Write(recordToRow(header, rec)); err != nil {
			return errors.Wrapf(errors.ErrUnwritableOutput, "write row: %v", err)
		}
	}
	for _, rec := range passthrough {
		if err := cw.Write(recordToRow(header, rec)); err != nil {
			return errors.Wrapf(errors.ErrUnwritableOutput, "write row: %v", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrapf(errors.ErrUnwritableOutput, "flush: %v", err)
	}
	return nil
}

func recordToRow(header []string, rec domain.Record) []string {
	row := make([]string, len(header))
	for i, col := range header {
		row[i] = rec.Get(col)
	}
	return row
}
