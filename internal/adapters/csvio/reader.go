// Package csvio reads and writes vault CSV exports, splitting credential
// records from passthrough rows and preserving every column verbatim.
package csvio

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"vaultdedup/internal/core/domain"
	"vaultdedup/internal/platform/errors"
	"vaultdedup/internal/platform/logx"
)

// ParsedExport is the result of reading one export file: the header in
// its original column order, the record split, and the read-time counts
// the report needs.
type ParsedExport struct {
	Header      []string
	Logins      []domain.Record
	Passthrough []domain.Record
	EmptyFolder int
	EmptyURI    int
}

// TotalRecords is the number of data rows read, header excluded.
func (p *ParsedExport) TotalRecords() int {
	return len(p.Logins) + len(p.Passthrough)
}

// Reader parses vault CSV exports into records.
type Reader struct {
	logger logx.Logger
}

// NewReader creates a reader.
func NewReader(logger logx.Logger) *Reader {
	return &Reader{logger: logger.With("component", "csv-reader")}
}

// ReadFile opens and parses an export file.
func (r *Reader) ReadFile(path string) (*ParsedExport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrUnreadableInput, "open %s: %v", path, err)
	}
	defer f.Close()

	parsed, err := r.Read(f)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("export read",
		"file", path,
		"logins", len(parsed.Logins),
		"passthrough", len(parsed.Passthrough),
	)
	return parsed, nil
}

// Read parses an export from a stream. The header row is validated
// against the required columns before any data row is touched; rows may
// carry extra columns, which survive the round trip untouched.
func (r *Reader) Read(src io.Reader) (*ParsedExport, error) {
	rd := csv.NewReader(src)
	rd.FieldsPerRecord = -1

	header, err := rd.Read()
	if err == io.EOF {
		return nil, errors.Wrap(errors.ErrUnreadableInput, "export has no header row")
	}
	if err != nil {
		return nil, errors.Wrapf(errors.ErrUnreadableInput, "read header: %v", err)
	}

	if missing := missingColumns(header); len(missing) > 0 {
		return nil, errors.Wrapf(errors.ErrMissingColumn, "%s", strings.Join(missing, ", "))
	}

	parsed := &ParsedExport{Header: header}
	for {
		row, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(errors.ErrUnreadableInput, "read row: %v", err)
		}

		rec := rowToRecord(header, row)
		if !rec.IsLogin() {
			parsed.Passthrough = append(parsed.Passthrough, rec)
			continue
		}
		if rec.Folder() == "" {
			parsed.EmptyFolder++
		}
		if !rec.HasURI() {
			parsed.EmptyURI++
		}
		parsed.Logins = append(parsed.Logins, rec)
	}

	return parsed, nil
}

// rowToRecord maps a data row onto the header. Short rows leave the
// trailing columns empty, which the engine treats the same as "".
func rowToRecord(header, row []string) domain.Record {
	fields := make(map[string]string, len(header))
	for i, col := range header {
		if i < len(row) {
			fields[col] = row[i]
		}
	}
	return domain.NewRecord(fields)
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}
	var missing []string
	for _, col := range domain.RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}
