// Package domain holds the value types of the deduplication engine:
// records, grouping keys, groups and the run report.
package domain

// Canonical column names of a vault CSV export. Exports may carry more
// columns; these are the ones the engine reads.
const (
	ColName     = "name"
	ColURI      = "login_uri"
	ColUsername = "login_username"
	ColPassword = "login_password"
	ColTOTP     = "login_totp"
	ColNotes    = "notes"
	ColFolder   = "folder"
	ColType     = "type"
)

// TypeLogin marks credential records, the only kind subject to
// deduplication. Every other type is passed through untouched.
const TypeLogin = "login"

// RequiredColumns must all be present in the input header before any
// processing starts.
var RequiredColumns = []string{
	ColName,
	ColURI,
	ColUsername,
	ColPassword,
	ColTOTP,
	ColNotes,
	ColFolder,
	ColType,
}

// Record is one row of the export, as a mapping of column name to value.
// Records are immutable values: every modification goes through With,
// which returns a fresh copy. A missing field and an empty field are the
// same thing everywhere in the engine.
type Record struct {
	fields map[string]string
}

// NewRecord builds a record from a column->value mapping. The map is
// copied, so the caller keeps ownership of its argument.
func NewRecord(fields map[string]string) Record {
	cp := make(map[string]string, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return Record{fields: cp}
}

// Get returns the value of a column, or "" when the column is absent.
func (r Record) Get(column string) string {
	return r.fields[column]
}

// With returns a copy of the record with one column changed.
func (r Record) With(column, value string) Record {
	cp := make(map[string]string, len(r.fields)+1)
	for k, v := range r.fields {
		cp[k] = v
	}
	cp[column] = value
	return Record{fields: cp}
}

// Columns reports how many columns the record carries.
func (r Record) Columns() int {
	return len(r.fields)
}

// Typed accessors for the columns the engine cares about.

func (r Record) Name() string     { return r.fields[ColName] }
func (r Record) URI() string      { return r.fields[ColURI] }
func (r Record) Username() string { return r.fields[ColUsername] }
func (r Record) Password() string { return r.fields[ColPassword] }
func (r Record) TOTP() string     { return r.fields[ColTOTP] }
func (r Record) Notes() string    { return r.fields[ColNotes] }
func (r Record) Folder() string   { return r.fields[ColFolder] }
func (r Record) Type() string     { return r.fields[ColType] }

// IsLogin reports whether this is a credential record.
func (r Record) IsLogin() bool { return r.Type() == TypeLogin }

func (r Record) HasURI() bool   { return r.URI() != "" }
func (r Record) HasTOTP() bool  { return r.TOTP() != "" }
func (r Record) HasNotes() bool { return r.Notes() != "" }

// Equal reports field-wise equality of two records.
func (r Record) Equal(other Record) bool {
	if len(r.fields) != len(other.fields) {
		return false
	}
	for k, v := range r.fields {
		if other.fields[k] != v {
			return false
		}
	}
	return true
}
