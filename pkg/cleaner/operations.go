// pkg/cleaner/operations.go
package cleaner

import (
	"database/sql"
	"strconv"
	"strings"
)

// CoercionNote records a single field whose raw value could not be parsed
// as a number and became a missing marker instead. Notes are collected for
// the audit log; they never escalate to an error and never drop a row.
type CoercionNote struct {
	Row    int    // zero-based index into the raw table
	Column string // source column name
	Value  string // original raw value
	Reason string
}

// isMissingSentinel reports whether a trimmed raw value is one of the
// dataset's placeholders for an absent number.
func isMissingSentinel(s string) bool {
	return s == "" || s == "N/A" || s == "tbd"
}

// parseFloat converts a raw field to a nullable float. ok is false only
// when a value was present but unparseable, which callers record as a
// coercion note.
func parseFloat(raw string) (v sql.NullFloat64, ok bool) {
	s := strings.TrimSpace(raw)
	if isMissingSentinel(s) {
		return sql.NullFloat64{}, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sql.NullFloat64{}, false
	}
	return sql.NullFloat64{Float64: f, Valid: true}, true
}

// parseInt converts a raw field to a nullable integer. Year and count
// columns sometimes carry a float rendering like "2004.0", so an integral
// float is accepted too.
func parseInt(raw string) (v sql.NullInt64, ok bool) {
	s := strings.TrimSpace(raw)
	if isMissingSentinel(s) {
		return sql.NullInt64{}, true
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return sql.NullInt64{Int64: i, Valid: true}, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return sql.NullInt64{Int64: int64(f), Valid: true}, true
	}
	return sql.NullInt64{}, false
}

// parseText converts a raw optional text field, treating a blank value as
// missing. The value itself is passed through untrimmed; trimming is a
// separate normalization stage.
func parseText(raw string) sql.NullString {
	if strings.TrimSpace(raw) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: raw, Valid: true}
}

// coerceFloat wraps parseFloat and appends a note on failure.
func coerceFloat(raw string, row int, column string, notes *[]CoercionNote) sql.NullFloat64 {
	v, ok := parseFloat(raw)
	if !ok {
		*notes = append(*notes, CoercionNote{Row: row, Column: column, Value: raw, Reason: "not numeric"})
	}
	return v
}

// coerceInt wraps parseInt and appends a note on failure.
func coerceInt(raw string, row int, column string, notes *[]CoercionNote) sql.NullInt64 {
	v, ok := parseInt(raw)
	if !ok {
		*notes = append(*notes, CoercionNote{Row: row, Column: column, Value: raw, Reason: "not an integer"})
	}
	return v
}
