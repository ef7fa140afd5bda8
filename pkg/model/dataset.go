// pkg/model/dataset.go
package model

// CleanedDataset is an ordered sequence of game records after the full
// cleaning chain. It is immutable once built: every record has a valid
// year and a positive global sales figure, text fields are trimmed, and
// no two records are exact duplicates.
type CleanedDataset struct {
	records []GameRecord
}

// NewCleanedDataset copies records into a new dataset so later mutation of
// the input slice cannot alias into it.
func NewCleanedDataset(records []GameRecord) *CleanedDataset {
	out := make([]GameRecord, len(records))
	copy(out, records)
	return &CleanedDataset{records: out}
}

// Len returns the number of cleaned records.
func (d *CleanedDataset) Len() int {
	return len(d.records)
}

// Records returns a copy of the cleaned rows in stable source order.
func (d *CleanedDataset) Records() []GameRecord {
	out := make([]GameRecord, len(d.records))
	copy(out, d.records)
	return out
}
