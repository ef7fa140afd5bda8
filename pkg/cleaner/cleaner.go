// pkg/cleaner/cleaner.go
package cleaner

import (
	"strings"

	"go.uber.org/zap"

	"github.com/gamemetrics/ps-sales/pkg/loader"
	"github.com/gamemetrics/ps-sales/pkg/model"
)

// DefaultPlatformPrefix selects PlayStation-family platform codes. The
// match is a literal prefix test, so PS, PS2, PS3, PS4, PSP and PSV all
// qualify and nothing else does.
const DefaultPlatformPrefix = "PS"

// Stats summarizes what each cleaning stage did to the table.
type Stats struct {
	RowsIn            int
	CoercionNotes     int
	InvalidDropped    int
	DuplicatesDropped int
	PlatformDropped   int
	RowsOut           int
}

// Cleaner runs the full cleaning chain over a raw table: type coercion,
// row validation, text normalization with deduplication, then the platform
// prefix filter. Each stage is a pure pass over its input; re-running the
// chain on the same source yields an identical dataset.
type Cleaner struct {
	platformPrefix string
	logger         *zap.Logger
}

// New creates a Cleaner. An empty prefix falls back to the PlayStation
// default and a nil logger falls back to the global one.
func New(platformPrefix string, logger *zap.Logger) *Cleaner {
	if platformPrefix == "" {
		platformPrefix = DefaultPlatformPrefix
	}
	if logger == nil {
		logger = zap.L()
	}
	return &Cleaner{
		platformPrefix: platformPrefix,
		logger:         logger.Named("cleaner"),
	}
}

// Clean transforms a raw table into a cleaned dataset and reports per-stage
// counts. Row-level data problems are absorbed here; Clean itself cannot
// fail.
func (c *Cleaner) Clean(table *loader.RawTable) (*model.CleanedDataset, Stats) {
	typed, notes := CoerceTypes(table.Rows)
	valid := FilterValid(typed)
	normalized := NormalizeText(valid)
	filtered := FilterPlatform(normalized, c.platformPrefix)

	stats := Stats{
		RowsIn:            len(table.Rows),
		CoercionNotes:     len(notes),
		InvalidDropped:    len(typed) - len(valid),
		DuplicatesDropped: len(valid) - len(normalized),
		PlatformDropped:   len(normalized) - len(filtered),
		RowsOut:           len(filtered),
	}

	for _, note := range notes {
		c.logger.Debug("Coercion skipped",
			zap.Int("row", note.Row),
			zap.String("column", note.Column),
			zap.String("value", note.Value),
			zap.String("reason", note.Reason))
	}

	c.logger.Info("Cleaned source table",
		zap.String("source", table.Source),
		zap.String("platform_prefix", c.platformPrefix),
		zap.Int("rows_in", stats.RowsIn),
		zap.Int("coercion_notes", stats.CoercionNotes),
		zap.Int("invalid_dropped", stats.InvalidDropped),
		zap.Int("duplicates_dropped", stats.DuplicatesDropped),
		zap.Int("platform_dropped", stats.PlatformDropped),
		zap.Int("rows_out", stats.RowsOut))

	return model.NewCleanedDataset(filtered), stats
}

// CoerceTypes converts every raw row to a typed record. A value that fails
// numeric parsing becomes a missing marker, never a fabricated zero and
// never an error; rows are always retained. Text columns pass through
// untrimmed.
func CoerceTypes(rows []loader.RawRecord) ([]model.GameRecord, []CoercionNote) {
	records := make([]model.GameRecord, 0, len(rows))
	var notes []CoercionNote

	for i, raw := range rows {
		rec := model.GameRecord{
			Name:      raw.Name,
			Platform:  raw.Platform,
			Genre:     raw.Genre,
			Publisher: parseText(raw.Publisher),
			Developer: parseText(raw.Developer),
			Rating:    parseText(raw.Rating),
		}
		rec.YearOfRelease = coerceInt(raw.YearOfRelease, i, "Year_of_Release", &notes)
		rec.NASales = coerceFloat(raw.NASales, i, "NA_Sales", &notes)
		rec.EUSales = coerceFloat(raw.EUSales, i, "EU_Sales", &notes)
		rec.JPSales = coerceFloat(raw.JPSales, i, "JP_Sales", &notes)
		rec.OtherSales = coerceFloat(raw.OtherSales, i, "Other_Sales", &notes)
		rec.GlobalSales = coerceFloat(raw.GlobalSales, i, "Global_Sales", &notes)
		rec.CriticScore = coerceFloat(raw.CriticScore, i, "Critic_Score", &notes)
		rec.CriticCount = coerceInt(raw.CriticCount, i, "Critic_Count", &notes)
		rec.UserScore = coerceFloat(raw.UserScore, i, "User_Score", &notes)
		rec.UserCount = coerceInt(raw.UserCount, i, "User_Count", &notes)

		records = append(records, rec)
	}

	return records, notes
}

// FilterValid drops rows that carry no analytical signal: missing release
// year, missing global sales, or zero global sales. Retained rows are
// unchanged.
func FilterValid(records []model.GameRecord) []model.GameRecord {
	kept := make([]model.GameRecord, 0, len(records))
	for _, rec := range records {
		if !rec.YearOfRelease.Valid || !rec.GlobalSales.Valid || rec.GlobalSales.Float64 == 0 {
			continue
		}
		kept = append(kept, rec)
	}
	return kept
}

// NormalizeText trims leading and trailing whitespace from the name,
// platform, genre, publisher and developer columns, then removes rows that
// are exact duplicates of an earlier row across every field. The first
// occurrence wins and the original order is preserved.
func NormalizeText(records []model.GameRecord) []model.GameRecord {
	out := make([]model.GameRecord, 0, len(records))
	seen := make(map[model.GameRecord]struct{}, len(records))

	for _, rec := range records {
		rec.Name = strings.TrimSpace(rec.Name)
		rec.Platform = strings.TrimSpace(rec.Platform)
		rec.Genre = strings.TrimSpace(rec.Genre)
		if rec.Publisher.Valid {
			rec.Publisher.String = strings.TrimSpace(rec.Publisher.String)
		}
		if rec.Developer.Valid {
			rec.Developer.String = strings.TrimSpace(rec.Developer.String)
		}

		if _, dup := seen[rec]; dup {
			continue
		}
		seen[rec] = struct{}{}
		out = append(out, rec)
	}

	return out
}

// FilterPlatform retains rows whose platform code starts with prefix. The
// comparison is literal and case-sensitive: a code stored as "ps2" does not
// match "PS". An empty platform never matches.
func FilterPlatform(records []model.GameRecord, prefix string) []model.GameRecord {
	kept := make([]model.GameRecord, 0, len(records))
	for _, rec := range records {
		if rec.Platform == "" {
			continue
		}
		if !strings.HasPrefix(rec.Platform, prefix) {
			continue
		}
		kept = append(kept, rec)
	}
	return kept
}
