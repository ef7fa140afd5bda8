// pkg/connector/importer.go
package connector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gamemetrics/ps-sales/pkg/model"
)

// gameColumns is the column order used for batch inserts into video_games.
var gameColumns = []string{
	"name", "platform", "year_of_release", "genre", "publisher",
	"na_sales", "eu_sales", "jp_sales", "other_sales", "global_sales",
	"critic_score", "critic_count", "user_score", "user_count",
	"developer", "esrb_rating", "import_run_id",
}

const createGamesTableSQL = `
	CREATE TABLE IF NOT EXISTS public.video_games (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		platform TEXT NOT NULL,
		year_of_release BIGINT NOT NULL,
		genre TEXT NOT NULL,
		publisher TEXT,
		na_sales DOUBLE PRECISION,
		eu_sales DOUBLE PRECISION,
		jp_sales DOUBLE PRECISION,
		other_sales DOUBLE PRECISION,
		global_sales DOUBLE PRECISION NOT NULL,
		critic_score DOUBLE PRECISION,
		critic_count BIGINT,
		user_score DOUBLE PRECISION,
		user_count BIGINT,
		developer TEXT,
		esrb_rating TEXT,
		import_run_id TEXT NOT NULL
	)
`

const createRunsTableSQL = `
	CREATE TABLE IF NOT EXISTS public.import_runs (
		run_id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		rows_imported BIGINT NOT NULL,
		imported_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	)
`

// Importer writes a cleaned dataset into the relational store. Each run is
// tagged with a generated id and recorded in import_runs so repeated loads
// stay distinguishable.
type Importer struct {
	conn      *PostgresConnector
	logger    *zap.Logger
	batchSize int
}

// NewImporter creates an Importer over an open connector. A non-positive
// batch size falls back to 1000 rows per insert.
func NewImporter(conn *PostgresConnector, batchSize int) *Importer {
	if batchSize <= 0 {
		batchSize = 1000
	}
	return &Importer{
		conn:      conn,
		logger:    zap.L().Named("importer"),
		batchSize: batchSize,
	}
}

// Import inserts every record of the dataset and records the run. It
// returns the generated run id.
func (im *Importer) Import(ctx context.Context, ds *model.CleanedDataset, source string) (string, error) {
	if err := im.ensureTables(ctx); err != nil {
		return "", err
	}

	runID := uuid.New().String()
	records := ds.Records()

	var totalInserted int64
	for start := 0; start < len(records); start += im.batchSize {
		end := start + im.batchSize
		if end > len(records) {
			end = len(records)
		}

		inserted, err := im.insertBatch(ctx, records[start:end], runID)
		if err != nil {
			return "", fmt.Errorf("batch insert failed at row %d: %w", start, err)
		}
		totalInserted += inserted
	}

	_, err := im.conn.ExecWithTimeout(ctx, `
		INSERT INTO public.import_runs (run_id, source, rows_imported)
		VALUES ($1, $2, $3)
	`, 30*time.Second, runID, source, totalInserted)
	if err != nil {
		return "", fmt.Errorf("failed to record import run: %w", err)
	}

	im.logger.Info("Imported cleaned dataset",
		zap.String("run_id", runID),
		zap.String("source", source),
		zap.Int64("rows", totalInserted))

	return runID, nil
}

// ensureTables creates the target and tracking tables if they are absent.
func (im *Importer) ensureTables(ctx context.Context) error {
	for _, stmt := range []string{createGamesTableSQL, createRunsTableSQL} {
		if _, err := im.conn.ExecWithTimeout(ctx, stmt, 30*time.Second); err != nil {
			return fmt.Errorf("failed to ensure import tables: %w", err)
		}
	}
	return nil
}

// insertBatch inserts one slice of records with positional placeholders.
func (im *Importer) insertBatch(ctx context.Context, records []model.GameRecord, runID string) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	placeholders := make([]string, len(records))
	args := make([]interface{}, 0, len(records)*len(gameColumns))

	for i, rec := range records {
		rowPlaceholders := make([]string, len(gameColumns))
		rowArgs := []interface{}{
			rec.Name, rec.Platform, rec.YearOfRelease, rec.Genre, rec.Publisher,
			rec.NASales, rec.EUSales, rec.JPSales, rec.OtherSales, rec.GlobalSales,
			rec.CriticScore, rec.CriticCount, rec.UserScore, rec.UserCount,
			rec.Developer, rec.Rating, runID,
		}
		for j := range rowPlaceholders {
			rowPlaceholders[j] = fmt.Sprintf("$%d", i*len(gameColumns)+j+1)
		}
		placeholders[i] = fmt.Sprintf("(%s)", strings.Join(rowPlaceholders, ", "))
		args = append(args, rowArgs...)
	}

	query := fmt.Sprintf("INSERT INTO public.video_games (%s) VALUES %s",
		strings.Join(gameColumns, ", "), strings.Join(placeholders, ", "))

	result, err := im.conn.ExecWithTimeout(ctx, query, 30*time.Second, args...)
	if err != nil {
		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		im.logger.Warn("Couldn't get rows affected", zap.Error(err))
		return int64(len(records)), nil
	}
	return rowsAffected, nil
}
