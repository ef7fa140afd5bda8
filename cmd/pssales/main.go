// cmd/pssales/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gamemetrics/ps-sales/pkg/analysis"
	"github.com/gamemetrics/ps-sales/pkg/cleaner"
	"github.com/gamemetrics/ps-sales/pkg/config"
	"github.com/gamemetrics/ps-sales/pkg/connector"
	"github.com/gamemetrics/ps-sales/pkg/loader"
	"github.com/gamemetrics/ps-sales/pkg/logging"
	"github.com/gamemetrics/ps-sales/pkg/report"
)

func main() {
	source := flag.String("source", "", "path to the sales CSV (overrides SOURCE_CSV)")
	prefix := flag.String("platform-prefix", "", "platform code prefix filter (overrides PLATFORM_PREFIX)")
	flag.Parse()

	// A missing .env file is fine; configuration falls back to defaults.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}
	if *source != "" {
		cfg.SourcePath = *source
	}
	if *prefix != "" {
		cfg.PlatformPrefix = *prefix
	}

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger setup failed:", err)
		os.Exit(1)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Run failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	table, err := loader.Load(cfg.SourcePath)
	if err != nil {
		return err
	}

	dataset, stats := cleaner.New(cfg.PlatformPrefix, logger).Clean(table)
	if stats.RowsOut == 0 {
		logger.Warn("No rows matched the platform filter; results will be empty",
			zap.String("platform_prefix", cfg.PlatformPrefix))
	}

	genres := analysis.GenreTotals(dataset)

	results := []struct {
		title string
		file  string
		table report.Table
	}{
		{
			fmt.Sprintf("Top %d games by global sales", cfg.TopGames),
			"top_games.csv",
			report.TopGamesTable(analysis.TopNBySales(dataset, cfg.TopGames)),
		},
		{
			"Global sales by year",
			"yearly_trend.csv",
			report.YearlyTrendTable(analysis.YearlyTrend(dataset)),
		},
		{
			"Global sales by genre",
			"genre_totals.csv",
			report.GenreTotalsTable(genres),
		},
		{
			"Critic score vs global sales",
			"critic_vs_sales.csv",
			report.CriticSummaryTable(analysis.CriticVsSalesAverage(dataset)),
		},
		{
			fmt.Sprintf("Top %d publishers by global sales", cfg.TopPublishers),
			"publisher_totals.csv",
			report.PublisherTotalsTable(analysis.PublisherTotals(dataset, cfg.TopPublishers)),
		},
	}

	for _, res := range results {
		if err := report.WriteConsole(os.Stdout, res.title, res.table); err != nil {
			return fmt.Errorf("printing %q: %w", res.title, err)
		}
		if cfg.ReportDir != "" {
			path := filepath.Join(cfg.ReportDir, res.file)
			if err := report.ExportCSV(path, res.table); err != nil {
				return fmt.Errorf("exporting %q: %w", res.title, err)
			}
			logger.Info("Exported result table", zap.String("path", path))
		}
	}

	title := fmt.Sprintf("Total Global Sales per Genre (%s platforms)", cfg.PlatformPrefix)
	if err := report.SaveBarChart(report.GenreBars(genres), title, cfg.ChartPath); err != nil {
		return err
	}
	logger.Info("Saved genre sales chart", zap.String("path", cfg.ChartPath))

	if cfg.ImportEnabled {
		ctx := context.Background()
		conn, err := connector.NewPostgresConnector(ctx, cfg.Postgres)
		if err != nil {
			return err
		}
		defer conn.Close()

		if _, err := connector.NewImporter(conn, cfg.Postgres.BatchSize).Import(ctx, dataset, cfg.SourcePath); err != nil {
			return err
		}
	}

	return nil
}
