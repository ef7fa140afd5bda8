// pkg/report/table.go
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/gamemetrics/ps-sales/pkg/analysis"
)

// Table is an ordered tabular result ready for printing or export. The
// analysis layer hands back typed rows; the builders below flatten them to
// strings so any writer can consume them.
type Table struct {
	Header []string
	Rows   [][]string
}

// formatSales renders a sales figure in millions with two decimals.
func formatSales(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// TopGamesTable flattens a top-games result.
func TopGamesTable(rows []analysis.GameSales) Table {
	t := Table{Header: []string{"Name", "Platform", "Global_Sales"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Name, r.Platform, formatSales(r.TotalSales)})
	}
	return t
}

// YearlyTrendTable flattens a yearly trend result.
func YearlyTrendTable(rows []analysis.YearSales) Table {
	t := Table{Header: []string{"Year_of_Release", "Global_Sales"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{strconv.Itoa(r.Year), formatSales(r.TotalSales)})
	}
	return t
}

// GenreTotalsTable flattens a genre totals result.
func GenreTotalsTable(rows []analysis.GenreSales) Table {
	t := Table{Header: []string{"Genre", "Global_Sales"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Genre, formatSales(r.TotalSales)})
	}
	return t
}

// PublisherTotalsTable flattens a publisher totals result.
func PublisherTotalsTable(rows []analysis.PublisherSales) Table {
	t := Table{Header: []string{"Publisher", "Global_Sales"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Publisher, formatSales(r.TotalSales)})
	}
	return t
}

// CriticSummaryTable renders the critic-score/sales averages as a one-row
// table. A zero sample produces a table with no rows.
func CriticSummaryTable(s analysis.CriticSalesSummary) Table {
	t := Table{Header: []string{"Avg_Critic_Score", "Avg_Global_Sales", "Sample_Size"}}
	if s.SampleSize == 0 {
		return t
	}
	t.Rows = append(t.Rows, []string{
		strconv.FormatFloat(s.AvgCriticScore, 'f', 2, 64),
		formatSales(s.AvgGlobalSales),
		strconv.Itoa(s.SampleSize),
	})
	return t
}

// WriteConsole prints a titled, column-aligned table to w.
func WriteConsole(w io.Writer, title string, t Table) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", title); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	writeRow := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, f)
		}
		fmt.Fprintln(tw)
	}

	writeRow(t.Header)
	for _, row := range t.Rows {
		writeRow(row)
	}
	if len(t.Rows) == 0 {
		fmt.Fprintln(tw, "(no rows)")
	}
	return tw.Flush()
}

// WriteCSV writes a table as delimited text to w.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes a table to path, creating parent directories as needed.
func ExportCSV(path string, t Table) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, t); err != nil {
		return err
	}
	return f.Close()
}
