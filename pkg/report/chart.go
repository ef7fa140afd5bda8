// pkg/report/chart.go
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gamemetrics/ps-sales/pkg/analysis"
)

// Bar is one labeled value in a bar chart. Order is significant: bars are
// drawn left to right as given.
type Bar struct {
	Label string
	Value float64
}

// GenreBars converts a genre totals result into chart bars, preserving the
// query's descending-sales order.
func GenreBars(rows []analysis.GenreSales) []Bar {
	bars := make([]Bar, 0, len(rows))
	for _, r := range rows {
		bars = append(bars, Bar{Label: r.Genre, Value: r.TotalSales})
	}
	return bars
}

// SaveBarChart renders bars as a vertical bar chart PNG at path, creating
// parent directories as needed. An empty bar list renders an empty chart
// rather than failing.
func SaveBarChart(bars []Bar, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Global Sales (millions)"

	values := make(plotter.Values, len(bars))
	labels := make([]string, len(bars))
	for i, b := range bars {
		values[i] = b.Value
		labels[i] = b.Label
	}

	chart, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return fmt.Errorf("building bar chart: %w", err)
	}
	chart.LineStyle.Width = vg.Length(0)
	p.Add(chart)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.9
	p.X.Tick.Label.XAlign = -0.9
	p.X.Tick.Label.YAlign = -0.4

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating chart directory: %w", err)
		}
	}

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	return nil
}
