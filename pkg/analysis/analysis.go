// pkg/analysis/analysis.go
package analysis

import (
	"sort"

	"github.com/gamemetrics/ps-sales/pkg/model"
)

// GameSales is the summed global sales for one (name, platform) group.
type GameSales struct {
	Name       string
	Platform   string
	TotalSales float64
}

// YearSales is the summed global sales for one release year.
type YearSales struct {
	Year       int
	TotalSales float64
}

// GenreSales is the summed global sales for one genre.
type GenreSales struct {
	Genre      string
	TotalSales float64
}

// PublisherSales is the summed global sales for one publisher.
type PublisherSales struct {
	Publisher  string
	TotalSales float64
}

// CriticSalesSummary pairs the mean critic score with the mean global
// sales over the same row subset: rows with a known critic score.
type CriticSalesSummary struct {
	AvgCriticScore float64
	AvgGlobalSales float64
	SampleSize     int
}

// TopNBySales groups the dataset by (name, platform), sums global sales
// per group and returns the first n groups ordered descending by total.
// Ties break ascending by name, then platform, so the result is
// deterministic. A negative n returns every group.
func TopNBySales(ds *model.CleanedDataset, n int) []GameSales {
	type key struct {
		name, platform string
	}
	totals := make(map[key]float64)
	order := make([]key, 0)

	for _, rec := range ds.Records() {
		k := key{rec.Name, rec.Platform}
		if _, ok := totals[k]; !ok {
			order = append(order, k)
		}
		totals[k] += rec.GlobalSales.Float64
	}

	results := make([]GameSales, 0, len(order))
	for _, k := range order {
		results = append(results, GameSales{Name: k.name, Platform: k.platform, TotalSales: totals[k]})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalSales != results[j].TotalSales {
			return results[i].TotalSales > results[j].TotalSales
		}
		if results[i].Name != results[j].Name {
			return results[i].Name < results[j].Name
		}
		return results[i].Platform < results[j].Platform
	})

	if n >= 0 && len(results) > n {
		results = results[:n]
	}
	return results
}

// YearlyTrend sums global sales per release year, ordered ascending by
// year.
func YearlyTrend(ds *model.CleanedDataset) []YearSales {
	totals := make(map[int]float64)
	order := make([]int, 0)

	for _, rec := range ds.Records() {
		year := int(rec.YearOfRelease.Int64)
		if _, ok := totals[year]; !ok {
			order = append(order, year)
		}
		totals[year] += rec.GlobalSales.Float64
	}

	results := make([]YearSales, 0, len(order))
	for _, year := range order {
		results = append(results, YearSales{Year: year, TotalSales: totals[year]})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Year < results[j].Year })
	return results
}

// GenreTotals sums global sales per genre, ordered descending by total
// with ties broken ascending by genre.
func GenreTotals(ds *model.CleanedDataset) []GenreSales {
	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, rec := range ds.Records() {
		if _, ok := totals[rec.Genre]; !ok {
			order = append(order, rec.Genre)
		}
		totals[rec.Genre] += rec.GlobalSales.Float64
	}

	results := make([]GenreSales, 0, len(order))
	for _, genre := range order {
		results = append(results, GenreSales{Genre: genre, TotalSales: totals[genre]})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalSales != results[j].TotalSales {
			return results[i].TotalSales > results[j].TotalSales
		}
		return results[i].Genre < results[j].Genre
	})
	return results
}

// CriticVsSalesAverage restricts the dataset to rows with a known critic
// score and averages both critic score and global sales over that single
// subset. An empty subset yields a zero-value summary, not an error.
func CriticVsSalesAverage(ds *model.CleanedDataset) CriticSalesSummary {
	var sumScore, sumSales float64
	var count int

	for _, rec := range ds.Records() {
		if !rec.CriticScore.Valid {
			continue
		}
		sumScore += rec.CriticScore.Float64
		sumSales += rec.GlobalSales.Float64
		count++
	}

	if count == 0 {
		return CriticSalesSummary{}
	}
	return CriticSalesSummary{
		AvgCriticScore: sumScore / float64(count),
		AvgGlobalSales: sumSales / float64(count),
		SampleSize:     count,
	}
}

// PublisherTotals sums global sales per publisher, excluding rows with a
// missing publisher, ordered descending by total with ties broken
// ascending by publisher. The first n groups are returned; a negative n
// returns every group.
func PublisherTotals(ds *model.CleanedDataset, n int) []PublisherSales {
	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, rec := range ds.Records() {
		if !rec.Publisher.Valid {
			continue
		}
		pub := rec.Publisher.String
		if _, ok := totals[pub]; !ok {
			order = append(order, pub)
		}
		totals[pub] += rec.GlobalSales.Float64
	}

	results := make([]PublisherSales, 0, len(order))
	for _, pub := range order {
		results = append(results, PublisherSales{Publisher: pub, TotalSales: totals[pub]})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalSales != results[j].TotalSales {
			return results[i].TotalSales > results[j].TotalSales
		}
		return results[i].Publisher < results[j].Publisher
	})

	if n >= 0 && len(results) > n {
		results = results[:n]
	}
	return results
}
