package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"footfall-server/models"
)

// PlotComparison renders the assembled comparison rows as a grouped bar
// chart HTML file: one bar group per row, entering/leaving/passersby series.
func PlotComparison(rows []models.ComparableDayView, outPath string) {
	labels := make([]string, 0, len(rows))
	entering := make([]opts.BarData, 0, len(rows))
	leaving := make([]opts.BarData, 0, len(rows))
	passersby := make([]opts.BarData, 0, len(rows))

	for _, row := range rows {
		label := row.DisplayDate
		if row.Averaged {
			label += " (avg)"
		}
		labels = append(labels, label)
		entering = append(entering, opts.BarData{Value: row.Metrics.TotalEntering()})
		leaving = append(leaving, opts.BarData{Value: row.Metrics.TotalLeaving()})
		passersby = append(passersby, opts.BarData{Value: row.Metrics.Passersby})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Day Comparison",
			Width:     "900px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Visitor day comparison",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
	)

	bar.SetXAxis(labels).
		AddSeries("Entering", entering).
		AddSeries("Leaving", leaving).
		AddSeries("Passersby", passersby)

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Comparison chart generated: " + outPath)
}
