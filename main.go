package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"footfall-server/config"
	"footfall-server/di"
	"footfall-server/util"
)

// plotCurrentComparison renders the assembled comparison rows to an HTML
// chart. Handy for eyeballing the data without a frontend.
func plotCurrentComparison(container *di.Container) {
	result, err := container.DayInsightsService.Comparison()
	if err != nil {
		log.Println("Error assembling comparison for plot:", err)
		return
	}
	util.PrintComparisonRowsPartially(result.Rows)
	util.PlotComparison(result.Rows, config.COMPARISON_CHART_FILE)
}

func main() {
	config.LoadEnv()

	container := di.NewContainer(config.AppEnv())

	fmt.Println("loading visitor records!")
	container.RecordsRefresherService.RefreshRecords()

	fmt.Println("starting periodic records refresh!")
	if err := container.RecordsRefresherService.StartPeriodicJob(
		config.RECORDS_REFRESHER_SCHEDULE_MINUTES * time.Minute); err != nil {
		log.Fatalf("Failed to start records refresher: %v", err)
	}
	defer container.RecordsRefresherService.Stop()

	if os.Getenv("PLOT_ON_START") != "" {
		plotCurrentComparison(container)
	}

	fmt.Println("starting server!")
	container.FootfallHttpServer.Start()
}
