// Package main provides the offline subscription projection tool.
//
// It prints scenario projections, unit economics, sensitivity, market
// sizing, and synthetic cohort analysis as tables. Charts and a SQLite
// export are optional.
//
// Usage:
//
//	go run ./cmd/model
//	go run ./cmd/model --months 24 --charts ./out --sqlite ./out/model.db
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/clarityrx/clarity-server/internal/finance"
)

var (
	monthsFlag  = flag.Int("months", finance.NumMonths, "Projection horizon in months")
	cohortsFlag = flag.Int("cohorts", 12, "Number of synthetic cohorts")
	seedFlag    = flag.Uint64("seed", 42, "RNG seed for cohort noise")
	chartsDir   = flag.String("charts", "", "Directory to write PNG charts into")
	sqlitePath  = flag.String("sqlite", "", "SQLite file to export tables into")
)

func main() {
	flag.Parse()

	projections := finance.SimulateAll(*monthsFlag)
	econ := finance.UnitEconomicsSummary()
	funnel := finance.MarketFunnel(finance.BaseScenario().Price)
	cohortRecords, cohortLTVs := finance.SimulateCohorts(*cohortsFlag, *seedFlag)

	printScenarioSummaries(projections)
	printBaseProjection(projections)
	printUnitEconomics(econ)
	printSensitivity(finance.BaseScenario())
	printFunnel(funnel)
	printCohortLTVs(cohortLTVs)

	if *chartsDir != "" {
		if err := writeCharts(*chartsDir, projections, cohortRecords, funnel); err != nil {
			log.Fatalf("Failed to write charts: %v", err)
		}
		fmt.Printf("\nCharts written to %s\n", *chartsDir)
	}

	if *sqlitePath != "" {
		if err := finance.ExportSQLite(*sqlitePath, projections, econ, funnel, cohortLTVs); err != nil {
			log.Fatalf("Failed to export SQLite: %v", err)
		}
		fmt.Printf("\nTables exported to %s\n", *sqlitePath)
	}
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func printScenarioSummaries(projections []finance.Projection) {
	fmt.Println("\n=== Scenario summary ===")
	w := newTable()
	fmt.Fprintln(w, "scenario\tprice\tfinal MRR\tfinal active\tcumulative revenue")
	for _, p := range projections {
		last := p.Rows[len(p.Rows)-1]
		fmt.Fprintf(w, "%s\t$%.0f\t$%.0f\t%.0f\t$%.0f\n",
			p.Scenario.Name, p.Scenario.Price, last.MRR, last.ActiveSubscribers, last.CumulativeRevenue)
	}
	w.Flush()
}

func printBaseProjection(projections []finance.Projection) {
	var base finance.Projection
	for _, p := range projections {
		if p.Scenario.Name == "base" {
			base = p
		}
	}

	fmt.Println("\n=== Base case, first 12 months ===")
	w := newTable()
	fmt.Fprintln(w, "month\tnew subs\tactive\tMRR\tcumulative revenue")
	for _, row := range base.Rows {
		if row.Month > 12 {
			break
		}
		fmt.Fprintf(w, "%d\t%.0f\t%.0f\t$%.0f\t$%.0f\n",
			row.Month, row.NewSubscribers, row.ActiveSubscribers, row.MRR, row.CumulativeRevenue)
	}
	w.Flush()
}

func printUnitEconomics(econ []finance.UnitEconomics) {
	fmt.Println("\n=== Unit economics ===")
	w := newTable()
	fmt.Fprintln(w, "scenario\tprice\tmargin\tCAC\tLTV\tLTV/CAC\tpayback\tbreak-even subs")
	for _, row := range econ {
		payback := "never"
		if row.PaybackMonth > 0 {
			payback = fmt.Sprintf("month %d", row.PaybackMonth)
		}
		fmt.Fprintf(w, "%s\t$%.0f\t%.0f%%\t$%.0f\t$%.0f\t%.1f\t%s\t%.0f\n",
			row.Scenario, row.Price, row.GrossMargin*100, row.CAC,
			row.LTV, row.LTVToCAC, payback, row.SubsToBreakEven)
	}
	w.Flush()
}

func printSensitivity(sc finance.Scenario) {
	grid := finance.Sensitivity(sc)

	fmt.Printf("\n=== LTV/CAC sensitivity (%s case) ===\n", sc.Name)
	w := newTable()
	fmt.Fprint(w, "retention \\ CAC")
	for _, cm := range grid.CACMultipliers {
		fmt.Fprintf(w, "\tx%.1f", cm)
	}
	fmt.Fprintln(w)
	for i, rs := range grid.RetentionScales {
		fmt.Fprintf(w, "x%.2f", rs)
		for _, v := range grid.Values[i] {
			fmt.Fprintf(w, "\t%.1f", v)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func printFunnel(f finance.Funnel) {
	fmt.Println("\n=== California market funnel ===")
	w := newTable()
	fmt.Fprintf(w, "target population\t%.0f\n", f.Population)
	fmt.Fprintf(w, "TAM (interested)\t%.0f\n", f.TAM)
	fmt.Fprintf(w, "SAM (pill form)\t%.0f\n", f.SAM)
	for _, c := range f.Captures {
		fmt.Fprintf(w, "capture %.1f%%\t%.0f subs\t$%.0f/yr\n",
			c.CaptureRate*100, c.Subscribers, c.AnnualRevenue)
	}
	w.Flush()
}

func printCohortLTVs(ltvs []finance.CohortLTV) {
	fmt.Println("\n=== Synthetic cohort 12-month LTV ===")
	w := newTable()
	fmt.Fprintln(w, "cohort\tLTV (12m)")
	for _, c := range ltvs {
		fmt.Fprintf(w, "%d\t$%.0f\n", c.CohortMonth, c.LTV12m)
	}
	w.Flush()
}

func writeCharts(dir string, projections []finance.Projection, records []finance.CohortRetention, funnel finance.Funnel) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := finance.RenderRevenueChart(projections, filepath.Join(dir, "revenue.png")); err != nil {
		return err
	}
	if err := finance.RenderRetentionChart(records, filepath.Join(dir, "retention.png")); err != nil {
		return err
	}
	return finance.RenderFunnelChart(funnel, filepath.Join(dir, "funnel.png"))
}
