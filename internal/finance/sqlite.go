package finance

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const exportSchema = `
CREATE TABLE IF NOT EXISTS projections (
	scenario TEXT NOT NULL,
	month INTEGER NOT NULL,
	new_subscribers REAL NOT NULL,
	active_subscribers REAL NOT NULL,
	mrr REAL NOT NULL,
	cumulative_revenue REAL NOT NULL,
	cumulative_subscribers REAL NOT NULL,
	PRIMARY KEY (scenario, month)
);
CREATE TABLE IF NOT EXISTS unit_economics (
	scenario TEXT PRIMARY KEY,
	price REAL NOT NULL,
	gross_margin REAL NOT NULL,
	cac REAL NOT NULL,
	ltv REAL NOT NULL,
	ltv_to_cac REAL NOT NULL,
	payback_month INTEGER,
	subs_to_break_even REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS market_funnel (
	capture_rate REAL PRIMARY KEY,
	subscribers REAL NOT NULL,
	annual_revenue REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS cohort_ltv (
	cohort_month INTEGER PRIMARY KEY,
	ltv_12m REAL NOT NULL
);
`

// ExportSQLite writes every projection table to a SQLite file so the
// numbers can be poked at with ordinary SQL tooling.
func ExportSQLite(path string, projections []Projection, econ []UnitEconomics, funnel Funnel, cohortLTVs []CohortLTV) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(exportSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, p := range projections {
		for _, row := range p.Rows {
			_, err := tx.Exec(
				`INSERT INTO projections VALUES (?, ?, ?, ?, ?, ?, ?)`,
				p.Scenario.Name, row.Month, row.NewSubscribers, row.ActiveSubscribers,
				row.MRR, row.CumulativeRevenue, row.CumulativeSubscribers,
			)
			if err != nil {
				return fmt.Errorf("insert projection row: %w", err)
			}
		}
	}

	for _, row := range econ {
		var payback any
		if row.PaybackMonth > 0 {
			payback = row.PaybackMonth
		}
		_, err := tx.Exec(
			`INSERT INTO unit_economics VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			row.Scenario, row.Price, row.GrossMargin, row.CAC,
			row.LTV, row.LTVToCAC, payback, row.SubsToBreakEven,
		)
		if err != nil {
			return fmt.Errorf("insert unit economics row: %w", err)
		}
	}

	for _, row := range funnel.Captures {
		_, err := tx.Exec(
			`INSERT INTO market_funnel VALUES (?, ?, ?)`,
			row.CaptureRate, row.Subscribers, row.AnnualRevenue,
		)
		if err != nil {
			return fmt.Errorf("insert funnel row: %w", err)
		}
	}

	for _, row := range cohortLTVs {
		_, err := tx.Exec(
			`INSERT INTO cohort_ltv VALUES (?, ?)`,
			row.CohortMonth, row.LTV12m,
		)
		if err != nil {
			return fmt.Errorf("insert cohort ltv row: %w", err)
		}
	}

	return tx.Commit()
}
