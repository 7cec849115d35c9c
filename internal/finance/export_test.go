package finance

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.db")

	projections := SimulateAll(12)
	econ := UnitEconomicsSummary()
	funnel := MarketFunnel(BaseScenario().Price)
	_, cohortLTVs := SimulateCohorts(6, 42)

	require.NoError(t, ExportSQLite(path, projections, econ, funnel, cohortLTVs))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	count := func(table string) int {
		var n int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
		return n
	}

	assert.Equal(t, 3*12, count("projections"))
	assert.Equal(t, 3, count("unit_economics"))
	assert.Equal(t, 2, count("market_funnel"))
	assert.Equal(t, 6, count("cohort_ltv"))

	var mrr float64
	require.NoError(t, db.QueryRow(
		`SELECT mrr FROM projections WHERE scenario = 'base' AND month = 1`,
	).Scan(&mrr))
	assert.InDelta(t, projections[1].Rows[0].MRR, mrr, 1e-9)
}

func TestRenderCharts(t *testing.T) {
	dir := t.TempDir()

	projections := SimulateAll(12)
	records, _ := SimulateCohorts(4, 42)
	funnel := MarketFunnel(BaseScenario().Price)

	revenuePath := filepath.Join(dir, "revenue.png")
	retentionPath := filepath.Join(dir, "retention.png")
	funnelPath := filepath.Join(dir, "funnel.png")

	require.NoError(t, RenderRevenueChart(projections, revenuePath))
	require.NoError(t, RenderRetentionChart(records, retentionPath))
	require.NoError(t, RenderFunnelChart(funnel, funnelPath))

	for _, path := range []string{revenuePath, retentionPath, funnelPath} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}
