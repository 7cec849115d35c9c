package finance

import (
	"fmt"

	"github.com/fogleman/gg"
)

// Chart dimensions and palette.
const (
	chartWidth  = 1000
	chartHeight = 600
	chartMargin = 70.0
)

var scenarioColors = map[string][3]float64{
	"conservative": {0.55, 0.55, 0.55},
	"base":         {0.25, 0.55, 0.85},
	"aggressive":   {0.15, 0.65, 0.35},
}

func newChart(title string) *gg.Context {
	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, chartWidth/2, chartMargin/2, 0.5, 0.5)
	return dc
}

func drawAxes(dc *gg.Context, xLabel, yLabel string) {
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1.5)
	dc.DrawLine(chartMargin, chartHeight-chartMargin, chartWidth-chartMargin, chartHeight-chartMargin)
	dc.DrawLine(chartMargin, chartMargin, chartMargin, chartHeight-chartMargin)
	dc.Stroke()
	dc.DrawStringAnchored(xLabel, chartWidth/2, chartHeight-chartMargin/3, 0.5, 0.5)
	dc.DrawStringAnchored(yLabel, chartMargin, chartMargin-15, 0.5, 0.5)
}

// plotArea maps a data point into chart pixel coordinates.
func plotArea(x, xMax, y, yMax float64) (px, py float64) {
	plotW := float64(chartWidth) - 2*chartMargin
	plotH := float64(chartHeight) - 2*chartMargin
	px = chartMargin + x/xMax*plotW
	py = float64(chartHeight) - chartMargin - y/yMax*plotH
	return px, py
}

// RenderRevenueChart draws monthly MRR per scenario as line series.
func RenderRevenueChart(projections []Projection, path string) error {
	dc := newChart("Monthly Revenue Trajectory by Scenario")
	drawAxes(dc, "Month", "MRR (USD)")

	maxRevenue := 0.0
	months := 0
	for _, p := range projections {
		for _, row := range p.Rows {
			if row.MRR > maxRevenue {
				maxRevenue = row.MRR
			}
		}
		if len(p.Rows) > months {
			months = len(p.Rows)
		}
	}
	if maxRevenue == 0 || months == 0 {
		return fmt.Errorf("nothing to plot")
	}

	for _, p := range projections {
		c, ok := scenarioColors[p.Scenario.Name]
		if !ok {
			c = [3]float64{0.2, 0.2, 0.2}
		}
		dc.SetRGB(c[0], c[1], c[2])
		dc.SetLineWidth(2)
		for i, row := range p.Rows {
			px, py := plotArea(float64(row.Month), float64(months), row.MRR, maxRevenue)
			if i == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.Stroke()

		lastRow := p.Rows[len(p.Rows)-1]
		px, py := plotArea(float64(lastRow.Month), float64(months), lastRow.MRR, maxRevenue)
		dc.DrawStringAnchored(p.Scenario.Name, px-10, py-10, 1, 0.5)
	}

	return dc.SavePNG(path)
}

// RenderRetentionChart draws each synthetic cohort's 12-month
// retention curve.
func RenderRetentionChart(records []CohortRetention, path string) error {
	if len(records) == 0 {
		return fmt.Errorf("nothing to plot")
	}

	dc := newChart("Synthetic Cohort Retention Curves")
	drawAxes(dc, "Months since signup", "Retention")

	byCohort := map[int][]CohortRetention{}
	maxAge := 0
	for _, r := range records {
		byCohort[r.CohortMonth] = append(byCohort[r.CohortMonth], r)
		if r.AgeMonth > maxAge {
			maxAge = r.AgeMonth
		}
	}

	dc.SetLineWidth(1.5)
	for cohort := 1; cohort <= len(byCohort); cohort++ {
		points := byCohort[cohort]
		shade := 0.2 + 0.6*float64(cohort)/float64(len(byCohort))
		dc.SetRGBA(0.2, 0.4, shade, 0.7)
		for i, r := range points {
			px, py := plotArea(float64(r.AgeMonth), float64(maxAge), r.Retention, 1.0)
			if i == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.Stroke()
	}

	return dc.SavePNG(path)
}

// RenderFunnelChart draws the market funnel as horizontal bars.
func RenderFunnelChart(f Funnel, path string) error {
	dc := newChart("Market Funnel (California, ages 50-75)")

	bars := []struct {
		label string
		value float64
	}{
		{"50-75 population", f.Population},
		{"TAM (interested)", f.TAM},
		{"SAM (pill form)", f.SAM},
	}

	barColors := [][3]float64{
		{0.6, 0.6, 0.6},
		{0.40, 0.76, 0.65},
		{0.11, 0.62, 0.47},
	}

	plotW := float64(chartWidth) - 2*chartMargin
	barHeight := 80.0
	gap := 50.0

	for i, bar := range bars {
		width := bar.value / f.Population * plotW
		y := chartMargin + 40 + float64(i)*(barHeight+gap)

		c := barColors[i]
		dc.SetRGB(c[0], c[1], c[2])
		dc.DrawRectangle(chartMargin, y, width, barHeight)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(fmt.Sprintf("%s: %.0f", bar.label, bar.value), chartMargin+10, y+barHeight/2, 0, 0.5)
	}

	return dc.SavePNG(path)
}
