package finance

import "math"

// SimpleLTV is price/churn, the geometric-retention lifetime value.
// Unbounded is set when churn is zero: a subscriber who never leaves
// has no finite lifetime value, and callers must check the flag before
// using Value.
type SimpleLTV struct {
	Value     float64
	Unbounded bool
}

// SimpleLTVFromChurn computes price/churn, guarding the churn=0 case
// with the Unbounded sentinel instead of dividing by zero.
func SimpleLTVFromChurn(price, churnRate float64) SimpleLTV {
	if churnRate <= 0 {
		return SimpleLTV{Unbounded: true}
	}
	return SimpleLTV{Value: price / churnRate}
}

// DiscountedLTV is the discounted margin a single acquired subscriber
// generates over the retention curve.
func DiscountedLTV(price, grossMargin float64, retention []float64) float64 {
	marginPerMonth := price * grossMargin
	total := 0.0
	for m, ret := range retention {
		discount := math.Pow(1+MonthlyDiscountRate, float64(m))
		total += marginPerMonth * ret / discount
	}
	return total
}

// PaybackMonth is the earliest month (1-based) where cumulative
// undiscounted margin covers the CAC. ok is false when the horizon
// never pays back.
func PaybackMonth(price, grossMargin float64, retention []float64, cac float64) (month int, ok bool) {
	marginPerMonth := price * grossMargin
	cumulative := 0.0
	for m, ret := range retention {
		cumulative += marginPerMonth * ret
		if cumulative >= cac {
			return m + 1, true
		}
	}
	return 0, false
}

// UnitEconomics is the per-scenario unit economics dashboard row.
type UnitEconomics struct {
	Scenario        string
	Price           float64
	GrossMargin     float64
	CAC             float64
	LTV             float64
	LTVToCAC        float64
	PaybackMonth    int // 0 when never paid back
	SubsToBreakEven float64
}

// UnitEconomicsSummary computes the dashboard for every scenario.
func UnitEconomicsSummary() []UnitEconomics {
	scenarios := Scenarios()
	rows := make([]UnitEconomics, len(scenarios))

	for i, sc := range scenarios {
		retention := sc.RetentionCurve(NumMonths)
		ltv := DiscountedLTV(sc.Price, sc.GrossMargin, retention)
		payback, _ := PaybackMonth(sc.Price, sc.GrossMargin, retention, sc.CAC)

		rows[i] = UnitEconomics{
			Scenario:        sc.Name,
			Price:           sc.Price,
			GrossMargin:     sc.GrossMargin,
			CAC:             sc.CAC,
			LTV:             ltv,
			LTVToCAC:        ltv / sc.CAC,
			PaybackMonth:    payback,
			SubsToBreakEven: FixedOverhead / (sc.Price * sc.GrossMargin),
		}
	}
	return rows
}

// SensitivityGrid is LTV/CAC across CAC and retention stress cases.
// Values[i][j] corresponds to RetentionScales[i] x CACMultipliers[j].
type SensitivityGrid struct {
	CACMultipliers  []float64
	RetentionScales []float64
	Values          [][]float64
}

// Sensitivity stresses LTV/CAC for a scenario: CAC up 50% and
// retention down 5%, in all combinations.
func Sensitivity(sc Scenario) SensitivityGrid {
	grid := SensitivityGrid{
		CACMultipliers:  []float64{1.0, 1.5},
		RetentionScales: []float64{1.0, 0.95},
	}
	baseRetention := sc.RetentionCurve(NumMonths)

	grid.Values = make([][]float64, len(grid.RetentionScales))
	for i, rs := range grid.RetentionScales {
		grid.Values[i] = make([]float64, len(grid.CACMultipliers))
		retention := ScaleRetention(baseRetention, rs)
		ltv := DiscountedLTV(sc.Price, sc.GrossMargin, retention)
		for j, cm := range grid.CACMultipliers {
			grid.Values[i][j] = ltv / (sc.CAC * cm)
		}
	}
	return grid
}
