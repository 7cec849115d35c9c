// Package finance implements the offline subscription projection
// model: scenario growth curves, cohort retention, unit economics,
// market sizing, and synthetic cohort analysis. Everything here is
// pure computation over small fixed-size tables; rendering and export
// live in chart.go and sqlite.go.
package finance

import "math"

// Horizon and global assumptions.
const (
	NumMonths = 60

	// FixedOverhead is the monthly fixed cost base used for the
	// break-even subscriber count.
	FixedOverhead = 50_000.0

	annualDiscountRate = 0.10
)

// MonthlyDiscountRate is the monthly equivalent of the annual discount
// rate: (1+r)^(1/12)-1.
var MonthlyDiscountRate = math.Pow(1+annualDiscountRate, 1.0/12) - 1

// Scenario is one named set of business assumptions. New subscriber
// acquisition ramps linearly from NewSubsStart to NewSubsEnd over the
// horizon.
type Scenario struct {
	Name           string
	Price          float64
	GrossMargin    float64
	NewSubsStart   float64
	NewSubsEnd     float64
	RetentionScale float64
	CAC            float64
}

// Scenarios returns the three standard scenarios in fixed order.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:           "conservative",
			Price:          60,
			GrossMargin:    0.60,
			NewSubsStart:   50,
			NewSubsEnd:     500,
			RetentionScale: 0.9,
			CAC:            200,
		},
		{
			Name:           "base",
			Price:          70,
			GrossMargin:    0.65,
			NewSubsStart:   100,
			NewSubsEnd:     1500,
			RetentionScale: 1.0,
			CAC:            150,
		},
		{
			Name:           "aggressive",
			Price:          80,
			GrossMargin:    0.70,
			NewSubsStart:   200,
			NewSubsEnd:     4000,
			RetentionScale: 1.1,
			CAC:            100,
		},
	}
}

// ScenarioByName finds a scenario by name.
func ScenarioByName(name string) (Scenario, bool) {
	for _, sc := range Scenarios() {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scenario{}, false
}

// BaseScenario returns the base case.
func BaseScenario() Scenario {
	sc, _ := ScenarioByName("base")
	return sc
}
