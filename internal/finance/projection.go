package finance

// MonthRow is one month of a scenario projection. Month is 1-based.
type MonthRow struct {
	Month                 int
	NewSubscribers        float64
	ActiveSubscribers     float64
	MRR                   float64
	CumulativeRevenue     float64
	CumulativeSubscribers float64
}

// Projection is a scenario's full monthly table.
type Projection struct {
	Scenario Scenario
	Rows     []MonthRow
}

// NewSubsProfile is the acquisition ramp: a linear interpolation from
// start to end over n months. No hockey stick.
func NewSubsProfile(start, end float64, n int) []float64 {
	profile := make([]float64, n)
	if n == 1 {
		profile[0] = start
		return profile
	}
	step := (end - start) / float64(n-1)
	for i := range profile {
		profile[i] = start + step*float64(i)
	}
	return profile
}

// Simulate runs the cohort-based monthly model for one scenario.
// Each cohort decays along the retention curve independently; the
// active base at month t is the sum over cohorts c <= t of
// newSubs[c] * retention[t-c].
func Simulate(sc Scenario, months int) Projection {
	retention := sc.RetentionCurve(months)
	newSubs := NewSubsProfile(sc.NewSubsStart, sc.NewSubsEnd, months)

	rows := make([]MonthRow, months)
	cumulativeRevenue := 0.0
	cumulativeSubs := 0.0

	for t := range months {
		active := 0.0
		for c := 0; c <= t; c++ {
			active += newSubs[c] * retention[t-c]
		}

		mrr := active * sc.Price
		cumulativeRevenue += mrr
		cumulativeSubs += newSubs[t]

		rows[t] = MonthRow{
			Month:                 t + 1,
			NewSubscribers:        newSubs[t],
			ActiveSubscribers:     active,
			MRR:                   mrr,
			CumulativeRevenue:     cumulativeRevenue,
			CumulativeSubscribers: cumulativeSubs,
		}
	}

	return Projection{Scenario: sc, Rows: rows}
}

// SimulateAll runs every standard scenario.
func SimulateAll(months int) []Projection {
	scenarios := Scenarios()
	projections := make([]Projection, len(scenarios))
	for i, sc := range scenarios {
		projections[i] = Simulate(sc, months)
	}
	return projections
}

// QuickRow is one month of the simple churn-recurrence projection.
type QuickRow struct {
	Month       int
	Subscribers float64
	Revenue     float64
}

// QuickProject runs the closed-form recurrence
// subs[t] = subs[t-1]*(1-churn) + adds[t], revenue[t] = subs[t]*price.
// A coarser model than Simulate, useful for back-of-envelope runs with
// a flat monthly add count.
func QuickProject(initialSubs, monthlyAdds, churnRate, price float64, months int) []QuickRow {
	rows := make([]QuickRow, months)
	subs := initialSubs
	for t := range months {
		subs = subs*(1-churnRate) + monthlyAdds
		rows[t] = QuickRow{
			Month:       t + 1,
			Subscribers: subs,
			Revenue:     subs * price,
		}
	}
	return rows
}
