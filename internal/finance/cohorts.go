package finance

import "math/rand/v2"

// CohortRetention is one cohort's retention at one age.
type CohortRetention struct {
	CohortMonth int // 1-based signup month
	AgeMonth    int // 1-based months since signup
	Retention   float64
}

// CohortLTV is one cohort's 12-month discounted LTV.
type CohortLTV struct {
	CohortMonth int
	LTV12m      float64
}

// cohortNoiseStddev perturbs each cohort's curve around the base case.
const cohortNoiseStddev = 0.03

// SimulateCohorts generates synthetic per-cohort retention curves and
// 12-month LTVs under the base scenario. Each cohort's curve is the
// base retention with ~3% multiplicative noise, reproducible for a
// given seed.
func SimulateCohorts(numCohorts int, seed uint64) ([]CohortRetention, []CohortLTV) {
	sc := BaseScenario()
	baseRetention := sc.RetentionCurve(NumMonths)
	rng := rand.New(rand.NewPCG(seed, seed))

	var records []CohortRetention
	ltvs := make([]CohortLTV, 0, numCohorts)

	for c := range numCohorts {
		curve := make([]float64, NumMonths)
		for m := range curve {
			noise := 1 + rng.NormFloat64()*cohortNoiseStddev
			curve[m] = clamp01(baseRetention[m] * noise)
		}

		for age := range 12 {
			records = append(records, CohortRetention{
				CohortMonth: c + 1,
				AgeMonth:    age + 1,
				Retention:   curve[age],
			})
		}

		ltvs = append(ltvs, CohortLTV{
			CohortMonth: c + 1,
			LTV12m:      DiscountedLTV(sc.Price, sc.GrossMargin, curve[:12]),
		})
	}
	return records, ltvs
}
