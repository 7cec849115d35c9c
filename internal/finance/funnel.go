package finance

// Market sizing assumptions: California adults in the 50-75 bracket,
// the fraction open to THC products, and the fraction preferring pill
// form.
const (
	CaliforniaTargetPopulation = 4_000_000
	TAMInterestedFrac          = 0.30
	SAMPillFormFrac            = 0.50
)

// CaptureRow is the business outcome at one market capture rate.
type CaptureRow struct {
	CaptureRate   float64
	Subscribers   float64
	AnnualRevenue float64
}

// Funnel is the TAM/SAM narrowing plus capture outcomes.
type Funnel struct {
	Population float64
	TAM        float64
	SAM        float64
	Captures   []CaptureRow
}

// MarketFunnel computes the market funnel at the given subscription
// price. Capture rates are fractions of the full target population,
// matching how the year-5 targets were framed.
func MarketFunnel(price float64) Funnel {
	f := Funnel{
		Population: CaliforniaTargetPopulation,
		TAM:        CaliforniaTargetPopulation * TAMInterestedFrac,
	}
	f.SAM = f.TAM * SAMPillFormFrac

	for _, rate := range []float64{0.005, 0.01} {
		subs := CaliforniaTargetPopulation * rate
		f.Captures = append(f.Captures, CaptureRow{
			CaptureRate:   rate,
			Subscribers:   subs,
			AnnualRevenue: subs * price * 12,
		})
	}
	return f
}
