package finance

// retentionWaypoints anchor the baseline cohort retention curve.
// Month 0 is the signup month (retention 1.0); the curve decays to
// 0.20 by month 60.
var retentionWaypoints = [][2]float64{
	{0, 1.00},
	{1, 0.75},
	{3, 0.60},
	{6, 0.50},
	{12, 0.40},
	{60, 0.20},
}

// BaseRetentionCurve returns the baseline retention at each integer
// month in [0, maxMonths). Values between waypoints are linearly
// interpolated; beyond the last waypoint the curve holds its final
// value. Always clamped to [0, 1].
func BaseRetentionCurve(maxMonths int) []float64 {
	curve := make([]float64, maxMonths)
	for m := range curve {
		curve[m] = clamp01(interpolate(float64(m)))
	}
	return curve
}

func interpolate(x float64) float64 {
	first := retentionWaypoints[0]
	last := retentionWaypoints[len(retentionWaypoints)-1]
	if x <= first[0] {
		return first[1]
	}
	if x >= last[0] {
		return last[1]
	}
	for i := 1; i < len(retentionWaypoints); i++ {
		x0, y0 := retentionWaypoints[i-1][0], retentionWaypoints[i-1][1]
		x1, y1 := retentionWaypoints[i][0], retentionWaypoints[i][1]
		if x <= x1 {
			return y0 + (y1-y0)*(x-x0)/(x1-x0)
		}
	}
	return last[1]
}

// ScaleRetention multiplies a retention curve by a scenario's scale
// factor, clamped to [0, 1].
func ScaleRetention(base []float64, scale float64) []float64 {
	scaled := make([]float64, len(base))
	for i, v := range base {
		scaled[i] = clamp01(v * scale)
	}
	return scaled
}

// RetentionCurve returns the scaled retention curve for a scenario.
func (sc Scenario) RetentionCurve(maxMonths int) []float64 {
	return ScaleRetention(BaseRetentionCurve(maxMonths), sc.RetentionScale)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
