package domain

import "sort"

// DiaryStats is the personal stats summary over a dose history.
type DiaryStats struct {
	TotalDoses       int               `json:"total_doses"`
	FavoriteProducts []FavoriteProduct `json:"favorite_products"`
	WeekendAvg       float64           `json:"weekend_avg"`
	WeekdayAvg       float64           `json:"weekday_avg"`
}

// FavoriteProduct is one product whose mean quick rating cleared the
// favorite threshold.
type FavoriteProduct struct {
	ProductName string  `json:"product_name"`
	AvgRating   float64 `json:"avg_rating"`
	Doses       int     `json:"doses"`
}

// favoriteThreshold is the minimum mean quick rating for a product to
// count as a favorite.
const favoriteThreshold = 4.0

// BuildStats computes the diary summary over an already-filtered
// history. Total over any finite list; an empty history yields the zero
// summary. Grouping is by denormalized product name in first-occurrence
// order, which also breaks ties between equal means.
func BuildStats(entries []DoseLogEntry) DiaryStats {
	if len(entries) == 0 {
		return DiaryStats{FavoriteProducts: []FavoriteProduct{}}
	}

	type group struct {
		name  string
		sum   int
		count int
	}
	var groups []*group
	index := make(map[string]*group)

	var weekendSum, weekendCount, weekdaySum, weekdayCount int

	for _, e := range entries {
		g, ok := index[e.ProductName]
		if !ok {
			g = &group{name: e.ProductName}
			index[e.ProductName] = g
			groups = append(groups, g)
		}
		g.sum += e.QuickRating
		g.count++

		if e.IsWeekend() {
			weekendSum += e.QuickRating
			weekendCount++
		} else {
			weekdaySum += e.QuickRating
			weekdayCount++
		}
	}

	favorites := []FavoriteProduct{}
	for _, g := range groups {
		avg := float64(g.sum) / float64(g.count)
		if avg >= favoriteThreshold {
			favorites = append(favorites, FavoriteProduct{
				ProductName: g.name,
				AvgRating:   avg,
				Doses:       g.count,
			})
		}
	}
	sort.SliceStable(favorites, func(i, j int) bool {
		return favorites[i].AvgRating > favorites[j].AvgRating
	})

	stats := DiaryStats{
		TotalDoses:       len(entries),
		FavoriteProducts: favorites,
	}
	if weekendCount > 0 {
		stats.WeekendAvg = float64(weekendSum) / float64(weekendCount)
	}
	if weekdayCount > 0 {
		stats.WeekdayAvg = float64(weekdaySum) / float64(weekdayCount)
	}
	return stats
}
