// Package seed generates the deterministic synthetic dose diary used
// for demos and local development.
package seed

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/clarityrx/clarity-server/internal/domain"
)

// tagsPool is the set of free-text tags the generator samples from.
var tagsPool = []string{
	"helped sleep",
	"fell asleep faster",
	"woke up at night",
	"felt groggy",
	"perfect dose",
	"too mild",
	"no effect",
	"great for reading",
	"eased joint pain",
}

// productWeights favor sleep products. They cover the first four
// catalog entries; Gentle Relief is not part of the demo history.
var productWeights = []float64{0.4, 0.3, 0.2, 0.1}

// Options configures the synthetic history generator.
type Options struct {
	Events int       // number of diary entries (default 30)
	Days   int       // span to spread them over (default 60)
	Now    time.Time // end of the span (default time.Now)
	Seed   uint64    // RNG seed (default 42)
}

func (o *Options) applyDefaults() {
	if o.Events <= 0 {
		o.Events = 30
	}
	if o.Days <= 0 {
		o.Days = 60
	}
	if o.Now.IsZero() {
		o.Now = time.Now().UTC()
	}
	if o.Seed == 0 {
		o.Seed = 42
	}
}

// Generate produces the synthetic dose history, most recent first.
// The same options always produce the same history.
func Generate(catalog domain.Catalog, opts Options) []domain.DoseLogEntry {
	opts.applyDefaults()
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))

	baseDate := opts.Now.AddDate(0, 0, -opts.Days)
	entries := make([]domain.DoseLogEntry, 0, opts.Events)

	for i := range opts.Events {
		dayOffset := i * opts.Days / opts.Events
		hour := []int{20, 21, 22}[rng.IntN(3)]
		takenAt := baseDate.AddDate(0, 0, dayOffset).Truncate(24 * time.Hour).Add(time.Duration(hour) * time.Hour)

		product := pickProduct(catalog, rng)

		var rating int
		if product.Effect == domain.EffectSleep {
			rating = weightedChoice(rng, []int{3, 4, 5}, []float64{1, 3, 4})
		} else {
			rating = weightedChoice(rng, []int{2, 3, 4, 5}, []float64{1, 3, 3, 1})
		}

		thumbs := domain.ThumbsNone
		if rating >= 4 {
			thumbs = domain.ThumbsUp
		} else if rating <= 2 {
			thumbs = domain.ThumbsDown
		}

		tags := sampleTags(rng, 1+rng.IntN(2))
		if product.SKU == domain.SKUDeepRest && rating <= 4 && !contains(tags, "felt groggy") {
			tags = append(tags, "felt groggy")
		}

		notes := ""
		if rating <= 3 && contains(tags, "no effect") {
			notes = "Felt almost nothing at this dose, might need a bit more."
		} else if rating == 5 && contains(tags, "perfect dose") {
			notes = "Great night of sleep, woke up rested without a heavy head."
		}

		entries = append(entries, domain.DoseLogEntry{
			ID:             fmt.Sprintf("dose-seed-%03d", i+1),
			Date:           domain.UTCDate(takenAt),
			TakenAt:        takenAt,
			ProductSKU:     product.SKU,
			ProductName:    product.Name,
			DesiredOutcome: product.Effect,
			QuickRating:    rating,
			Thumbs:         thumbs,
			Tags:           tags,
			Notes:          notes,
			TimeOfDay:      domain.TimeOfDayEvening,
			CapsulesTaken:  1,
			TotalDoseMg:    product.THCMgPerCapsule,
			WithFood:       false,
			WithAlcohol:    false,
			CreatedAt:      takenAt,
		})
	}

	// Most recent first, matching the history endpoint.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}

func pickProduct(catalog domain.Catalog, rng *rand.Rand) domain.Product {
	n := len(productWeights)
	if len(catalog) < n {
		n = len(catalog)
	}

	total := 0.0
	for _, w := range productWeights[:n] {
		total += w
	}

	r := rng.Float64() * total
	for i, w := range productWeights[:n] {
		r -= w
		if r < 0 {
			return catalog[i]
		}
	}
	return catalog[n-1]
}

func weightedChoice(rng *rand.Rand, values []int, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return values[i]
		}
	}
	return values[len(values)-1]
}

// sampleTags picks k distinct tags from the pool.
func sampleTags(rng *rand.Rand, k int) []string {
	perm := rng.Perm(len(tagsPool))
	tags := make([]string, 0, k)
	for _, idx := range perm[:k] {
		tags = append(tags, tagsPool[idx])
	}
	return tags
}

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// RenderGrid prints a Letterboxd-style diary grid, most recent first.
// Each row: date, star rating, product, outcome, tags.
func RenderGrid(w io.Writer, entries []domain.DoseLogEntry, limit int) {
	fmt.Fprintln(w, "\n=== ClarityRx Dose Diary (most recent) ===")
	for i, e := range entries {
		if i >= limit {
			break
		}
		stars := strings.Repeat("★", e.QuickRating) + strings.Repeat("☆", 5-e.QuickRating)
		fmt.Fprintf(w, "%s  %s  %s [%s] — %s\n",
			e.Date.Format("2006-01-02"), stars, e.ProductName, e.DesiredOutcome, strings.Join(e.Tags, ", "))
	}
}

// RenderStats prints the personal stats dashboard for a history.
func RenderStats(w io.Writer, entries []domain.DoseLogEntry) {
	stats := domain.BuildStats(entries)

	fmt.Fprintln(w, "\n=== Personal Stats ===")
	fmt.Fprintf(w, "Total doses logged: %d\n", stats.TotalDoses)

	if len(stats.FavoriteProducts) > 0 {
		fmt.Fprintln(w, "\nFavorite products:")
		for _, fav := range stats.FavoriteProducts {
			fmt.Fprintf(w, "  %-20s %.2f (%d doses)\n", fav.ProductName, fav.AvgRating, fav.Doses)
		}
	}

	fmt.Fprintln(w, "\nWeekend vs weekday ratings:")
	fmt.Fprintf(w, "Weekend avg: %.2f  |  Weekday avg: %.2f\n", stats.WeekendAvg, stats.WeekdayAvg)
}
