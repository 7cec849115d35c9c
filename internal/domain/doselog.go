package domain

import (
	"time"

	"github.com/clarityrx/clarity-server/internal/normalize"
)

// TimeOfDay is the coarse bucket a dose was taken in.
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayEvening   TimeOfDay = "evening"
	TimeOfDayNight     TimeOfDay = "night"
)

// Valid returns true if the bucket is a recognized value.
func (t TimeOfDay) Valid() bool {
	switch t {
	case TimeOfDayMorning, TimeOfDayAfternoon, TimeOfDayEvening, TimeOfDayNight:
		return true
	default:
		return false
	}
}

// Thumbs is the optional quick sentiment on a dose log.
type Thumbs string

const (
	ThumbsUp   Thumbs = "up"
	ThumbsDown Thumbs = "down"
	ThumbsNone Thumbs = ""
)

// Valid returns true for up, down, or absent.
func (t Thumbs) Valid() bool {
	switch t {
	case ThumbsUp, ThumbsDown, ThumbsNone:
		return true
	default:
		return false
	}
}

// DoseLogEntry is a single historical dose record. The product name is
// denormalized so history rendering never needs a catalog lookup.
type DoseLogEntry struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`     // calendar date, midnight UTC
	TakenAt        time.Time `json:"taken_at"` // full timestamp
	ProductSKU     string    `json:"product_sku"`
	ProductName    string    `json:"product_name"`
	DesiredOutcome Effect    `json:"desired_outcome"`
	QuickRating    int       `json:"quick_rating"` // 1-5
	Thumbs         Thumbs    `json:"thumbs,omitempty"`
	Tags           []string  `json:"tags"`
	Notes          string    `json:"notes,omitempty"`
	TimeOfDay      TimeOfDay `json:"time_of_day"`

	CapsulesTaken int     `json:"capsules_taken"`
	TotalDoseMg   float64 `json:"total_dose_mg_thc"`
	WithFood      bool    `json:"with_food"`
	WithAlcohol   bool    `json:"with_alcohol"`

	CreatedAt time.Time `json:"created_at"`
}

// UTCDate truncates a timestamp to its calendar date at midnight UTC.
// Weekend classification and history grouping both anchor to UTC so a
// dose never flips weekday near midnight.
func UTCDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsWeekend reports whether the entry's date falls on a Saturday or
// Sunday, by UTC calendar date.
func (e DoseLogEntry) IsWeekend() bool {
	wd := e.Date.UTC().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// HistoryFilter narrows a dose history query. Zero values mean "no
// constraint". Tag matching is slug-normalized, so "Felt Groggy"
// finds entries tagged "felt groggy".
type HistoryFilter struct {
	ProductSKU     string
	DesiredOutcome Effect
	MinRating      int
	MaxRating      int
	StartDate      time.Time // inclusive, calendar date
	EndDate        time.Time // inclusive, calendar date
	Tag            string
}

// Matches reports whether an entry passes every set constraint.
func (f HistoryFilter) Matches(e DoseLogEntry) bool {
	if f.ProductSKU != "" && e.ProductSKU != f.ProductSKU {
		return false
	}
	if f.DesiredOutcome != "" && e.DesiredOutcome != f.DesiredOutcome {
		return false
	}
	if f.MinRating > 0 && e.QuickRating < f.MinRating {
		return false
	}
	if f.MaxRating > 0 && e.QuickRating > f.MaxRating {
		return false
	}
	if !f.StartDate.IsZero() && e.Date.Before(UTCDate(f.StartDate)) {
		return false
	}
	if !f.EndDate.IsZero() && e.Date.After(UTCDate(f.EndDate)) {
		return false
	}
	if f.Tag != "" {
		want := normalize.Slug(f.Tag)
		found := false
		for _, tag := range e.Tags {
			if normalize.Slug(tag) == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
