package domain

import "fmt"

// AgeRange buckets from the onboarding survey.
type AgeRange string

const (
	AgeRange18To29 AgeRange = "18-29"
	AgeRange30To44 AgeRange = "30-44"
	AgeRange45To59 AgeRange = "45-59"
	AgeRange60Plus AgeRange = "60-plus"
)

// Valid returns true if the age range is a recognized value.
func (a AgeRange) Valid() bool {
	switch a {
	case AgeRange18To29, AgeRange30To44, AgeRange45To59, AgeRange60Plus:
		return true
	default:
		return false
	}
}

// Experience is the self-reported cannabis experience level.
type Experience string

const (
	ExperienceNaive   Experience = "naive"
	ExperienceLight   Experience = "light"
	ExperienceRegular Experience = "regular"
	ExperienceHeavy   Experience = "heavy"
)

// Valid returns true if the experience level is a recognized value.
func (e Experience) Valid() bool {
	switch e {
	case ExperienceNaive, ExperienceLight, ExperienceRegular, ExperienceHeavy:
		return true
	default:
		return false
	}
}

// RecommendationInput is the validated onboarding survey tuple.
// Callers must not invoke the rule until all three fields hold values
// from their enumerations.
type RecommendationInput struct {
	AgeRange   AgeRange   `json:"age_range"`
	Goal       Effect     `json:"primary_goal"`
	Experience Experience `json:"experience"`
}

// starterRule is one priority entry: if the predicate matches, resolve
// the target product, walking the fallback index chain when the target
// SKU is missing from the catalog.
type starterRule struct {
	match     func(RecommendationInput) bool
	target    func(Catalog) (Product, bool)
	fallbacks []int
}

// starterRules is the recommendation priority table, first match wins.
// Kept as an explicit ordered list so the priority order stays
// auditable.
var starterRules = []starterRule{
	{
		// Cautious start: older, inexperienced sleep seekers get the
		// lowest dose on the shelf.
		match: func(in RecommendationInput) bool {
			return in.Goal == EffectSleep && in.AgeRange != AgeRange18To29 && in.Experience == ExperienceNaive
		},
		target:    func(c Catalog) (Product, bool) { return c.LowestTHC(EffectSleep) },
		fallbacks: []int{0},
	},
	{
		match:     func(in RecommendationInput) bool { return in.Goal == EffectSleep },
		target:    func(c Catalog) (Product, bool) { return c.BySKU(SKUDeepRest) },
		fallbacks: []int{1, 0},
	},
	{
		match:     func(in RecommendationInput) bool { return in.Goal == EffectCalm },
		target:    func(c Catalog) (Product, bool) { return c.BySKU(SKUCalmClarity) },
		fallbacks: []int{2, 0},
	},
	{
		match:     func(in RecommendationInput) bool { return in.Goal == EffectFocus },
		target:    func(c Catalog) (Product, bool) { return c.BySKU(SKUFocusCrisp) },
		fallbacks: []int{3, 0},
	},
	{
		// Relief and anything else.
		match:     func(RecommendationInput) bool { return true },
		target:    func(c Catalog) (Product, bool) { return c.BySKU(SKUGentleRelief) },
		fallbacks: []int{1, 0},
	},
}

// ChooseStarterProduct picks the starter product for a survey response.
// Total over the input enumerations: it always returns a product from a
// non-empty catalog and never fails.
func ChooseStarterProduct(catalog Catalog, in RecommendationInput) Product {
	for _, rule := range starterRules {
		if !rule.match(in) {
			continue
		}
		if p, ok := rule.target(catalog); ok {
			return p
		}
		for _, idx := range rule.fallbacks {
			if idx < len(catalog) {
				return catalog[idx]
			}
		}
		return catalog.At(0)
	}
	return catalog.At(0) // unreachable, the last rule always matches
}

// effectEducation holds the one educational sentence per effect shown
// with a recommendation. Relief deliberately has none.
var effectEducation = map[Effect]string{
	EffectSleep: "Low-dose THC taken about an hour before bed is most often used to fall asleep faster and stay asleep.",
	EffectCalm:  "A micro-dose during the day is most often used to take the edge off without feeling impaired.",
	EffectFocus: "Very low doses are sometimes reported to help with settling in to focused work; start small and adjust slowly.",
}

const recommendationDisclaimer = "This is general education, not medical advice. Please talk to your doctor before starting any new product."

// ExplainRecommendation composes the deterministic explanation string
// for a chosen starter product.
func ExplainRecommendation(in RecommendationInput, p Product) string {
	s := fmt.Sprintf("Based on your age, experience level, and goals, we're starting you with %s (%.1f mg THC).", p.Name, p.THCMgPerCapsule)
	if edu, ok := effectEducation[p.Effect]; ok {
		s += " " + edu
	}
	return s + " " + recommendationDisclaimer
}
