package domain

// Effect is the intended effect of a product, and doubles as the
// desired-outcome vocabulary on dose logs.
type Effect string

const (
	EffectSleep  Effect = "sleep"
	EffectCalm   Effect = "calm"
	EffectRelief Effect = "relief"
	EffectFocus  Effect = "focus"
)

// Valid returns true if the effect is a recognized value.
func (e Effect) Valid() bool {
	switch e {
	case EffectSleep, EffectCalm, EffectRelief, EffectFocus:
		return true
	default:
		return false
	}
}

// Well-known catalog SKUs. The recommendation rules target these; the
// catalog may be edited at runtime, so every lookup has a positional
// fallback.
const (
	SKUDeepRestMicro = "CRX-DR-2.5"
	SKUDeepRest      = "CRX-DR-5"
	SKUCalmClarity   = "CRX-CL-2.5"
	SKUFocusCrisp    = "CRX-FC-2.5"
	SKUGentleRelief  = "CRX-RL-2.5"
)

// Product is an immutable catalog entry.
type Product struct {
	SKU             string  `json:"sku" validate:"required"`
	Name            string  `json:"name" validate:"required"`
	THCMgPerCapsule float64 `json:"thc_mg_per_capsule" validate:"gt=0"`
	Effect          Effect  `json:"intended_effect" validate:"oneof=sleep calm relief focus"`
	Persona         string  `json:"persona,omitempty"`
	Description     string  `json:"description,omitempty"`
}

// Catalog is a fixed, insertion-ordered product list. It is never empty
// at runtime; loaders reject empty catalogs.
type Catalog []Product

// BySKU returns the product with the given SKU, if present.
func (c Catalog) BySKU(sku string) (Product, bool) {
	for _, p := range c {
		if p.SKU == sku {
			return p, true
		}
	}
	return Product{}, false
}

// LowestTHC returns the product with the smallest THC dose among those
// matching the effect. The second return is false when no product has
// the effect.
func (c Catalog) LowestTHC(effect Effect) (Product, bool) {
	var best Product
	found := false
	for _, p := range c {
		if p.Effect != effect {
			continue
		}
		if !found || p.THCMgPerCapsule < best.THCMgPerCapsule {
			best = p
			found = true
		}
	}
	return best, found
}

// At returns the product at index i, clamped to the catalog bounds.
// Panics on an empty catalog, which loaders make impossible.
func (c Catalog) At(i int) Product {
	if i < 0 || i >= len(c) {
		return c[0]
	}
	return c[i]
}
