// Package catalog owns the product catalog: a small, insertion-ordered
// list of marketing SKUs. The default catalog is compiled in; a JSON
// file can override it and is hot-reloaded so copy edits don't need a
// restart.
package catalog

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/clarityrx/clarity-server/internal/domain"
)

// Default returns the built-in product catalog. Order matters: the
// recommendation fallback chain addresses products by position.
func Default() domain.Catalog {
	return domain.Catalog{
		{
			SKU:             domain.SKUDeepRestMicro,
			Name:            "Deep Rest Micro",
			THCMgPerCapsule: 2.5,
			Effect:          domain.EffectSleep,
			Persona:         "cautious first-timer",
			Description:     "Our gentlest sleep capsule. A true micro-dose for people new to THC who want help falling asleep without feeling anything the next morning.",
		},
		{
			SKU:             domain.SKUDeepRest,
			Name:            "Deep Rest",
			THCMgPerCapsule: 5,
			Effect:          domain.EffectSleep,
			Persona:         "restless sleeper",
			Description:     "Our standard sleep capsule for people who have tried THC before and want deeper, longer sleep.",
		},
		{
			SKU:             domain.SKUCalmClarity,
			Name:            "Calm Clarity",
			THCMgPerCapsule: 2.5,
			Effect:          domain.EffectCalm,
			Persona:         "busy professional",
			Description:     "A daytime micro-dose designed to take the edge off without fog or drowsiness.",
		},
		{
			SKU:             domain.SKUFocusCrisp,
			Name:            "Focus Crisp",
			THCMgPerCapsule: 2.5,
			Effect:          domain.EffectFocus,
			Persona:         "deep worker",
			Description:     "A very low dose paired with settling into focused work. Start small and adjust slowly.",
		},
		{
			SKU:             domain.SKUGentleRelief,
			Name:            "Gentle Relief",
			THCMgPerCapsule: 2.5,
			Effect:          domain.EffectRelief,
			Persona:         "active retiree",
			Description:     "A mild capsule for everyday aches, designed to be taken with a meal.",
		},
	}
}

// Service serves the current catalog. Reads vastly outnumber reloads,
// so a plain RWMutex over an immutable slice swap is enough.
type Service struct {
	logger *slog.Logger
	path   string

	mu      sync.RWMutex
	catalog domain.Catalog
}

// NewService builds a catalog service. With an empty path the built-in
// catalog is used and never changes; otherwise the file is loaded now
// and again on Reload.
func NewService(path string, logger *slog.Logger) (*Service, error) {
	s := &Service{
		logger:  logger,
		path:    path,
		catalog: Default(),
	}

	if path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog from %s: %w", path, err)
		}
		s.catalog = loaded
	}

	return s, nil
}

// Catalog returns the current catalog. The returned slice is shared
// and must not be mutated.
func (s *Service) Catalog() domain.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// BySKU looks up a product in the current catalog.
func (s *Service) BySKU(sku string) (domain.Product, bool) {
	return s.Catalog().BySKU(sku)
}

// Reload re-reads the catalog file and swaps it in. A broken file
// leaves the previous catalog in place.
func (s *Service) Reload() error {
	if s.path == "" {
		return nil
	}

	loaded, err := LoadFile(s.path)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("catalog reload failed, keeping previous catalog", "path", s.path, "error", err)
		}
		return err
	}

	s.mu.Lock()
	s.catalog = loaded
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("catalog reloaded", "path", s.path, "products", len(loaded))
	}
	return nil
}
