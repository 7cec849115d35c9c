package catalog

import (
	"encoding/json/v2"
	"fmt"
	"os"

	"github.com/clarityrx/clarity-server/internal/domain"
	"github.com/clarityrx/clarity-server/internal/validation"
)

var validate = validation.New()

// LoadFile reads and validates a catalog JSON file: a non-empty array
// of products with unique SKUs, positive doses, and known effects.
func LoadFile(path string) (domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var catalog domain.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if err := Validate(catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Validate checks the catalog invariants.
func Validate(c domain.Catalog) error {
	if len(c) == 0 {
		return fmt.Errorf("catalog must not be empty")
	}

	seen := make(map[string]bool, len(c))
	for i, p := range c {
		if err := validate.Validate(p); err != nil {
			return fmt.Errorf("product %d: %w", i, err)
		}
		if seen[p.SKU] {
			return fmt.Errorf("duplicate sku %s", p.SKU)
		}
		seen[p.SKU] = true
	}
	return nil
}
