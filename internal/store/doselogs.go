package store

import (
	"context"
	"slices"

	"github.com/clarityrx/clarity-server/internal/domain"
)

// ListDoseHistory returns the dose history matching the filter, most
// recent first. Indexed fields (SKU, desired outcome) narrow the scan;
// the remaining constraints are applied in memory, which is fine for a
// diary measured in dozens of entries.
func (s *Store) ListDoseHistory(ctx context.Context, filter domain.HistoryFilter) ([]*domain.DoseLogEntry, error) {
	var (
		entries []*domain.DoseLogEntry
		err     error
	)

	switch {
	case filter.ProductSKU != "":
		entries, err = s.DoseLogs.ListByIndex(ctx, "sku", filter.ProductSKU)
	case filter.DesiredOutcome != "":
		entries, err = s.DoseLogs.ListByIndex(ctx, "outcome", string(filter.DesiredOutcome))
	default:
		entries, err = s.DoseLogs.All(ctx)
	}
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.DoseLogEntry, 0, len(entries))
	for _, e := range entries {
		if filter.Matches(*e) {
			filtered = append(filtered, e)
		}
	}

	slices.SortFunc(filtered, func(a, b *domain.DoseLogEntry) int {
		return b.TakenAt.Compare(a.TakenAt)
	})
	return filtered, nil
}
