package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/clarityrx/clarity-server/internal/logger"
	"github.com/clarityrx/clarity-server/internal/search"
	"github.com/clarityrx/clarity-server/internal/service"
)

// SearchIndexHandle wraps the diary search index with Shutdownable.
type SearchIndexHandle struct {
	*search.DiaryIndex
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideSearchIndex provides the in-memory diary search index.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)

	index, err := search.NewDiaryIndex(log.Logger)
	if err != nil {
		return nil, err
	}

	return &SearchIndexHandle{DiaryIndex: index}, nil
}

// RebuildSearchIndex repopulates the in-memory index from the store.
// Call once at startup after the diary service is up.
func RebuildSearchIndex(i do.Injector) error {
	log := do.MustInvoke[*logger.Logger](i)
	diary := do.MustInvoke[*service.DiaryService](i)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := diary.RebuildIndex(ctx); err != nil {
		return err
	}

	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	if count, err := indexHandle.DocumentCount(); err == nil {
		log.Info("Search index rebuilt", "documents", count)
	}
	return nil
}
