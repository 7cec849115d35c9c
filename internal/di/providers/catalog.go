package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/clarityrx/clarity-server/internal/catalog"
	"github.com/clarityrx/clarity-server/internal/config"
	"github.com/clarityrx/clarity-server/internal/logger"
)

// CatalogHandle wraps the catalog service with its file-watch lifecycle.
type CatalogHandle struct {
	*catalog.Service
	cancel context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (h *CatalogHandle) Shutdown() error {
	h.cancel()
	return nil
}

// ProvideCatalog provides the product catalog, hot-reloading from file
// when a catalog path is configured.
func ProvideCatalog(i do.Injector) (*CatalogHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	svc, err := catalog.NewService(cfg.Catalog.Path, log.Logger)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := svc.Watch(ctx); err != nil && ctx.Err() == nil {
			log.Warn("Catalog watcher stopped", "error", err)
		}
	}()

	if cfg.Catalog.Path != "" {
		log.Info("Catalog loaded from file", "path", cfg.Catalog.Path, "products", len(svc.Catalog()))
	} else {
		log.Info("Using built-in catalog", "products", len(svc.Catalog()))
	}

	return &CatalogHandle{Service: svc, cancel: cancel}, nil
}
