// Package di provides dependency injection configuration for the ClarityRx server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/clarityrx/clarity-server/internal/config"
	"github.com/clarityrx/clarity-server/internal/di/providers"
	"github.com/clarityrx/clarity-server/internal/logger"
	"github.com/clarityrx/clarity-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Catalog layer
	do.Provide(injector, providers.ProvideCatalog)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)

	// Business services
	do.Provide(injector, providers.ProvideOnboardingService)
	do.Provide(injector, providers.ProvideDiaryService)
	do.Provide(injector, providers.ProvideChatService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.CatalogHandle](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)

	_ = do.MustInvoke[*service.OnboardingService](injector)
	_ = do.MustInvoke[*service.DiaryService](injector)
	_ = do.MustInvoke[*service.ChatService](injector)

	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	// The in-memory search index starts empty on every boot.
	return providers.RebuildSearchIndex(injector)
}
