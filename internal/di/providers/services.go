package providers

import (
	"github.com/samber/do/v2"

	"github.com/clarityrx/clarity-server/internal/logger"
	"github.com/clarityrx/clarity-server/internal/service"
)

// ProvideOnboardingService provides the survey and recommendation service.
func ProvideOnboardingService(i do.Injector) (*service.OnboardingService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	catalogHandle := do.MustInvoke[*CatalogHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewOnboardingService(catalogHandle.Service, storeHandle.Store, log.Logger), nil
}

// ProvideDiaryService provides the dose diary service.
func ProvideDiaryService(i do.Injector) (*service.DiaryService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	catalogHandle := do.MustInvoke[*CatalogHandle](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewDiaryService(storeHandle.Store, catalogHandle.Service, indexHandle.DiaryIndex, log.Logger), nil
}

// ProvideChatService provides the rule-based assistant service.
func ProvideChatService(i do.Injector) (*service.ChatService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewChatService(storeHandle.Store, log.Logger), nil
}
