package event_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shepherd/internal/repositories"
	"shepherd/internal/services"
)

var Module = fx.Provide(
	provideEventService, provideEventRepo)

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideEventService(
	eventRepo repositories.EventRepository,
	memberRepo repositories.MemberRepository,
) services.EventServiceInterface {
	return services.NewEventService(eventRepo, memberRepo)
}
