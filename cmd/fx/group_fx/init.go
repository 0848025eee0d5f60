package group_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shepherd/internal/repositories"
	"shepherd/internal/services"
)

var Module = fx.Provide(
	provideGroupService, provideGroupRepo)

func provideGroupRepo(db *gorm.DB) repositories.GroupRepository {
	return repositories.NewGroupRepository(db)
}

func provideGroupService(
	groupRepo repositories.GroupRepository,
	memberRepo repositories.MemberRepository,
) services.GroupServiceInterface {
	return services.NewGroupService(groupRepo, memberRepo)
}
