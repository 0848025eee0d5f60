package volunteer_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shepherd/internal/repositories"
	"shepherd/internal/services"
)

var Module = fx.Provide(
	provideVolunteerService, provideVolunteerRepo)

func provideVolunteerRepo(db *gorm.DB) repositories.VolunteerRepository {
	return repositories.NewVolunteerRepository(db)
}

func provideVolunteerService(
	volunteerRepo repositories.VolunteerRepository,
	memberRepo repositories.MemberRepository,
) services.VolunteerServiceInterface {
	return services.NewVolunteerService(volunteerRepo, memberRepo)
}
