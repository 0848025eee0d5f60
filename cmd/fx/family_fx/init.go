package family_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shepherd/internal/repositories"
	"shepherd/internal/services"
)

var Module = fx.Provide(
	provideFamilyService, provideFamilyRepo)

func provideFamilyRepo(db *gorm.DB) repositories.FamilyRepository {
	return repositories.NewFamilyRepository(db)
}

func provideFamilyService(familyRepo repositories.FamilyRepository) services.FamilyServiceInterface {
	return services.NewFamilyService(familyRepo)
}
