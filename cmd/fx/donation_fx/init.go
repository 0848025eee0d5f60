package donation_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shepherd/internal/events"
	"shepherd/internal/repositories"
	"shepherd/internal/services"
)

var Module = fx.Provide(
	provideDonationService, provideDonationRepo)

func provideDonationRepo(db *gorm.DB) repositories.DonationRepository {
	return repositories.NewDonationRepository(db)
}

func provideDonationService(
	donationRepo repositories.DonationRepository,
	memberRepo repositories.MemberRepository,
	dispatcher *events.Dispatcher,
) services.DonationServiceInterface {
	return services.NewDonationService(donationRepo, memberRepo, dispatcher)
}
