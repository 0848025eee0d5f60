package member_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shepherd/internal/events"
	"shepherd/internal/repositories"
	"shepherd/internal/services"
)

var Module = fx.Provide(
	provideMemberService, provideMemberRepo)

func provideMemberRepo(db *gorm.DB) repositories.MemberRepository {
	return repositories.NewMemberRepository(db)
}

func provideMemberService(
	memberRepo repositories.MemberRepository,
	familyRepo repositories.FamilyRepository,
	dispatcher *events.Dispatcher,
) services.MemberServiceInterface {
	return services.NewMemberService(memberRepo, familyRepo, dispatcher)
}
