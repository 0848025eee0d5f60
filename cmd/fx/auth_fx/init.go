package auth_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"shepherd/internal/repositories"
	"shepherd/internal/services"
	mem "shepherd/pkg/memcache"
)

var Module = fx.Options(
	fx.Provide(provideAuthService, provideUserRepo),
	fx.Invoke(seedBootstrapAdmin),
)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAuthService(
	userRepo repositories.UserRepository,
	memberRepo repositories.MemberRepository,
	audit services.AuditServiceInterface,
	revoked mem.RevokedTokenStore,
) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, memberRepo, audit, revoked)
}

func seedBootstrapAdmin(userRepo repositories.UserRepository) error {
	return services.EnsureBootstrapAdmin(context.Background(), userRepo)
}
