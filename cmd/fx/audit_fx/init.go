package audit_fx

import (
	"go.uber.org/fx"

	"shepherd/internal/services"
)

var Module = fx.Provide(provideAuditService)

func provideAuditService() services.AuditServiceInterface {
	return services.NewAuditService()
}
