package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shepherd/cmd/fx/attendance_fx"
	"shepherd/cmd/fx/audit_fx"
	"shepherd/cmd/fx/auth_fx"
	"shepherd/cmd/fx/controllers_fx"
	"shepherd/cmd/fx/db_fx"
	"shepherd/cmd/fx/donation_fx"
	"shepherd/cmd/fx/event_fx"
	"shepherd/cmd/fx/events_fx"
	"shepherd/cmd/fx/family_fx"
	"shepherd/cmd/fx/group_fx"
	"shepherd/cmd/fx/mail_fx"
	"shepherd/cmd/fx/member_fx"
	"shepherd/cmd/fx/memcache_fx"
	"shepherd/cmd/fx/volunteer_fx"
	"shepherd/internal/api"
	"shepherd/internal/events"
	"shepherd/internal/infra"
	mem "shepherd/pkg/memcache"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		audit_fx.Module,
		events_fx.Module,

		auth_fx.Module,
		member_fx.Module,
		family_fx.Module,
		donation_fx.Module,
		event_fx.Module,
		group_fx.Module,
		attendance_fx.Module,
		volunteer_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideRouter(ctrl api.Controllers, revoked mem.RevokedTokenStore) *gin.Engine {
	return api.NewRouter(ctrl, revoked)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB, dispatcher *events.Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			if err := dispatcher.Close(); err != nil {
				log.Printf("Error closing event dispatcher: %v", err)
			}
			infra.ClosePostgresql(db)
			return nil
		},
	})
}
