package v1

import (
	"log"

	"qrupay/internal/config"
	"qrupay/internal/database"
	"qrupay/internal/delivery/http/handler"
	"qrupay/internal/delivery/http/middleware"
	"qrupay/internal/infrastructure/cache"
	"qrupay/internal/infrastructure/relay"
	"qrupay/internal/pkg/jwt"
	"qrupay/internal/repository"
	"qrupay/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, c *cache.Redis, jwtSvc jwt.Service, logger *log.Logger) {
	if r == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	medRepo := repository.NewPostgresMedicationRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	profileUC := usecase.NewProfileUsecase(profileRepo, c)
	medUC := usecase.NewMedicationUsecase(medRepo)
	qrUC := usecase.NewQRCodeUsecase(profileRepo, cfg.App.PublicOrigin)
	contactUC := usecase.NewContactUsecase(relay.NewFormRelay(cfg.Contact.RelayURL, logger))

	authGroup := r.Group("/auth")
	handler.NewAuthHandler(authUC).RegisterRoutes(authGroup)

	handler.NewContactHandler(contactUC).RegisterRoutes(r)

	protected := r.Group("", authMw.Middleware())

	profileGroup := protected.Group("/profile")
	handler.NewProfileHandler(profileUC).RegisterRoutes(profileGroup)
	handler.NewQRCodeHandler(qrUC).RegisterRoutes(profileGroup)

	medGroup := protected.Group("/medications")
	handler.NewMedicationHandler(medUC).RegisterRoutes(medGroup)
}
