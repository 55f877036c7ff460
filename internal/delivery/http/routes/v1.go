package routes

import (
	"log"

	"qrupay/internal/config"
	"qrupay/internal/database"
	v1 "qrupay/internal/delivery/http/routes/v1"
	"qrupay/internal/infrastructure/cache"
	"qrupay/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, c *cache.Redis, jwtSvc jwt.Service, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, c, jwtSvc, logger)
}
