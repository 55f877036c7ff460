package routes

import (
	"log"
	"time"

	"qrupay/internal/config"
	"qrupay/internal/database"
	"qrupay/internal/delivery/http/handler"
	"qrupay/internal/delivery/http/middleware"
	"qrupay/internal/infrastructure/cache"
	"qrupay/internal/pkg/jwt"
	"qrupay/internal/repository"
	"qrupay/internal/usecase"
	"qrupay/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  *cache.Redis
	hub    *ws.Hub
	jwtSvc jwt.Service
	logger *log.Logger
}

func NewRegistry(cfg config.Config, db database.DB, c *cache.Redis, hub *ws.Hub, jwtSvc jwt.Service, logger *log.Logger) *Registry {
	return &Registry{cfg: cfg, db: db, cache: c, hub: hub, jwtSvc: jwtSvc, logger: logger}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerEmergency(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	handler.NewHealthHandler(r.db).RegisterRoutes(app)
}

// The public emergency view lives at the root, not under /api, because
// its path is baked verbatim into printed QR codes.
func (r *Registry) registerEmergency(app *fiber.App) {
	profileRepo := repository.NewPostgresProfileRepository(r.db)
	emergencyUC := usecase.NewEmergencyUsecase(profileRepo, r.cache)

	limiter := middleware.NewRateLimitMiddleware(r.cache, "ratelimit:emergency", 30, time.Minute)
	grp := app.Group("", limiter.Middleware())
	handler.NewEmergencyHandler(emergencyUC).RegisterRoutes(grp)
}

func (r *Registry) registerWS(app *fiber.App) {
	wsHandler := ws.NewHandler(r.hub, r.jwtSvc, r.logger)
	app.Get("/ws/reminders", wsHandler.HandleRemindersWS)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.cfg, r.db, r.cache, r.jwtSvc, r.logger)
}
