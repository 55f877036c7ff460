package app

import (
	"context"
	"fmt"
	"strings"

	"qrupay/internal/config"
	"qrupay/internal/delivery/http/middleware"
	"qrupay/internal/delivery/http/routes"
	"qrupay/internal/reminder"
	"qrupay/internal/repository"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap wires the container, HTTP surface, reminder push hub, and
// scheduler. The returned cleanup stops the scheduler and closes the
// database.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, container)

	registry := routes.NewRegistry(cfg, container.DB, container.Cache, container.Hub, container.JWT, container.Logger)
	registry.Register(f)

	go container.Hub.Run()

	schedCtx, stopScheduler := context.WithCancel(context.Background())
	medRepo := repository.NewPostgresMedicationRepository(container.DB)
	scheduler := reminder.NewScheduler(medRepo, container.Hub, cfg.Reminder.ScanInterval, container.Logger)
	go scheduler.Run(schedCtx)

	cleanup := func() error {
		stopScheduler()
		return container.Close()
	}

	return &App{Fiber: f, Container: container}, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, container *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(container.Logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
