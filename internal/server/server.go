package server

import (
	"organizer/cmd"
	"organizer/internal/config"
	"organizer/internal/routers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func NewApp(server *cmd.Server, cfg *config.Configuration) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:   cfg.Server.RequestConfig.SizeLimit * 1024 * 1024,
		Concurrency: cfg.Server.Concurrency * 1024,
		AppName:     "organizer",
	})

	app.Use(logger.New())
	routers.SetupRoutes(app, server)

	return app
}
