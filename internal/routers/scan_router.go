package routers

import (
	"organizer/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupScanRouter(router fiber.Router, server *cmd.Server) {
	scanHandler := server.ScanHandler
	router.Post("/scan", scanHandler.ResolvePayload)
	// Deep-link entry: the web-URL payload form routes here.
	router.Get("/box/:id", scanHandler.DeepLink)
}
