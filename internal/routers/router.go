package routers

import (
	"organizer/cmd"
	"organizer/internal/middleware"
	"organizer/internal/models"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	SetupAuthRouter(app, server)

	app.Get("/rooms", func(c *fiber.Ctx) error {
		rooms := make([]map[string]interface{}, 0, len(models.Rooms))
		for _, room := range models.Rooms {
			rooms = append(rooms, map[string]interface{}{
				"name":  room,
				"color": models.RoomColor(room),
			})
		}
		return c.JSON(rooms)
	})

	authenticated := app.Group("", middleware.RequireAuth(server.AuthService))
	SetupBoxRouter(authenticated, server)
	SetupPhotoRouter(authenticated, server)
	SetupScanRouter(authenticated, server)
	SetupJanitorRouter(authenticated, server)
}
