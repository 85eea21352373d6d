package routers

import (
	"organizer/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupJanitorRouter(router fiber.Router, server *cmd.Server) {
	janitor := server.JanitorService
	router.Post("/janitor/clean", func(ctx *fiber.Ctx) error {
		err := janitor.ForceStartCleanCycle()
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{})
	})
	router.Get("/janitor/status", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"cleaning": janitor.IsCleaning(),
		})
	})
}
