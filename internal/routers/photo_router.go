package routers

import (
	"organizer/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupPhotoRouter(router fiber.Router, server *cmd.Server) {
	photoHandler := server.PhotoHandler
	router.Post("/boxes/:id/photos", photoHandler.UploadPhoto)
	router.Get("/boxes/:id/photos", photoHandler.ListPhotos)
	router.Delete("/photos/:id", photoHandler.DeletePhoto)
}
