package handlers

import (
	"net/http"

	"organizer/internal/middleware"
	"organizer/internal/services"

	"github.com/gofiber/fiber/v2"
)

type PhotoHandler struct {
	service services.PhotoService
}

func NewPhotoHandler(service services.PhotoService) *PhotoHandler {
	return &PhotoHandler{service: service}
}

func (h *PhotoHandler) UploadPhoto(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid photo"})
	}
	photo, err := h.service.AttachPhoto(middleware.OwnerID(c), c.Params("id"), fileHeader)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(photo)
}

func (h *PhotoHandler) ListPhotos(c *fiber.Ctx) error {
	photos, err := h.service.ListPhotos(middleware.OwnerID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(photos)
}

func (h *PhotoHandler) DeletePhoto(c *fiber.Ctx) error {
	if err := h.service.DeletePhoto(middleware.OwnerID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
