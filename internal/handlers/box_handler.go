package handlers

import (
	"net/http"
	"strconv"

	"organizer/internal/mapper"
	"organizer/internal/middleware"
	"organizer/internal/services"

	"github.com/gofiber/fiber/v2"
)

type BoxHandler struct {
	service     services.BoxService
	codeService services.CodeService
	qrService   services.QRService
}

func NewBoxHandler(service services.BoxService, codeService services.CodeService, qrService services.QRService) *BoxHandler {
	return &BoxHandler{service: service, codeService: codeService, qrService: qrService}
}

func (h *BoxHandler) CreateBox(c *fiber.Ctx) error {
	var req struct {
		ID    string `json:"id"`
		Code  string `json:"code"`
		Title string `json:"title"`
		Room  string `json:"room"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	if req.Title == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "title is required"})
	}
	if req.Code == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "code is required"})
	}

	box, err := h.service.CreateBox(middleware.OwnerID(c), req.ID, req.Code, req.Title, req.Room)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": err.Error()})
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToBoxGetDTO(box, h.qrService.EncodePayload(box)))
}

func (h *BoxHandler) GetBoxByID(c *fiber.Ctx) error {
	box, err := h.service.GetBoxByID(middleware.OwnerID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapper.ToBoxGetDTO(box, h.qrService.EncodePayload(box)))
}

func (h *BoxHandler) UpdateBox(c *fiber.Ctx) error {
	var req struct {
		Code  string `json:"code"`
		Title string `json:"title"`
		Room  string `json:"room"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	if req.Title == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "title is required"})
	}

	box, err := h.service.UpdateBox(middleware.OwnerID(c), c.Params("id"), req.Code, req.Title, req.Room)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapper.ToBoxGetDTO(box, h.qrService.EncodePayload(box)))
}

func (h *BoxHandler) DeleteBox(c *fiber.Ctx) error {
	if err := h.service.DeleteBox(middleware.OwnerID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *BoxHandler) ListBoxes(c *fiber.Ctx) error {
	ownerID := middleware.OwnerID(c)
	filter := c.Query("filter")
	order := c.Query("order")
	if filter == "" && order == "" {
		boxes, err := h.service.GetBoxes(ownerID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(boxes)
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	boxes, err := h.service.SearchBoxes(ownerID, filter, order, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(boxes)
}

// NextCode suggests a code for a room. The client shows it as editable
// text; nothing is persisted here.
func (h *BoxHandler) NextCode(c *fiber.Ctx) error {
	room := c.Query("room")
	if room == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "room is required"})
	}
	code, err := h.codeService.NextCode(middleware.OwnerID(c), room)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(map[string]interface{}{"code": code})
}

func (h *BoxHandler) BoxQRCode(c *fiber.Ctx) error {
	box, err := h.service.GetBoxByID(middleware.OwnerID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	size, _ := strconv.Atoi(c.Query("size"))
	png, err := h.qrService.RenderPNG(box, size)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
