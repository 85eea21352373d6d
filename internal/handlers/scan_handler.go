package handlers

import (
	"net/http"

	"organizer/internal/mapper"
	"organizer/internal/middleware"
	"organizer/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ScanHandler struct {
	lookupService services.LookupService
	qrService     services.QRService
}

func NewScanHandler(lookupService services.LookupService, qrService services.QRService) *ScanHandler {
	return &ScanHandler{lookupService: lookupService, qrService: qrService}
}

// ResolvePayload takes a raw scanned string and resolves it to a box.
// Unrecognized payloads come back 422, unknown boxes 404.
func (h *ScanHandler) ResolvePayload(c *fiber.Ctx) error {
	var req struct {
		Payload string `json:"payload"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	box, err := h.lookupService.Resolve(middleware.OwnerID(c), req.Payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapper.ToBoxGetDTO(box, h.qrService.EncodePayload(box)))
}

// DeepLink serves the web-URL form of a box link, resolving through the
// same lookup flow as a scan.
func (h *ScanHandler) DeepLink(c *fiber.Ctx) error {
	key := &services.LookupKey{Kind: services.KeyByID, Value: c.Params("id")}
	box, err := h.lookupService.ResolveKey(middleware.OwnerID(c), key)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapper.ToBoxGetDTO(box, h.qrService.EncodePayload(box)))
}
