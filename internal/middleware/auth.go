package middleware

import (
	"net/http"
	"strings"

	"organizer/internal/services"

	"github.com/gofiber/fiber/v2"
)

const OwnerIDKey = "ownerID"

// RequireAuth validates the bearer token and stores the owner id in the
// request locals. Every data route is scoped to that owner.
func RequireAuth(authService services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(http.StatusUnauthorized).JSON(map[string]interface{}{"error": "not authenticated"})
		}
		ownerID, err := authService.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(map[string]interface{}{"error": "not authenticated"})
		}
		c.Locals(OwnerIDKey, ownerID)
		return c.Next()
	}
}

// OwnerID reads the owner id set by RequireAuth.
func OwnerID(c *fiber.Ctx) string {
	ownerID, _ := c.Locals(OwnerIDKey).(string)
	return ownerID
}
