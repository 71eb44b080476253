package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"tokobaju/internal/models"
	"tokobaju/internal/services"
)

// userLocalKey is where AuthRequired stores the freshly loaded user.
const userLocalKey = "currentUser"

// AuthRequired verifies the bearer token and re-fetches the current user,
// rejecting missing, invalid and expired tokens as well as tokens held by
// deactivated accounts. The fresh user is stored in the request locals.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		user, err := authService.Authenticate(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// RoleRequired allows the request through when no roles are required or the
// authenticated user holds at least one of them. Must run after AuthRequired.
func RoleRequired(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication is required",
			})
		}
		if !user.HasAnyRole(roles...) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Insufficient role for this operation",
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the user AuthRequired stored for this request, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalKey).(*models.User)
	return user
}
