package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/uzmarket/bazaar-backend/internal/user"
)

// RequireAdmin gates a route group behind the admin_users table. A missing
// identity is 401; a known user without an active admin row is 403.
func RequireAdmin(repo Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := user.GetUserIDFromCtx(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		ok, err := repo.IsAdmin(userID)
		if err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("admin check failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to verify access"})
		}
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
		}
		return c.Next()
	}
}
