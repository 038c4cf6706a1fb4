package auth

import (
	"github.com/gofiber/fiber/v2"

	"edubridge_backend/internals/constants"
)

// IsSuperAdmin only lets super_admin/operator tokens through. Every reviewing
// and wallet-adjusting endpoint sits behind this guard.
func IsSuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := Role(c)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Role not resolved")
		}
		if !constants.IsAdminRole(role) {
			return fiber.NewError(fiber.StatusForbidden, "Super admin access only")
		}
		return c.Next()
	}
}

// IsSubmitter allows consultancy/agent tokens (and admins) to reach the fee
// submission endpoints.
func IsSubmitter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := Role(c)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Role not resolved")
		}
		if constants.IsAdminRole(role) {
			return c.Next()
		}
		for _, r := range constants.SubmitterRoles {
			if r == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Role cannot submit fees")
	}
}
