package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bazaar/internal/auth"
	"bazaar/internal/domain"
	applog "bazaar/internal/log"
)

const claimsKey = "claims"

// ClaimsFrom returns the verified claims attached by the auth middleware.
func ClaimsFrom(c *fiber.Ctx) (domain.Claims, bool) {
	claims, ok := c.Locals(claimsKey).(domain.Claims)
	return claims, ok
}

// RequireAuth enforces a valid bearer token. Missing or malformed headers
// are 401; a token that fails verification is 400, matching the original
// wire behavior.
func RequireAuth(tokens *auth.TokenCodec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := auth.FromHeader(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			applog.Security(c, "auth.token.missing", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No token provided"})
		}
		claims, err := tokens.Verify(raw)
		if err != nil {
			applog.Security(c, "auth.token.invalid", nil)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid token"})
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// OptionalAuth attaches claims when a valid token is present and never
// rejects the request. A missing or garbage token just means anonymous.
func OptionalAuth(tokens *auth.TokenCodec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw, err := auth.FromHeader(c.Get(fiber.HeaderAuthorization)); err == nil {
			if claims, err := tokens.Verify(raw); err == nil {
				c.Locals(claimsKey, claims)
			}
		}
		return c.Next()
	}
}

// RequireAdmin sits behind RequireAuth and gates admin-only actions.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFrom(c)
		if !ok || !auth.CanPerform(&claims, auth.ActionModerateListing, "") {
			applog.Security(c, "access.denied.admin", map[string]any{"user": claims.ID})
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Admins only"})
		}
		return c.Next()
	}
}
