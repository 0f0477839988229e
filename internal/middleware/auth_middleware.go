package middleware

import (
	"strings"

	"ashi-remedies/internal/logger"
	"ashi-remedies/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	AdminClaimsKey      = "adminClaims" // Key for storing the admin claims in fiber.Ctx locals
)

// AdminOnly protects the admin routes by requiring a valid admin token.
// The validated claims are stored in the context under AdminClaimsKey.
func AdminOnly(adminService service.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "MISSING_AUTH_HEADER",
				Message: "Authorization header is missing",
				Status:  fiber.StatusUnauthorized,
			})
		}

		if strings.TrimSpace(authHeader) == strings.TrimSpace(BearerSchema) {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "EMPTY_TOKEN",
				Message: "Token is empty",
				Status:  fiber.StatusUnauthorized,
			})
		}

		if !strings.HasPrefix(authHeader, BearerSchema) {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_AUTH_SCHEME",
				Message: "Authorization scheme is not Bearer",
				Status:  fiber.StatusUnauthorized,
			})
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))

		claims, err := adminService.ValidateToken(c.Context(), tokenString)
		if err != nil {
			logger.Get().Debug("Admin token rejected", zap.Error(err), zap.String("path", c.Path()))
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: "Admin token is invalid or expired",
				Status:  fiber.StatusUnauthorized,
			})
		}

		c.Locals(AdminClaimsKey, claims)
		return c.Next()
	}
}
