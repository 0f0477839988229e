package middleware

import (
	"strings"

	"ashi-remedies/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Keys for validated values stored in fiber.Ctx locals
const (
	ValidatedQueryKey  = "validated_query"
	ValidatedTagKey    = "validated_tag"
	ValidatedGenderKey = "validated_gender"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateSearchParams validates the q and tag query parameters of the catalog
func (vm *ValidationMiddleware) ValidateSearchParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := strings.TrimSpace(c.Query("q"))
		tag := strings.TrimSpace(c.Query("tag"))

		if errors := vm.validator.ValidateSearchParams(query, tag); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(ValidatedQueryKey, query)
		c.Locals(ValidatedTagKey, tag)
		return c.Next()
	}
}

// ValidateSessionID validates the :id parameter of quiz session routes
func (vm *ValidationMiddleware) ValidateSessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errors := vm.validator.ValidateSessionID(c.Params("id")); len(errors) > 0 {
			return errors
		}
		return c.Next()
	}
}

// ValidateZoneParams validates the :zone parameter and gender query of the body map
func (vm *ValidationMiddleware) ValidateZoneParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		gender := c.Query("gender")
		if errors := vm.validator.ValidateZoneParams(c.Params("zone"), gender); len(errors) > 0 {
			return errors
		}
		c.Locals(ValidatedGenderKey, gender)
		return c.Next()
	}
}

// ValidateResourceID validates the :id parameter of remedy, story and article routes
func (vm *ValidationMiddleware) ValidateResourceID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errors := vm.validator.ValidateResourceID("id", c.Params("id")); len(errors) > 0 {
			return errors
		}
		return c.Next()
	}
}

// ValidateGuestToken validates the :token parameter of guest portal routes
func (vm *ValidationMiddleware) ValidateGuestToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errors := vm.validator.ValidateResourceID("token", c.Params("token")); len(errors) > 0 {
			return errors
		}
		return c.Next()
	}
}
