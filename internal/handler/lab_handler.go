package handler

import (
	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/dto"
	"ashi-remedies/internal/service"

	"github.com/gofiber/fiber/v2"
)

// LabHandler handles Veda Lab HTTP requests
type LabHandler struct {
	service service.LabService
}

// NewLabHandler creates a new LabHandler instance
func NewLabHandler(service service.LabService) *LabHandler {
	return &LabHandler{service: service}
}

// Ingredients godoc
// @Summary List pantry ingredients
// @Tags lab
// @Produce json
// @Success 200 {array} domain.Ingredient
// @Router /ingredients [get]
func (h *LabHandler) Ingredients(c *fiber.Ctx) error {
	ingredients, err := h.service.Ingredients(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(ingredients)
}

// Match godoc
// @Summary Mix ingredients
// @Description Finds the first remedy whose recipe uses every selected ingredient
// @Tags lab
// @Accept json
// @Produce json
// @Param request body dto.LabMatchRequest true "Selected ingredient IDs"
// @Success 200 {object} dto.LabMatchResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /lab/match [post]
func (h *LabHandler) Match(c *fiber.Ctx) error {
	var req dto.LabMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	resp, err := h.service.Match(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
