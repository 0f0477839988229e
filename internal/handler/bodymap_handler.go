package handler

import (
	"ashi-remedies/internal/service"

	"github.com/gofiber/fiber/v2"
)

// BodyMapHandler handles visual checkup HTTP requests
type BodyMapHandler struct {
	service service.BodyMapService
}

// NewBodyMapHandler creates a new BodyMapHandler instance
func NewBodyMapHandler(service service.BodyMapService) *BodyMapHandler {
	return &BodyMapHandler{service: service}
}

// Zones godoc
// @Summary List body zones
// @Tags bodymap
// @Produce json
// @Success 200 {array} dto.BodyZoneSummary
// @Router /body-zones [get]
func (h *BodyMapHandler) Zones(c *fiber.Ctx) error {
	zones, err := h.service.Zones(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(zones)
}

// Zone godoc
// @Summary Get a body zone
// @Description Returns the symptoms of a zone for a silhouette and the remedies tagged with them
// @Tags bodymap
// @Produce json
// @Param zone path string true "Zone ID"
// @Param gender query string false "female (default) or male"
// @Success 200 {object} dto.BodyZoneResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /body-zones/{zone} [get]
func (h *BodyMapHandler) Zone(c *fiber.Ctx) error {
	zone, err := h.service.Zone(c.UserContext(), c.Params("zone"), c.Query("gender"))
	if err != nil {
		return err
	}
	return c.JSON(zone)
}
