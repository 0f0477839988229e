package handler

import (
	"ashi-remedies/internal/middleware"
	"ashi-remedies/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RemedyHandler handles remedy catalog HTTP requests
type RemedyHandler struct {
	service service.CatalogService
}

// NewRemedyHandler creates a new RemedyHandler instance
func NewRemedyHandler(service service.CatalogService) *RemedyHandler {
	return &RemedyHandler{service: service}
}

// Search godoc
// @Summary Search remedies
// @Description Filters the catalog by a free-text query on title and description and by a symptom tag
// @Tags remedies
// @Produce json
// @Param q query string false "Free-text query"
// @Param tag query string false "Symptom tag, All for every remedy"
// @Success 200 {object} dto.RemedyListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /remedies [get]
func (h *RemedyHandler) Search(c *fiber.Ctx) error {
	query, ok := c.Locals(middleware.ValidatedQueryKey).(string)
	if !ok {
		query = c.Query("q")
	}
	tag, ok := c.Locals(middleware.ValidatedTagKey).(string)
	if !ok {
		tag = c.Query("tag")
	}

	resp, err := h.service.Search(c.UserContext(), query, tag)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Tags godoc
// @Summary List symptom tags
// @Description Returns the filter chips of the catalog page, starting with All
// @Tags remedies
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} middleware.ErrorResponse
// @Router /remedies/tags [get]
func (h *RemedyHandler) Tags(c *fiber.Ctx) error {
	tags, err := h.service.Tags(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(tags)
}

// GetRemedy godoc
// @Summary Get a remedy
// @Description Returns one remedy of the catalog
// @Tags remedies
// @Produce json
// @Param id path string true "Remedy ID"
// @Success 200 {object} domain.Remedy
// @Failure 404 {object} middleware.ErrorResponse
// @Router /remedies/{id} [get]
func (h *RemedyHandler) GetRemedy(c *fiber.Ctx) error {
	remedy, err := h.service.GetRemedy(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(remedy)
}
