package handler

import (
	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/dto"
	"ashi-remedies/internal/logger"
	"ashi-remedies/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminHandler handles the admin console API
type AdminHandler struct {
	admin     service.AdminService
	community service.CommunityService
}

// NewAdminHandler creates a new AdminHandler instance
func NewAdminHandler(admin service.AdminService, community service.CommunityService) *AdminHandler {
	return &AdminHandler{admin: admin, community: community}
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		logger.Get().Debug("Invalid request body", zap.String("path", c.Path()), zap.Error(err))
		return domain.NewInvalidInputError("Invalid request body")
	}
	return nil
}

// Login godoc
// @Summary Admin login
// @Description Exchanges the admin password for a bearer token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Password"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse "Login disabled"
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Password == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("password")}
	}
	token, err := h.admin.Login(c.UserContext(), req.Password)
	if err != nil {
		return err
	}
	return c.JSON(token)
}

// PendingStories godoc
// @Summary List stories awaiting review
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} domain.Story
// @Failure 401 {object} middleware.ErrorResponse
// @Router /admin/stories/pending [get]
func (h *AdminHandler) PendingStories(c *fiber.Ctx) error {
	stories, err := h.community.PendingStories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(stories)
}

// ApproveStory godoc
// @Summary Approve a story
// @Description Moves a pending story to the top of the live list
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Story ID"
// @Success 200 {object} domain.Story
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/stories/{id}/approve [post]
func (h *AdminHandler) ApproveStory(c *fiber.Ctx) error {
	story, err := h.community.ApproveStory(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(story)
}

// RejectStory godoc
// @Summary Reject a pending story
// @Tags admin
// @Security ApiKeyAuth
// @Param id path string true "Story ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/stories/{id} [delete]
func (h *AdminHandler) RejectStory(c *fiber.Ctx) error {
	if err := h.community.RejectStory(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteLiveStory godoc
// @Summary Remove a published story
// @Tags admin
// @Security ApiKeyAuth
// @Param id path string true "Story ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/stories/live/{id} [delete]
func (h *AdminHandler) DeleteLiveStory(c *fiber.Ctx) error {
	if err := h.community.DeleteLiveStory(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteArticle godoc
// @Summary Remove an expert article
// @Tags admin
// @Security ApiKeyAuth
// @Param id path string true "Article ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/articles/{id} [delete]
func (h *AdminHandler) DeleteArticle(c *fiber.Ctx) error {
	if err := h.community.DeleteArticle(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReplaceRemedies godoc
// @Summary Replace the remedy catalog
// @Tags admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body []domain.Remedy true "Catalog"
// @Success 200 {object} dto.ContentUpdateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /admin/remedies [put]
func (h *AdminHandler) ReplaceRemedies(c *fiber.Ctx) error {
	var remedies []domain.Remedy
	if err := parseBody(c, &remedies); err != nil {
		return err
	}
	resp, err := h.admin.ReplaceRemedies(c.UserContext(), remedies)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// AddRemedy godoc
// @Summary Add a remedy
// @Description Adds a remedy from the admin form to the top of the catalog
// @Tags admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.ManualRemedyRequest true "Remedy form"
// @Success 201 {object} domain.Remedy
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /admin/remedies [post]
func (h *AdminHandler) AddRemedy(c *fiber.Ctx) error {
	var req dto.ManualRemedyRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	remedy, err := h.admin.AddRemedy(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(remedy)
}

// UpdateRemedy godoc
// @Summary Edit a remedy
// @Tags admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Remedy ID"
// @Param request body dto.ManualRemedyRequest true "Remedy form"
// @Success 200 {object} domain.Remedy
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/remedies/{id} [put]
func (h *AdminHandler) UpdateRemedy(c *fiber.Ctx) error {
	var req dto.ManualRemedyRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	remedy, err := h.admin.UpdateRemedy(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(remedy)
}

// DeleteRemedy godoc
// @Summary Delete a remedy
// @Tags admin
// @Security ApiKeyAuth
// @Param id path string true "Remedy ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/remedies/{id} [delete]
func (h *AdminHandler) DeleteRemedy(c *fiber.Ctx) error {
	if err := h.admin.DeleteRemedy(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReplaceIngredients godoc
// @Summary Replace the lab pantry
// @Tags admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body []domain.Ingredient true "Pantry"
// @Success 200 {object} dto.ContentUpdateResponse
// @Router /admin/ingredients [put]
func (h *AdminHandler) ReplaceIngredients(c *fiber.Ctx) error {
	var ingredients []domain.Ingredient
	if err := parseBody(c, &ingredients); err != nil {
		return err
	}
	resp, err := h.admin.ReplaceIngredients(c.UserContext(), ingredients)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ReplaceQuiz godoc
// @Summary Replace the quiz question bank
// @Tags admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body []domain.QuizQuestion true "Questions"
// @Success 200 {object} dto.ContentUpdateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /admin/quiz [put]
func (h *AdminHandler) ReplaceQuiz(c *fiber.Ctx) error {
	var questions []domain.QuizQuestion
	if err := parseBody(c, &questions); err != nil {
		return err
	}
	resp, err := h.admin.ReplaceQuiz(c.UserContext(), questions)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ReplaceBodyZones godoc
// @Summary Replace the body map zones
// @Tags admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body map[string]domain.BodyZone true "Zones by ID"
// @Success 200 {object} dto.ContentUpdateResponse
// @Router /admin/body-zones [put]
func (h *AdminHandler) ReplaceBodyZones(c *fiber.Ctx) error {
	var zones map[string]domain.BodyZone
	if err := parseBody(c, &zones); err != nil {
		return err
	}
	resp, err := h.admin.ReplaceBodyZones(c.UserContext(), zones)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateSEO godoc
// @Summary Update the site SEO settings
// @Tags admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body domain.SiteSEO true "SEO settings"
// @Success 200 {object} dto.ContentUpdateResponse
// @Router /admin/seo [put]
func (h *AdminHandler) UpdateSEO(c *fiber.Ctx) error {
	var seo domain.SiteSEO
	if err := parseBody(c, &seo); err != nil {
		return err
	}
	resp, err := h.admin.UpdateSEO(c.UserContext(), &seo)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SEO godoc
// @Summary Get the site SEO settings
// @Tags seo
// @Produce json
// @Success 200 {object} domain.SiteSEO
// @Router /seo [get]
func (h *AdminHandler) SEO(c *fiber.Ctx) error {
	seo, err := h.admin.SEO(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(seo)
}

// GuestLinks godoc
// @Summary List guest invite links
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} domain.GuestLink
// @Router /admin/guest-links [get]
func (h *AdminHandler) GuestLinks(c *fiber.Ctx) error {
	links, err := h.community.GuestLinks(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(links)
}

// CreateGuestLink godoc
// @Summary Generate a guest invite link
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 201 {object} domain.GuestLink
// @Router /admin/guest-links [post]
func (h *AdminHandler) CreateGuestLink(c *fiber.Ctx) error {
	link, err := h.community.CreateGuestLink(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

// ToggleGuestLink godoc
// @Summary Pause or reactivate a guest link
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Link ID"
// @Success 200 {object} domain.GuestLink
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/guest-links/{id}/toggle [post]
func (h *AdminHandler) ToggleGuestLink(c *fiber.Ctx) error {
	link, err := h.community.ToggleGuestLink(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(link)
}

// DeleteGuestLink godoc
// @Summary Delete a guest link
// @Tags admin
// @Security ApiKeyAuth
// @Param id path string true "Link ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/guest-links/{id} [delete]
func (h *AdminHandler) DeleteGuestLink(c *fiber.Ctx) error {
	if err := h.community.DeleteGuestLink(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PendingGuestPosts godoc
// @Summary List guest posts awaiting review
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} domain.GuestPost
// @Router /admin/guest-posts [get]
func (h *AdminHandler) PendingGuestPosts(c *fiber.Ctx) error {
	posts, err := h.community.PendingGuestPosts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

// ApproveGuestPost godoc
// @Summary Publish a guest post
// @Description Publishes the post at the top of the expert articles
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} domain.ExpertArticle
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/guest-posts/{id}/approve [post]
func (h *AdminHandler) ApproveGuestPost(c *fiber.Ctx) error {
	article, err := h.community.ApproveGuestPost(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(article)
}

// RejectGuestPost godoc
// @Summary Reject a guest post
// @Tags admin
// @Security ApiKeyAuth
// @Param id path string true "Post ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /admin/guest-posts/{id} [delete]
func (h *AdminHandler) RejectGuestPost(c *fiber.Ctx) error {
	if err := h.community.RejectGuestPost(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Founder godoc
// @Summary Get the founder profile
// @Tags founder
// @Produce json
// @Success 200 {object} domain.FounderProfile
// @Router /founder [get]
func (h *AdminHandler) Founder(c *fiber.Ctx) error {
	founder, err := h.admin.Founder(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(founder)
}

// UpdateFounder godoc
// @Summary Replace the founder profile
// @Tags admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body domain.FounderProfile true "Profile"
// @Success 200 {object} dto.ContentUpdateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /admin/founder [put]
func (h *AdminHandler) UpdateFounder(c *fiber.Ctx) error {
	var founder domain.FounderProfile
	if err := parseBody(c, &founder); err != nil {
		return err
	}
	resp, err := h.admin.UpdateFounder(c.UserContext(), &founder)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
