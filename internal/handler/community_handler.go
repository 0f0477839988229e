package handler

import (
	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/dto"
	"ashi-remedies/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CommunityHandler handles Healing Circle HTTP requests
type CommunityHandler struct {
	service service.CommunityService
}

// NewCommunityHandler creates a new CommunityHandler instance
func NewCommunityHandler(service service.CommunityService) *CommunityHandler {
	return &CommunityHandler{service: service}
}

// Stories godoc
// @Summary List approved stories
// @Tags community
// @Produce json
// @Success 200 {array} domain.Story
// @Router /community/stories [get]
func (h *CommunityHandler) Stories(c *fiber.Ctx) error {
	stories, err := h.service.Stories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(stories)
}

// SubmitStory godoc
// @Summary Share a story
// @Description Queues a reader story for admin review
// @Tags community
// @Accept json
// @Produce json
// @Param request body dto.StorySubmissionRequest true "Story"
// @Success 201 {object} domain.Story
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /community/stories [post]
func (h *CommunityHandler) SubmitStory(c *fiber.Ctx) error {
	var req dto.StorySubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	story, err := h.service.SubmitStory(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(story)
}

// Articles godoc
// @Summary List expert articles
// @Tags community
// @Produce json
// @Success 200 {array} domain.ExpertArticle
// @Router /community/articles [get]
func (h *CommunityHandler) Articles(c *fiber.Ctx) error {
	articles, err := h.service.Articles(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(articles)
}

// CheckGuestLink godoc
// @Summary Check a guest invite link
// @Description Succeeds while the link is active
// @Tags guest
// @Produce json
// @Param token path string true "Invite token"
// @Success 200 {object} domain.GuestLink
// @Failure 403 {object} middleware.ErrorResponse
// @Router /guest/{token} [get]
func (h *CommunityHandler) CheckGuestLink(c *fiber.Ctx) error {
	link, err := h.service.CheckGuestLink(c.UserContext(), c.Params("token"))
	if err != nil {
		return err
	}
	return c.JSON(link)
}

// SubmitGuestPost godoc
// @Summary Submit a guest article
// @Description Queues an article written through an active invite link for admin review
// @Tags guest
// @Accept json
// @Produce json
// @Param token path string true "Invite token"
// @Param request body dto.GuestPostRequest true "Article"
// @Success 201 {object} domain.GuestPost
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /guest/{token}/posts [post]
func (h *CommunityHandler) SubmitGuestPost(c *fiber.Ctx) error {
	var req dto.GuestPostRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	post, err := h.service.SubmitGuestPost(c.UserContext(), c.Params("token"), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}
