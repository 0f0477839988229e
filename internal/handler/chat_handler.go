package handler

import (
	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/dto"
	"ashi-remedies/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler handles Vedji assistant HTTP requests
type ChatHandler struct {
	service service.ChatService
}

// NewChatHandler creates a new ChatHandler instance
func NewChatHandler(service service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Reply godoc
// @Summary Ask Vedji
// @Description Returns the assistant's reply. Remedy suggestions end with a medical disclaimer
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /chat [post]
func (h *ChatHandler) Reply(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	resp, err := h.service.Reply(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
