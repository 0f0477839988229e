package handler

import (
	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/dto"
	"ashi-remedies/internal/logger"
	"ashi-remedies/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles dosha quiz HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// Questions godoc
// @Summary List quiz questions
// @Description Returns the dosha quiz question bank in order
// @Tags quiz
// @Produce json
// @Success 200 {array} domain.QuizQuestion
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/questions [get]
func (h *QuizHandler) Questions(c *fiber.Ctx) error {
	questions, err := h.service.Questions(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(questions)
}

// StartSession godoc
// @Summary Start a quiz session
// @Description Starts a new dosha quiz run at the first question
// @Tags quiz
// @Produce json
// @Success 201 {object} dto.QuizSessionResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/sessions [post]
func (h *QuizHandler) StartSession(c *fiber.Ctx) error {
	session, err := h.service.StartSession(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// GetSession godoc
// @Summary Get a quiz session
// @Description Returns the progress of a quiz run, with the dominant dosha once complete
// @Tags quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.QuizSessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/sessions/{id} [get]
func (h *QuizHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.service.GetSession(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(session)
}

// Answer godoc
// @Summary Answer the current question
// @Description Answers with a dosha, an option index or a free-text "other" answer
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.QuizAnswerRequest true "Answer"
// @Success 200 {object} dto.QuizSessionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/sessions/{id}/answers [post]
func (h *QuizHandler) Answer(c *fiber.Ctx) error {
	var req dto.QuizAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Debug("Invalid quiz answer body", zap.Error(err))
		return domain.NewInvalidInputError("Invalid request body")
	}

	session, err := h.service.Answer(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(session)
}

// ResetSession godoc
// @Summary Retake the quiz
// @Description Returns the session to the first question with empty tallies
// @Tags quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.QuizSessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/sessions/{id}/reset [post]
func (h *QuizHandler) ResetSession(c *fiber.Ctx) error {
	session, err := h.service.ResetSession(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(session)
}
