package handlers

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/nsmirnov/quizgen/api/http/presenter"
	"github.com/nsmirnov/quizgen/pkg/quiz"
)

type QuizHandler struct {
	svc quiz.Service
}

func NewQuizHandler(svc quiz.Service) *QuizHandler {
	return &QuizHandler{svc: svc}
}

type quizRequest struct {
	Text *string `json:"text"`
}

// Generate turns the submitted text into three multiple-choice questions.
// @Summary Generate a quiz from text
// @Tags    quiz
// @Accept  json
// @Produce json
// @Param   input body quizRequest true "source text"
// @Security BearerAuth
// @Success 200 {object} quiz.Response
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse "malformed body"
// @Failure 502 {object} presenter.ErrorResponse "model failure"
// @Router  /quiz/ [post]
func (h *QuizHandler) Generate(c *fiber.Ctx) error {
	var req quizRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusUnprocessableEntity, "Invalid request body")
	}
	// Empty text is allowed, a missing field is not.
	if req.Text == nil {
		return presenter.Error(c, http.StatusUnprocessableEntity, "text is required")
	}

	resp, err := h.svc.Generate(c.Context(), *req.Text)
	if err != nil {
		log.Printf("quiz generation failed: %v", err)
		return presenter.Error(c, http.StatusBadGateway, "Quiz generation failed")
	}
	return presenter.JSON(c, http.StatusOK, resp)
}
