package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/question-board/internal/domain/question"
)

// Handler wires the HTTP transport to the question domain.
type Handler struct {
	questions question.Service
	logger    *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(questions question.Service, logger *slog.Logger) *Handler {
	return &Handler{
		questions: questions,
		logger:    logger.With("component", "http.handler"),
	}
}

// ListQuestions serves GET /questions with optional start/end bounds.
func (h *Handler) ListQuestions(c *gin.Context) {
	p, err := question.ResolvePagination(c.Request.URL.Query())
	if err != nil {
		abortWithError(c, err)
		return
	}

	page, err := h.questions.List(c.Request.Context(), p)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
