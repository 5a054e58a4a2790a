package controllers

import (
	"fmt"
	"net/http"

	"ember/internal/models/request_models"
	"ember/internal/models/response_models"
	"ember/internal/services"
	"ember/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuestionController struct {
	questionService services.QuestionServiceInterface
	logger          *zap.Logger
}

func NewQuestionController(questionService services.QuestionServiceInterface, logger *zap.Logger) *QuestionController {
	return &QuestionController{
		questionService: questionService,
		logger:          logger.Named("http"),
	}
}

// POST /api/generate-question
func (q *QuestionController) GenerateQuestionHandler(c *gin.Context) {
	var req request_models.GenerateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, q.logger, fmt.Errorf("%w: %w", utils.ErrMalformedRequest, err))
		return
	}

	result := q.questionService.Resolve(c.Request.Context(), req.Category)

	q.logger.Debug("question served",
		zap.String("trace_id", c.GetString("trace_id")),
		zap.String("category", req.Category),
		zap.Bool("ai_generated", result.IsAiGenerated))

	c.JSON(http.StatusOK, result)
}

// GET /api/categories
func (q *QuestionController) ListCategoriesHandler(c *gin.Context) {
	utils.RespondSuccess(c, q.questionService.Categories(), "Fetched categories successfully")
}

// GET /health
func (q *QuestionController) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, response_models.HealthResponse{
		Status:    "ok",
		AIEnabled: q.questionService.AIEnabled(),
	})
}
