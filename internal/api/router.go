package api

import (
	"ember/internal/api/controllers"
	"ember/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(logger *zap.Logger, questionController *controllers.QuestionController) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger.Named("http")))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, questionController)

	return r
}

func RegisterRoutes(r *gin.Engine, questionController *controllers.QuestionController) {
	r.GET("/health", questionController.HealthHandler)

	apiGroup := r.Group("/api")
	apiGroup.POST("/generate-question", questionController.GenerateQuestionHandler)
	apiGroup.GET("/categories", questionController.ListCategoriesHandler)
}
