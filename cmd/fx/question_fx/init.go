package question_fx

import (
	"ember/internal/api/controllers"
	"ember/internal/catalog"
	"ember/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	catalog.New,
	services.NewQuestionService,
	controllers.NewQuestionController)
