package response_models

type GenerationResult struct {
	Question      string `json:"question"`
	IsAiGenerated bool   `json:"isAiGenerated"`
}

type CategoryResponse struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	Emoji         string `json:"emoji"`
	Description   string `json:"description"`
	QuestionCount int    `json:"questionCount"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	AIEnabled bool   `json:"aiEnabled"`
}
