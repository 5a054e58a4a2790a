package request_models

// GenerateQuestionRequest is the body of POST /api/generate-question.
// A missing category is treated like an unknown one.
type GenerateQuestionRequest struct {
	Category string `json:"category"`
}
