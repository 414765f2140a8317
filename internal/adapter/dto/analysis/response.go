package analysis

import (
	"github.com/orator-app/speech-coach/internal/domain/entities"
)

// EmotionalAnalysis is the wire shape of the ranked emotion result
type EmotionalAnalysis struct {
	Emotions []entities.EmotionScore `json:"emotions"`
	Dominant []entities.EmotionScore `json:"dominant"`
}

// AnalysisResponse is the success body of POST /v1/analysis
type AnalysisResponse struct {
	Transcript        string            `json:"transcript"`
	EmotionalAnalysis EmotionalAnalysis `json:"emotionalAnalysis"`
	FillerWords       map[string]int    `json:"fillerWords"`
	Feedback          string            `json:"feedback"`
}

// ErrorResponse is the failure body of every endpoint: a single error string
type ErrorResponse struct {
	Error string `json:"error"`
}

// RenderResponse is the success body of POST /v1/slides/render: one base64
// PNG per page, in page order
type RenderResponse struct {
	Pages []string `json:"pages"`
}
