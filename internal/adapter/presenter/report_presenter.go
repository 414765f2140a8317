package presenter

import (
	dto "github.com/orator-app/speech-coach/internal/adapter/dto/analysis"
	"github.com/orator-app/speech-coach/internal/domain/entities"
)

// ToAnalysisResponse maps a completed report to its wire shape
func ToAnalysisResponse(report *entities.AnalysisReport) dto.AnalysisResponse {
	fillerWords := map[string]int(report.FillerWords)
	if fillerWords == nil {
		fillerWords = map[string]int{}
	}

	return dto.AnalysisResponse{
		Transcript: report.Transcript,
		EmotionalAnalysis: dto.EmotionalAnalysis{
			Emotions: report.Emotions.Emotions,
			Dominant: report.Emotions.Dominant,
		},
		FillerWords: fillerWords,
		Feedback:    report.Feedback,
	}
}
