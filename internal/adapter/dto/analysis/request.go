package analysis

// AnalyzeRequest holds the non-file multipart fields of an analysis upload
type AnalyzeRequest struct {
	// Slides is optional free-text slide/deck context included in the
	// feedback prompt
	Slides string `form:"slides"`
	// Language optionally overrides the configured transcription language
	Language string `form:"language" validate:"omitempty,bcp47_language_tag"`
}
