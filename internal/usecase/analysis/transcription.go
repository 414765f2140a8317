package analysis

import (
	"context"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/orator-app/speech-coach/errors"
	"github.com/orator-app/speech-coach/internal/domain/entities"
)

// TranscriptionAdapter turns the speech recognizer's ordered segments into
// a single plain-text transcript
type TranscriptionAdapter struct {
	recognizer SpeechRecognizer
	language   string
	logger     *zap.Logger
}

// NewTranscriptionAdapter constructs an adapter with the configured target
// language
func NewTranscriptionAdapter(recognizer SpeechRecognizer, language string, logger *zap.Logger) *TranscriptionAdapter {
	return &TranscriptionAdapter{recognizer: recognizer, language: language, logger: logger}
}

// Transcribe runs recognition once and joins the segments with single
// spaces, in engine order, trimming surrounding whitespace. Zero segments
// is a valid empty transcript (silence), distinct from failure.
func (a *TranscriptionAdapter) Transcribe(ctx context.Context, artifact *entities.AudioArtifact, languageOverride string) (entities.TranscriptionResult, error) {
	language := a.language
	if languageOverride != "" {
		language = languageOverride
	}

	segments, err := a.recognizer.Recognize(ctx, artifact.Path, language)
	if err != nil {
		return entities.TranscriptionResult{Succeeded: false, Error: err.Error()},
			apperrors.ErrTranscription(err)
	}

	text := strings.TrimSpace(strings.Join(segments, " "))

	if a.logger != nil {
		a.logger.Info("transcription finished",
			zap.String("language", language),
			zap.Int("segment_count", len(segments)),
			zap.Int("text_length", len(text)),
		)
	}

	return entities.TranscriptionResult{Text: text, Succeeded: true}, nil
}
