package analysis

import (
	"context"

	"github.com/orator-app/speech-coach/internal/domain/entities"
	"github.com/orator-app/speech-coach/pkg/ai"
)

// EmotionEngine is the external prosody capability. One call per request;
// transient-failure handling lives in the engine client's transport.
type EmotionEngine interface {
	AnalyzeProsody(ctx context.Context, audioPath string) ([]ai.ProsodyPrediction, error)
}

// SpeechRecognizer is the external speech-to-text capability. Returns the
// engine's result segments in reported order; an empty slice means silence.
type SpeechRecognizer interface {
	Recognize(ctx context.Context, audioPath, language string) ([]string, error)
}

// TextGenerator is the external generative text capability
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ArtifactStore owns the lifetime of uploaded audio on local storage
type ArtifactStore interface {
	Acquire(data []byte, ext string) (*entities.AudioArtifact, error)
	Release(a *entities.AudioArtifact)
}
