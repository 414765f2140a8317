package analysis

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/orator-app/speech-coach/errors"
)

// FeedbackSynthesizer builds the coaching prompt and submits it once to the
// generative model, returning the raw response unmodified
type FeedbackSynthesizer struct {
	generator TextGenerator
	logger    *zap.Logger
}

// NewFeedbackSynthesizer constructs a synthesizer
func NewFeedbackSynthesizer(generator TextGenerator, logger *zap.Logger) *FeedbackSynthesizer {
	return &FeedbackSynthesizer{generator: generator, logger: logger}
}

// Synthesize generates coaching feedback. An empty model response counts as
// a failure.
func (s *FeedbackSynthesizer) Synthesize(ctx context.Context, in FeedbackInput) (string, error) {
	prompt := BuildFeedbackPrompt(in)

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", apperrors.ErrFeedbackEngine(err)
	}
	if strings.TrimSpace(text) == "" {
		return "", apperrors.ErrFeedbackEngine(fmt.Errorf("empty response from text engine"))
	}

	if s.logger != nil {
		s.logger.Info("feedback generated",
			zap.Int("prompt_length", len(prompt)),
			zap.Int("feedback_length", len(text)),
		)
	}
	return text, nil
}
