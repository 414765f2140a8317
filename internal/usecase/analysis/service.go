package analysis

import (
	"context"

	"go.uber.org/zap"

	apperrors "github.com/orator-app/speech-coach/errors"
	"github.com/orator-app/speech-coach/internal/domain/entities"
)

// EmotionAnalyzer is the emotion stage as seen by the orchestrator
type EmotionAnalyzer interface {
	Analyze(ctx context.Context, artifact *entities.AudioArtifact) (*entities.EmotionAnalysis, error)
}

// Transcriber is the transcription stage as seen by the orchestrator
type Transcriber interface {
	Transcribe(ctx context.Context, artifact *entities.AudioArtifact, languageOverride string) (entities.TranscriptionResult, error)
}

// Synthesizer is the feedback stage as seen by the orchestrator
type Synthesizer interface {
	Synthesize(ctx context.Context, in FeedbackInput) (string, error)
}

// Service runs the full analysis pipeline for one uploaded recording
type Service interface {
	Analyze(ctx context.Context, req entities.AnalysisRequest) (*entities.AnalysisReport, error)
}

type service struct {
	store       ArtifactStore
	emotion     EmotionAnalyzer
	transcriber Transcriber
	feedback    Synthesizer
	lexicon     []string
	logger      *zap.Logger
}

// NewService constructs the pipeline orchestrator. All collaborators are
// constructed once at startup and shared across requests; the only state a
// request owns is its audio artifact.
func NewService(
	store ArtifactStore,
	emotion EmotionAnalyzer,
	transcriber Transcriber,
	feedback Synthesizer,
	lexicon []string,
	logger *zap.Logger,
) Service {
	return &service{
		store:       store,
		emotion:     emotion,
		transcriber: transcriber,
		feedback:    feedback,
		lexicon:     lexicon,
		logger:      logger,
	}
}

// Analyze drives the stages RECEIVED → AUDIO_PERSISTED → EMOTION_DONE →
// TRANSCRIBED → FILLER_COUNTED → FEEDBACK_DONE → COMPLETE. The first failing
// stage aborts the pipeline; there is no partial report. Emotion runs before
// transcription so a fast emotion failure never waits on the slower STT
// call. The audio artifact is released exactly once on every exit path.
func (s *service) Analyze(ctx context.Context, req entities.AnalysisRequest) (*entities.AnalysisReport, error) {
	s.logStage(entities.StageReceived, zap.Int("audio_bytes", len(req.Audio)), zap.String("format", string(req.Format)))

	artifact, err := s.store.Acquire(req.Audio, req.Format.Extension())
	if err != nil {
		return nil, entities.NewStageError(entities.StageAudioPersisted, apperrors.ErrArtifact(err))
	}
	defer s.store.Release(artifact)
	s.logStage(entities.StageAudioPersisted, zap.String("path", artifact.Path))

	emotions, err := s.emotion.Analyze(ctx, artifact)
	if err != nil {
		return nil, entities.NewStageError(entities.StageEmotion, err)
	}
	s.logStage(entities.StageEmotion, zap.Int("emotion_count", len(emotions.Emotions)))

	transcription, err := s.transcriber.Transcribe(ctx, artifact, req.Language)
	if err != nil {
		return nil, entities.NewStageError(entities.StageTranscription, err)
	}
	s.logStage(entities.StageTranscription, zap.Int("transcript_length", len(transcription.Text)))

	fillerWords := CountFillerWords(transcription.Text, s.lexicon)
	s.logStage(entities.StageFillerWords, zap.Int("distinct_fillers", len(fillerWords)))

	feedback, err := s.feedback.Synthesize(ctx, FeedbackInput{
		Transcript:   transcription.Text,
		Emotions:     *emotions,
		FillerWords:  fillerWords,
		SlideContext: req.SlideContext,
	})
	if err != nil {
		return nil, entities.NewStageError(entities.StageFeedback, err)
	}
	s.logStage(entities.StageFeedback, zap.Int("feedback_length", len(feedback)))

	report := &entities.AnalysisReport{
		Transcript:  transcription.Text,
		Emotions:    *emotions,
		FillerWords: fillerWords,
		Feedback:    feedback,
	}
	s.logStage(entities.StageComplete)
	return report, nil
}

func (s *service) logStage(stage entities.Stage, fields ...zap.Field) {
	if s.logger == nil {
		return
	}
	s.logger.Info("pipeline stage", append([]zap.Field{zap.String("stage", string(stage))}, fields...)...)
}
