package analysis

import (
	"context"
	"sort"

	"go.uber.org/zap"

	apperrors "github.com/orator-app/speech-coach/errors"
	"github.com/orator-app/speech-coach/internal/domain/entities"
)

// EmotionAdapter normalizes prosody engine output into a ranked emotion list
// with a top-K dominant subset
type EmotionAdapter struct {
	engine EmotionEngine
	topK   int
	logger *zap.Logger
}

// NewEmotionAdapter constructs an adapter with the given dominant-subset
// size (1 or 3)
func NewEmotionAdapter(engine EmotionEngine, topK int, logger *zap.Logger) *EmotionAdapter {
	return &EmotionAdapter{engine: engine, topK: topK, logger: logger}
}

// Analyze submits the audio artifact to the engine and ranks the returned
// emotion scores. An engine result with zero emotion entries is a failure,
// not an empty success: downstream stages must never run on absent prosody
// data.
func (a *EmotionAdapter) Analyze(ctx context.Context, artifact *entities.AudioArtifact) (*entities.EmotionAnalysis, error) {
	predictions, err := a.engine.AnalyzeProsody(ctx, artifact.Path)
	if err != nil {
		return nil, apperrors.ErrEmotionEngine(err)
	}

	var emotions []entities.EmotionScore
	for _, pred := range predictions {
		for _, e := range pred.Emotions {
			emotions = append(emotions, entities.EmotionScore{Name: e.Name, Score: e.Score})
		}
	}

	if len(emotions) == 0 {
		return nil, apperrors.ErrNoProsodyData()
	}

	sort.SliceStable(emotions, func(i, j int) bool {
		return emotions[i].Score > emotions[j].Score
	})

	k := a.topK
	if k > len(emotions) {
		k = len(emotions)
	}

	if a.logger != nil {
		a.logger.Info("emotion analysis normalized",
			zap.Int("emotion_count", len(emotions)),
			zap.String("dominant", emotions[0].Name),
			zap.Float64("dominant_score", emotions[0].Score),
		)
	}

	return &entities.EmotionAnalysis{
		Emotions: emotions,
		Dominant: emotions[:k],
	}, nil
}
