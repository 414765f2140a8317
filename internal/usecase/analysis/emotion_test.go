package analysis

import (
	"context"
	stdErrors "errors"
	"fmt"
	"strings"
	"testing"

	apperrors "github.com/orator-app/speech-coach/errors"
	"github.com/orator-app/speech-coach/internal/domain/entities"
	"github.com/orator-app/speech-coach/pkg/ai"
)

type fakeEmotionEngine struct {
	predictions []ai.ProsodyPrediction
	err         error
	calls       int
}

func (f *fakeEmotionEngine) AnalyzeProsody(ctx context.Context, audioPath string) ([]ai.ProsodyPrediction, error) {
	f.calls++
	return f.predictions, f.err
}

func testArtifact() *entities.AudioArtifact {
	return &entities.AudioArtifact{Path: "/tmp/test.wav"}
}

func TestEmotionAdapter_RanksDescending(t *testing.T) {
	engine := &fakeEmotionEngine{predictions: []ai.ProsodyPrediction{
		{Emotions: []ai.EmotionEntry{
			{Name: "calm", Score: 0.3},
			{Name: "joy", Score: 0.8},
		}},
		{Emotions: []ai.EmotionEntry{
			{Name: "anger", Score: 0.5},
		}},
	}}
	adapter := NewEmotionAdapter(engine, 3, nil)

	got, err := adapter.Analyze(context.Background(), testArtifact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []string{"joy", "anger", "calm"}
	for i, name := range wantOrder {
		if got.Emotions[i].Name != name {
			t.Fatalf("position %d: got %s want %s (%v)", i, got.Emotions[i].Name, name, got.Emotions)
		}
	}
	if len(got.Dominant) != 3 {
		t.Fatalf("expected 3 dominant entries, got %d", len(got.Dominant))
	}
	if engine.calls != 1 {
		t.Fatalf("engine must be called exactly once, got %d", engine.calls)
	}
}

func TestEmotionAdapter_TopOneDominant(t *testing.T) {
	engine := &fakeEmotionEngine{predictions: []ai.ProsodyPrediction{
		{Emotions: []ai.EmotionEntry{
			{Name: "joy", Score: 0.8},
			{Name: "calm", Score: 0.3},
		}},
	}}
	adapter := NewEmotionAdapter(engine, 1, nil)

	got, err := adapter.Analyze(context.Background(), testArtifact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Dominant) != 1 {
		t.Fatalf("expected 1 dominant entry, got %v", got.Dominant)
	}
	if got.Dominant[0].Name != "joy" || got.Dominant[0].Score != 0.8 {
		t.Fatalf("expected dominant joy 0.8, got %+v", got.Dominant[0])
	}
}

func TestEmotionAdapter_DominantClampedToAvailable(t *testing.T) {
	engine := &fakeEmotionEngine{predictions: []ai.ProsodyPrediction{
		{Emotions: []ai.EmotionEntry{{Name: "joy", Score: 0.8}}},
	}}
	adapter := NewEmotionAdapter(engine, 3, nil)

	got, err := adapter.Analyze(context.Background(), testArtifact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Dominant) != 1 {
		t.Fatalf("dominant subset must clamp to available emotions, got %v", got.Dominant)
	}
}

func TestEmotionAdapter_ZeroPredictionsIsFailure(t *testing.T) {
	adapter := NewEmotionAdapter(&fakeEmotionEngine{}, 3, nil)

	_, err := adapter.Analyze(context.Background(), testArtifact())
	if err == nil {
		t.Fatal("expected failure for zero predictions")
	}

	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_NO_PROSODY_DATA {
		t.Fatalf("expected NO_PROSODY_DATA, got %v", err)
	}
}

func TestEmotionAdapter_EmptyEmotionListsIsFailure(t *testing.T) {
	engine := &fakeEmotionEngine{predictions: []ai.ProsodyPrediction{{}, {}}}
	adapter := NewEmotionAdapter(engine, 3, nil)

	_, err := adapter.Analyze(context.Background(), testArtifact())
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_NO_PROSODY_DATA {
		t.Fatalf("expected NO_PROSODY_DATA, got %v", err)
	}
}

func TestEmotionAdapter_EngineErrorCarriesUpstreamText(t *testing.T) {
	engine := &fakeEmotionEngine{err: fmt.Errorf("hume returned status 503")}
	adapter := NewEmotionAdapter(engine, 3, nil)

	_, err := adapter.Analyze(context.Background(), testArtifact())
	if err == nil {
		t.Fatal("expected error")
	}

	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_EMOTION_ENGINE_FAILED {
		t.Fatalf("expected EMOTION_ENGINE_FAILED, got %v", err)
	}
	if got := err.Error(); !strings.Contains(got, "hume returned status 503") {
		t.Fatalf("upstream message must be preserved verbatim, got %q", got)
	}
}
