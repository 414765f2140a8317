package analysis

import (
	"strings"
	"testing"

	"github.com/orator-app/speech-coach/internal/domain/entities"
)

func TestBuildFeedbackPrompt_EmbedsRawScores(t *testing.T) {
	prompt := BuildFeedbackPrompt(FeedbackInput{
		Transcript: "hello world",
		Emotions: entities.EmotionAnalysis{
			Emotions: []entities.EmotionScore{
				{Name: "joy", Score: 0.8123456789},
				{Name: "calm", Score: 0.3},
			},
			Dominant: []entities.EmotionScore{{Name: "joy", Score: 0.8123456789}},
		},
		FillerWords: entities.FillerWordCounts{"um": 2},
	})

	if !strings.Contains(prompt, "0.8123456789") {
		t.Fatalf("raw score must be embedded unrounded:\n%s", prompt)
	}
	if !strings.Contains(prompt, "hello world") {
		t.Fatal("transcript must be embedded verbatim")
	}
	if !strings.Contains(prompt, `"um": 2`) {
		t.Fatalf("filler counts must be embedded:\n%s", prompt)
	}
	if !strings.Contains(prompt, "practice exercises") {
		t.Fatal("template must request practice exercises")
	}
}

func TestBuildFeedbackPrompt_SlideContextOptional(t *testing.T) {
	in := FeedbackInput{
		Transcript: "t",
		Emotions: entities.EmotionAnalysis{
			Emotions: []entities.EmotionScore{{Name: "joy", Score: 0.5}},
			Dominant: []entities.EmotionScore{{Name: "joy", Score: 0.5}},
		},
	}

	without := BuildFeedbackPrompt(in)
	if strings.Contains(without, "Slide content:") {
		t.Fatal("slide section must be absent without context")
	}

	in.SlideContext = "Slide 1: intro"
	with := BuildFeedbackPrompt(in)
	if !strings.Contains(with, "Slide 1: intro") {
		t.Fatal("slide context must be embedded when present")
	}
}

func TestBuildFeedbackPrompt_NoFillers(t *testing.T) {
	prompt := BuildFeedbackPrompt(FeedbackInput{
		Transcript: "clean speech",
		Emotions: entities.EmotionAnalysis{
			Emotions: []entities.EmotionScore{{Name: "calm", Score: 0.9}},
			Dominant: []entities.EmotionScore{{Name: "calm", Score: 0.9}},
		},
	})
	if !strings.Contains(prompt, "none") {
		t.Fatalf("empty filler mapping must render as none:\n%s", prompt)
	}
}

func TestBuildFeedbackPrompt_Deterministic(t *testing.T) {
	in := FeedbackInput{
		Transcript: "t",
		Emotions: entities.EmotionAnalysis{
			Emotions: []entities.EmotionScore{{Name: "joy", Score: 0.5}},
			Dominant: []entities.EmotionScore{{Name: "joy", Score: 0.5}},
		},
		FillerWords: entities.FillerWordCounts{"это": 2, "эм": 1, "ну": 4},
	}

	first := BuildFeedbackPrompt(in)
	for i := 0; i < 10; i++ {
		if BuildFeedbackPrompt(in) != first {
			t.Fatal("prompt must be deterministic across map iteration orders")
		}
	}
}
