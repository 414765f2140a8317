package ai

import (
	"context"
	"fmt"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/orator-app/speech-coach/pkg/config"
)

// AssemblyAIClient wraps the official AssemblyAI SDK for synchronous
// speech recognition
type AssemblyAIClient struct {
	client *aai.Client
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	return &AssemblyAIClient{client: aai.NewClient(apiKey)}
}

// Recognize uploads the audio file, runs a transcription in the given
// language and returns the ordered result segments. An empty slice with a
// nil error means the engine finished but heard nothing.
func (c *AssemblyAIClient) Recognize(ctx context.Context, audioPath, language string) ([]string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	uploadURL, err := c.client.Upload(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to upload to AssemblyAI: %w", err)
	}

	params := &aai.TranscriptOptionalParams{
		LanguageCode:  aai.TranscriptLanguageCode(language),
		SpeakerLabels: aai.Bool(true),
	}

	transcript, err := c.client.Transcripts.TranscribeFromURL(ctx, uploadURL, params)
	if err != nil {
		return nil, err
	}

	if transcript.Status == aai.TranscriptStatusError {
		msg := "transcription failed"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return nil, fmt.Errorf("assemblyai: %s", msg)
	}

	// Speaker-labelled utterances are the engine's ordered segments. Fall
	// back to the flat text when the engine returned none.
	segments := make([]string, 0, len(transcript.Utterances))
	for _, utt := range transcript.Utterances {
		if utt.Text != nil {
			segments = append(segments, *utt.Text)
		}
	}
	if len(segments) == 0 && transcript.Text != nil && *transcript.Text != "" {
		segments = append(segments, *transcript.Text)
	}
	return segments, nil
}
