package entities

import (
	"fmt"
	"time"
)

// AudioFormat is the declared media type of an uploaded recording
type AudioFormat string

const (
	AudioFormatWAV AudioFormat = "wav"
	AudioFormatMP3 AudioFormat = "mp3"
)

// Extension returns the file extension for the format, including the dot
func (f AudioFormat) Extension() string {
	return "." + string(f)
}

// AudioFormatFromMediaType maps a declared content type or filename extension
// to a supported format. Returns false for anything outside {wav, mp3}.
func AudioFormatFromMediaType(mediaType string) (AudioFormat, bool) {
	switch mediaType {
	case "audio/wav", "audio/x-wav", "audio/wave", "wav", ".wav":
		return AudioFormatWAV, true
	case "audio/mpeg", "audio/mp3", "mp3", ".mp3":
		return AudioFormatMP3, true
	}
	return "", false
}

// AnalysisRequest carries one uploaded recording through the pipeline
type AnalysisRequest struct {
	Audio        []byte
	Format       AudioFormat
	SlideContext string // optional free-text slide/deck context
	Language     string // optional override of the configured language
}

// AudioArtifact is a materialized audio file on local storage, owned by a
// single pipeline run
type AudioArtifact struct {
	Path      string
	CreatedAt time.Time
}

// EmotionScore is one (emotion name, score) pair from the prosody engine
type EmotionScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// EmotionAnalysis is the full ranked emotion list plus the dominant subset
type EmotionAnalysis struct {
	Emotions []EmotionScore `json:"emotions"` // descending by score
	Dominant []EmotionScore `json:"dominant"` // top-K prefix of Emotions
}

// TranscriptionResult is the outcome of the speech recognition stage.
// An empty Text with Succeeded=true means silence, not failure.
type TranscriptionResult struct {
	Text      string
	Succeeded bool
	Error     string
}

// FillerWordCounts maps a lexicon entry to its occurrence count.
// Entries with zero occurrences are omitted.
type FillerWordCounts map[string]int

// AnalysisReport is the terminal aggregate of a fully successful pipeline run
type AnalysisReport struct {
	Transcript  string
	Emotions    EmotionAnalysis
	FillerWords FillerWordCounts
	Feedback    string
}

// Stage identifies a pipeline state
type Stage string

const (
	StageReceived       Stage = "received"
	StageAudioPersisted Stage = "audio_persisted"
	StageEmotion        Stage = "emotion_analysis"
	StageTranscription  Stage = "transcription"
	StageFillerWords    Stage = "filler_words"
	StageFeedback       Stage = "feedback"
	StageComplete       Stage = "complete"
)

// StageError is the failure variant of a pipeline run: the first failing
// stage plus the upstream error, verbatim
type StageError struct {
	Stage Stage
	Err   error
}

// Error implements error interface
func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

// Unwrap exposes the upstream error
func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError wraps an upstream error with the stage it occurred in
func NewStageError(stage Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}
