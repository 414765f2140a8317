package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/orator-app/speech-coach/pkg/config"
)

// HumeClient is a minimal client for the Hume AI batch prosody API
type HumeClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewHumeClient creates a Hume client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewHumeClient(cfg *config.HumeConfig) *HumeClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("HUME_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("HUME_API_URL")
		if base == "" {
			base = "https://api.hume.ai"
		}
	}

	return &HumeClient{
		apiKey:  apiKey,
		baseURL: base,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// EmotionEntry is one (name, score) pair reported by the prosody model
type EmotionEntry struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// ProsodyPrediction is one prediction group with its emotion scores
type ProsodyPrediction struct {
	Emotions []EmotionEntry `json:"emotions"`
}

// jobResponse is the response to a batch job submission
type jobResponse struct {
	JobID string `json:"job_id"`
}

// jobStatusResponse is the polled job state
type jobStatusResponse struct {
	State struct {
		Status  string `json:"status"`
		Message string `json:"message,omitempty"`
	} `json:"state"`
}

// predictionsResponse mirrors the nested prediction payload of the batch API
type predictionsResponse []struct {
	Results struct {
		Predictions []struct {
			Models struct {
				Prosody struct {
					GroupedPredictions []struct {
						Predictions []ProsodyPrediction `json:"predictions"`
					} `json:"grouped_predictions"`
				} `json:"prosody"`
			} `json:"models"`
		} `json:"predictions"`
	} `json:"results"`
}

// AnalyzeProsody submits the audio file as a batch prosody job, polls until
// the job finishes and returns the flattened prediction groups.
func (h *HumeClient) AnalyzeProsody(ctx context.Context, audioPath string) ([]ProsodyPrediction, error) {
	jobID, err := h.submitJob(ctx, audioPath)
	if err != nil {
		return nil, err
	}

	if err := h.waitForJob(ctx, jobID); err != nil {
		return nil, err
	}

	return h.fetchPredictions(ctx, jobID)
}

// submitJob uploads the audio and requests the prosody model
func (h *HumeClient) submitJob(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	jsonPart, err := mw.CreateFormField("json")
	if err != nil {
		return "", err
	}
	if _, err := jsonPart.Write([]byte(`{"models":{"prosody":{}}}`)); err != nil {
		return "", err
	}

	filePart, err := mw.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(filePart, f); err != nil {
		return "", fmt.Errorf("failed to buffer audio file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", h.baseURL+"/v0/batch/jobs", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("X-Hume-Api-Key", h.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := h.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("hume returned status %d", resp.StatusCode)
	}

	var jr jobResponse
	if err := json.NewDecoder(resp.Body).Decode(&jr); err != nil {
		return "", err
	}
	if jr.JobID == "" {
		return "", fmt.Errorf("hume returned no job id")
	}
	return jr.JobID, nil
}

// waitForJob polls the job state with exponential backoff until it reaches
// COMPLETED or FAILED
func (h *HumeClient) waitForJob(ctx context.Context, jobID string) error {
	poll := func() error {
		req, err := http.NewRequestWithContext(ctx, "GET", h.baseURL+"/v0/batch/jobs/"+jobID, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("X-Hume-Api-Key", h.apiKey)

		resp, err := h.client.Do(req)
		if err != nil {
			return backoff.Permanent(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("hume returned status %d", resp.StatusCode))
		}

		var js jobStatusResponse
		if err := json.NewDecoder(resp.Body).Decode(&js); err != nil {
			return backoff.Permanent(err)
		}

		switch js.State.Status {
		case "COMPLETED":
			return nil
		case "FAILED":
			return backoff.Permanent(fmt.Errorf("hume job failed: %s", js.State.Message))
		default:
			return fmt.Errorf("hume job %s still %s", jobID, js.State.Status)
		}
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 2 * time.Minute

	return backoff.Retry(poll, backoff.WithContext(bo, ctx))
}

// fetchPredictions downloads and flattens the finished job's predictions
func (h *HumeClient) fetchPredictions(ctx context.Context, jobID string) ([]ProsodyPrediction, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", h.baseURL+"/v0/batch/jobs/"+jobID+"/predictions", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Hume-Api-Key", h.apiKey)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("hume returned status %d", resp.StatusCode)
	}

	var pr predictionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, err
	}

	var out []ProsodyPrediction
	for _, source := range pr {
		for _, p := range source.Results.Predictions {
			for _, g := range p.Models.Prosody.GroupedPredictions {
				out = append(out, g.Predictions...)
			}
		}
	}
	return out, nil
}
