package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/orator-app/speech-coach/pkg/config"
)

func TestGroqGenerate_Success(t *testing.T) {
	var gotReq struct {
		Model    string              `json:"model"`
		Messages []map[string]string `json:"messages"`
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Fatalf("missing bearer token")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("invalid request body: %v", err)
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"Work on pacing and pauses."}}]}`))
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL, Model: "llama-3.3-70b-versatile"})

	text, err := client.Generate(context.Background(), "Give feedback on this speech.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Work on pacing and pauses." {
		t.Fatalf("unexpected completion %q", text)
	}

	if gotReq.Model != "llama-3.3-70b-versatile" {
		t.Fatalf("unexpected model %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0]["role"] != "user" {
		t.Fatalf("expected a single user message, got %v", gotReq.Messages)
	}
	if !strings.Contains(gotReq.Messages[0]["content"], "feedback") {
		t.Fatalf("prompt not forwarded, got %q", gotReq.Messages[0]["content"])
	}
}

func TestGroqGenerate_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "k", BaseURL: ts.URL, Model: "m"})

	_, err := client.Generate(context.Background(), "prompt")
	if err == nil || !strings.Contains(err.Error(), "status 429") {
		t.Fatalf("expected status 429 error, got %v", err)
	}
}

func TestGroqGenerate_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "k", BaseURL: ts.URL, Model: "m"})

	_, err := client.Generate(context.Background(), "prompt")
	if err == nil || !strings.Contains(err.Error(), "empty response") {
		t.Fatalf("expected empty response error, got %v", err)
	}
}
