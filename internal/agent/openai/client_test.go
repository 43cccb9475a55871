package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"gitmaster/internal/logger"
)

func silenceLLMLogger(t *testing.T) {
	t.Helper()
	logger.SetGlobalLLMLogger(logger.NoopLLMLogger{})
	t.Cleanup(func() { logger.SetGlobalLLMLogger(nil) })
}

func chunkEvent(content string) string {
	return `data: {"id":"c1","object":"chat.completion.chunk","created":0,"model":"gpt-4o-mini","choices":[{"index":0,"delta":{"content":"` + content + `"},"finish_reason":null}]}` + "\n\n"
}

type recordedRequest struct {
	Messages []struct {
		Role    string `json:"role"`
		Content any    `json:"content"`
	} `json:"messages"`
	Stream bool `json:"stream"`
}

func TestSend_StreamsAndCommitsHistory(t *testing.T) {
	silenceLLMLogger(t)

	var mu sync.Mutex
	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		body, _ := io.ReadAll(r.Body)
		var req recordedRequest
		_ = json.Unmarshal(body, &req)
		mu.Lock()
		requests = append(requests, req)
		mu.Unlock()

		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte(chunkEvent("Hel")))
		_, _ = w.Write([]byte(chunkEvent("lo")))
		_, _ = w.Write([]byte("data: [DONE]\n\n"))
	}))
	t.Cleanup(srv.Close)

	client := New(Options{APIKey: "test", BaseURL: srv.URL, System: "be brief"})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	var got []string
	if err := client.Send(ctx, "what is git?", func(c string) { got = append(got, c) }); err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if len(got) != 2 || got[0] != "Hel" || got[1] != "lo" {
		t.Fatalf("chunks = %#v, want [Hel lo]", got)
	}
	if err := client.Send(ctx, "and github?", func(string) {}); err != nil {
		t.Fatalf("second Send() error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(requests) != 2 {
		t.Fatalf("requests = %d, want 2", len(requests))
	}
	if !requests[0].Stream {
		t.Fatalf("expected streaming request")
	}
	// system + user
	if n := len(requests[0].Messages); n != 2 {
		t.Fatalf("first request messages = %d, want 2", n)
	}
	// system + user + assistant + user
	second := requests[1].Messages
	if len(second) != 4 {
		t.Fatalf("second request messages = %d, want 4", len(second))
	}
	if second[0].Role != "system" || second[2].Role != "assistant" || second[2].Content != "Hello" {
		t.Fatalf("unexpected second request: %#v", second)
	}
}

func TestSend_HTTPErrorNotRecorded(t *testing.T) {
	silenceLLMLogger(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	}))
	t.Cleanup(srv.Close)

	client := New(Options{BaseURL: srv.URL})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	err := client.Send(ctx, "hi", func(string) { t.Fatalf("unexpected chunk") })
	if err == nil {
		t.Fatalf("Send() expected error")
	}
	if !strings.Contains(err.Error(), "http_401") {
		t.Fatalf("error = %q, want http_401 marker", err.Error())
	}
	if client.history.Len() != 0 {
		t.Fatalf("failed exchange must not be recorded")
	}
}

func TestNew_DefaultModel(t *testing.T) {
	if got := New(Options{}).Model(); got != DefaultModel {
		t.Fatalf("Model() = %q, want %q", got, DefaultModel)
	}
}
