package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gitmaster/internal/logger"
)

func chatChunk(content string) string {
	return `data: {"id":"c1","object":"chat.completion.chunk","created":0,"model":"gpt-4o-mini","choices":[{"index":0,"delta":{"content":"` + content + `"},"finish_reason":null}]}` + "\n\n"
}

func newChatServer(t *testing.T, chunks ...string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if got := strings.TrimSpace(r.Header.Get("Authorization")); got != "Bearer test-key" {
			http.Error(w, "missing auth", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		for _, c := range chunks {
			_, _ = w.Write([]byte(chatChunk(c)))
		}
		_, _ = w.Write([]byte("data: [DONE]\n\n"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func silenceLLMLogger(t *testing.T) {
	t.Helper()
	logger.SetGlobalLLMLogger(logger.NoopLLMLogger{})
	t.Cleanup(func() { logger.SetGlobalLLMLogger(nil) })
}

func TestRunPing_OpenAIRoundTrip(t *testing.T) {
	isolateEnv(t)
	silenceLLMLogger(t)
	srv := newChatServer(t, "po", "ng")

	var out bytes.Buffer
	err := runPing(rootArgs{}, []string{
		"--provider", "openai",
		"--base-url", srv.URL + "/v1",
		"--api-key", "test-key",
		"--timeout", "5",
	}, &out)
	if err != nil {
		t.Fatalf("runPing: %v", err)
	}
	if got := out.String(); got != "ok: pong\n" {
		t.Fatalf("ping output = %q", got)
	}
}

func TestRunPing_AuthFailure(t *testing.T) {
	isolateEnv(t)
	silenceLLMLogger(t)
	srv := newChatServer(t, "pong")

	var out bytes.Buffer
	err := runPing(rootArgs{}, []string{"--provider", "openai", "--base-url", srv.URL, "--api-key", "wrong"}, &out)
	if err == nil || !strings.Contains(err.Error(), "http_401") {
		t.Fatalf("expected http_401 error, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be printed on failure, got %q", out.String())
	}
}

func TestRunPing_UnreachableBaseURL(t *testing.T) {
	isolateEnv(t)
	srv := newChatServer(t)
	url := srv.URL
	srv.Close()

	err := runPing(rootArgs{}, []string{"--provider", "openai", "--base-url", url, "--api-key", "test-key", "--timeout", "2"}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "base_url unreachable") {
		t.Fatalf("expected unreachable error, got %v", err)
	}
}
