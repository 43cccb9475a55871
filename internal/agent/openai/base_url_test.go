package openai

import "testing"

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"https://api.example.test", "https://api.example.test/v1"},
		{"https://api.example.test/", "https://api.example.test/v1"},
		{"https://api.example.test/v1", "https://api.example.test/v1"},
		{"https://api.example.test/v1/chat/completions", "https://api.example.test/v1"},
		{"https://api.example.test/proxy/responses", "https://api.example.test/proxy/v1"},
		{"https://api.example.test/v1/v1/", "https://api.example.test/v1"},
		{"  http://127.0.0.1:8080  ", "http://127.0.0.1:8080/v1"},
	}
	for _, tt := range tests {
		if got := normalizeBaseURL(tt.in); got != tt.want {
			t.Errorf("normalizeBaseURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
