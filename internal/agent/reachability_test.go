package agent

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"
)

func TestCheckReachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })
	open := fmt.Sprintf("http://127.0.0.1:%d/v1", ln.Addr().(*net.TCPAddr).Port)

	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "empty uses default endpoint", baseURL: ""},
		{name: "listening port", baseURL: open},
		{name: "invalid url", baseURL: "://bad", wantErr: true},
		{name: "missing host", baseURL: "http:///v1", wantErr: true},
		{name: "unsupported scheme", baseURL: "ftp://example.test", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()
			err := CheckReachable(ctx, tt.baseURL)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckReachable(%q) error = %v, wantErr %v", tt.baseURL, err, tt.wantErr)
			}
		})
	}
}

func TestDialAddr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"https://api.openai.com/v1", "api.openai.com:443"},
		{"http://localhost/v1", "localhost:80"},
		{"http://127.0.0.1:8080", "127.0.0.1:8080"},
		{"HTTPS://[::1]/v1", "[::1]:443"},
	}
	for _, tt := range tests {
		got, err := dialAddr(tt.in)
		if err != nil {
			t.Fatalf("dialAddr(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("dialAddr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
