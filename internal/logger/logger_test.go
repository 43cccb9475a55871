package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestPlainFormatter_ComponentAndFieldOrdering(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	cases := []struct {
		name    string
		data    logrus.Fields
		message string
		want    string
	}{
		{
			name: "with component",
			data: logrus.Fields{
				"component":       "relay",
				"caller":          "x.go:1",
				"conversation_id": "c1",
				"chunks":          2,
			},
			message: "stream completed",
			want:    "x.go:1 [2025-01-02T03:04:05Z] [INFO] [relay] stream completed chunks=2 conversation_id=c1\n",
		},
		{
			name: "without component",
			data: logrus.Fields{
				"caller": "x.go:1",
				"foo":    "bar",
			},
			message: "hello",
			want:    "x.go:1 [2025-01-02T03:04:05Z] [INFO] hello foo=bar\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := &logrus.Entry{
				Logger:  logrus.New(),
				Time:    ts,
				Level:   logrus.InfoLevel,
				Message: tc.message,
				Data:    tc.data,
			}
			out, err := (PlainFormatter{}).Format(entry)
			if err != nil {
				t.Fatalf("Format() error: %v", err)
			}
			if got := string(out); got != tc.want {
				t.Fatalf("unexpected format:\nwant: %q\ngot:  %q", tc.want, got)
			}
		})
	}
}

func TestShortenFilePath(t *testing.T) {
	cases := map[string]string{
		"/home/u/src/gitmaster/internal/assistant/relay.go": "internal/assistant/relay.go",
		"/home/u/src/gitmaster/cmd/gitmaster/main.go":       "cmd/gitmaster/main.go",
		"/tmp/other/file.go":                                "file.go",
	}
	for in, want := range cases {
		if got := shortenFilePath(in); got != want {
			t.Fatalf("shortenFilePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSetupComponentFile_WritesComponentField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "llm.log")
	entry, closer, resolved, err := SetupComponentFile("llm", path)
	if err != nil {
		t.Fatalf("SetupComponentFile: %v", err)
	}
	if resolved != path {
		t.Fatalf("resolved = %q, want %q", resolved, path)
	}
	entry.Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "[llm] hello") {
		t.Fatalf("log output = %q, want component and message", string(data))
	}
}

func TestSetLevel(t *testing.T) {
	prev := Root().GetLevel()
	t.Cleanup(func() { Root().SetLevel(prev) })

	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel(debug): %v", err)
	}
	if Root().GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %v, want debug", Root().GetLevel())
	}
	if err := SetLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
