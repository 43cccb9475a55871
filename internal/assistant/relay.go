package assistant

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"gitmaster/internal/agent"
	"gitmaster/internal/logger"

	"github.com/google/uuid"
)

// ErrorNotice is delivered as the final chunk when a request fails.
const ErrorNotice = "\n\n*Error: Could not connect to the AI assistant. Please check your API key or try again later.*"

type RelayOptions struct {
	Conversation agent.Conversation
	Logger       *logger.LogEntry
	// Timeout bounds a single exchange; zero means no limit.
	Timeout time.Duration
}

// Relay forwards user messages to one provider conversation and streams the
// reply back. At most one request is in flight at a time.
type Relay struct {
	id       string
	conv     agent.Conversation
	log      *logger.LogEntry
	timeout  time.Duration
	inFlight atomic.Bool
}

func NewRelay(opts RelayOptions) *Relay {
	log := opts.Logger
	if log == nil {
		log = logger.Named("assistant")
	}
	id := uuid.NewString()
	return &Relay{
		id:      id,
		conv:    opts.Conversation,
		log:     log.WithField("conversation", id),
		timeout: opts.Timeout,
	}
}

func (r *Relay) ID() string { return r.id }

func (r *Relay) InFlight() bool { return r.inFlight.Load() }

// Send streams the reply for text into onChunk and blocks until the exchange
// settles. It returns false without contacting the provider when text is
// blank or another request is still running. Failures surface as a single
// trailing ErrorNotice chunk.
func (r *Relay) Send(ctx context.Context, text string, onChunk func(string)) bool {
	text, ok := r.acquire(text)
	if !ok {
		return false
	}
	r.run(ctx, text, onChunk)
	return true
}

// Stream is the channel form of Send. The channel is closed once the
// exchange settles or ctx is cancelled.
func (r *Relay) Stream(ctx context.Context, text string) (<-chan string, bool) {
	text, ok := r.acquire(text)
	if !ok {
		return nil, false
	}
	out := make(chan string)
	go func() {
		defer close(out)
		r.run(ctx, text, func(chunk string) {
			select {
			case out <- chunk:
			case <-ctx.Done():
			}
		})
	}()
	return out, true
}

func (r *Relay) acquire(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	if !r.inFlight.CompareAndSwap(false, true) {
		r.log.Debug("request refused: another request is in flight")
		return "", false
	}
	return text, true
}

func (r *Relay) run(ctx context.Context, text string, onChunk func(string)) {
	defer r.inFlight.Store(false)

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	chunks := 0
	err := r.conv.Send(ctx, text, func(chunk string) {
		chunks++
		onChunk(chunk)
	})
	if err != nil {
		r.log.WithError(err).Warn("assistant request failed")
		onChunk(ErrorNotice)
		return
	}
	r.log.WithFields(logger.Fields{
		"chunks":   chunks,
		"duration": time.Since(start).Round(time.Millisecond).String(),
	}).Debug("assistant reply complete")
}
