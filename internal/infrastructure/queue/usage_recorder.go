package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopsync/commerce-api/internal/core/ports"
)

const (
	usageBuffer  = 256
	usageTimeout = 5 * time.Second
)

type usageEvent struct {
	keyID string
	at    time.Time
}

// UsageRecorder applies API key lastUsedAt updates off the request path.
// Enqueueing never blocks: when the buffer is full the update is dropped,
// which the best-effort contract of lastUsedAt allows.
type UsageRecorder struct {
	ch   chan usageEvent
	keys ports.APIKeyRepository
	log  zerolog.Logger
}

// NewUsageRecorder creates a UsageRecorder. Call Start before use.
func NewUsageRecorder(keys ports.APIKeyRepository, log zerolog.Logger) *UsageRecorder {
	return &UsageRecorder{
		ch:   make(chan usageEvent, usageBuffer),
		keys: keys,
		log:  log,
	}
}

// Start launches the worker goroutine. The worker stops when ctx is
// cancelled; buffered updates are discarded at that point.
func (r *UsageRecorder) Start(ctx context.Context) {
	go r.run(ctx)
}

// RecordUsage enqueues a lastUsedAt stamp for the key. Non-blocking.
func (r *UsageRecorder) RecordUsage(keyID string, at time.Time) {
	select {
	case r.ch <- usageEvent{keyID: keyID, at: at}:
	default:
		r.log.Warn().Str("api_key_id", keyID).Msg("usage queue full, update dropped")
	}
}

func (r *UsageRecorder) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-r.ch:
			// Detached from any request context: the request that triggered
			// the update may already be finished.
			opCtx, cancel := context.WithTimeout(context.Background(), usageTimeout)
			if err := r.keys.RecordUsage(opCtx, ev.keyID, ev.at); err != nil {
				r.log.Warn().Err(err).Str("api_key_id", ev.keyID).Msg("failed to record api key usage")
			}
			cancel()
		}
	}
}
