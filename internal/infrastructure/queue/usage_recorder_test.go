package queue

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopsync/commerce-api/internal/core/domain"
)

type recordingKeyRepo struct {
	recorded chan string
}

func (r *recordingKeyRepo) Insert(_ context.Context, key *domain.APIKey) (*domain.APIKey, error) {
	return key, nil
}

func (r *recordingKeyRepo) FindByHash(_ context.Context, _ string) (*domain.APIKey, error) {
	return nil, domain.ErrAPIKeyNotFound
}

func (r *recordingKeyRepo) ListByUser(_ context.Context, _ string) ([]domain.APIKey, error) {
	return nil, nil
}

func (r *recordingKeyRepo) Delete(_ context.Context, _, _ string) error {
	return nil
}

func (r *recordingKeyRepo) RecordUsage(_ context.Context, id string, _ time.Time) error {
	r.recorded <- id
	return nil
}

func TestUsageRecorder_RecordsAsync(t *testing.T) {
	repo := &recordingKeyRepo{recorded: make(chan string, 1)}
	recorder := NewUsageRecorder(repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	recorder.Start(ctx)

	recorder.RecordUsage("key_1", time.Now())

	select {
	case id := <-repo.recorded:
		if id != "key_1" {
			t.Fatalf("unexpected key id: %s", id)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("usage update never applied")
	}
}

func TestUsageRecorder_NonBlockingWhenFull(t *testing.T) {
	// Worker never started: the buffer fills and further updates must be
	// dropped without blocking the caller.
	repo := &recordingKeyRepo{recorded: make(chan string, 1)}
	recorder := NewUsageRecorder(repo, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < usageBuffer+10; i++ {
			recorder.RecordUsage("key_1", time.Now())
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("RecordUsage blocked on a full buffer")
	}
}
