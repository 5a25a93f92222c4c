package providers

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRateLimitedProviderDelaysCalls(t *testing.T) {
	fp := &flakeyProvider{}
	lp := NewRateLimitedProvider(fp, 10*time.Millisecond, nil)
	defer lp.(*rateLimitedProvider).Close()

	start := time.Now()
	if _, err := lp.FetchGames(context.Background(), "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Fatalf("expected call to wait for interval, elapsed %s", elapsed)
	}
	if fp.calls != 1 {
		t.Fatalf("expected exactly one inner call, got %d", fp.calls)
	}
}

func TestRateLimitedProviderContextCancel(t *testing.T) {
	fp := &flakeyProvider{}
	lp := NewRateLimitedProvider(fp, time.Hour, nil)
	defer lp.(*rateLimitedProvider).Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := lp.FetchGames(ctx, "", ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if fp.calls != 0 {
		t.Fatalf("expected no inner calls, got %d", fp.calls)
	}
}

func TestRateLimitedProviderNilInner(t *testing.T) {
	lp := NewRateLimitedProvider(nil, time.Millisecond, nil)
	defer lp.(*rateLimitedProvider).Close()

	if _, err := lp.FetchGames(context.Background(), "", ""); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
