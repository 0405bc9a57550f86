package details

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"

	"github.com/mohammed-shakir/brightness-trends/internal/cache/redisstore"
	"github.com/mohammed-shakir/brightness-trends/internal/model"
)

// Runs the full pipeline against a real Redis-backed cache.
func TestGetDetails_RedisBackedPipeline(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	ctx := context.Background()
	rc, err := redisstore.New(ctx, mr.Addr(), 250*time.Millisecond)
	if err != nil {
		t.Fatalf("redisstore: %v", err)
	}
	t.Cleanup(func() { _ = rc.Close() })

	comp := &stubComputer{series: []model.TimeSeriesPoint{{Time: 1, Value: fptr(3)}}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := New(logger, newRegions(t, "lake-a"), rc, comp, wikiPrefix, 24*time.Hour)

	first, err := svc.GetDetails(ctx, "lake-a")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := svc.GetDetails(ctx, "lake-a")
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("hit not byte-identical:\n%s\n%s", first, second)
	}
	if comp.calls != 1 {
		t.Fatalf("computer calls: %d", comp.calls)
	}

	// after the TTL elapses the entry is recomputed
	mr.FastForward(25 * time.Hour)
	if _, err := svc.GetDetails(ctx, "lake-a"); err != nil {
		t.Fatalf("post-expiry: %v", err)
	}
	if comp.calls != 2 {
		t.Fatalf("expected recompute after expiry, got %d calls", comp.calls)
	}
}
