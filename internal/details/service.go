// Package details orchestrates the polygon-detail retrieval pipeline:
// validate the identifier, consult the cache, compute the brightness trend
// remotely on a miss, populate the cache and capture failures into the
// response payload.
package details

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/mohammed-shakir/brightness-trends/internal/cache"
	"github.com/mohammed-shakir/brightness-trends/internal/cache/keys"
	"github.com/mohammed-shakir/brightness-trends/internal/model"
	"github.com/mohammed-shakir/brightness-trends/internal/regionstore"
)

// Computer produces the brightness trend for a region geometry.
type Computer interface {
	Compute(ctx context.Context, geom regionstore.Geometry) ([]model.TimeSeriesPoint, error)
}

type Service struct {
	logger   *slog.Logger
	regions  *regionstore.Store
	cache    cache.Interface
	computer Computer
	wikiURL  string
	ttl      time.Duration
}

func New(logger *slog.Logger, regions *regionstore.Store, c cache.Interface, computer Computer, wikiURL string, ttl time.Duration) *Service {
	return &Service{
		logger:   logger,
		regions:  regions,
		cache:    c,
		computer: computer,
		wikiURL:  wikiURL,
		ttl:      ttl,
	}
}

// GetDetails returns the serialized PolygonDetails for id. The payload is
// always a well-formed JSON object; analytics failures are captured in its
// error field, never surfaced as transport errors.
func (s *Service) GetDetails(ctx context.Context, id string) ([]byte, error) {
	if !s.regions.Contains(id) {
		return json.Marshal(model.Failure("", "Unrecognized polygon ID: "+id))
	}

	key := keys.Details(id)
	if raw, ok, err := s.cache.Get(ctx, key); err != nil {
		// a broken cache degrades to recompute, it must not fail the request
		s.logger.Warn("cache get failed", "polygon_id", id, "err", err)
	} else if ok {
		return raw, nil
	}

	wikiURL := s.wikiURL + strings.ReplaceAll(id, "-", "%20")

	series, err := s.computeSeries(ctx, id)
	if err != nil {
		// Failures are never cached: the next request recomputes, so a
		// transient upstream outage heals without waiting out the TTL.
		return json.Marshal(model.Failure(wikiURL, err.Error()))
	}

	payload, err := json.Marshal(model.Success(wikiURL, series))
	if err != nil {
		return nil, err
	}

	if won, err := s.cache.Add(ctx, key, payload, s.ttl); err != nil {
		s.logger.Warn("cache add failed", "polygon_id", id, "err", err)
	} else if !won {
		s.logger.Debug("cache add lost race", "polygon_id", id)
	}
	return payload, nil
}

// computeSeries resolves the geometry and runs the remote reduction. A
// geometry-store problem is reported the same way as a remote compute
// failure.
func (s *Service) computeSeries(ctx context.Context, id string) ([]model.TimeSeriesPoint, error) {
	geom, err := s.regions.Geometry(id)
	if err != nil {
		return nil, err
	}
	return s.computer.Compute(ctx, geom)
}
