// Package timeseries computes the per-region brightness trend.
package timeseries

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mohammed-shakir/brightness-trends/internal/ee"
	"github.com/mohammed-shakir/brightness-trends/internal/model"
	"github.com/mohammed-shakir/brightness-trends/internal/regionstore"
)

const (
	// CollectionID is the night-time lights dataset the trend is computed
	// over.
	CollectionID = "NOAA/DMSP-OLS/NIGHTTIME_LIGHTS"

	Band = "stable_lights"

	// ReductionScaleMeters is the ground-sample distance for the spatial
	// mean.
	ReductionScaleMeters = 20000
)

// RegionReducer is the analytics capability the computer needs.
type RegionReducer interface {
	ReduceOverRegion(ctx context.Context, collection, band string, geometry json.RawMessage, scaleMeters float64) ([]ee.ReducePoint, error)
}

type Computer struct {
	reducer RegionReducer
}

func New(reducer RegionReducer) *Computer {
	return &Computer{reducer: reducer}
}

// Compute reduces the collection's band over the region, one spatial mean
// per image, ascending by acquisition time. The whole collection goes
// upstream as a single batch and the service returns results in submission
// order, so the sort established in the request carries through. An empty
// collection yields an empty series, not an error.
func (c *Computer) Compute(ctx context.Context, geom regionstore.Geometry) ([]model.TimeSeriesPoint, error) {
	pts, err := c.reducer.ReduceOverRegion(ctx, CollectionID, Band, geom.Raw, ReductionScaleMeters)
	if err != nil {
		return nil, fmt.Errorf("reduce %s over region: %w", CollectionID, err)
	}

	series := make([]model.TimeSeriesPoint, len(pts))
	for i, p := range pts {
		series[i] = model.TimeSeriesPoint{Time: p.Time, Value: p.Mean}
	}
	return series, nil
}
