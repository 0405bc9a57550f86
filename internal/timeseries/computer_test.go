package timeseries

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mohammed-shakir/brightness-trends/internal/ee"
	"github.com/mohammed-shakir/brightness-trends/internal/regionstore"
)

type fakeReducer struct {
	points     []ee.ReducePoint
	err        error
	calls      int
	collection string
	band       string
	scale      float64
}

func (f *fakeReducer) ReduceOverRegion(_ context.Context, collection, band string, _ json.RawMessage, scale float64) ([]ee.ReducePoint, error) {
	f.calls++
	f.collection = collection
	f.band = band
	f.scale = scale
	return f.points, f.err
}

func fptr(v float64) *float64 { return &v }

func TestCompute_PreservesOrderAndNoData(t *testing.T) {
	r := &fakeReducer{points: []ee.ReducePoint{
		{Time: 10, Mean: fptr(1.5)},
		{Time: 20, Mean: nil},
		{Time: 30, Mean: fptr(2.25)},
	}}
	c := New(r)

	series, err := c.Compute(context.Background(), regionstore.Geometry{Raw: json.RawMessage(`{"type":"Feature"}`)})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(series) != 3 {
		t.Fatalf("len: %d", len(series))
	}
	for i := 1; i < len(series); i++ {
		if series[i].Time < series[i-1].Time {
			t.Fatalf("series not ascending at %d: %+v", i, series)
		}
	}
	if series[1].Value != nil {
		t.Fatalf("no-data must stay nil: %+v", series[1])
	}
	if series[2].Value == nil || *series[2].Value != 2.25 {
		t.Fatalf("value: %+v", series[2])
	}
}

func TestCompute_UsesFixedCollectionBandScale(t *testing.T) {
	r := &fakeReducer{}
	_, err := New(r).Compute(context.Background(), regionstore.Geometry{})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if r.collection != CollectionID || r.band != Band || r.scale != ReductionScaleMeters {
		t.Fatalf("got collection=%q band=%q scale=%v", r.collection, r.band, r.scale)
	}
}

func TestCompute_EmptyCollectionIsEmptySeries(t *testing.T) {
	r := &fakeReducer{points: []ee.ReducePoint{}}
	series, err := New(r).Compute(context.Background(), regionstore.Geometry{})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if series == nil || len(series) != 0 {
		t.Fatalf("want empty non-nil series, got %v", series)
	}
}

func TestCompute_PropagatesRemoteError(t *testing.T) {
	remote := &ee.RemoteError{Status: 500, Message: "boom"}
	r := &fakeReducer{err: remote}
	_, err := New(r).Compute(context.Background(), regionstore.Geometry{})
	var re *ee.RemoteError
	if !errors.As(err, &re) || re.Message != "boom" {
		t.Fatalf("want wrapped RemoteError, got %v", err)
	}
}
