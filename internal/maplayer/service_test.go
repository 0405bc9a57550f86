package maplayer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mohammed-shakir/brightness-trends/internal/ee"
)

type fakeAnalytics struct {
	latest    ee.ImageRef
	latestErr error

	unmixCalls int
	unmixSpec  ee.UnmixSpec
	unmixErr   error

	mapCalls   int
	mapImageID string
	mapVis     ee.VisParams
	mapErr     error
}

func (f *fakeAnalytics) LatestImage(_ context.Context, _ string) (ee.ImageRef, error) {
	return f.latest, f.latestErr
}

func (f *fakeAnalytics) Unmix(_ context.Context, _ string, spec ee.UnmixSpec) (ee.ImageRef, error) {
	f.unmixCalls++
	f.unmixSpec = spec
	return ee.ImageRef{ID: "fractions-1"}, f.unmixErr
}

func (f *fakeAnalytics) MapID(_ context.Context, imageID string, vis ee.VisParams) (ee.MapHandle, error) {
	f.mapCalls++
	f.mapImageID = imageID
	f.mapVis = vis
	return ee.MapHandle{MapID: "map-1", Token: "tok-1"}, f.mapErr
}

func newService(fa *fakeAnalytics) *Service {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), fa)
}

func TestOverlayHandle_UsesRawBandsNotUnmixOutput(t *testing.T) {
	fa := &fakeAnalytics{latest: ee.ImageRef{ID: "img-42", AcquiredAt: 100}}
	h, err := newService(fa).OverlayHandle(context.Background())
	if err != nil {
		t.Fatalf("OverlayHandle: %v", err)
	}
	if h.MapID != "map-1" || h.Token != "tok-1" {
		t.Fatalf("handle: %+v", h)
	}

	// the unmixing runs (it consumes remote quota) even though the handle
	// comes from the raw image
	if fa.unmixCalls != 1 {
		t.Fatalf("unmix calls: %d", fa.unmixCalls)
	}
	if fa.mapImageID != "img-42" {
		t.Fatalf("map handle must come from the raw image, got %q", fa.mapImageID)
	}

	wantBands := []string{"Nadir_Reflectance_Band6", "Nadir_Reflectance_Band2", "Nadir_Reflectance_Band1"}
	for i, b := range wantBands {
		if fa.mapVis.Bands[i] != b {
			t.Fatalf("vis bands: %v", fa.mapVis.Bands)
		}
	}
	if fa.mapVis.Min != "100,100,100" || fa.mapVis.Max != "4000,4000,4000" {
		t.Fatalf("vis stretch: %+v", fa.mapVis)
	}
}

func TestOverlayHandle_TransformMatchesEndmemberArity(t *testing.T) {
	fa := &fakeAnalytics{latest: ee.ImageRef{ID: "img-1"}}
	if _, err := newService(fa).OverlayHandle(context.Background()); err != nil {
		t.Fatalf("OverlayHandle: %v", err)
	}

	n := len(fa.unmixSpec.Transforms)
	for i, em := range fa.unmixSpec.Endmembers {
		if len(em) != n {
			t.Fatalf("endmember %d has %d coefficients for %d feature bands", i, len(em), n)
		}
	}
	if len(fa.unmixSpec.Endmembers) != 3 {
		t.Fatalf("endmembers: %d", len(fa.unmixSpec.Endmembers))
	}
}

func TestTransformExpressions_OmitsFittedOutLogTerm(t *testing.T) {
	exprs := transformExpressions()

	omitted := "log(b('Nadir_Reflectance_Band2')) * log(b('Nadir_Reflectance_Band7'))"
	kept := "log(b('Nadir_Reflectance_Band2')) * log(b('Nadir_Reflectance_Band5'))"
	var sawKept bool
	for _, e := range exprs {
		if e == omitted {
			t.Fatalf("fitted-out term present: %s", e)
		}
		if e == kept {
			sawKept = true
		}
	}
	if !sawKept {
		t.Fatal("expected log pairwise products to be present")
	}
	if exprs[len(exprs)-1] != "0.25" {
		t.Fatalf("last band must be the constant plane, got %q", exprs[len(exprs)-1])
	}
	if !strings.HasPrefix(exprs[0], "b('Nadir_Reflectance_Band4')") {
		t.Fatalf("first expression: %q", exprs[0])
	}
}

func TestOverlayHandle_ErrorsAreFatalForTheRequest(t *testing.T) {
	fa := &fakeAnalytics{latestErr: &ee.RemoteError{Status: 503, Message: "collection empty"}}
	_, err := newService(fa).OverlayHandle(context.Background())
	var re *ee.RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("want RemoteError, got %v", err)
	}

	fa = &fakeAnalytics{latest: ee.ImageRef{ID: "img"}, unmixErr: errors.New("boom")}
	if _, err := newService(fa).OverlayHandle(context.Background()); err == nil {
		t.Fatal("unmix failure must fail the page load")
	}

	fa = &fakeAnalytics{latest: ee.ImageRef{ID: "img"}, mapErr: errors.New("boom")}
	if _, err := newService(fa).OverlayHandle(context.Background()); err == nil {
		t.Fatal("map handle failure must fail the page load")
	}
}
