// Package router defines the inbound HTTP handlers: the main map page and
// the polygon detail endpoint.
package router

import (
	"context"
	_ "embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/mohammed-shakir/brightness-trends/internal/ee"
	"github.com/mohammed-shakir/brightness-trends/internal/observability"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// DetailsProvider serves the polygon-detail payload, pre-serialized.
type DetailsProvider interface {
	GetDetails(ctx context.Context, id string) ([]byte, error)
}

// OverlayProvider produces the map overlay handle for the page load.
type OverlayProvider interface {
	OverlayHandle(ctx context.Context) (ee.MapHandle, error)
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

// MainPage renders the map page with the overlay handle and the full set of
// known region identifiers.
func MainPage(logger *slog.Logger, overlay OverlayProvider, regionIDs []string) http.HandlerFunc {
	serialized, err := json.Marshal(regionIDs)
	if err != nil {
		// a []string cannot fail to marshal
		panic(err)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}

		handle, err := overlay.OverlayHandle(r.Context())
		if err != nil {
			logger.Error("overlay handle failed", "err", err)
			http.Error(sw, "failed to load map overlay", http.StatusBadGateway)
			observability.ObserveHTTP(r.Method, "/", sw.code, time.Since(start).Seconds())
			return
		}

		sw.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = indexTemplate.Execute(sw, struct {
			EEMapID              string
			EEToken              string
			SerializedPolygonIDs template.JS
		}{
			EEMapID:              handle.MapID,
			EEToken:              handle.Token,
			// json.Marshal output of a []string is safe to embed verbatim
			SerializedPolygonIDs: template.JS(serialized),
		})
		if err != nil {
			logger.Error("render main page", "err", err)
		}
		observability.ObserveHTTP(r.Method, "/", sw.code, time.Since(start).Seconds())
	}
}

// Details serves GET /details?polygon_id=<id>. The body is always a
// well-formed JSON object; analytics failures ride in its error field.
func Details(logger *slog.Logger, svc DetailsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}

		id := r.URL.Query().Get("polygon_id")
		payload, err := svc.GetDetails(r.Context(), id)
		if err != nil {
			logger.Error("details failed", "polygon_id", id, "err", err)
			http.Error(sw, "internal server error", http.StatusInternalServerError)
			observability.ObserveHTTP(r.Method, "/details", sw.code, time.Since(start).Seconds())
			return
		}

		sw.Header().Set("Content-Type", "application/json")
		_, _ = sw.Write(payload)
		observability.ObserveHTTP(r.Method, "/details", sw.code, time.Since(start).Seconds())
	}
}
