// Package ee is the client for the remote satellite-imagery analytics
// service. It owns no imagery math itself: transforms, unmixing and
// reductions are declared in requests and evaluated upstream.
package ee

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mohammed-shakir/brightness-trends/internal/observability"
)

// RemoteError is a rejection from the analytics service, carrying the
// upstream message verbatim. The detail service surfaces it to the browser
// as the payload's error field.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("analytics service returned status %d", e.Status)
}

// ImageRef identifies one image in a collection.
type ImageRef struct {
	ID         string `json:"imageId"`
	AcquiredAt int64  `json:"acquiredAt"`
}

// ReducePoint is one per-image reduction result. Mean is null when the
// region had no valid pixels in that image.
type ReducePoint struct {
	Time int64    `json:"time"`
	Mean *float64 `json:"mean"`
}

// UnmixSpec declares a band-algebra transform followed by a linear unmixing
// against fixed endmember signatures, all evaluated upstream.
type UnmixSpec struct {
	Transforms []string    `json:"transforms"`
	Endmembers [][]float64 `json:"endmembers"`
}

// VisParams selects bands and display stretch for a map visualization.
type VisParams struct {
	Bands []string `json:"bands"`
	Min   string   `json:"min"`
	Max   string   `json:"max"`
}

// MapHandle is what the browser needs to load tiles directly from the
// analytics service.
type MapHandle struct {
	MapID string `json:"mapid"`
	Token string `json:"token"`
}

type Client struct {
	logger *slog.Logger
	http   *http.Client
	base   *url.URL
	creds  Credentials
}

func NewClient(logger *slog.Logger, httpClient *http.Client, baseURL string, creds Credentials) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse analytics url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("analytics url %q must be absolute", baseURL)
	}
	return &Client{logger: logger, http: httpClient, base: u, creds: creds}, nil
}

// LatestImage returns the most recently acquired image of a collection.
func (c *Client) LatestImage(ctx context.Context, collection string) (ImageRef, error) {
	var out ImageRef
	path := "/v1/collections/" + url.PathEscape(collection) + "/images/latest"
	if err := c.do(ctx, "latest_image", http.MethodGet, path, nil, &out); err != nil {
		return ImageRef{}, err
	}
	return out, nil
}

type reduceRequest struct {
	Band     string          `json:"band"`
	Reducer  string          `json:"reducer"`
	Geometry json.RawMessage `json:"geometry"`
	Scale    float64         `json:"scale"`
	SortBy   string          `json:"sortBy"`
}

// ReduceOverRegion reduces one band of every image in the collection over
// the geometry, as a single batch. The service evaluates images in the
// requested sort order and returns results in submission order, which the
// caller relies on.
func (c *Client) ReduceOverRegion(ctx context.Context, collection, band string, geometry json.RawMessage, scaleMeters float64) ([]ReducePoint, error) {
	req := reduceRequest{
		Band:     band,
		Reducer:  "mean",
		Geometry: geometry,
		Scale:    scaleMeters,
		SortBy:   "system:time_start",
	}
	var out struct {
		Points []ReducePoint `json:"points"`
	}
	path := "/v1/collections/" + url.PathEscape(collection) + "/reduce"
	if err := c.do(ctx, "reduce_region", http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}
	if out.Points == nil {
		out.Points = []ReducePoint{}
	}
	return out.Points, nil
}

// Unmix applies spec to the image and returns a handle to the derived
// fractional-cover image.
func (c *Client) Unmix(ctx context.Context, imageID string, spec UnmixSpec) (ImageRef, error) {
	var out ImageRef
	path := "/v1/images/" + url.PathEscape(imageID) + "/unmix"
	if err := c.do(ctx, "unmix", http.MethodPost, path, spec, &out); err != nil {
		return ImageRef{}, err
	}
	return out, nil
}

// MapID produces a tile-map handle for the image under the given
// visualization parameters.
func (c *Client) MapID(ctx context.Context, imageID string, vis VisParams) (MapHandle, error) {
	var out MapHandle
	path := "/v1/images/" + url.PathEscape(imageID) + "/mapid"
	if err := c.do(ctx, "map_id", http.MethodPost, path, vis, &out); err != nil {
		return MapHandle{}, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
	}

	// path segments are pre-escaped; let NewRequest parse the raw form
	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.creds.Sign(req, body)

	start := time.Now()
	resp, err := c.http.Do(req)
	observability.ObserveUpstreamLatency(op, time.Since(start).Seconds())
	if err != nil {
		return &RemoteError{Message: fmt.Sprintf("analytics %s: %v", op, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return remoteErrorFrom(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RemoteError{Status: resp.StatusCode, Message: fmt.Sprintf("decode %s response: %v", op, err)}
	}
	c.logger.Debug("analytics call done", "op", op, "status", resp.StatusCode)
	return nil
}

// remoteErrorFrom extracts the upstream message from an error response,
// falling back to the raw body text.
func remoteErrorFrom(resp *http.Response) *RemoteError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		return &RemoteError{Status: resp.StatusCode, Message: envelope.Error.Message}
	}
	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = resp.Status
	}
	return &RemoteError{Status: resp.StatusCode, Message: msg}
}
