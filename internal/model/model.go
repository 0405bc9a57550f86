// Package model defines core domain types shared across the service.
package model

import (
	"encoding/json"
	"errors"
)

// TimeSeriesPoint is one sample of the brightness trend. Value is nil when
// the region had no valid pixels in that image, which is distinct from a
// failed computation.
type TimeSeriesPoint struct {
	Time  int64
	Value *float64
}

// MarshalJSON encodes the point as a [timestamp, value] pair, the shape the
// charting frontend consumes directly.
func (p TimeSeriesPoint) MarshalJSON() ([]byte, error) {
	if p.Value == nil {
		return json.Marshal([2]any{p.Time, nil})
	}
	return json.Marshal([2]any{p.Time, *p.Value})
}

func (p *TimeSeriesPoint) UnmarshalJSON(b []byte) error {
	var raw []*float64
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return errors.New("time series point must be a [timestamp, value] pair")
	}
	if raw[0] == nil {
		return errors.New("time series point timestamp must not be null")
	}
	p.Time = int64(*raw[0])
	p.Value = raw[1]
	return nil
}

// PolygonDetails is the unit cached and returned on the detail path.
// Exactly one of TimeSeries/Err is populated; construct values through
// Success and Failure rather than literals.
type PolygonDetails struct {
	WikiURL    string
	TimeSeries []TimeSeriesPoint
	Err        string
}

func Success(wikiURL string, ts []TimeSeriesPoint) PolygonDetails {
	if ts == nil {
		ts = []TimeSeriesPoint{}
	}
	return PolygonDetails{WikiURL: wikiURL, TimeSeries: ts}
}

func Failure(wikiURL, msg string) PolygonDetails {
	return PolygonDetails{WikiURL: wikiURL, Err: msg}
}

// MarshalJSON keeps the two variants distinguishable for the browser: a
// success always carries timeSeries (an empty collection serializes as [],
// not as an error), a failure always carries error and never timeSeries.
func (d PolygonDetails) MarshalJSON() ([]byte, error) {
	if d.Err != "" {
		return json.Marshal(struct {
			WikiURL string `json:"wikiUrl,omitempty"`
			Error   string `json:"error"`
		}{d.WikiURL, d.Err})
	}
	ts := d.TimeSeries
	if ts == nil {
		ts = []TimeSeriesPoint{}
	}
	return json.Marshal(struct {
		WikiURL    string            `json:"wikiUrl"`
		TimeSeries []TimeSeriesPoint `json:"timeSeries"`
	}{d.WikiURL, ts})
}
