// Package maplayer produces the visualization handle for the main map
// overlay.
package maplayer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mohammed-shakir/brightness-trends/internal/ee"
)

// CollectionID is the MODIS nadir-reflectance dataset behind the overlay.
const CollectionID = "MODIS/MCD43A4"

var (
	// algorithm bands, in the order the transform expressions reference them
	useBands = []string{
		"Nadir_Reflectance_Band4",
		"Nadir_Reflectance_Band1",
		"Nadir_Reflectance_Band2",
		"Nadir_Reflectance_Band5",
		"Nadir_Reflectance_Band6",
		"Nadir_Reflectance_Band7",
	}

	visParams = ee.VisParams{
		Bands: []string{"Nadir_Reflectance_Band6", "Nadir_Reflectance_Band2", "Nadir_Reflectance_Band1"},
		Min:   "100,100,100",
		Max:   "4000,4000,4000",
	}
)

// Analytics is the slice of the remote service the overlay needs.
type Analytics interface {
	LatestImage(ctx context.Context, collection string) (ee.ImageRef, error)
	Unmix(ctx context.Context, imageID string, spec ee.UnmixSpec) (ee.ImageRef, error)
	MapID(ctx context.Context, imageID string, vis ee.VisParams) (ee.MapHandle, error)
}

type Service struct {
	logger *slog.Logger
	ee     Analytics
}

func New(logger *slog.Logger, analytics Analytics) *Service {
	return &Service{logger: logger, ee: analytics}
}

// OverlayHandle fetches the newest image in the collection and returns its
// tile-map handle. The fractional-cover unmixing is computed remotely but
// its output is not what the handle is built from: the visualization uses
// three raw reflectance bands with a fixed stretch. Dead computation, kept
// deliberately — it matches the shipped behavior, remote quota usage
// included, until product decides which layer the page should show.
func (s *Service) OverlayHandle(ctx context.Context) (ee.MapHandle, error) {
	img, err := s.ee.LatestImage(ctx, CollectionID)
	if err != nil {
		return ee.MapHandle{}, fmt.Errorf("latest %s image: %w", CollectionID, err)
	}

	spec := ee.UnmixSpec{
		Transforms: transformExpressions(),
		Endmembers: [][]float64{endmemberBare, endmemberGreen, endmemberDead},
	}
	fractions, err := s.ee.Unmix(ctx, img.ID, spec)
	if err != nil {
		return ee.MapHandle{}, fmt.Errorf("unmix cover fractions: %w", err)
	}
	s.logger.Debug("cover fractions computed", "image_id", fractions.ID)

	handle, err := s.ee.MapID(ctx, img.ID, visParams)
	if err != nil {
		return ee.MapHandle{}, fmt.Errorf("map handle: %w", err)
	}
	return handle, nil
}

// transformExpressions builds the interactive-term feature bands evaluated
// upstream: pairwise raw products, raw x log products, log x log products,
// then the raw bands, the log bands and a constant plane. The log(B2)*log(B7)
// term is absent from the log-product group; the endmember vectors were
// fitted against exactly this band list, so the omission stays.
func transformExpressions() []string {
	b := useBands
	logOf := func(name string) string { return "log(b('" + name + "'))" }
	rawOf := func(name string) string { return "b('" + name + "')" }

	var exprs []string

	// Per band: its raw products with the later bands, then its products
	// with every log band. The order is load-bearing — endmember
	// coefficients are positional.
	for i := 0; i < len(b); i++ {
		for j := i + 1; j < len(b); j++ {
			exprs = append(exprs, rawOf(b[i])+" * "+rawOf(b[j]))
		}
		for j := 0; j < len(b); j++ {
			exprs = append(exprs, rawOf(b[i])+" * "+logOf(b[j]))
		}
	}

	// log pairwise products, minus the fitted-out B2*B7 term
	for i := 0; i < len(b); i++ {
		for j := i + 1; j < len(b); j++ {
			if b[i] == "Nadir_Reflectance_Band2" && b[j] == "Nadir_Reflectance_Band7" {
				continue
			}
			exprs = append(exprs, logOf(b[i])+" * "+logOf(b[j]))
		}
	}

	// the bands themselves, their logs, and the constant plane
	for _, name := range b {
		exprs = append(exprs, rawOf(name))
	}
	for _, name := range b {
		exprs = append(exprs, logOf(name))
	}
	exprs = append(exprs, "0.25")

	return exprs
}
