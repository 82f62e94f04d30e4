package mapview

import (
	"github.com/woozymasta/mapproj/internal/geo"
	"github.com/woozymasta/mapproj/internal/projection"
)

// Layer is something a Map can draw.
type Layer interface {
	// Draw renders the layer into the pixel rectangle (x, y, width, height).
	// proj maps lat/lon straight to pixels and must be treated as read-only.
	Draw(proj projection.Projection, x, y, width, height int)

	// Bounds returns the extent of what the layer draws. It returns false when
	// the extent is unknown or the layer covers the whole globe.
	Bounds() (geo.LatLonRect, bool)
}
