package projection

import "github.com/woozymasta/mapproj/internal/geo"

// Equirectangular is the plate carrée projection: degrees are used directly as
// map units, longitude on x and latitude on y.
type Equirectangular struct{}

func (Equirectangular) Project(pos geo.LatLon) geo.Point[float64] {
	return geo.Pt(pos.Longitude.Degrees(), pos.Latitude.Degrees())
}

func (Equirectangular) Unproject(p geo.Point[float64]) geo.LatLon {
	return geo.NewLatLon(p.Y, p.X)
}

func (Equirectangular) String() string { return NameEquirectangular }
