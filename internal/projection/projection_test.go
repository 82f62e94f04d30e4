package projection

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/mapproj/internal/geo"
)

func assertLatLon(t *testing.T, want, got geo.LatLon, delta float64) {
	t.Helper()
	assert.InDelta(t, want.Latitude.Degrees(), got.Latitude.Degrees(), delta, "latitude")
	assert.InDelta(t, want.Longitude.Degrees(), got.Longitude.Degrees(), delta, "longitude")
}

func TestByName(t *testing.T) {
	center := geo.NewLatLon(47.6609, -122.2816)

	for _, name := range Names() {
		p, err := ByName(name, center)
		require.NoError(t, err, name)
		assert.Equal(t, name, p.(interface{ String() string }).String())
	}

	p, err := ByName(" Stereographic ", center)
	require.NoError(t, err)
	assert.Equal(t, center, p.(*Stereographic).Center())

	_, err = ByName("mercator", center)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownProjection))
}

func TestEquirectangular(t *testing.T) {
	var p Equirectangular

	got := p.Project(geo.NewLatLon(43.263, -2.935))
	assert.Equal(t, geo.Pt(-2.935, 43.263), got)

	// no normalization either way
	for _, ll := range []geo.LatLon{
		geo.NewLatLon(0, 0),
		geo.NewLatLon(47.6609, -122.2816),
		geo.NewLatLon(123.5, -400.25),
		geo.NewLatLon(-1e6, 1e6),
	} {
		assert.Equal(t, ll, p.Unproject(p.Project(ll)))
	}
	pt := geo.Pt(720.0, -95.0)
	assert.Equal(t, pt, p.Project(p.Unproject(pt)))
}

func TestPolygonHelpers(t *testing.T) {
	poly := geo.NewPolygon(
		geo.NewLatLon(0, 0),
		geo.NewLatLon(10, 20),
		geo.NewLatLon(-5, 30),
		geo.NewLatLon(0, 0),
	)

	for _, p := range []Projection{Equirectangular{}, Miller{}, NewStereographic(geo.NewLatLon(-40, 100))} {
		projected := ProjectPolygon(p, poly)
		require.Equal(t, poly.Len(), projected.Len())
		for i, ll := range poly.Points() {
			assert.Equal(t, p.Project(ll), projected.At(i))
		}

		back := UnprojectPolygon(p, projected)
		require.Equal(t, poly.Len(), back.Len())
		for i, pt := range projected.Points() {
			assert.Equal(t, p.Unproject(pt), back.At(i))
		}
	}
}

func TestMiller(t *testing.T) {
	var p Miller

	assert.Equal(t, geo.Pt(0.0, 0.0), p.Project(geo.NewLatLon(0, 0)))

	ll := geo.NewLatLon(45, 10)
	got := p.Project(ll)
	assert.Equal(t, 10.0, got.X)
	assert.InDelta(t, 1.25*math.Asinh(math.Tan(36)), got.Y, 1e-12)
	assert.InDelta(t, 3.4313, got.Y, 1e-4, "the formula runs on the degree value")

	south := p.Project(geo.NewLatLon(-45, 10))
	assert.InDelta(t, -got.Y, south.Y, 1e-12)
}

func TestMiller_UnprojectAsymmetry(t *testing.T) {
	var p Miller

	pt := geo.Pt(12.5, 30.0)
	got := p.Unproject(pt)
	assert.Equal(t, geo.Latitude(30), got.Latitude, "latitude is y unchanged")
	assert.InDelta(t, 1.25*math.Atan(math.Sinh(24)), got.Longitude.Degrees(), 1e-12)
	assert.InDelta(t, 1.9635, got.Longitude.Degrees(), 1e-4)

	// x is dropped entirely
	assert.Equal(t, got, p.Unproject(geo.Pt(-170.0, 30.0)))

	// the longitude formula inverts the forward latitude formula while
	// (4/5) lat stays inside the principal branch of tan
	for _, lat := range []float64{-1.9, -0.75, 0, 0.3, 1.5} {
		back := p.Unproject(p.Project(geo.NewLatLon(lat, 99)))
		assert.InDelta(t, lat, back.Longitude.Degrees(), 1e-9)
	}
}
