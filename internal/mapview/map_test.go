package mapview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/mapproj/internal/geo"
	"github.com/woozymasta/mapproj/internal/projection"
)

// recordingLayer keeps what it was given on each draw.
type recordingLayer struct {
	name   string
	order  *[]string
	probes []geo.LatLon

	projected [][]geo.Point[float64]
	rects     [][4]int

	bounds    geo.LatLonRect
	hasBounds bool
}

func (l *recordingLayer) Draw(proj projection.Projection, x, y, width, height int) {
	if l.order != nil {
		*l.order = append(*l.order, l.name)
	}
	pts := make([]geo.Point[float64], len(l.probes))
	for i, p := range l.probes {
		pts[i] = proj.Project(p)
	}
	l.projected = append(l.projected, pts)
	l.rects = append(l.rects, [4]int{x, y, width, height})
}

func (l *recordingLayer) Bounds() (geo.LatLonRect, bool) { return l.bounds, l.hasBounds }

func (l *recordingLayer) last() []geo.Point[float64] { return l.projected[len(l.projected)-1] }

func TestNew_Defaults(t *testing.T) {
	m := New(projection.Equirectangular{}, 10, 20, 800, 600)

	assert.Equal(t, 1.0, m.Zoom())
	assert.Equal(t, geo.Pt(0.0, 0.0), m.Center())
	x, y, w, h := m.Geometry()
	assert.Equal(t, [4]int{10, 20, 800, 600}, [4]int{x, y, w, h})
	assert.Empty(t, m.Layers())
}

func TestDraw_OrderAndRect(t *testing.T) {
	var order []string
	m := New(projection.Equirectangular{}, 5, 6, 320, 240)
	bottom := &recordingLayer{name: "bottom", order: &order, probes: []geo.LatLon{geo.NewLatLon(0, 0)}}
	top := &recordingLayer{name: "top", order: &order, probes: []geo.LatLon{geo.NewLatLon(10, 20)}}
	m.AddLayer(bottom)
	m.AddLayer(top)

	m.Draw()

	assert.Equal(t, []string{"bottom", "top"}, order)
	assert.Equal(t, [4]int{5, 6, 320, 240}, bottom.rects[0])
	assert.Equal(t, geo.Pt(160.0, 120.0), bottom.last()[0])
	assert.Equal(t, geo.Pt(180.0, 130.0), top.last()[0])

	m.ClearLayers()
	m.Draw()
	assert.Len(t, order, 2)
}

func TestScroll_PixelRateAtAnyZoom(t *testing.T) {
	probes := []geo.LatLon{geo.NewLatLon(0, 0), geo.NewLatLon(12.5, -40), geo.NewLatLon(-60, 170)}

	for _, zoom := range []float64{0.5, 1, 3, 250} {
		m := New(projection.Equirectangular{}, 0, 0, 640, 480)
		m.SetZoom(zoom)
		layer := &recordingLayer{probes: probes}
		m.AddLayer(layer)

		m.Draw()
		before := layer.last()

		m.Scroll(30, -12)
		m.Draw()
		after := layer.last()

		for i := range probes {
			assert.InDelta(t, before[i].X-30, after[i].X, 1e-9, "zoom %v", zoom)
			assert.InDelta(t, before[i].Y+12, after[i].Y, 1e-9, "zoom %v", zoom)
		}
	}
}

func TestScroll_MovesCenterInMapUnits(t *testing.T) {
	m := New(projection.Equirectangular{}, 0, 0, 100, 100)
	m.SetZoom(4)
	m.Scroll(8, -4)
	assert.Equal(t, geo.Pt(2.0, -1.0), m.Center())
}

func TestSetZoom_ScalesAroundCenter(t *testing.T) {
	m := New(projection.Equirectangular{}, 0, 0, 200, 200)
	layer := &recordingLayer{probes: []geo.LatLon{geo.NewLatLon(1, 2)}}
	m.AddLayer(layer)

	m.SetZoom(10)
	m.Draw()
	assert.Equal(t, geo.Pt(120.0, 110.0), layer.last()[0])
}

func TestSetProjection_KeepsLayersAndView(t *testing.T) {
	m := New(projection.Equirectangular{}, 0, 0, 200, 100)
	layer := &recordingLayer{probes: []geo.LatLon{geo.NewLatLon(45, 10)}}
	m.AddLayer(layer)
	m.SetZoom(2)

	m.SetProjection(projection.Miller{})
	m.Draw()

	require.Len(t, m.Layers(), 1)
	assert.Equal(t, 2.0, m.Zoom())
	want := projection.Miller{}.Project(geo.NewLatLon(45, 10)).Scale(2).Add(geo.Pt(100.0, 50.0))
	assert.InDelta(t, want.X, layer.last()[0].X, 1e-9)
	assert.InDelta(t, want.Y, layer.last()[0].Y, 1e-9)
}

func TestCenterOnAndGeometry(t *testing.T) {
	m := New(projection.Equirectangular{}, 0, 0, 100, 100)
	layer := &recordingLayer{probes: []geo.LatLon{geo.NewLatLon(43.263, -2.935)}}
	m.AddLayer(layer)

	m.CenterOn(geo.NewLatLon(43.263, -2.935))
	m.SetGeometry(0, 0, 300, 50)
	m.Draw()

	assert.Equal(t, geo.Pt(150.0, 25.0), layer.last()[0])
	assert.Equal(t, [4]int{0, 0, 300, 50}, layer.rects[0])
}

func TestView_UnprojectsPixels(t *testing.T) {
	m := New(projection.NewStereographic(geo.NewLatLon(47.6609, -122.2816)), 0, 0, 1024, 768)
	m.SetZoom(400)

	target := geo.NewLatLon(37.4096, -122.299)
	v := m.View()
	got := v.Unproject(v.Project(target))
	assert.InDelta(t, target.Latitude.Degrees(), got.Latitude.Degrees(), 1e-9)
	assert.InDelta(t, target.Longitude.Degrees(), got.Longitude.Degrees(), 1e-9)
}

func TestBounds(t *testing.T) {
	m := New(projection.Equirectangular{}, 0, 0, 10, 10)
	_, ok := m.Bounds()
	assert.False(t, ok)

	m.AddLayer(&recordingLayer{})
	_, ok = m.Bounds()
	assert.False(t, ok, "global layers do not contribute")

	m.AddLayer(&recordingLayer{hasBounds: true, bounds: geo.LatLonRect{North: 10, South: 0, East: 10, West: 0}})
	m.AddLayer(&recordingLayer{hasBounds: true, bounds: geo.LatLonRect{North: 20, South: 5, East: 5, West: -5}})

	got, ok := m.Bounds()
	require.True(t, ok)
	assert.Equal(t, geo.LatLonRect{North: 20, South: 0, East: 10, West: -5}, got)
}
