package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/mapproj/internal/geo"
)

const sample = `
projection:
  name: stereographic
  center: {lat: 47.6609, lon: -122.2816}
view:
  width: 1024
  height: 768
  zoom: 400
  center: {lat: 37.4096, lon: -122.299}
  scroll: {x: 10, y: -5}
output:
  format: webp
  path: out.webp
layers:
  - type: graticule
    step: 10
  - name: cities
    type: markers
    fill: "#ff0000"
    label: name
    markers:
      - {name: Seattle, lat: 47.6609, lon: -122.2816}
  - name: coast
    type: geojson
    source: coast.geojson
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "stereographic", cfg.Projection.Name)
	assert.Equal(t, geo.NewLatLon(47.6609, -122.2816), cfg.Projection.Center)
	assert.Equal(t, 1024, cfg.View.Width)
	assert.Equal(t, 400.0, cfg.View.Zoom)
	require.NotNil(t, cfg.View.Center)
	assert.Equal(t, geo.NewLatLon(37.4096, -122.299), *cfg.View.Center)
	assert.Equal(t, geo.Pt(10.0, -5.0), cfg.View.Scroll)
	assert.Equal(t, "webp", cfg.Output.Format)
	assert.Equal(t, 85, cfg.Output.Quality)

	require.Len(t, cfg.Layers, 3)
	assert.Equal(t, "graticule-0", cfg.Layers[0].Name)
	assert.Equal(t, 10.0, cfg.Layers[0].Step)
	assert.Equal(t, 4.0, cfg.Layers[1].Radius)
	assert.Equal(t, "Seattle", cfg.Layers[1].Markers[0].Name)
	assert.Equal(t, "#333333", cfg.Layers[2].Stroke)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, "equirectangular", cfg.Projection.Name)
	assert.Equal(t, 800, cfg.View.Width)
	assert.Equal(t, 600, cfg.View.Height)
	assert.Equal(t, 1.0, cfg.View.Zoom)
	assert.Equal(t, "png", cfg.Output.Format)
	assert.Nil(t, cfg.View.Center)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte(`
view: {zoom: -2}
output: {quality: 150}
layers:
  - {type: geojson}
  - {type: markers}
  - {type: tiles}
`))
	require.Error(t, err)
	for _, want := range []string{"view.zoom", "output.quality", "source is required", "markers are required", `unknown type "tiles"`} {
		assert.Contains(t, err.Error(), want)
	}

	_, err = Parse([]byte(`
view: {width: 200000, height: 600}
layers:
  - {type: graticule, step: 1e-9}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not exceed 8192x8192")
	assert.Contains(t, err.Error(), "step must be 0 (default) or at least 0.1")

	_, err = Parse([]byte(`
view: {width: 8192, height: 8192}
layers:
  - {type: graticule, step: 0.1}
`))
	assert.NoError(t, err)

	_, err = Parse([]byte("view: ["))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
