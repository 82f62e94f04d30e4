package main

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/mapproj/internal/projection"
)

const sample = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "Bilbao"}, "geometry": {"type": "Point", "coordinates": [-2.93, 43.26]}},
    {"type": "Feature", "properties": {}, "geometry": {"type": "LineString", "coordinates": [[0, 0], [10, 5]]}},
    {"type": "Feature", "properties": {}, "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 0]]]}}
  ]
}`

func TestProjectDocumentEquirectangular(t *testing.T) {
	out, count, err := projectDocument(projection.Equirectangular{}, []byte(sample))
	require.NoError(t, err)
	require.Equal(t, 3, count)

	assert.Equal(t, "Point", out[0].Type)
	assert.Equal(t, [2]float64{-2.93, 43.26}, out[0].Coordinates)
	assert.Equal(t, "Bilbao", out[0].Properties["name"])

	assert.Equal(t, [][2]float64{{0, 0}, {10, 5}}, out[1].Coordinates)

	rings, ok := out[2].Coordinates.([][][2]float64)
	require.True(t, ok)
	require.Len(t, rings, 1)
	assert.Len(t, rings[0], 4)
	assert.Equal(t, [2]float64{1, 1}, rings[0][2])
}

func TestProjectDocumentMiller(t *testing.T) {
	out, _, err := projectDocument(projection.Miller{}, []byte(sample))
	require.NoError(t, err)

	p := out[0].Coordinates.([2]float64)
	assert.InDelta(t, -2.93, p[0], 1e-9)
	assert.InDelta(t, 1.25*math.Asinh(math.Tan(0.8*43.26)), p[1], 1e-9)
}

func TestProjectDocumentInvalid(t *testing.T) {
	_, _, err := projectDocument(projection.Equirectangular{}, []byte(`{"type": "Feature"`))
	require.Error(t, err)
}

func TestWriteFormats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, write(&buf, "json", map[string]float64{"x": 1}))

	var decoded map[string]float64
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1.0, decoded["x"])

	buf.Reset()
	require.NoError(t, write(&buf, "yaml", map[string]float64{"x": 1}))
	assert.Equal(t, "x: 1\n", buf.String())
}
