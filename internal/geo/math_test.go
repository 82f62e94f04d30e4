package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const closeEnough = 0.001

func TestNormalizeLatitude_Identity(t *testing.T) {
	for _, lat := range []float64{-90, -45.5, -10, 0, 10, 47.6609, 89.999, 90} {
		assert.InDelta(t, lat, NormalizeLatitude(lat), 1e-9, "lat %v", lat)
	}
}

func TestNormalizeLongitude_Identity(t *testing.T) {
	for _, lon := range []float64{-179.999, -122.2816, -90, 0, 10, 90, 122.299, 180} {
		assert.InDelta(t, lon, NormalizeLongitude(lon), 1e-9, "lon %v", lon)
	}
}

func TestNormalizeLatitude_FoldsOverPole(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{100, 80},
		{180, 0},
		{-100, -80},
		{270, -90},
		{450, 90},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeLatitude(tt.in), 1e-9, "lat %v", tt.in)
	}
}

func TestNormalizeLongitude_Wraps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{190, -170},
		{360, 0},
		{-190, 170},
		{530, 170},
		{720.5, 0.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeLongitude(tt.in), 1e-9, "lon %v", tt.in)
	}
}

func TestRadiansDegrees(t *testing.T) {
	assert.InDelta(t, 3.141592653589793, Radians(180), 1e-15)
	assert.InDelta(t, 57.29577951308232, Degrees(1), 1e-12)
	assert.InDelta(t, 33.3, Degrees(Radians(33.3)), 1e-12)
}
