// Package render provides the drawing surfaces layers paint on and encodes them
// to image files.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/woozymasta/mapproj/internal/geo"
)

// Output formats.
const (
	FormatPNG  = "png"
	FormatWebP = "webp"
	FormatSVG  = "svg"
)

// ErrUnknownFormat is returned for output formats without an encoder.
var ErrUnknownFormat = errors.New("unknown output format")

// Style describes how a shape is painted. A zero alpha disables stroke or fill.
type Style struct {
	Stroke color.NRGBA
	Fill   color.NRGBA
	Width  float64 // stroke width, px
	Radius float64 // marker radius, px
}

// Surface is a drawing target that can be written out as an image. Shape
// coordinates are view pixels with y growing north; surfaces flip them into
// image rows so north ends up at the top.
type Surface interface {
	Polyline(points []geo.Point[float64], style Style)
	Polygon(rings [][]geo.Point[float64], style Style)
	Circle(center geo.Point[float64], style Style)
	Text(at geo.Point[float64], text string, style Style)

	Encode(w io.Writer) error
	ContentType() string
}

// Options configures a new surface.
type Options struct {
	Format     string
	Width      int
	Height     int
	Background color.NRGBA
	Quality    int // webp only, 1..100
}

// New returns an empty surface for the requested format.
func New(opts Options) (Surface, error) {
	switch strings.ToLower(opts.Format) {
	case FormatPNG, "":
		return NewRaster(opts.Width, opts.Height, opts.Background, FormatPNG, opts.Quality), nil
	case FormatWebP:
		return NewRaster(opts.Width, opts.Height, opts.Background, FormatWebP, opts.Quality), nil
	case FormatSVG:
		return NewSVG(opts.Width, opts.Height, opts.Background), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

// ParseColor reads #rgb, #rrggbb or #rrggbbaa. An empty string is transparent.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return color.NRGBA{}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// limit keeps coordinates within what the rasterizer and SVG viewers handle.
const limit = 1 << 16

// flipY turns a view pixel (y up) into an image pixel (y down).
func flipY(p geo.Point[float64], height int) geo.Point[float64] {
	return geo.Pt(p.X, float64(height)-p.Y)
}

func flipAll(points []geo.Point[float64], height int) []geo.Point[float64] {
	out := make([]geo.Point[float64], len(points))
	for i, p := range points {
		out[i] = flipY(p, height)
	}
	return out
}

func usable(p geo.Point[float64]) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) &&
		math.Abs(p.X) < limit && math.Abs(p.Y) < limit
}

// SplitUsable cuts a path at points that cannot be drawn (NaN, infinite or far
// off-surface) and drops pieces shorter than minLen points.
func SplitUsable(points []geo.Point[float64], minLen int) [][]geo.Point[float64] {
	var (
		out [][]geo.Point[float64]
		cur []geo.Point[float64]
	)

	for _, p := range points {
		if usable(p) {
			cur = append(cur, p)
			continue
		}
		if len(cur) >= minLen {
			out = append(out, cur)
		}
		cur = nil
	}
	if len(cur) >= minLen {
		out = append(out, cur)
	}

	return out
}
