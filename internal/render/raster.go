package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/woozymasta/mapproj/internal/geo"
)

const circleSegments = 32

// Raster paints onto an RGBA image.
type Raster struct {
	img     *image.RGBA
	z       *vector.Rasterizer
	format  string
	quality int
}

// NewRaster returns a width x height image filled with bg, encoded as format.
func NewRaster(width, height int, bg color.NRGBA, format string, quality int) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)

	if quality <= 0 || quality > 100 {
		quality = 85
	}

	return &Raster{
		img:     img,
		z:       vector.NewRasterizer(width, height),
		format:  format,
		quality: quality,
	}
}

// Image returns the underlying image.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) ContentType() string {
	if r.format == FormatWebP {
		return "image/webp"
	}
	return "image/png"
}

func (r *Raster) Encode(w io.Writer) error {
	switch r.format {
	case FormatWebP:
		if err := webp.Encode(w, r.img, &webp.Options{Lossless: false, Quality: float32(r.quality)}); err != nil {
			return fmt.Errorf("encode webp: %w", err)
		}
	default:
		if err := png.Encode(w, r.img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
	}
	return nil
}

func (r *Raster) Polyline(points []geo.Point[float64], style Style) {
	r.polyline(flipAll(points, r.img.Bounds().Dy()), style)
}

func (r *Raster) Polygon(rings [][]geo.Point[float64], style Style) {
	flipped := make([][]geo.Point[float64], len(rings))
	for i, ring := range rings {
		flipped[i] = flipAll(ring, r.img.Bounds().Dy())
	}
	r.polygon(flipped, style)
}

func (r *Raster) Circle(center geo.Point[float64], style Style) {
	if !usable(center) || style.Radius <= 0 {
		return
	}

	c := flipY(center, r.img.Bounds().Dy())
	ring := make([]geo.Point[float64], circleSegments)
	for i := range ring {
		a := 2 * math.Pi * float64(i) / circleSegments
		ring[i] = geo.Pt(c.X+style.Radius*math.Cos(a), c.Y+style.Radius*math.Sin(a))
	}
	r.polygon([][]geo.Point[float64]{ring}, style)
}

func (r *Raster) Text(at geo.Point[float64], text string, style Style) {
	if text == "" || !usable(at) {
		return
	}

	c := style.Stroke
	if c.A == 0 {
		c = color.NRGBA{A: 0xff}
	}

	p := flipY(at, r.img.Bounds().Dy())
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(p.X+style.Radius+2), int(p.Y+4)),
	}
	d.DrawString(text)
}

// polyline and polygon take image pixels.
func (r *Raster) polyline(points []geo.Point[float64], style Style) {
	if style.Stroke.A == 0 || style.Width <= 0 {
		return
	}

	r.reset()
	for _, part := range SplitUsable(points, 2) {
		for i := 1; i < len(part); i++ {
			r.segment(part[i-1], part[i], style.Width/2)
		}
	}
	r.paint(style.Stroke)
}

func (r *Raster) polygon(rings [][]geo.Point[float64], style Style) {
	if style.Fill.A != 0 {
		r.reset()
		for _, ring := range rings {
			for _, part := range SplitUsable(ring, 3) {
				r.z.MoveTo(float32(part[0].X), float32(part[0].Y))
				for _, p := range part[1:] {
					r.z.LineTo(float32(p.X), float32(p.Y))
				}
				r.z.ClosePath()
			}
		}
		r.paint(style.Fill)
	}

	for _, ring := range rings {
		if len(ring) > 0 {
			ring = append(ring[:len(ring):len(ring)], ring[0])
		}
		r.polyline(ring, style)
	}
}

func (r *Raster) reset() {
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
}

func (r *Raster) paint(c color.NRGBA) {
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}

// segment adds a quad of half-width hw around a-b.
func (r *Raster) segment(a, b geo.Point[float64], hw float64) {
	d := b.Sub(a)
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		return
	}
	n := geo.Pt(-d.Y/l*hw, d.X/l*hw)

	p0, p1, p2, p3 := a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)
	r.z.MoveTo(float32(p0.X), float32(p0.Y))
	r.z.LineTo(float32(p1.X), float32(p1.Y))
	r.z.LineTo(float32(p2.X), float32(p2.Y))
	r.z.LineTo(float32(p3.X), float32(p3.Y))
	r.z.ClosePath()
}
