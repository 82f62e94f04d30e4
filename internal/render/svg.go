package render

import (
	"bytes"
	"fmt"
	"html"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"

	"github.com/woozymasta/mapproj/internal/geo"
)

const svgMime = "image/svg+xml"

// SVG collects shapes as SVG elements and minifies the document on Encode.
type SVG struct {
	width, height int
	background    color.NRGBA
	body          strings.Builder
}

// NewSVG returns an empty width x height SVG document.
func NewSVG(width, height int, bg color.NRGBA) *SVG {
	return &SVG{width: width, height: height, background: bg}
}

func (s *SVG) ContentType() string { return svgMime }

func (s *SVG) Encode(w io.Writer) error {
	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		s.width, s.height, s.width, s.height)
	if s.background.A != 0 {
		fmt.Fprintf(&doc, `<rect width="100%%" height="100%%" %s/>`, paint("fill", s.background))
	}
	doc.WriteString(s.body.String())
	doc.WriteString(`</svg>`)

	m := minify.New()
	m.AddFunc(svgMime, svg.Minify)
	if err := m.Minify(svgMime, w, &doc); err != nil {
		return fmt.Errorf("minify svg: %w", err)
	}
	return nil
}

func (s *SVG) Polyline(points []geo.Point[float64], style Style) {
	if style.Stroke.A == 0 || style.Width <= 0 {
		return
	}
	for _, part := range SplitUsable(flipAll(points, s.height), 2) {
		fmt.Fprintf(&s.body, `<polyline points="%s" fill="none" %s/>`, coords(part), stroke(style))
	}
}

func (s *SVG) Polygon(rings [][]geo.Point[float64], style Style) {
	var d strings.Builder
	for _, ring := range rings {
		for _, part := range SplitUsable(flipAll(ring, s.height), 3) {
			d.WriteString("M")
			d.WriteString(coords(part))
			d.WriteString("Z")
		}
	}
	if d.Len() == 0 {
		return
	}

	fmt.Fprintf(&s.body, `<path d="%s" fill-rule="evenodd" %s %s/>`, d.String(), paint("fill", style.Fill), stroke(style))
}

func (s *SVG) Circle(center geo.Point[float64], style Style) {
	if !usable(center) || style.Radius <= 0 {
		return
	}
	c := flipY(center, s.height)
	fmt.Fprintf(&s.body, `<circle cx="%s" cy="%s" r="%s" %s %s/>`,
		num(c.X), num(c.Y), num(style.Radius), paint("fill", style.Fill), stroke(style))
}

func (s *SVG) Text(at geo.Point[float64], text string, style Style) {
	if text == "" || !usable(at) {
		return
	}
	c := style.Stroke
	if c.A == 0 {
		c = color.NRGBA{A: 0xff}
	}
	p := flipY(at, s.height)
	fmt.Fprintf(&s.body, `<text x="%s" y="%s" font-family="monospace" font-size="12" %s>%s</text>`,
		num(p.X+style.Radius+2), num(p.Y+4), paint("fill", c), html.EscapeString(text))
}

func coords(points []geo.Point[float64]) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = num(p.X) + "," + num(p.Y)
	}
	return strings.Join(parts, " ")
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func stroke(style Style) string {
	if style.Stroke.A == 0 || style.Width <= 0 {
		return `stroke="none"`
	}
	return paint("stroke", style.Stroke) + ` stroke-width="` + num(style.Width) + `"`
}

func paint(attr string, c color.NRGBA) string {
	if c.A == 0 {
		return attr + `="none"`
	}
	out := fmt.Sprintf(`%s="#%02x%02x%02x"`, attr, c.R, c.G, c.B)
	if c.A != 0xff {
		out += fmt.Sprintf(` %s-opacity="%s"`, attr, strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64))
	}
	return out
}
