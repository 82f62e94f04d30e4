// Package server handles HTTP requests and middleware.
package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/mapproj/internal/config"
	"github.com/woozymasta/mapproj/internal/geo"
	"github.com/woozymasta/mapproj/internal/mapview"
	"github.com/woozymasta/mapproj/internal/processor"
	"github.com/woozymasta/mapproj/internal/projection"
)

type pointResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type latLonResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// HandleProjections lists the available projection names.
func (s *ServerContext) HandleProjections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, projection.Names())
}

// HandleProject converts lat/lon to map units, or to pixels when zoom is given.
func (s *ServerContext) HandleProject(w http.ResponseWriter, r *http.Request) {
	q := queryReader{r: r}
	pos := geo.NewLatLon(q.float("lat", 0), q.float("lon", 0))
	proj, err := s.projection(&q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var p geo.Point[float64]
	if m := s.viewMap(proj, &q); m != nil {
		p = m.View().Project(pos)
	} else {
		p = proj.Project(pos)
	}
	if q.err != nil {
		http.Error(w, q.err.Error(), http.StatusBadRequest)
		return
	}

	if !finite(p.X) || !finite(p.Y) {
		http.Error(w, fmt.Sprintf("%v has no finite image in this projection", pos), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusOK, pointResponse{X: p.X, Y: p.Y})
}

// HandleUnproject converts map units, or pixels when zoom is given, back to lat/lon.
func (s *ServerContext) HandleUnproject(w http.ResponseWriter, r *http.Request) {
	q := queryReader{r: r}
	p := geo.Pt(q.float("x", 0), q.float("y", 0))
	proj, err := s.projection(&q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var ll geo.LatLon
	if m := s.viewMap(proj, &q); m != nil {
		ll = m.View().Unproject(p)
	} else {
		ll = proj.Unproject(p)
	}
	if q.err != nil {
		http.Error(w, q.err.Error(), http.StatusBadRequest)
		return
	}

	if !finite(ll.Latitude.Degrees()) || !finite(ll.Longitude.Degrees()) {
		http.Error(w, fmt.Sprintf("(%v, %v) has no finite preimage in this projection", p.X, p.Y), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusOK, latLonResponse{Lat: ll.Latitude.Degrees(), Lon: ll.Longitude.Degrees()})
}

// HandleRender draws the configured map. Query parameters override the view,
// projection and output format.
func (s *ServerContext) HandleRender(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.renderConfig(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	contentType, err := processor.Render(cfg, s.Loader, &buf)
	if err != nil {
		log.Error().Err(err).Str("query", r.URL.RawQuery).Msg("Render failed")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h := fnv.New64a()
	_, _ = h.Write(buf.Bytes())
	etag := fmt.Sprintf(`"%x"`, h.Sum64())

	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(buf.Bytes())
}

func (s *ServerContext) renderConfig(r *http.Request) (*config.Config, error) {
	cfg := *s.Config
	q := queryReader{r: r}

	if v := q.str("projection"); v != "" {
		cfg.Projection.Name = v
	}
	if q.has("center_lat") || q.has("center_lon") {
		cfg.Projection.Center = geo.NewLatLon(q.float("center_lat", 0), q.float("center_lon", 0))
	}
	if q.has("lat") || q.has("lon") {
		center := geo.NewLatLon(q.float("lat", 0), q.float("lon", 0))
		cfg.View.Center = &center
	}
	cfg.View.Width = q.int("width", cfg.View.Width)
	cfg.View.Height = q.int("height", cfg.View.Height)
	cfg.View.Zoom = q.float("zoom", cfg.View.Zoom)
	if v := q.str("fit"); v != "" {
		cfg.View.FitBounds = v == "1" || v == "true"
	}
	if v := q.str("format"); v != "" {
		cfg.Output.Format = v
	}
	if q.err != nil {
		return nil, q.err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// projection builds the requested projection, falling back to the configured one.
func (s *ServerContext) projection(q *queryReader) (projection.Projection, error) {
	name := q.str("projection")
	if name == "" {
		name = s.Config.Projection.Name
	}
	center := s.Config.Projection.Center
	if q.has("center_lat") || q.has("center_lon") {
		center = geo.NewLatLon(q.float("center_lat", 0), q.float("center_lon", 0))
	}
	return projection.ByName(name, center)
}

// viewMap returns a map for pixel conversions when the request asks for a zoom.
func (s *ServerContext) viewMap(proj projection.Projection, q *queryReader) *mapview.Map {
	if !q.has("zoom") {
		return nil
	}

	m := mapview.New(proj, 0, 0, q.int("width", s.Config.View.Width), q.int("height", s.Config.View.Height))
	m.SetZoom(q.float("zoom", 1))
	if q.has("view_lat") || q.has("view_lon") {
		m.CenterOn(geo.NewLatLon(q.float("view_lat", 0), q.float("view_lon", 0)))
	}
	return m
}

// queryReader parses query parameters and keeps the first error.
type queryReader struct {
	r   *http.Request
	err error
}

func (q *queryReader) has(key string) bool { return q.r.URL.Query().Has(key) }

func (q *queryReader) str(key string) string { return q.r.URL.Query().Get(key) }

func (q *queryReader) float(key string, def float64) float64 {
	v := q.str(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil && q.err == nil {
		q.err = fmt.Errorf("invalid %s: %q", key, v)
	}
	return f
}

func (q *queryReader) int(key string, def int) int {
	v := q.str(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil && q.err == nil {
		q.err = fmt.Errorf("invalid %s: %q", key, v)
	}
	return i
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(v)
}
