// Package config handles loading of map render configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/woozymasta/mapproj/internal/geo"

	"gopkg.in/yaml.v3"
)

// Layer types.
const (
	LayerGeoJSON   = "geojson"
	LayerGraticule = "graticule"
	LayerMarkers   = "markers"
)

// Limits enforced by Validate.
const (
	// MaxViewSize bounds each viewport side, in pixels.
	MaxViewSize = 8192
	// MinGraticuleStep is the finest grid spacing accepted, in degrees.
	MinGraticuleStep = 0.1
)

// Config represents the root configuration file structure.
type Config struct {
	Projection Projection `yaml:"projection" json:"projection"`
	View       View       `yaml:"view" json:"view"`
	Output     Output     `yaml:"output" json:"output"`
	Layers     []Layer    `yaml:"layers" json:"layers"`
}

// Projection selects the spherical projection.
type Projection struct {
	Name string `yaml:"name" json:"name"`
	// tangent point, stereographic only
	Center geo.LatLon `yaml:"center,omitempty" json:"center"`
}

// View describes the viewport and where it looks.
type View struct {
	// position shown in the middle of the viewport; map origin when unset
	Center     *geo.LatLon        `yaml:"center,omitempty" json:"center,omitempty"`
	Scroll     geo.Point[float64] `yaml:"scroll,omitempty" json:"scroll"`
	Background string             `yaml:"background,omitempty" json:"background,omitempty"`
	Width      int                `yaml:"width" json:"width"`
	Height     int                `yaml:"height" json:"height"`
	Zoom       float64            `yaml:"zoom" json:"zoom"`
	FitBounds  bool               `yaml:"fit_bounds,omitempty" json:"fit_bounds,omitempty"`
}

// Output selects the encoder and destination.
type Output struct {
	Format  string `yaml:"format" json:"format"`
	Path    string `yaml:"path,omitempty" json:"-"`
	Quality int    `yaml:"quality,omitempty" json:"quality,omitempty"`
}

// Layer is a single drawable layer, bottom first.
type Layer struct {
	Name    string   `yaml:"name" json:"name"`
	Type    string   `yaml:"type" json:"type"`
	Source  string   `yaml:"source,omitempty" json:"-"` // geojson file path or URL
	Label   string   `yaml:"label,omitempty" json:"label,omitempty"`
	Stroke  string   `yaml:"stroke,omitempty" json:"stroke,omitempty"`
	Fill    string   `yaml:"fill,omitempty" json:"fill,omitempty"`
	Markers []Marker `yaml:"markers,omitempty" json:"markers,omitempty"`
	Step    float64  `yaml:"step,omitempty" json:"step,omitempty"` // graticule spacing, degrees
	Width   float64  `yaml:"width,omitempty" json:"width,omitempty"`
	Radius  float64  `yaml:"radius,omitempty" json:"radius,omitempty"`
}

// Marker is an inline named position for markers layers.
type Marker struct {
	Name string  `yaml:"name" json:"name"`
	Lat  float64 `yaml:"lat" json:"lat"`
	Lon  float64 `yaml:"lon" json:"lon"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes YAML configuration, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Defaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Defaults fills unset fields.
func (c *Config) Defaults() {
	if c.Projection.Name == "" {
		c.Projection.Name = "equirectangular"
	}
	if c.View.Width <= 0 {
		c.View.Width = 800
	}
	if c.View.Height <= 0 {
		c.View.Height = 600
	}
	if c.View.Zoom == 0 {
		c.View.Zoom = 1
	}
	if c.View.Background == "" {
		c.View.Background = "#ffffff"
	}
	if c.Output.Format == "" {
		c.Output.Format = "png"
	}
	if c.Output.Quality <= 0 {
		c.Output.Quality = 85
	}

	for i := range c.Layers {
		l := &c.Layers[i]
		if l.Name == "" {
			l.Name = fmt.Sprintf("%s-%d", l.Type, i)
		}
		if l.Stroke == "" {
			l.Stroke = "#333333"
		}
		if l.Width == 0 {
			l.Width = 1
		}
		if l.Type == LayerMarkers && l.Radius == 0 {
			l.Radius = 4
		}
	}
}

// Validate checks that the configuration can be rendered.
func (c *Config) Validate() error {
	var errs []string

	if c.View.Width <= 0 || c.View.Height <= 0 {
		errs = append(errs, fmt.Sprintf("view size must be positive, got %dx%d", c.View.Width, c.View.Height))
	}
	if c.View.Width > MaxViewSize || c.View.Height > MaxViewSize {
		errs = append(errs, fmt.Sprintf("view size must not exceed %dx%d, got %dx%d",
			MaxViewSize, MaxViewSize, c.View.Width, c.View.Height))
	}
	if c.View.Zoom <= 0 {
		errs = append(errs, fmt.Sprintf("view.zoom must be positive, got %v", c.View.Zoom))
	}
	if c.Output.Quality > 100 {
		errs = append(errs, fmt.Sprintf("output.quality must be 1-100, got %d", c.Output.Quality))
	}

	for i, l := range c.Layers {
		switch l.Type {
		case LayerGeoJSON:
			if l.Source == "" {
				errs = append(errs, fmt.Sprintf("layers[%d] (%s): source is required", i, l.Name))
			}
		case LayerMarkers:
			if len(l.Markers) == 0 {
				errs = append(errs, fmt.Sprintf("layers[%d] (%s): markers are required", i, l.Name))
			}
		case LayerGraticule:
			if l.Step < 0 || (l.Step > 0 && l.Step < MinGraticuleStep) {
				errs = append(errs, fmt.Sprintf("layers[%d] (%s): step must be 0 (default) or at least %v, got %v",
					i, l.Name, MinGraticuleStep, l.Step))
			}
		default:
			errs = append(errs, fmt.Sprintf("layers[%d] (%s): unknown type %q", i, l.Name, l.Type))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
