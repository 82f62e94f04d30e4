package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/mapproj/internal/geo"
	"github.com/woozymasta/mapproj/internal/logger"
	"github.com/woozymasta/mapproj/internal/mapview"
	"github.com/woozymasta/mapproj/internal/projection"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Projection string  `short:"P" long:"projection" env:"PROJECTION" description:"Projection name" default:"equirectangular"`
	CenterLat  float64 `long:"center-lat" description:"Tangent point latitude (stereographic)"`
	CenterLon  float64 `long:"center-lon" description:"Tangent point longitude (stereographic)"`
	Format     string  `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`

	View ViewOptions `group:"View options"`

	Project   ProjectCommand   `command:"project" description:"Convert one lat/lon pair to plane coordinates"`
	Unproject UnprojectCommand `command:"unproject" description:"Convert one plane coordinate pair back to lat/lon"`
	GeoJSON   GeoJSONCommand   `command:"geojson" description:"Project every coordinate of a GeoJSON document"`
}

// ViewOptions switches the output from map units to pixels when Zoom is set.
type ViewOptions struct {
	Zoom   float64 `short:"z" long:"zoom" description:"Pixels per map unit; enables pixel output"`
	Width  int     `short:"W" long:"width" description:"Viewport width in pixels" default:"1024"`
	Height int     `short:"H" long:"height" description:"Viewport height in pixels" default:"768"`
	Lat    float64 `long:"view-lat" description:"Latitude shown in the middle of the viewport"`
	Lon    float64 `long:"view-lon" description:"Longitude shown in the middle of the viewport"`
}

type ProjectCommand struct {
	Args struct {
		Lat float64 `positional-arg-name:"lat"`
		Lon float64 `positional-arg-name:"lon"`
	} `positional-args:"yes" required:"yes"`
}

type UnprojectCommand struct {
	Args struct {
		X float64 `positional-arg-name:"x"`
		Y float64 `positional-arg-name:"y"`
	} `positional-args:"yes" required:"yes"`
}

type GeoJSONCommand struct {
	Input  string `short:"i" long:"in" description:"Input GeoJSON file. Reads from stdin if empty"`
	Output string `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
}

var opts Options

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		opts.Logger.Setup()
		if cmd == nil {
			return nil
		}
		return cmd.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

// transform returns the spherical projection, composed with a view when a zoom is set.
func (o *Options) transform() (projection.Projection, error) {
	proj, err := projection.ByName(o.Projection, geo.NewLatLon(o.CenterLat, o.CenterLon))
	if err != nil {
		return nil, err
	}
	if o.View.Zoom == 0 {
		return proj, nil
	}

	m := mapview.New(proj, 0, 0, o.View.Width, o.View.Height)
	m.SetZoom(o.View.Zoom)
	m.CenterOn(geo.NewLatLon(o.View.Lat, o.View.Lon))
	return m.View(), nil
}

func (c *ProjectCommand) Execute([]string) error {
	proj, err := opts.transform()
	if err != nil {
		return err
	}
	p := proj.Project(geo.NewLatLon(c.Args.Lat, c.Args.Lon))
	return write(os.Stdout, opts.Format, p)
}

func (c *UnprojectCommand) Execute([]string) error {
	proj, err := opts.transform()
	if err != nil {
		return err
	}
	ll := proj.Unproject(geo.Pt(c.Args.X, c.Args.Y))
	return write(os.Stdout, opts.Format, ll)
}

func (c *GeoJSONCommand) Execute([]string) error {
	proj, err := opts.transform()
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if c.Input != "" {
		f, err := os.Open(c.Input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	out, count, err := projectDocument(proj, data)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := write(w, opts.Format, out); err != nil {
		return err
	}

	log.Info().
		Int("features", count).
		Str("projection", opts.Projection).
		Str("format", opts.Format).
		Msg("Projected GeoJSON")
	return nil
}

// write encodes v as indented JSON or YAML.
func write(w io.Writer, format string, v any) error {
	var (
		data []byte
		err  error
	)
	if format == "yaml" {
		data, err = yaml.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	_, err = w.Write(data)
	return err
}
