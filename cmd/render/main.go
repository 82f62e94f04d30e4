package main

import (
	"bytes"
	"net/http"
	"os"
	"time"

	"github.com/woozymasta/mapproj/internal/config"
	"github.com/woozymasta/mapproj/internal/geo"
	"github.com/woozymasta/mapproj/internal/logger"
	"github.com/woozymasta/mapproj/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string    `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to configuration file" default:"config.yaml"`
	Output     string    `short:"o" long:"out" description:"Output file path (overrides output.path)"`
	Format     string    `short:"f" long:"format" description:"Output format (overrides output.format)" choice:"png" choice:"webp" choice:"svg"`
	Projection string    `short:"P" long:"projection" description:"Projection name (overrides projection.name)"`
	Width      int       `short:"W" long:"width" description:"Viewport width in pixels"`
	Height     int       `short:"H" long:"height" description:"Viewport height in pixels"`
	Zoom       float64   `short:"z" long:"zoom" description:"Pixels per map unit"`
	Center     []float64 `long:"center" description:"View center as --center lat --center lon"`
	Fit        bool      `short:"F" long:"fit" description:"Fit the view to the layer bounds"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	applyOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	outPath := cfg.Output.Path
	if outPath == "" {
		outPath = "map." + cfg.Output.Format
	}

	log.Info().
		Str("projection", cfg.Projection.Name).
		Int("layers", len(cfg.Layers)).
		Int("width", cfg.View.Width).
		Int("height", cfg.View.Height).
		Str("out", outPath).
		Msg("Starting render")

	client := &http.Client{Timeout: 15 * time.Second}

	var buf bytes.Buffer
	contentType, err := processor.Render(cfg, processor.NewLoader(client), &buf)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to render map")
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		log.Fatal().Err(err).Str("path", outPath).Msg("Failed to write output")
	}

	log.Info().
		Str("path", outPath).
		Str("content_type", contentType).
		Int("bytes", buf.Len()).
		Msg("Render finished successfully")
}

func applyOverrides(cfg *config.Config, opts Options) {
	if opts.Output != "" {
		cfg.Output.Path = opts.Output
	}
	if opts.Format != "" {
		cfg.Output.Format = opts.Format
	}
	if opts.Projection != "" {
		cfg.Projection.Name = opts.Projection
	}
	if opts.Width > 0 {
		cfg.View.Width = opts.Width
	}
	if opts.Height > 0 {
		cfg.View.Height = opts.Height
	}
	if opts.Zoom != 0 {
		cfg.View.Zoom = opts.Zoom
	}
	if len(opts.Center) == 2 {
		center := geo.NewLatLon(opts.Center[0], opts.Center[1])
		cfg.View.Center = &center
	} else if len(opts.Center) != 0 {
		log.Warn().Int("values", len(opts.Center)).Msg("Ignoring --center: expected lat and lon")
	}
	if opts.Fit {
		cfg.View.FitBounds = true
	}
}
