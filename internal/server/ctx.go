package server

import (
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/mapproj/internal/config"
	"github.com/woozymasta/mapproj/internal/processor"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config *config.Config
	Loader *processor.Loader
}

// NewServerContext preloads the configured GeoJSON sources. Layers whose source
// cannot be loaded are dropped so that renders do not fail on every request.
func NewServerContext(cfg *config.Config, loader *processor.Loader) *ServerContext {
	log.Info().Int("config_layers_count", len(cfg.Layers)).Msg("Initializing server context")

	valid := make([]config.Layer, 0, len(cfg.Layers))
	for _, l := range cfg.Layers {
		if l.Type == config.LayerGeoJSON {
			if _, err := loader.Load(l.Source); err != nil {
				log.Warn().
					Err(err).
					Str("layer", l.Name).
					Str("source", l.Source).
					Msg("Skipping layer: source not available")
				continue
			}
		}

		log.Debug().
			Str("layer", l.Name).
			Str("type", l.Type).
			Msg("Layer validated and added to context")

		valid = append(valid, l)
	}
	cfg.Layers = valid

	log.Info().
		Int("valid_layers_count", len(cfg.Layers)).
		Str("projection", cfg.Projection.Name).
		Msg("Server context initialized successfully")

	return &ServerContext{Config: cfg, Loader: loader}
}
