// Package processor turns a render configuration into a drawn and encoded map.
package processor

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/woozymasta/mapproj/internal/config"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
)

// Loader fetches GeoJSON sources from disk or over HTTP and keeps them in memory,
// so a source is read once no matter how many renders use it.
type Loader struct {
	client *http.Client
	cache  map[string]*geojson.FeatureCollection
	mu     sync.Mutex
}

// NewLoader returns a loader using client for remote sources.
func NewLoader(client *http.Client) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{client: client, cache: make(map[string]*geojson.FeatureCollection)}
}

// Load returns the feature collection at source, a file path or http(s) URL.
// The lock only guards the cache, so a slow source does not block others.
func (l *Loader) Load(source string) (*geojson.FeatureCollection, error) {
	l.mu.Lock()
	fc, ok := l.cache[source]
	l.mu.Unlock()
	if ok {
		return fc, nil
	}

	data, err := l.read(source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}

	fc, err = geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}

	log.Debug().
		Str("source", source).
		Int("features", len(fc.Features)).
		Msg("GeoJSON source loaded")

	l.mu.Lock()
	defer l.mu.Unlock()
	// keep the first result when two loads of the same source raced
	if cached, ok := l.cache[source]; ok {
		return cached, nil
	}
	l.cache[source] = fc
	return fc, nil
}

func (l *Loader) read(source string) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.ReadFile(source)
	}

	log.Info().Str("url", source).Msg("Downloading GeoJSON source")
	resp, err := l.client.Get(source)
	if err != nil {
		return nil, err
	}
	// Explicitly ignore close error as it's a read-only operation
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// markerFeatures converts inline config markers into point features with a
// "name" property.
func markerFeatures(markers []config.Marker) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, m := range markers {
		f := geojson.NewFeature(orb.Point{m.Lon, m.Lat})
		f.Properties["name"] = m.Name
		fc.Append(f)
	}
	return fc
}
