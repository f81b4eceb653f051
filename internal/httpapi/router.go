// Package httpapi exposes the extraction pipeline over HTTP. The surface
// is deliberately small: one extraction endpoint plus health and cache
// observability.
package httpapi

import (
	"net/http"

	"github.com/jobsift/jobsift/internal/cache"
	"github.com/jobsift/jobsift/internal/pipeline"
)

// Deps carries what the handlers need; main wires it.
type Deps struct {
	Pipeline *pipeline.Pipeline
	Cache    *cache.Cache
	Version  string
}

// NewMux builds the route table.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	eh := ExtractHandler{Pipeline: d.Pipeline}
	mux.HandleFunc("/api/extract", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: eh.Extract,
	}))

	hh := HealthHandler{Version: d.Version}
	mux.HandleFunc("/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Index,
	}))
	mux.HandleFunc("/healthz", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Index,
	}))

	sh := CacheStatsHandler{Cache: d.Cache}
	mux.HandleFunc("/api/cache/stats", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Stats,
	}))

	return mux
}
