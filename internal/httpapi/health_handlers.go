package httpapi

import (
	"net/http"

	"github.com/jobsift/jobsift/internal/cache"
)

type HealthHandler struct {
	Version string
}

func (h HealthHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "online",
		"service": "jobsift",
		"version": h.Version,
		"endpoints": map[string]string{
			"/api/extract":     "POST - extract structured data from job posting HTML or text",
			"/api/cache/stats": "GET - result cache occupancy",
		},
	})
}

type CacheStatsHandler struct {
	Cache *cache.Cache
}

func (h CacheStatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if h.Cache == nil {
		writeError(w, http.StatusNotFound, "cache disabled")
		return
	}
	writeJSON(w, http.StatusOK, h.Cache.Stats())
}
