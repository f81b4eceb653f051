package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jobsift/jobsift/internal/pipeline"
)

// maxBodyBytes bounds how much posting content one request may carry.
const maxBodyBytes = 4 << 20

// extractRequest accepts either markup or plain text, plus per-request
// pipeline options.
type extractRequest struct {
	HTML    *string `json:"html"`
	Text    *string `json:"text"`
	Detail  string  `json:"detail,omitempty"`
	Enhance bool    `json:"enhance,omitempty"`
}

type ExtractHandler struct {
	Pipeline *pipeline.Pipeline
}

// Extract runs the pipeline over the submitted content and returns the
// structured record. Only input shape problems produce errors; extraction
// itself always yields a record.
func (h ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req extractRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var content string
	var markup bool
	switch {
	case req.HTML != nil && strings.TrimSpace(*req.HTML) != "":
		content, markup = *req.HTML, true
	case req.Text != nil && strings.TrimSpace(*req.Text) != "":
		content = *req.Text
	default:
		writeError(w, http.StatusBadRequest, "you must provide either 'html' or 'text' content")
		return
	}

	opts := pipeline.Options{
		UseEnhancer: req.Enhance,
		DetailLevel: pipeline.Detail(req.Detail),
	}
	rec := h.Pipeline.Extract(r.Context(), content, markup, opts)

	log.Info().
		Dur("elapsed", time.Since(start)).
		Bool("markup", markup).
		Int("contentLen", len(content)).
		Msg("processed extraction request")
	writeJSON(w, http.StatusOK, rec)
}
