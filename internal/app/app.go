// Package app wires configuration, the result cache, the optional LLM
// enhancer and the HTTP surface into one runnable service.
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/jobsift/jobsift/internal/cache"
	"github.com/jobsift/jobsift/internal/enhance"
	"github.com/jobsift/jobsift/internal/httpapi"
	"github.com/jobsift/jobsift/internal/llm"
	"github.com/jobsift/jobsift/internal/pipeline"
)

// Version is stamped by the build; the default marks dev builds.
var Version = "dev"

type App struct {
	cfg      Config
	cache    *cache.Cache
	pipeline *pipeline.Pipeline
	server   *http.Server
}

// New assembles the service. The enhancer is only constructed when both a
// base URL and a model are configured; a failed availability probe logs a
// warning but does not disable the path, since the backend may come up later.
func New(ctx context.Context, cfg Config) (*App, error) {
	a := &App{cfg: cfg}

	a.cache = cache.New(cfg.CacheSize, cfg.CacheTTL)
	a.pipeline = &pipeline.Pipeline{Cache: a.cache}

	if cfg.LLMBaseURL != "" && cfg.LLMModel != "" {
		transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
		transportCfg.BaseURL = cfg.LLMBaseURL
		client := &llm.OpenAIProvider{Inner: openai.NewClientWithConfig(transportCfg)}

		enh := enhance.New(client, cfg.LLMModel, cfg.LLMTimeout, cfg.LLMMaxInFlight)
		a.pipeline.Enhancer = enh

		// Connectivity preflight, best-effort.
		if enh.Available(ctx) {
			log.Info().Str("model", cfg.LLMModel).Msg("LLM enhancer available")
		} else {
			log.Warn().Str("base", cfg.LLMBaseURL).Msg("LLM backend unreachable; enhancement will degrade to rule-based results")
		}
	}

	mux := httpapi.NewMux(httpapi.Deps{
		Pipeline: a.pipeline,
		Cache:    a.cache,
		Version:  Version,
	})
	a.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return a, nil
}

// Pipeline exposes the assembled pipeline for one-shot (non-server) use.
func (a *App) Pipeline() *pipeline.Pipeline {
	return a.pipeline
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", a.cfg.Addr).Msg("listening")
		errCh <- a.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	}
}

func (a *App) Close() {
	a.cache.Close()
}
