package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jobsift/jobsift/internal/app"
	"github.com/jobsift/jobsift/internal/pipeline"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		addr        string
		configPath  string
		cacheSize   int
		cacheTTL    time.Duration
		llmBaseURL  string
		llmModel    string
		llmKey      string
		llmTimeout  time.Duration
		llmInFlight int64
		enhanceOn   bool
		detail      string
		inputPath   string
		inputHTML   bool
		verbose     bool
	)

	flag.StringVar(&addr, "addr", "", "HTTP listen address (default :5000)")
	flag.StringVar(&configPath, "config", os.Getenv("JOBSIFT_CONFIG"), "Path to optional YAML config file")
	flag.IntVar(&cacheSize, "cache.size", 0, "Maximum number of cached results (default 100)")
	flag.DurationVar(&cacheTTL, "cache.ttl", 0, "Result cache TTL, e.g. 30m, 1h (default 1h)")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL for the enhancer")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name for the enhancer")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for the OpenAI-compatible server")
	flag.DurationVar(&llmTimeout, "llm.timeout", 0, "Per-call enhancer timeout (default 30s)")
	flag.Int64Var(&llmInFlight, "llm.maxInFlight", 0, "Maximum concurrent enhancer calls (default 4)")
	flag.BoolVar(&enhanceOn, "enhance", false, "Run the LLM enhancer by default")
	flag.StringVar(&detail, "detail", "", "Extraction detail level: basic or detailed (default detailed)")
	flag.StringVar(&inputPath, "input", "", "Extract a single posting from this file and print JSON instead of serving")
	flag.BoolVar(&inputHTML, "input.html", false, "Treat the -input file as HTML rather than plain text")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Defaults()
	if configPath != "" {
		fc, err := app.LoadFileConfig(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file unusable")
			os.Exit(1)
		}
		fc.Apply(&cfg)
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if cacheSize > 0 {
		cfg.CacheSize = cacheSize
	}
	if cacheTTL > 0 {
		cfg.CacheTTL = cacheTTL
	}
	if llmBaseURL != "" {
		cfg.LLMBaseURL = llmBaseURL
	}
	if llmModel != "" {
		cfg.LLMModel = llmModel
	}
	if llmKey != "" {
		cfg.LLMAPIKey = llmKey
	}
	if llmTimeout > 0 {
		cfg.LLMTimeout = llmTimeout
	}
	if llmInFlight > 0 {
		cfg.LLMMaxInFlight = llmInFlight
	}
	if enhanceOn {
		cfg.UseEnhancer = true
	}
	if detail != "" {
		cfg.DetailLevel = detail
	}
	if verbose {
		cfg.Verbose = true
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg, inputPath, inputHTML); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config, inputPath string, inputHTML bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	if inputPath != "" {
		return extractOnce(ctx, a, cfg, inputPath, inputHTML)
	}
	return a.Run(ctx)
}

// extractOnce runs the pipeline over one file and prints the record as
// indented JSON on stdout.
func extractOnce(ctx context.Context, a *app.App, cfg app.Config, path string, markup bool) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	rec := a.Pipeline().Extract(ctx, string(b), markup, pipeline.Options{
		UseEnhancer: cfg.UseEnhancer,
		DetailLevel: pipeline.Detail(cfg.DetailLevel),
	})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
