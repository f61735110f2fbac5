package bootstrap

import (
	"context"
	"net/http"

	"github.com/civicgrid/triage/internal/booster"
	"github.com/civicgrid/triage/internal/classifier"
	"github.com/civicgrid/triage/internal/config"
	"github.com/civicgrid/triage/internal/data"
	"github.com/civicgrid/triage/internal/geminiclient"
	"github.com/civicgrid/triage/internal/geocode"
	"github.com/civicgrid/triage/internal/groqclient"
	"github.com/civicgrid/triage/internal/location"
	"github.com/civicgrid/triage/internal/logger"
	"github.com/civicgrid/triage/internal/normalizer"
	"github.com/civicgrid/triage/internal/ocrclient"
	"github.com/civicgrid/triage/internal/pipeline"
	"github.com/civicgrid/triage/internal/policy"
	"github.com/civicgrid/triage/internal/reasoning"
	"github.com/civicgrid/triage/internal/router"
	"github.com/civicgrid/triage/internal/similarity"
	"github.com/civicgrid/triage/internal/sttclient"
	"github.com/civicgrid/triage/internal/telemetry"
)

// PipelineComponents holds the assembled triage pipeline. The keyword
// matcher is exposed separately so intake can reuse it for provisional
// categories, and SidecarChecks feeds the sidecar health endpoint.
type PipelineComponents struct {
	Orchestrator  *pipeline.Orchestrator
	Matcher       *classifier.CategoryMatcher
	SidecarChecks map[string]func(ctx context.Context) error
}

// BuildPipeline assembles the triage orchestrator from configuration.
// Disabled collaborators are left nil; the pipeline degrades around
// them.
func BuildPipeline(
	cfg *config.Config,
	reviews policy.CounterStore,
	tp *telemetry.Provider,
	log logger.Logger,
) *PipelineComponents {
	matcher := classifier.NewCategoryMatcher(data.CategoryKeywordTable())
	sidecarChecks := make(map[string]func(ctx context.Context) error)

	var primary, secondary reasoning.Service

	groqCfg := cfg.Pipeline.Reasoning.Groq
	if groqCfg.Enabled && groqCfg.APIKey != "" {
		primary = groqclient.New(groqCfg.APIKey, groqCfg.BaseURL, groqCfg.Model, log)
		log.Info("Primary reasoning enabled", logger.String("model", groqCfg.Model))
	}

	gemCfg := cfg.Pipeline.Reasoning.Gemini
	if gemCfg.Enabled && gemCfg.APIKey != "" {
		secondary = geminiclient.New(
			gemCfg.APIKey, gemCfg.BaseURL, gemCfg.Model,
			&http.Client{Timeout: gemCfg.Timeout}, log,
		)
		log.Info("Secondary reasoning enabled", logger.String("model", gemCfg.Model))
	}

	// Translation rides on whichever reasoning provider is available.
	translator := primary
	if translator == nil {
		translator = secondary
	}

	var transcriber pipeline.Transcriber
	if cfg.Pipeline.Transcription.Enabled && cfg.Pipeline.Transcription.URL != "" {
		stt := sttclient.NewClient(
			cfg.Pipeline.Transcription.URL,
			&http.Client{Timeout: cfg.Pipeline.Transcription.Timeout},
		)
		transcriber = stt
		sidecarChecks["transcription"] = stt.Health
	}

	var extractor pipeline.TextExtractor
	if cfg.Pipeline.OCR.Enabled && cfg.Pipeline.OCR.URL != "" {
		ocr := ocrclient.NewClient(
			cfg.Pipeline.OCR.URL,
			&http.Client{Timeout: cfg.Pipeline.OCR.Timeout},
		)
		extractor = ocr
		sidecarChecks["ocr"] = ocr.Health
	}

	var geocoder location.Geocoder
	if cfg.Pipeline.Geocode.Enabled {
		geocoder = geocode.NewClient(
			cfg.Pipeline.Geocode.BaseURL,
			cfg.Pipeline.Geocode.UserAgent,
			&http.Client{Timeout: cfg.Pipeline.Geocode.Timeout},
		)
	}

	orch := pipeline.New(pipeline.Options{
		Transcriber: transcriber,
		Extractor:   extractor,
		Translator:  translator,
		Normalizer:  normalizer.New(data.CivicTerms(), log),
		Resolver:    location.NewResolver(data.Landmarks(), data.Zones(), geocoder, log),
		Classifier:  classifier.New(matcher, primary, secondary, log),
		Booster:     booster.New(log),
		Validator:   policy.NewValidator(reviews, int64(cfg.Pipeline.ReviewThreshold), log),
		Router:      router.New(log),
		Precedents:  similarity.NewTokenIndex(log),
		Telemetry:   tp,
		Logger:      log,
	})

	return &PipelineComponents{
		Orchestrator:  orch,
		Matcher:       matcher,
		SidecarChecks: sidecarChecks,
	}
}
