// Package pipeline orchestrates the triage stages for one complaint:
// media branches, text merge, normalization, location and precedent
// fan-out, classification, boosting, validation, and routing.
package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/civicgrid/triage/internal/booster"
	"github.com/civicgrid/triage/internal/classifier"
	"github.com/civicgrid/triage/internal/domain"
	"github.com/civicgrid/triage/internal/location"
	"github.com/civicgrid/triage/internal/logger"
	"github.com/civicgrid/triage/internal/ocrclient"
	"github.com/civicgrid/triage/internal/reasoning"
	"github.com/civicgrid/triage/internal/similarity"
	"github.com/civicgrid/triage/internal/sttclient"
	"github.com/civicgrid/triage/internal/telemetry"
)

// ErrInsufficientInput is returned when a complaint carries no text and
// no media handle at all.
var ErrInsufficientInput = errors.New("complaint has no text, voice, image, or scan")

// Transcriber converts stored voice notes to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*sttclient.TranscribeResponse, error)
}

// TextExtractor reads visible text out of stored images.
type TextExtractor interface {
	Extract(ctx context.Context, imagePath string) (*ocrclient.ExtractResponse, error)
}

// Normalizer appends canonical intent annotations to colloquial text.
type Normalizer interface {
	Normalize(text string) string
}

// Validator checks a category against the serviceable issue list.
type Validator interface {
	Validate(ctx context.Context, category string) string
}

// Dispatcher assigns the owning department and SLA.
type Dispatcher interface {
	Route(category, priority, zone string) domain.Dispatch
}

// Orchestrator wires the stages together. Media and inference
// collaborators are optional; every external failure degrades the
// verdict instead of failing the complaint.
type Orchestrator struct {
	transcriber Transcriber
	extractor   TextExtractor
	translator  reasoning.Service
	normalizer  Normalizer
	resolver    *location.Resolver
	classifier  *classifier.Classifier
	booster     *booster.Booster
	validator   Validator
	router      Dispatcher
	precedents  similarity.Index
	telemetry   *telemetry.Provider
	logger      logger.Logger
}

// Options carries the orchestrator collaborators. Transcriber,
// Extractor, Precedents, and Telemetry may be nil; Translator may be
// reasoning.Disabled.
type Options struct {
	Transcriber Transcriber
	Extractor   TextExtractor
	Translator  reasoning.Service
	Normalizer  Normalizer
	Resolver    *location.Resolver
	Classifier  *classifier.Classifier
	Booster     *booster.Booster
	Validator   Validator
	Router      Dispatcher
	Precedents  similarity.Index
	Telemetry   *telemetry.Provider
	Logger      logger.Logger
}

// New creates an orchestrator.
func New(opts Options) *Orchestrator {
	translator := opts.Translator
	if translator == nil {
		translator = reasoning.Disabled{}
	}
	return &Orchestrator{
		transcriber: opts.Transcriber,
		extractor:   opts.Extractor,
		translator:  translator,
		normalizer:  opts.Normalizer,
		resolver:    opts.Resolver,
		classifier:  opts.Classifier,
		booster:     opts.Booster,
		validator:   opts.Validator,
		router:      opts.Router,
		precedents:  opts.Precedents,
		telemetry:   opts.Telemetry,
		logger:      opts.Logger,
	}
}

// Analyze runs the full triage pipeline for one complaint.
func (o *Orchestrator) Analyze(ctx context.Context, input domain.ComplaintInput) (*domain.AnalysisOutput, error) {
	if input.Empty() {
		return nil, ErrInsufficientInput
	}
	start := time.Now()

	state := &domain.PipelineState{Input: input}

	o.runMediaBranches(ctx, state)
	o.mergeText(ctx, state)
	o.runContextFanout(ctx, state)
	o.classify(ctx, state)
	o.finalize(ctx, state)

	if o.telemetry != nil {
		o.telemetry.RecordTriage(ctx, "pipeline", true, time.Since(start))
		o.telemetry.RecordVerdict(ctx, state.Category, state.FinalPriority, state.Status, state.CategoryLocked)
	}

	o.logger.Info("complaint triaged",
		logger.String("category", state.Category),
		logger.String("priority", state.FinalPriority),
		logger.String("department", state.Dispatch.Department),
		logger.String("zone", state.DetectedZone))

	return &domain.AnalysisOutput{
		Category:      state.Category,
		Priority:      state.FinalPriority,
		Status:        state.Status,
		ReferenceCase: state.ReferenceCase,
		Department:    state.Dispatch.Department,
		SLA:           state.Dispatch.SLA,
		ETA:           state.Dispatch.ETA,
		Insight:       state.Insight,
		Zone:          state.DetectedZone,
		FinalText:     state.FinalText,
		Confidence:    state.Confidence,
		Locked:        state.CategoryLocked,
	}, nil
}

// runMediaBranches runs voice and paper extraction (branch A) in
// parallel with photo context extraction (branch B).
func (o *Orchestrator) runMediaBranches(ctx context.Context, state *domain.PipelineState) {
	stageStart := time.Now()
	input := state.Input

	var transcribed, paperText, photoText string
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if input.VoiceHandle != "" && o.transcriber != nil {
			resp, err := o.transcriber.Transcribe(gctx, input.VoiceHandle)
			if err != nil {
				o.warnProvider(gctx, "transcription", err)
			} else {
				transcribed = resp.Text
			}
		}
		if input.PaperScanHandle != "" && o.extractor != nil {
			resp, err := o.extractor.Extract(gctx, input.PaperScanHandle)
			if err != nil {
				o.warnProvider(gctx, "paper_ocr", err)
			} else {
				paperText = resp.Text
			}
		}
		return nil
	})

	g.Go(func() error {
		if input.PhotoHandle != "" && o.extractor != nil {
			resp, err := o.extractor.Extract(gctx, input.PhotoHandle)
			if err != nil {
				o.warnProvider(gctx, "photo_ocr", err)
			} else {
				photoText = resp.Text
			}
		}
		return nil
	})

	// Closures only warn, they never return errors.
	_ = g.Wait()

	raw := input.Text
	if transcribed != "" {
		if raw != "" {
			raw += " "
		}
		raw += transcribed
	}
	if paperText != "" {
		raw += " [Paper Complaint: " + paperText + "]"
	}

	state.RawText = raw
	state.OCRContext = photoText

	o.recordStage(ctx, "media", stageStart)
}

// mergeText translates the joined raw text to English, appends the
// photo context, and normalizes colloquial terms.
func (o *Orchestrator) mergeText(ctx context.Context, state *domain.PipelineState) {
	stageStart := time.Now()

	english, err := o.translator.Translate(ctx, state.RawText)
	if err != nil || english == "" {
		if err != nil {
			o.warnProvider(ctx, "translation", err)
		}
		english = state.RawText
	}
	state.EnglishText = english

	merged := english
	if state.OCRContext != "" {
		merged += " [Image Context: " + state.OCRContext + "]"
	}
	if o.normalizer != nil {
		merged = o.normalizer.Normalize(merged)
	}
	state.FinalText = merged

	o.recordStage(ctx, "merge", stageStart)
}

// runContextFanout resolves location context and the nearest precedent
// in parallel. The precedent reference is appended to the final text so
// the classifier sees it.
func (o *Orchestrator) runContextFanout(ctx context.Context, state *domain.PipelineState) {
	stageStart := time.Now()

	var locCtx location.Context
	var precedent *similarity.Case
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		locCtx = o.resolver.ResolveContext(gctx, state.Input.GPS, state.FinalText)
		return nil
	})

	g.Go(func() error {
		if o.precedents != nil {
			if found, ok := o.precedents.Nearest(gctx, state.FinalText); ok {
				precedent = found
			}
		}
		return nil
	})

	_ = g.Wait()

	state.LandmarkType = locCtx.LandmarkType
	state.LandmarkName = locCtx.LandmarkName
	state.UrgencyFound = locCtx.UrgencyFound
	state.DetectedZone = locCtx.Zone

	if state.DetectedZone == "" && state.Input.ZoneHint != "" {
		state.DetectedZone = normalizeZoneHint(state.Input.ZoneHint)
	}

	if precedent != nil {
		state.ReferenceCase = precedent.ID
		state.FinalText += " [Similar Case: " + precedent.ID + "]"
	}

	o.recordStage(ctx, "context", stageStart)
}

// classify runs arbitration and the priority boost.
func (o *Orchestrator) classify(ctx context.Context, state *domain.PipelineState) {
	stageStart := time.Now()

	verdict := o.classifier.Classify(ctx, state.FinalText)
	state.Category = verdict.Category
	state.CategoryLocked = verdict.Locked
	state.Confidence = verdict.Confidence
	state.BasePriority = verdict.Priority

	boost := o.booster.Boost(booster.Input{
		Priority:     verdict.Priority,
		LandmarkType: state.LandmarkType,
		Text:         state.FinalText,
		UrgencyFound: state.UrgencyFound,
	})
	state.FinalPriority = boost.Priority

	state.Insight = boost.Reason
	if state.LandmarkName != "" {
		state.Insight += " (" + state.LandmarkName + ")"
	}

	o.recordStage(ctx, "classify", stageStart)
}

// finalize validates the category and assigns the dispatch.
func (o *Orchestrator) finalize(ctx context.Context, state *domain.PipelineState) {
	stageStart := time.Now()

	state.Status = o.validator.Validate(ctx, state.Category)
	state.Dispatch = o.router.Route(state.Category, state.FinalPriority, state.DetectedZone)

	o.recordStage(ctx, "finalize", stageStart)
}

func (o *Orchestrator) warnProvider(ctx context.Context, provider string, err error) {
	o.logger.Warn("provider failed, continuing without it",
		logger.String("provider", provider),
		logger.Error(err))
	if o.telemetry != nil {
		o.telemetry.RecordProviderFailure(ctx, provider)
	}
}

func (o *Orchestrator) recordStage(ctx context.Context, stage string, start time.Time) {
	if o.telemetry != nil {
		o.telemetry.RecordStage(ctx, stage, time.Since(start))
	}
}

// normalizeZoneHint turns an operator-supplied zone hint into the
// canonical "<Zone> Zone" form.
func normalizeZoneHint(hint string) string {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return ""
	}
	if strings.HasSuffix(strings.ToLower(hint), "zone") {
		return hint
	}
	return hint + " Zone"
}
