package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"page-extract/internal/config"
	"page-extract/internal/entity"
	"page-extract/internal/ports"
	"page-extract/pkg/apperr"
	"page-extract/pkg/logg"
	"page-extract/pkg/tracing"
)

const (
	extractorServiceName = "ExtractorService"
	extractorTracer      = "usecase.extractor"
)

// ExtractorService orchestrates the fallback extraction flow: navigate,
// snapshot the page into a summary, and replay click/fill actions against
// the summary's selectors.
type ExtractorService struct {
	config   *config.Config
	logger   *zap.Logger
	browser  ports.BrowserManager
	tracer   trace.Tracer
	stopChan chan struct{}
	running  bool
	lastURL  string
}

type ExtractorServiceParams struct {
	fx.In

	Config  *config.Config
	Logger  *zap.Logger
	Browser ports.BrowserManager
}

func NewExtractorService(params ExtractorServiceParams) *ExtractorService {
	return &ExtractorService{
		config:   params.Config,
		logger:   params.Logger.With(zap.String(logg.Layer, extractorServiceName)),
		browser:  params.Browser,
		tracer:   otel.Tracer(extractorTracer),
		stopChan: make(chan struct{}),
		running:  false,
	}
}

// Summarize navigates to url (or stays on the current page when url is
// empty) and extracts a fresh summary of its affordances.
func (s *ExtractorService) Summarize(ctx context.Context, url string) (run *entity.Run, err error) {
	const op = "Summarize"
	logger := s.logger.With(zap.String(logg.Operation, op), zap.String(logg.URL, url))

	ctx, step := tracing.StartSpan(ctx, s.tracer, logger, op,
		attribute.String("url", url))
	defer func() {
		step.End(err)
	}()

	if url == "" && s.browser.CurrentURL() == "" {
		return nil, apperr.InvalidReqError(op, "url", errors.New("no url given and no page open"))
	}

	s.running = true
	defer func() { s.running = false }()

	if url != "" {
		step.AddEvent("navigating")

		if err := s.browser.Navigate(ctx, url); err != nil {
			return nil, apperr.Wrap(op, apperr.CodeActionFailed, err, map[string]any{
				apperr.MetaReason: "navigation_failed",
				apperr.MetaStage:  apperr.StageNavigation,
				apperr.MetaURL:    url,
			})
		}
	}

	step.AddEvent("getting page state")

	state, err := s.browser.GetPageState(ctx)
	if err != nil {
		return nil, apperr.Wrap(op, apperr.CodeInternal, err, map[string]any{
			apperr.MetaReason: "page_state_failed",
			apperr.MetaStage:  apperr.StageSnapshot,
		})
	}

	s.lastURL = state.URL

	run = &entity.Run{
		ID:        uuid.New(),
		URL:       state.URL,
		StartedAt: time.Now(),
		Summary:   state.Summary,
	}

	logger.Info("Summary extracted",
		zap.String(logg.RunID, run.ID.String()),
		zap.Int("interactive_elements", len(run.Summary.InteractiveElements)),
		zap.Int("form_fields", len(run.Summary.FormFields)))

	return run, nil
}

// Replay executes one action against the current page using a selector from
// a previous summary, records the step on the run and returns the page state
// observed afterwards.
func (s *ExtractorService) Replay(ctx context.Context, run *entity.Run, action *entity.ReplayAction) (state *entity.PageState, err error) {
	const op = "Replay"
	logger := s.logger.With(zap.String(logg.Operation, op), zap.String(logg.Action, string(action.Type)))

	ctx, step := tracing.StartSpan(ctx, s.tracer, logger, op,
		attribute.String("action_type", string(action.Type)))
	defer func() {
		step.End(err)
	}()

	select {
	case <-s.stopChan:
		return nil, apperr.WrapErrorWithReason(op, apperr.CodeCancelledByUser, "stopped")
	default:
	}

	state, err = s.executeAction(ctx, action)

	if run != nil {
		recorded := entity.Step{
			ID:        uuid.New(),
			Action:    string(action.Type),
			Selector:  action.Selector,
			Timestamp: time.Now(),
			Success:   err == nil,
		}
		if err != nil {
			recorded.Error = err.Error()
		}

		run.Steps = append(run.Steps, recorded)
	}

	if err != nil {
		return nil, err
	}

	if state.URL != s.lastURL {
		logger.Info("Page URL changed after replay", zap.String(logg.URL, state.URL))
	}
	s.lastURL = state.URL

	return state, nil
}

func (s *ExtractorService) executeAction(ctx context.Context, action *entity.ReplayAction) (*entity.PageState, error) {
	const op = "executeAction"

	switch action.Type {
	case entity.ActionTypeNavigate:
		return s.actionNavigate(ctx, action)
	case entity.ActionTypeClick:
		return s.actionClick(ctx, action)
	case entity.ActionTypeFill:
		return s.actionFill(ctx, action)
	default:
		return nil, apperr.WrapErrorWithReason(op, apperr.CodeInvalidArgument, "unknown_action_type")
	}
}

func (s *ExtractorService) actionNavigate(ctx context.Context, action *entity.ReplayAction) (*entity.PageState, error) {
	const op = "actionNavigate"

	if action.URL == "" {
		return nil, apperr.InvalidReqError(op, "url", fmt.Errorf("url cannot be empty"))
	}

	if err := s.browser.Navigate(ctx, action.URL); err != nil {
		return nil, apperr.Wrap(op, apperr.CodeActionFailed, err, map[string]any{
			apperr.MetaReason: "navigation_failed",
			apperr.MetaStage:  apperr.StageNavigation,
			apperr.MetaURL:    action.URL,
		})
	}

	return s.browser.GetPageState(ctx)
}

func (s *ExtractorService) actionClick(ctx context.Context, action *entity.ReplayAction) (*entity.PageState, error) {
	const op = "actionClick"

	if action.Selector == "" {
		return nil, apperr.InvalidReqError(op, "selector", fmt.Errorf("selector cannot be empty"))
	}

	if err := s.browser.Click(ctx, action.Selector); err != nil {
		return nil, apperr.Wrap(op, apperr.CodeActionFailed, err, map[string]any{
			apperr.MetaReason:   "click_failed",
			apperr.MetaStage:    apperr.StageInteraction,
			apperr.MetaSelector: action.Selector,
		})
	}

	return s.browser.GetPageState(ctx)
}

func (s *ExtractorService) actionFill(ctx context.Context, action *entity.ReplayAction) (*entity.PageState, error) {
	const op = "actionFill"

	if action.Selector == "" {
		return nil, apperr.InvalidReqError(op, "selector", fmt.Errorf("selector cannot be empty"))
	}

	if err := s.browser.Fill(ctx, action.Selector, action.Value); err != nil {
		return nil, apperr.Wrap(op, apperr.CodeActionFailed, err, map[string]any{
			apperr.MetaReason:   "fill_failed",
			apperr.MetaStage:    apperr.StageInteraction,
			apperr.MetaSelector: action.Selector,
		})
	}

	return s.browser.GetPageState(ctx)
}

// FormatState renders a page state for console output.
func (s *ExtractorService) FormatState(state *entity.PageState) string {
	var result strings.Builder

	result.WriteString(fmt.Sprintf("URL: %s\n", state.URL))
	result.WriteString(fmt.Sprintf("Title: %s\n", state.Summary.Title))

	if state.Summary.Description != "" {
		result.WriteString(fmt.Sprintf("Description: %s\n", state.Summary.Description))
	}

	if len(state.Summary.InteractiveElements) > 0 {
		result.WriteString("\nInteractive elements:\n")

		for i, el := range state.Summary.InteractiveElements {
			result.WriteString(fmt.Sprintf("%d. %s\n", i+1, el))
		}
	}

	if len(state.Summary.FormFields) > 0 {
		result.WriteString("\nForm fields:\n")

		for i, field := range state.Summary.FormFields {
			result.WriteString(fmt.Sprintf("%d. %s\n", i+1, field))
		}
	}

	return result.String()
}

func (s *ExtractorService) Stop() {
	if !s.running {
		return
	}

	s.logger.Info("Stopping extractor service")
	close(s.stopChan)
	s.running = false
}
