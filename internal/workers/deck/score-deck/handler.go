// internal/workers/deck/score-deck/handler.go
package scoredeck

import (
	"context"
	"fmt"

	"pitchdeck/internal/common/camunda"
	"pitchdeck/internal/common/errors"
	"pitchdeck/internal/common/logger"
	"pitchdeck/internal/common/metrics"
	"pitchdeck/internal/common/observability"
	"pitchdeck/internal/common/validation"
	"pitchdeck/internal/deck/scoring"
	"pitchdeck/internal/models"
	"pitchdeck/pkg/registry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = registry.TaskScoreDeck

// DeckReader looks up stored decks.
type DeckReader interface {
	GetDeck(ctx context.Context, id string) (*models.Deck, error)
}

type HandlerOptions struct {
	Config        *Config
	Decks         DeckReader
	Registry      *registry.ActivityRegistry
	Logger        logger.Logger
	Observability *observability.Observability
}

type Handler struct {
	config    *Config
	decks     DeckReader
	validator *validation.Validator
	reporter  *camunda.Reporter
	logger    logger.Logger
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	if opts.Decks == nil {
		return nil, fmt.Errorf("%s: deck reader is required", TaskType)
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = LoadConfig(nil)
	}
	reg := opts.Registry
	if reg == nil {
		reg = registry.Default()
	}
	v, err := reg.Validator(TaskType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", TaskType, err)
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})

	return &Handler{
		config:    cfg,
		decks:     opts.Decks,
		validator: v,
		reporter:  camunda.NewReporter(TaskType, log, opts.Observability),
		logger:    log,
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	started := h.reporter.Begin()

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":             job.Key,
		"processInstanceKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := camunda.DecodeVariables(h.validator, job.Variables, &input); err != nil {
		h.reporter.Fail(ctx, client, job, started, err)
		return
	}

	output, err := h.Execute(ctx, &input)
	if err != nil {
		h.reporter.Fail(ctx, client, job, started, err)
		return
	}

	h.reporter.Complete(ctx, client, job, started, output)
}

// Execute scores the inline deck, or the stored deck named by DeckID.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	deck, err := h.resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	report := scoring.Score(deck)
	metrics.ObserveScore(report.Grade, report.Ratio())

	h.logger.Info("deck scored", map[string]interface{}{
		"deckId": deck.ID,
		"total":  report.Total,
		"grade":  report.Grade,
	})

	return &Output{
		DeckID:      deck.ID,
		Total:       report.Total,
		Grade:       report.Grade,
		ScoreReport: report,
	}, nil
}

func (h *Handler) resolve(ctx context.Context, input *Input) (models.Deck, error) {
	if input.Deck != nil {
		return *input.Deck, nil
	}
	if input.DeckID == "" {
		return models.Deck{}, errors.NewDeckValidationFailedError("either deck or deckId is required")
	}
	deck, err := h.decks.GetDeck(ctx, input.DeckID)
	if err != nil {
		return models.Deck{}, err
	}
	if deck == nil {
		return models.Deck{}, errors.NewDeckNotFoundError(input.DeckID)
	}
	return *deck, nil
}
