// internal/workers/deck/derive-deck/handler.go
package derivedeck

import (
	"context"
	"fmt"

	"pitchdeck/internal/common/camunda"
	"pitchdeck/internal/common/errors"
	"pitchdeck/internal/common/logger"
	"pitchdeck/internal/common/observability"
	"pitchdeck/internal/common/validation"
	"pitchdeck/internal/deck/derive"
	"pitchdeck/internal/deck/reference"
	"pitchdeck/internal/models"
	"pitchdeck/pkg/registry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = registry.TaskDeriveDeck

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
	if opts.Config == nil {
		opts.Config = LoadConfig(nil)
	}
	if opts.Registry == nil {
		opts.Registry = registry.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNoOpLogger()
	}
	v, err := opts.Registry.Validator(TaskType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", TaskType, err)
	}
	log := opts.Logger.WithFields(map[string]interface{}{"taskType": TaskType})

	return &Handler{
		config:    opts.Config,
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

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	var deck models.Deck
	switch {
	case input.Deck != nil:
		deck = *input.Deck
	case input.DeckID != "":
		stored, err := h.decks.GetDeck(ctx, input.DeckID)
		if err != nil {
			return nil, err
		}
		if stored == nil {
			return nil, errors.NewDeckNotFoundError(input.DeckID)
		}
		deck = *stored
	default:
		return nil, errors.NewDeckValidationFailedError("either deck or deckId is required")
	}

	view := derive.Build(deck)

	h.logger.Debug("deck derived", map[string]interface{}{
		"deckId":      deck.ID,
		"tam":         view.Market.TAM,
		"competitors": len(view.Competitors),
	})

	return &Output{
		DeckID: deck.ID,
		View:   view,
		Formatted: Formatted{
			TAM: reference.FormatCurrency(view.Market.TAM),
			SAM: reference.FormatCurrency(view.Market.SAM),
			SOM: reference.FormatCurrency(view.Market.SOM),
			Ask: reference.FormatCurrency(view.UseOfFunds.Ask),
		},
	}, nil
}
