// internal/workers/deck/save-deck/handler.go
package savedeck

import (
	"context"
	"fmt"

	"pitchdeck/internal/common/camunda"
	"pitchdeck/internal/common/logger"
	"pitchdeck/internal/common/observability"
	"pitchdeck/internal/common/validation"
	"pitchdeck/internal/models"
	"pitchdeck/pkg/registry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = registry.TaskSaveDeck

// DeckStore upserts a deck and reports whether it was new.
type DeckStore interface {
	UpsertDeck(ctx context.Context, deck models.Deck) (models.Deck, bool, error)
}

type HandlerOptions struct {
	Config        *Config
	Decks         DeckStore
	Registry      *registry.ActivityRegistry
	Logger        logger.Logger
	Observability *observability.Observability
}

type Handler struct {
	config    *Config
	decks     DeckStore
	validator *validation.Validator
	reporter  *camunda.Reporter
	logger    logger.Logger
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	if opts.Decks == nil {
		return nil, fmt.Errorf("%s: deck store is required", TaskType)
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

// Execute upserts the deck. Saving is idempotent, so a retried job simply
// rewrites the same record with a newer updatedAt.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	saved, created, err := h.decks.UpsertDeck(ctx, input.Deck)
	if err != nil {
		return nil, err
	}

	h.logger.Info("deck saved", map[string]interface{}{
		"deckId":  saved.ID,
		"created": created,
	})

	return &Output{
		DeckID:  saved.ID,
		Created: created,
		Deck:    saved,
	}, nil
}
