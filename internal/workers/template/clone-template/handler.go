// internal/workers/template/clone-template/handler.go
package clonetemplate

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"pitchdeck/internal/common/camunda"
	"pitchdeck/internal/common/errors"
	"pitchdeck/internal/common/logger"
	"pitchdeck/internal/common/observability"
	"pitchdeck/internal/common/validation"
	"pitchdeck/internal/deck/templates"
	"pitchdeck/internal/models"
	"pitchdeck/pkg/registry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = registry.TaskCloneTemplate

type DeckWriter interface {
	SaveDeck(ctx context.Context, deck models.Deck) (models.Deck, error)
}

type HandlerOptions struct {
	Config        *Config
	Decks         DeckWriter
	Registry      *registry.ActivityRegistry
	Logger        logger.Logger
	Observability *observability.Observability
	// Now defaults to time.Now.
	Now func() time.Time
}

type Handler struct {
	config    *Config
	decks     DeckWriter
	validator *validation.Validator
	reporter  *camunda.Reporter
	logger    logger.Logger
	now       func() time.Time
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	if opts.Decks == nil {
		return nil, fmt.Errorf("%s: deck writer is required", TaskType)
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
	if opts.Now == nil {
		opts.Now = time.Now
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
		now:       opts.Now,
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
	deck, err := templates.Clone(input.TemplateID, h.now().UTC())
	if err != nil {
		var notFound *templates.NotFoundError
		if stderrors.As(err, &notFound) {
			return nil, errors.NewTemplateNotFoundError(notFound.ID)
		}
		return nil, errors.NewInternalError(err)
	}

	saved := false
	if input.shouldSave() {
		deck, err = h.decks.SaveDeck(ctx, deck)
		if err != nil {
			return nil, err
		}
		saved = true
	}

	h.logger.Info("template cloned", map[string]interface{}{
		"templateId": input.TemplateID,
		"deckId":     deck.ID,
		"saved":      saved,
	})

	return &Output{
		TemplateID: input.TemplateID,
		DeckID:     deck.ID,
		Saved:      saved,
		Deck:       deck,
	}, nil
}
