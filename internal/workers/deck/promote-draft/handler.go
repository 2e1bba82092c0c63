// internal/workers/deck/promote-draft/handler.go
package promotedraft

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

const TaskType = registry.TaskPromoteDraft

type DraftStore interface {
	SaveDraft(ctx context.Context, draft models.Draft) error
	PromoteDraft(ctx context.Context) (models.Deck, error)
}

type HandlerOptions struct {
	Config        *Config
	Drafts        DraftStore
	Registry      *registry.ActivityRegistry
	Logger        logger.Logger
	Observability *observability.Observability
}

type Handler struct {
	config    *Config
	drafts    DraftStore
	validator *validation.Validator
	reporter  *camunda.Reporter
	logger    logger.Logger
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	if opts.Drafts == nil {
		return nil, fmt.Errorf("%s: draft store is required", TaskType)
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
		drafts:    opts.Drafts,
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
	if input.Draft != nil {
		if err := h.drafts.SaveDraft(ctx, *input.Draft); err != nil {
			return nil, err
		}
	}

	deck, err := h.drafts.PromoteDraft(ctx)
	if err != nil {
		return nil, err
	}

	h.logger.Info("draft promoted", map[string]interface{}{
		"deckId":      deck.ID,
		"companyName": deck.Basics.CompanyName,
	})
	return &Output{DeckID: deck.ID, Deck: deck}, nil
}
