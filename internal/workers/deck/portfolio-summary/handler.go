// internal/workers/deck/portfolio-summary/handler.go
package portfoliosummary

import (
	"context"
	"fmt"

	"pitchdeck/internal/common/camunda"
	"pitchdeck/internal/common/logger"
	"pitchdeck/internal/common/observability"
	"pitchdeck/internal/common/validation"
	"pitchdeck/internal/deck/scoring"
	"pitchdeck/internal/models"
	"pitchdeck/pkg/registry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = registry.TaskPortfolioSummary

type DeckLister interface {
	ListDecks(ctx context.Context) ([]models.Deck, error)
}

type HandlerOptions struct {
	Config        *Config
	Decks         DeckLister
	Registry      *registry.ActivityRegistry
	Logger        logger.Logger
	Observability *observability.Observability
}

type Handler struct {
	config    *Config
	decks     DeckLister
	validator *validation.Validator
	reporter  *camunda.Reporter
	logger    logger.Logger
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	if opts.Decks == nil {
		return nil, fmt.Errorf("%s: deck lister is required", TaskType)
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

func (h *Handler) Execute(ctx context.Context, _ *Input) (*Output, error) {
	decks, err := h.decks.ListDecks(ctx)
	if err != nil {
		return nil, err
	}
	summary := scoring.Portfolio(decks)

	h.logger.Info("portfolio summarised", map[string]interface{}{
		"deckCount":    summary.DeckCount,
		"averageScore": summary.AverageScore,
		"bestGrade":    summary.BestGrade,
	})
	return &Output{Portfolio: summary}, nil
}
