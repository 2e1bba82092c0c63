// cmd/worker-manager/workers.go
package main

import (
	"fmt"

	"pitchdeck/internal/common/camunda"
	"pitchdeck/internal/common/config"
	"pitchdeck/internal/common/logger"
	"pitchdeck/internal/common/observability"
	"pitchdeck/internal/deck/repository"
	"pitchdeck/pkg/registry"

	deletedeck "pitchdeck/internal/workers/deck/delete-deck"
	derivedeck "pitchdeck/internal/workers/deck/derive-deck"
	portfoliosummary "pitchdeck/internal/workers/deck/portfolio-summary"
	promotedraft "pitchdeck/internal/workers/deck/promote-draft"
	savedeck "pitchdeck/internal/workers/deck/save-deck"
	scoredeck "pitchdeck/internal/workers/deck/score-deck"
	clonetemplate "pitchdeck/internal/workers/template/clone-template"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// buildHandlers constructs one handler per task type, keyed by task type.
func buildHandlers(
	cfg *config.Config,
	repo *repository.Repository,
	reg *registry.ActivityRegistry,
	log logger.Logger,
	obs *observability.Observability,
) (map[string]camunda.JobHandler, error) {
	handlers := make(map[string]camunda.JobHandler)
	add := func(taskType string, h camunda.JobHandler, err error) error {
		if err != nil {
			return fmt.Errorf("create %s handler: %w", taskType, err)
		}
		handlers[taskType] = h
		return nil
	}

	sd, err := scoredeck.NewHandler(scoredeck.HandlerOptions{
		Config: scoredeck.LoadConfig(cfg), Decks: repo, Registry: reg, Logger: log, Observability: obs,
	})
	if err := add(scoredeck.TaskType, sd, err); err != nil {
		return nil, err
	}

	dd, err := derivedeck.NewHandler(derivedeck.HandlerOptions{
		Config: derivedeck.LoadConfig(cfg), Decks: repo, Registry: reg, Logger: log, Observability: obs,
	})
	if err := add(derivedeck.TaskType, dd, err); err != nil {
		return nil, err
	}

	sv, err := savedeck.NewHandler(savedeck.HandlerOptions{
		Config: savedeck.LoadConfig(cfg), Decks: repo, Registry: reg, Logger: log, Observability: obs,
	})
	if err := add(savedeck.TaskType, sv, err); err != nil {
		return nil, err
	}

	del, err := deletedeck.NewHandler(deletedeck.HandlerOptions{
		Config: deletedeck.LoadConfig(cfg), Decks: repo, Registry: reg, Logger: log, Observability: obs,
	})
	if err := add(deletedeck.TaskType, del, err); err != nil {
		return nil, err
	}

	pd, err := promotedraft.NewHandler(promotedraft.HandlerOptions{
		Config: promotedraft.LoadConfig(cfg), Drafts: repo, Registry: reg, Logger: log, Observability: obs,
	})
	if err := add(promotedraft.TaskType, pd, err); err != nil {
		return nil, err
	}

	ps, err := portfoliosummary.NewHandler(portfoliosummary.HandlerOptions{
		Config: portfoliosummary.LoadConfig(cfg), Decks: repo, Registry: reg, Logger: log, Observability: obs,
	})
	if err := add(portfoliosummary.TaskType, ps, err); err != nil {
		return nil, err
	}

	ct, err := clonetemplate.NewHandler(clonetemplate.HandlerOptions{
		Config: clonetemplate.LoadConfig(cfg), Decks: repo, Registry: reg, Logger: log, Observability: obs,
	})
	if err := add(clonetemplate.TaskType, ct, err); err != nil {
		return nil, err
	}

	return handlers, nil
}

// startWorkers opens a subscription for every enabled handler.
func startWorkers(client zbc.Client, cfg *config.Config, handlers map[string]camunda.JobHandler, log logger.Logger) []*camunda.Worker {
	var workers []*camunda.Worker
	for taskType, h := range handlers {
		if !config.IsWorkerEnabled(cfg, taskType) {
			log.Info("worker disabled", map[string]interface{}{"taskType": taskType})
			continue
		}
		wc := config.GetWorkerConfig(cfg, taskType)
		workers = append(workers, camunda.NewWorker(client, camunda.WorkerOptions{
			TaskType:      taskType,
			MaxJobsActive: wc.MaxJobsActive,
			Timeout:       config.GetDuration(wc.Timeout),
		}, h, log))
	}
	return workers
}
