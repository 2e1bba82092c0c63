// internal/common/camunda/worker.go
package camunda

import (
	"context"
	"encoding/json"
	"time"

	"pitchdeck/internal/common/errors"
	"pitchdeck/internal/common/logger"
	"pitchdeck/internal/common/metrics"
	"pitchdeck/internal/common/observability"
	"pitchdeck/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// JobHandler is what every deck worker implements.
type JobHandler interface {
	Handle(client worker.JobClient, job entities.Job)
}

// Worker is one opened job subscription.
type Worker struct {
	worker   worker.JobWorker
	logger   logger.Logger
	taskType string
}

// WorkerOptions configures a subscription.
type WorkerOptions struct {
	TaskType      string
	MaxJobsActive int
	Timeout       time.Duration
}

// NewWorker opens a job worker for opts.TaskType on client.
func NewWorker(client zbc.Client, opts WorkerOptions, handler JobHandler, log logger.Logger) *Worker {
	builder := client.NewJobWorker().
		JobType(opts.TaskType).
		Handler(handler.Handle)
	if opts.MaxJobsActive > 0 {
		builder = builder.MaxJobsActive(opts.MaxJobsActive)
	}
	if opts.Timeout > 0 {
		builder = builder.Timeout(opts.Timeout)
	}

	w := &Worker{
		worker:   builder.Open(),
		logger:   log.WithFields(map[string]interface{}{"taskType": opts.TaskType}),
		taskType: opts.TaskType,
	}
	w.logger.Info("worker started", map[string]interface{}{
		"maxJobsActive": opts.MaxJobsActive,
	})
	return w
}

// Stop closes the subscription and waits for in-flight jobs.
func (w *Worker) Stop() {
	w.logger.Info("stopping worker", nil)
	w.worker.Close()
	w.worker.AwaitClose()
}

// Reporter carries the completion and failure plumbing every handler shares:
// the broker commands, the job metrics and the error-to-BPMN mapping.
type Reporter struct {
	taskType string
	logger   logger.Logger
	errors   *errors.ErrorHandler
	obs      *observability.Observability
}

// NewReporter builds a Reporter. obs may be nil.
func NewReporter(taskType string, log logger.Logger, obs *observability.Observability) *Reporter {
	return &Reporter{
		taskType: taskType,
		logger:   log,
		errors:   errors.NewErrorHandler(log),
		obs:      obs,
	}
}

// Begin marks a job active and returns its start time.
func (r *Reporter) Begin() time.Time {
	metrics.WorkerJobsActive.WithLabelValues(r.taskType).Inc()
	return time.Now()
}

// Complete sends output as the job's variables.
func (r *Reporter) Complete(ctx context.Context, client worker.JobClient, job entities.Job, started time.Time, output interface{}) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		r.Fail(ctx, client, job, started, errors.NewInternalError(err))
		return
	}
	if _, err := cmd.Send(ctx); err != nil {
		r.logger.Error("failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
	}

	r.finish(ctx, started, "completed")
	metrics.WorkerJobsCompleted.WithLabelValues(r.taskType).Inc()
	r.logger.Info("job completed", map[string]interface{}{
		"jobKey":     job.Key,
		"durationMs": time.Since(started).Milliseconds(),
	})
}

// Fail reports err to the broker: retryable storage errors fail the job with
// retries, everything else is thrown as a BPMN error.
func (r *Reporter) Fail(ctx context.Context, client worker.JobClient, job entities.Job, started time.Time, err error) {
	code := r.errors.HandleJobError(ctx, client, job, err)
	metrics.WorkerJobsFailed.WithLabelValues(r.taskType, string(code)).Inc()
	r.finish(ctx, started, "failed")
}

func (r *Reporter) finish(ctx context.Context, started time.Time, status string) {
	elapsed := time.Since(started)
	metrics.WorkerJobsActive.WithLabelValues(r.taskType).Dec()
	metrics.WorkerJobDuration.WithLabelValues(r.taskType).Observe(elapsed.Seconds())
	r.obs.RecordJob(ctx, r.taskType, status, elapsed)
}

// DecodeVariables checks job variables against v, when non-nil, and decodes
// them into out. Malformed JSON is PARSE_ERROR; a schema violation is
// DECK_VALIDATION_FAILED.
func DecodeVariables(v *validation.Validator, variables string, out interface{}) error {
	raw := []byte(variables)
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	if v != nil {
		result, err := v.ValidateJSON(raw)
		if err != nil {
			return errors.NewParseError(err)
		}
		if !result.Valid {
			return errors.NewDeckValidationFailedError(result.Error())
		}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.NewParseError(err)
	}
	return nil
}
