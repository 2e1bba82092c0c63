// internal/common/errors/handler.go
package errors

import (
	"context"
	"encoding/json"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

// ErrorHandler reports a failed job to the broker: retryable errors fail the
// job with a retry budget, everything else is thrown as a BPMN error.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// HandleJobError reports err for job and returns the code it was reported
// under.
func (h *ErrorHandler) HandleJobError(ctx context.Context, client worker.JobClient, job entities.Job, err error) ErrorCode {
	stdErr := Normalize(err)
	bpmnErr := ConvertToBPMNError(stdErr)

	h.logError(job, stdErr, bpmnErr)

	if bpmnErr.Retries > 0 && job.Retries > 0 {
		h.failJobWithRetries(ctx, client, job, bpmnErr)
	} else {
		h.throwBPMNError(ctx, client, job, bpmnErr)
	}
	return stdErr.Code
}

// Normalize ensures we always have a StandardError.
func Normalize(err error) *StandardError {
	if stdErr, ok := AsStandardError(err); ok {
		return stdErr
	}
	return NewInternalError(err)
}

func (h *ErrorHandler) failJobWithRetries(ctx context.Context, client worker.JobClient, job entities.Job, bpmnErr *BPMNError) {
	// job.Retries is what the broker has left; never raise it.
	retries := bpmnErr.Retries
	if int(job.Retries)-1 < retries {
		retries = int(job.Retries) - 1
	}
	if retries < 0 {
		retries = 0
	}

	cmd := client.NewFailJobCommand().
		JobKey(job.Key).
		Retries(int32(retries)).
		ErrorMessage(bpmnErr.Message)

	var err error
	if varsJSON, ok := marshalVariables(bpmnErr); ok {
		if withVars, varsErr := cmd.VariablesFromString(varsJSON); varsErr == nil {
			_, err = withVars.Send(ctx)
		} else {
			_, err = cmd.Send(ctx)
		}
	} else {
		_, err = cmd.Send(ctx)
	}
	if err != nil {
		h.logger.Error("failed to send fail job command", map[string]interface{}{"error": err.Error()})
	}
}

func (h *ErrorHandler) throwBPMNError(ctx context.Context, client worker.JobClient, job entities.Job, bpmnErr *BPMNError) {
	cmd := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(bpmnErr.Code).
		ErrorMessage(bpmnErr.Message)

	var err error
	if varsJSON, ok := marshalVariables(bpmnErr); ok {
		if withVars, varsErr := cmd.VariablesFromString(varsJSON); varsErr == nil {
			_, err = withVars.Send(ctx)
		} else {
			_, err = cmd.Send(ctx)
		}
	} else {
		_, err = cmd.Send(ctx)
	}
	if err != nil {
		h.logger.Error("failed to send throw error command", map[string]interface{}{"error": err.Error()})
	}
}

func marshalVariables(bpmnErr *BPMNError) (string, bool) {
	varsJSON, err := json.Marshal(bpmnErr.ToErrorVariables())
	if err != nil {
		return "", false
	}
	return string(varsJSON), true
}

func (h *ErrorHandler) logError(job entities.Job, stdErr *StandardError, bpmnErr *BPMNError) {
	h.logger.Error("Job failed", map[string]interface{}{
		"jobKey":           job.Key,
		"jobType":          job.Type,
		"errorCode":        string(stdErr.Code),
		"bpmnErrorCode":    bpmnErr.Code,
		"message":          bpmnErr.Message,
		"details":          stdErr.Details,
		"retryable":        stdErr.Retryable,
		"retries":          bpmnErr.Retries,
		"errorCategory":    GetErrorCategory(stdErr.Code),
		"workflowInstance": job.ProcessInstanceKey,
	})
}
