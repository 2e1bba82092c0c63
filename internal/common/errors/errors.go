// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeDeckValidationFailed ErrorCode = "DECK_VALIDATION_FAILED"
	ErrCodeDeckNotFound         ErrorCode = "DECK_NOT_FOUND"
	ErrCodeDraftNotFound        ErrorCode = "DRAFT_NOT_FOUND"

	ErrCodeTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"

	ErrCodeStorageReadFailed  ErrorCode = "STORAGE_READ_FAILED"
	ErrCodeStorageWriteFailed ErrorCode = "STORAGE_WRITE_FAILED"

	ErrCodeParseError    ErrorCode = "PARSE_ERROR"
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"

	ErrCodeBrokerUnavailable ErrorCode = "BROKER_UNAVAILABLE"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// WithMetadata attaches a key to the error and returns it.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// AsStandardError unwraps err to a *StandardError if it carries one.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// CodeOf returns the error's code, or INTERNAL_ERROR for foreign errors.
func CodeOf(err error) ErrorCode {
	if stdErr, ok := AsStandardError(err); ok {
		return stdErr.Code
	}
	return ErrCodeInternalError
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	for k, v := range e.ErrorVariables {
		vars[k] = v
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewDeckValidationFailedError is for input that fails its schema or is
// missing a required field.
func NewDeckValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDeckValidationFailed,
		Message:   "Deck input failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewDeckNotFoundError(deckID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDeckNotFound,
		Message:   "Deck not found",
		Details:   fmt.Sprintf("deckId: %s", deckID),
		Retryable: false,
		Metadata:  map[string]interface{}{"deckId": deckID},
		Timestamp: time.Now().UTC(),
	}
}

func NewDraftNotFoundError() *StandardError {
	return &StandardError{
		Code:      ErrCodeDraftNotFound,
		Message:   "No draft to promote",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateNotFoundError creates a non-retryable template error.
func NewTemplateNotFoundError(templateID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateNotFound,
		Message:   "Template not found in catalog",
		Details:   fmt.Sprintf("templateId: %s", templateID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStorageReadFailedError wraps a backing-store read failure. It is never
// used for a missing record.
func NewStorageReadFailedError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorageReadFailed,
		Message:   "Deck storage read failed",
		Details:   fmt.Sprintf("operation: %s, error: %s", operation, err.Error()),
		Retryable: true,
		Metadata:  map[string]interface{}{"operation": operation},
		Timestamp: time.Now().UTC(),
	}
}

func NewStorageWriteFailedError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorageWriteFailed,
		Message:   "Deck storage write failed",
		Details:   fmt.Sprintf("operation: %s, error: %s", operation, err.Error()),
		Retryable: true,
		Metadata:  map[string]interface{}{"operation": operation},
		Timestamp: time.Now().UTC(),
	}
}

func NewParseError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeParseError,
		Message:   "Failed to parse job variables",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternalError,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBrokerUnavailableError reports that the workflow broker could not be
// reached for operation.
func NewBrokerUnavailableError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBrokerUnavailable,
		Message:   "Workflow broker unavailable",
		Details:   fmt.Sprintf("operation: %s, error: %s", operation, err.Error()),
		Retryable: true,
		Metadata:  map[string]interface{}{"operation": operation},
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to BPMN error codes. They are
// identical today; the indirection keeps process models stable if an internal
// code is renamed.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeDeckValidationFailed: "DECK_VALIDATION_FAILED",
	ErrCodeDeckNotFound:         "DECK_NOT_FOUND",
	ErrCodeDraftNotFound:        "DRAFT_NOT_FOUND",
	ErrCodeTemplateNotFound:     "TEMPLATE_NOT_FOUND",
	ErrCodeStorageReadFailed:    "STORAGE_READ_FAILED",
	ErrCodeStorageWriteFailed:   "STORAGE_WRITE_FAILED",
	ErrCodeParseError:           "PARSE_ERROR",
	ErrCodeInternalError:        "INTERNAL_ERROR",
	ErrCodeBrokerUnavailable:    "BROKER_UNAVAILABLE",
}

// GetRetryCount returns the recommended retry count for an error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeStorageReadFailed,
		ErrCodeStorageWriteFailed,
		ErrCodeBrokerUnavailable:
		return 3

	default:
		return 0 // Business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.HasPrefix(codeStr, "STORAGE"):
		return "STORAGE"
	case strings.Contains(codeStr, "NOT_FOUND"):
		return "NOT_FOUND"
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "PARSE"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
