package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation of a caller supplied
// parameter fails. It is raised before any network activity.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// UnknownToolErr represents a lookup of a tool name that is not registered.
type UnknownToolErr struct {
	domainErr
	Name      string
	Available []string
}

// NewUnknownToolErr creates a new UnknownToolErr listing the available tool names.
func NewUnknownToolErr(name string, available []string) *UnknownToolErr {
	return &UnknownToolErr{
		domainErr: domainErr{
			message: fmt.Sprintf("Tool '%s' not found. Available tools: [%s]", name, strings.Join(available, ", ")),
		},
		Name:      name,
		Available: available,
	}
}

// TransientKind classifies a transient upstream failure.
type TransientKind string

const (
	TransientKind_RateLimit  TransientKind = "rate_limit"
	TransientKind_Timeout    TransientKind = "timeout"
	TransientKind_Connection TransientKind = "connection"
)

// TransientErr represents an upstream failure that is expected to succeed on retry.
type TransientErr struct {
	domainErr
	Kind  TransientKind
	cause error
}

// NewTransientErr creates a new TransientErr of the given kind.
func NewTransientErr(kind TransientKind, message string, cause error) *TransientErr {
	return &TransientErr{
		domainErr: domainErr{message: message},
		Kind:      kind,
		cause:     cause,
	}
}

// Unwrap returns the underlying error.
func (e *TransientErr) Unwrap() error {
	return e.cause
}

// IsTransientErr reports whether err is, or wraps, a TransientErr.
func IsTransientErr(err error) bool {
	var transient *TransientErr
	return errors.As(err, &transient)
}

// UpstreamErr represents a non-transient error response from the LLM API,
// such as a malformed request or an authentication failure.
type UpstreamErr struct {
	domainErr
	StatusCode int
}

// NewUpstreamErr creates a new UpstreamErr.
func NewUpstreamErr(statusCode int, message string) *UpstreamErr {
	return &UpstreamErr{
		domainErr:  domainErr{message: message},
		StatusCode: statusCode,
	}
}

// ToolExecutionErr represents a failure of a single tool call. It never
// escapes the tool executor; it is rendered as the tool result content.
type ToolExecutionErr struct {
	domainErr
	ToolName  string
	ErrorType string
	cause     error
}

// NewToolExecutionErr creates a new ToolExecutionErr.
func NewToolExecutionErr(toolName, errorType, message string, cause error) *ToolExecutionErr {
	return &ToolExecutionErr{
		domainErr: domainErr{message: message},
		ToolName:  toolName,
		ErrorType: errorType,
		cause:     cause,
	}
}

// Unwrap returns the underlying error.
func (e *ToolExecutionErr) Unwrap() error {
	return e.cause
}

// detailedErr is the base of the service level errors. It carries optional
// diagnostic details and the underlying cause.
type detailedErr struct {
	message string
	Details map[string]any
	cause   error
}

// Error returns the message followed by the details, when present.
func (e detailedErr) Error() string {
	if len(e.Details) == 0 {
		return e.message
	}
	details, err := json.Marshal(e.Details)
	if err != nil {
		return fmt.Sprintf("%s - Details: %v", e.message, e.Details)
	}
	return fmt.Sprintf("%s - Details: %s", e.message, details)
}

// Message returns the error message without details.
func (e detailedErr) Message() string {
	return e.message
}

// Unwrap returns the underlying error.
func (e detailedErr) Unwrap() error {
	return e.cause
}

// LLMQueryErr is the umbrella error of the LLM query service: malformed or
// missing JSON content, exhausted retries and unclassified failures.
type LLMQueryErr struct {
	detailedErr
}

// NewLLMQueryErr creates a new LLMQueryErr. Details and cause are optional.
func NewLLMQueryErr(message string, details map[string]any, cause error) *LLMQueryErr {
	return &LLMQueryErr{
		detailedErr: detailedErr{message: message, Details: details, cause: cause},
	}
}

// AgentErr represents a failed agent run.
type AgentErr struct {
	detailedErr
}

// NewAgentErr creates a new AgentErr.
func NewAgentErr(message string, details map[string]any, cause error) *AgentErr {
	return &AgentErr{
		detailedErr: detailedErr{message: message, Details: details, cause: cause},
	}
}

// WorkflowErr represents a failure while building or executing a workflow.
type WorkflowErr struct {
	detailedErr
}

// NewWorkflowErr creates a new WorkflowErr.
func NewWorkflowErr(message string, details map[string]any, cause error) *WorkflowErr {
	return &WorkflowErr{
		detailedErr: detailedErr{message: message, Details: details, cause: cause},
	}
}
