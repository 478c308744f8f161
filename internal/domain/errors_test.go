package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("boom")

	tests := map[string]struct {
		err     error
		message string
		unwraps error
	}{
		"validation": {
			err:     NewValidationErr("max_tokens must be positive, got 0"),
			message: "max_tokens must be positive, got 0",
		},
		"not-found": {
			err:     NewNotFoundErr("missing"),
			message: "missing",
		},
		"unknown-tool": {
			err:     NewUnknownToolErr("nope", []string{"calculator", "echo"}),
			message: "Tool 'nope' not found. Available tools: [calculator, echo]",
		},
		"transient": {
			err:     NewTransientErr(TransientKind_RateLimit, "rate limited", cause),
			message: "rate limited",
			unwraps: cause,
		},
		"upstream": {
			err:     NewUpstreamErr(401, "unauthorized"),
			message: "unauthorized",
		},
		"tool-execution": {
			err:     NewToolExecutionErr("echo", "tool_execution_error", "bad", cause),
			message: "bad",
			unwraps: cause,
		},
		"llm-query-without-details": {
			err:     NewLLMQueryErr("Empty response received", nil, nil),
			message: "Empty response received",
		},
		"llm-query-with-details": {
			err:     NewLLMQueryErr("Failed to parse", map[string]any{"response": "oops"}, cause),
			message: `Failed to parse - Details: {"response":"oops"}`,
			unwraps: cause,
		},
		"agent": {
			err:     NewAgentErr("Agent execution failed: boom", nil, cause),
			message: "Agent execution failed: boom",
			unwraps: cause,
		},
		"workflow-unserializable-details": {
			err:     NewWorkflowErr("Workflow failed", map[string]any{"fn": func() {}}, nil),
			message: "Workflow failed - Details: map[fn:",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, tt.err.Error(), tt.message)
			if tt.unwraps != nil {
				assert.ErrorIs(t, tt.err, tt.unwraps)
			}
		})
	}
}

func TestIsTransientErr(t *testing.T) {
	transient := NewTransientErr(TransientKind_Timeout, "timeout", nil)

	assert.True(t, IsTransientErr(transient))
	assert.True(t, IsTransientErr(fmt.Errorf("wrapped: %w", transient)))
	assert.False(t, IsTransientErr(NewUpstreamErr(400, "bad request")))
	assert.False(t, IsTransientErr(nil))
}

func TestLLMQueryErr_As(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewLLMQueryErr("LLM returned empty content for JSON response", nil, nil))

	var queryErr *LLMQueryErr
	require.ErrorAs(t, err, &queryErr)
	assert.Equal(t, "LLM returned empty content for JSON response", queryErr.Message())
}
