package usecases

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/moneypilot/internal/common"
	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/moneypilot/internal/retry"
	"github.com/cleitonmarx/moneypilot/internal/tools"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fastPolicy() retry.Policy {
	return retry.Policy{
		MaxAttempts: 3,
		Multiplier:  0,
		MinWait:     time.Millisecond,
		MaxWait:     time.Millisecond,
		Retryable:   domain.IsTransientErr,
		Logger:      discardLogger(),
	}
}

func textCompletion(content string, usage domain.Usage) domain.Completion {
	return domain.Completion{
		ID:    "cmpl-1",
		Model: "gpt-4",
		Choices: []domain.CompletionChoice{
			{Message: domain.NewAssistantMessage(content), FinishReason: "stop"},
		},
		Usage: usage,
	}
}

func nullCompletion() domain.Completion {
	return domain.Completion{
		Choices: []domain.CompletionChoice{
			{Message: domain.Message{Role: domain.ChatRole_Assistant}},
		},
	}
}

func TestLLMServiceImpl_Query(t *testing.T) {
	userMsg := domain.NewUserMessage("How much did I spend?")

	tests := map[string]struct {
		opts            []QueryOption
		setExpectations func(c *domain.MockChatCompletionClient, r *domain.MockToolRegistry)
		testFunc        func(t *testing.T, res QueryResult, err error)
	}{
		"plain-text": {
			setExpectations: func(c *domain.MockChatCompletionClient, _ *domain.MockToolRegistry) {
				c.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(req domain.CompletionRequest) bool {
					return req.Model == "gpt-4" &&
						*req.MaxTokens == DEFAULT_MAX_TOKENS &&
						!req.JSONResponse &&
						len(req.Messages) == 1 &&
						req.Tools == nil
				})).Return(textCompletion("You spent 42.", domain.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}), nil).Once()
			},
			testFunc: func(t *testing.T, res QueryResult, err error) {
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(res.RequestID, "llm_"))
				assert.Equal(t, "You spent 42.", res.Message.Text())
				assert.Nil(t, res.JSON)
				assert.Equal(t, 15, res.Usage.TotalTokens)
			},
		},
		"max-tokens-one-is-accepted": {
			opts: []QueryOption{WithMaxTokens(1)},
			setExpectations: func(c *domain.MockChatCompletionClient, _ *domain.MockToolRegistry) {
				c.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(req domain.CompletionRequest) bool {
					return *req.MaxTokens == 1
				})).Return(textCompletion("a", domain.Usage{}), nil).Once()
			},
			testFunc: func(t *testing.T, res QueryResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, "a", res.Message.Text())
			},
		},
		"request-params-are-forwarded": {
			opts: []QueryOption{
				WithModel("gpt-4o"),
				WithTemperature(0.3),
				WithTopP(0.9),
				WithExtraParams(map[string]any{"seed": 7}),
			},
			setExpectations: func(c *domain.MockChatCompletionClient, _ *domain.MockToolRegistry) {
				c.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(req domain.CompletionRequest) bool {
					return req.Model == "gpt-4o" &&
						*req.Temperature == 0.3 &&
						*req.TopP == 0.9 &&
						req.Extra["seed"] == 7
				})).Return(textCompletion("ok", domain.Usage{}), nil).Once()
			},
			testFunc: func(t *testing.T, _ QueryResult, err error) {
				require.NoError(t, err)
			},
		},
		"json-direct": {
			opts: []QueryOption{WithJSONResponse()},
			setExpectations: func(c *domain.MockChatCompletionClient, _ *domain.MockToolRegistry) {
				c.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(req domain.CompletionRequest) bool {
					return req.JSONResponse
				})).Return(textCompletion(`{"total": 42}`, domain.Usage{}), nil).Once()
			},
			testFunc: func(t *testing.T, res QueryResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, map[string]any{"total": float64(42)}, res.JSON)
			},
		},
		"json-fenced": {
			opts: []QueryOption{WithJSONResponse()},
			setExpectations: func(c *domain.MockChatCompletionClient, _ *domain.MockToolRegistry) {
				c.EXPECT().Complete(mock.Anything, mock.Anything).
					Return(textCompletion("Here it is:\n```json\n{\"ok\": true}\n```", domain.Usage{}), nil).Once()
			},
			testFunc: func(t *testing.T, res QueryResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, map[string]any{"ok": true}, res.JSON)
			},
		},
		"json-whitespace-content": {
			opts: []QueryOption{WithJSONResponse()},
			setExpectations: func(c *domain.MockChatCompletionClient, _ *domain.MockToolRegistry) {
				c.EXPECT().Complete(mock.Anything, mock.Anything).
					Return(textCompletion("   \n ", domain.Usage{}), nil).Once()
			},
			testFunc: func(t *testing.T, _ QueryResult, err error) {
				var queryErr *domain.LLMQueryErr
				require.ErrorAs(t, err, &queryErr)
				assert.Equal(t, "LLM returned empty content for JSON response", queryErr.Message())
			},
		},
		"json-null-content": {
			opts: []QueryOption{WithJSONResponse()},
			setExpectations: func(c *domain.MockChatCompletionClient, _ *domain.MockToolRegistry) {
				c.EXPECT().Complete(mock.Anything, mock.Anything).Return(nullCompletion(), nil).Once()
			},
			testFunc: func(t *testing.T, _ QueryResult, err error) {
				var queryErr *domain.LLMQueryErr
				require.ErrorAs(t, err, &queryErr)
				assert.Equal(t, "LLM returned None content for JSON response", queryErr.Message())
			},
		},
		"json-unparseable": {
			opts: []QueryOption{WithJSONResponse()},
			setExpectations: func(c *domain.MockChatCompletionClient, _ *domain.MockToolRegistry) {
				c.EXPECT().Complete(mock.Anything, mock.Anything).
					Return(textCompletion("no json here", domain.Usage{}), nil).Once()
			},
			testFunc: func(t *testing.T, _ QueryResult, err error) {
				var queryErr *domain.LLMQueryErr
				require.ErrorAs(t, err, &queryErr)
				assert.Equal(t, "Failed to parse JSON response after all attempts", queryErr.Message())
			},
		},
		"transient-errors-are-retried": {
			setExpectations: func(c *domain.MockChatCompletionClient, _ *domain.MockToolRegistry) {
				c.EXPECT().Complete(mock.Anything, mock.Anything).
					Return(domain.Completion{}, domain.NewTransientErr(domain.TransientKind_RateLimit, "rate limited", nil)).Twice()
				c.EXPECT().Complete(mock.Anything, mock.Anything).
					Return(textCompletion("finally", domain.Usage{}), nil).Once()
			},
			testFunc: func(t *testing.T, res QueryResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, "finally", res.Message.Text())
			},
		},
		"retries-exhausted": {
			setExpectations: func(c *domain.MockChatCompletionClient, _ *domain.MockToolRegistry) {
				c.EXPECT().Complete(mock.Anything, mock.Anything).
					Return(domain.Completion{}, domain.NewTransientErr(domain.TransientKind_Timeout, "timed out", nil)).Times(3)
			},
			testFunc: func(t *testing.T, res QueryResult, err error) {
				var queryErr *domain.LLMQueryErr
				require.ErrorAs(t, err, &queryErr)
				assert.Equal(t, "Failed to query LLM: timed out", queryErr.Message())
				assert.True(t, domain.IsTransientErr(err))
				assert.NotEmpty(t, res.RequestID)
			},
		},
		"upstream-error-is-not-retried": {
			setExpectations: func(c *domain.MockChatCompletionClient, _ *domain.MockToolRegistry) {
				c.EXPECT().Complete(mock.Anything, mock.Anything).
					Return(domain.Completion{}, domain.NewUpstreamErr(401, "non-2xx response: 401 Unauthorized")).Once()
			},
			testFunc: func(t *testing.T, _ QueryResult, err error) {
				var upstreamErr *domain.UpstreamErr
				require.ErrorAs(t, err, &upstreamErr)
				assert.Equal(t, 401, upstreamErr.StatusCode)
				assert.Contains(t, err.Error(), "Failed to query LLM")
			},
		},
		"no-choices": {
			setExpectations: func(c *domain.MockChatCompletionClient, _ *domain.MockToolRegistry) {
				c.EXPECT().Complete(mock.Anything, mock.Anything).Return(domain.Completion{}, nil).Once()
			},
			testFunc: func(t *testing.T, _ QueryResult, err error) {
				var queryErr *domain.LLMQueryErr
				require.ErrorAs(t, err, &queryErr)
				assert.Equal(t, "LLM returned no choices", queryErr.Message())
			},
		},
		"unknown-tool-passes-through": {
			opts: []QueryOption{WithTools("missing")},
			setExpectations: func(_ *domain.MockChatCompletionClient, r *domain.MockToolRegistry) {
				r.EXPECT().ToolSchemas([]string{"missing"}).
					Return(nil, domain.NewUnknownToolErr("missing", []string{"echo"})).Once()
			},
			testFunc: func(t *testing.T, _ QueryResult, err error) {
				var unknownErr *domain.UnknownToolErr
				require.ErrorAs(t, err, &unknownErr)
				assert.Equal(t, "Tool 'missing' not found. Available tools: [echo]", err.Error())
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			client := domain.NewMockChatCompletionClient(t)
			registry := domain.NewMockToolRegistry(t)
			executor := domain.NewMockToolExecutor(t)
			if tt.setExpectations != nil {
				tt.setExpectations(client, registry)
			}

			svc := NewLLMServiceImpl(client, registry, executor, fastPolicy(), "gpt-4", discardLogger())
			res, err := svc.QueryOne(context.Background(), userMsg, tt.opts...)
			tt.testFunc(t, res, err)
		})
	}
}

func TestLLMServiceImpl_Query_Validation(t *testing.T) {
	tests := map[string]struct {
		opts        []QueryOption
		expectedMsg string
	}{
		"max-tokens-zero": {
			opts:        []QueryOption{WithMaxTokens(0)},
			expectedMsg: "max_tokens must be positive, got 0",
		},
		"max-tokens-negative": {
			opts:        []QueryOption{WithMaxTokens(-5)},
			expectedMsg: "max_tokens must be positive, got -5",
		},
		"temperature-too-high": {
			opts:        []QueryOption{WithTemperature(2.5)},
			expectedMsg: "temperature must be between 0 and 2, got 2.5",
		},
		"temperature-negative": {
			opts:        []QueryOption{WithTemperature(-0.1)},
			expectedMsg: "temperature must be between 0 and 2, got -0.1",
		},
		"top-p-too-high": {
			opts:        []QueryOption{WithTopP(1.5)},
			expectedMsg: "top_p must be between 0 and 1, got 1.5",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// No expectations: any network call fails the test.
			client := domain.NewMockChatCompletionClient(t)
			svc := NewLLMServiceImpl(client, domain.NewMockToolRegistry(t), domain.NewMockToolExecutor(t), fastPolicy(), "gpt-4", discardLogger())

			res, err := svc.Query(context.Background(), []domain.Message{domain.NewUserMessage("hi")}, tt.opts...)

			var validationErr *domain.ValidationErr
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.expectedMsg, err.Error())
			assert.Empty(t, res.RequestID)
		})
	}
}

func TestLLMServiceImpl_Query_ToolRound(t *testing.T) {
	type echoArgs struct {
		Message string `json:"message"`
	}
	registry := tools.NewRegistry(discardLogger(),
		tools.NewTypedTool("echo", "Echo the message back", func(_ context.Context, args echoArgs) (any, error) {
			return args.Message, nil
		}),
	)
	executor := tools.NewExecutor(registry, discardLogger(), 4)

	client := domain.NewMockChatCompletionClient(t)
	toolCall := domain.ToolCall{ID: "call_1", Function: "echo", Arguments: `{"message":"ok"}`}

	client.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(req domain.CompletionRequest) bool {
		return len(req.Messages) == 1
	})).Return(domain.Completion{
		Choices: []domain.CompletionChoice{{
			Message:      domain.Message{ToolCalls: []domain.ToolCall{toolCall}},
			FinishReason: "tool_calls",
		}},
		Usage: domain.Usage{PromptTokens: 20, CompletionTokens: 4, TotalTokens: 24},
	}, nil).Once()

	var followUp domain.CompletionRequest
	client.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(req domain.CompletionRequest) bool {
		return len(req.Messages) == 3
	})).RunAndReturn(func(_ context.Context, req domain.CompletionRequest) (domain.Completion, error) {
		followUp = req
		return textCompletion("ok", domain.Usage{PromptTokens: 30, CompletionTokens: 1, TotalTokens: 31}), nil
	}).Once()

	svc := NewLLMServiceImpl(client, registry, executor, fastPolicy(), "gpt-4", discardLogger())
	res, err := svc.QueryOne(context.Background(), domain.NewUserMessage("say ok"), WithTools("echo"))
	require.NoError(t, err)

	assert.Equal(t, "ok", res.Message.Text())
	assert.Equal(t, domain.Usage{PromptTokens: 50, CompletionTokens: 5, TotalTokens: 55}, res.Usage)

	require.Len(t, followUp.Messages, 3)
	assert.Empty(t, followUp.Tools)

	assistant := followUp.Messages[1]
	assert.Equal(t, domain.ChatRole_Assistant, assistant.Role)
	assert.Equal(t, []domain.ToolCall{toolCall}, assistant.ToolCalls)

	result := followUp.Messages[2]
	assert.Equal(t, domain.ChatRole_Tool, result.Role)
	assert.Equal(t, common.Ptr("call_1"), result.ToolCallID)
	assert.Equal(t, "echo", result.Name)
	assert.Equal(t, `"ok"`, result.Text())
}

func TestLLMServiceImpl_Query_FollowUpToolCallsAreNotExecuted(t *testing.T) {
	client := domain.NewMockChatCompletionClient(t)
	registry := domain.NewMockToolRegistry(t)
	executor := domain.NewMockToolExecutor(t)

	registry.EXPECT().ToolSchemas([]string{"calculator"}).
		Return([]domain.ToolDefinition{domain.NewFunctionTool("calculator", "Math", nil)}, nil).Once()

	call := domain.ToolCall{ID: "a", Function: "calculator", Arguments: `{}`}
	toolCallCompletion := domain.Completion{
		Choices: []domain.CompletionChoice{{Message: domain.Message{Role: domain.ChatRole_Assistant, ToolCalls: []domain.ToolCall{call}}}},
	}

	var requests []domain.CompletionRequest
	client.EXPECT().Complete(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req domain.CompletionRequest) (domain.Completion, error) {
			requests = append(requests, req)
			return toolCallCompletion, nil
		}).Times(2)
	executor.EXPECT().Execute(mock.Anything, []domain.ToolCall{call}, mock.Anything).
		Return([]domain.Message{domain.NewToolResultMessage("a", "calculator", "2")}).Once()

	svc := NewLLMServiceImpl(client, registry, executor, fastPolicy(), "gpt-4", discardLogger())
	_, err := svc.QueryOne(context.Background(), domain.NewUserMessage("1+1"), WithTools("calculator"), WithJSONResponse())

	var queryErr *domain.LLMQueryErr
	require.ErrorAs(t, err, &queryErr)
	assert.Contains(t, err.Error(), "None content")

	require.Len(t, requests, 2)
	assert.Len(t, requests[0].Tools, 1)
	assert.Empty(t, requests[1].Tools)
}

func TestLLMServiceImpl_Query_ToolBatchUsesRequestID(t *testing.T) {
	client := domain.NewMockChatCompletionClient(t)
	registry := domain.NewMockToolRegistry(t)
	executor := domain.NewMockToolExecutor(t)

	registry.EXPECT().ToolSchemas([]string{"calculator"}).
		Return([]domain.ToolDefinition{domain.NewFunctionTool("calculator", "Math", nil)}, nil).Once()

	calls := []domain.ToolCall{
		{ID: "a", Function: "calculator", Arguments: `{}`},
		{ID: "b", Function: "calculator", Arguments: `{}`},
	}
	client.EXPECT().Complete(mock.Anything, mock.Anything).Return(domain.Completion{
		Choices: []domain.CompletionChoice{{Message: domain.Message{Role: domain.ChatRole_Assistant, ToolCalls: calls}}},
	}, nil).Once()

	var batchID string
	executor.EXPECT().Execute(mock.Anything, calls, mock.Anything).
		RunAndReturn(func(_ context.Context, calls []domain.ToolCall, id string) []domain.Message {
			batchID = id
			return []domain.Message{
				domain.NewToolResultMessage("a", "calculator", "1"),
				domain.NewToolResultMessage("b", "calculator", "2"),
			}
		}).Once()

	// Tool calls of the follow-up answer are not executed.
	client.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(req domain.CompletionRequest) bool {
		return len(req.Messages) == 4 && req.Messages[2].Text() == "1" && req.Messages[3].Text() == "2"
	})).Return(domain.Completion{
		Choices: []domain.CompletionChoice{{Message: domain.Message{
			Role:      domain.ChatRole_Assistant,
			Content:   common.Ptr("3"),
			ToolCalls: calls,
		}}},
	}, nil).Once()

	svc := NewLLMServiceImpl(client, registry, executor, fastPolicy(), "gpt-4", discardLogger())
	res, err := svc.QueryOne(context.Background(), domain.NewUserMessage("1+2"), WithTools("calculator"))
	require.NoError(t, err)
	assert.Equal(t, res.RequestID, batchID)
	assert.Equal(t, "3", res.Message.Text())
}

func TestLLMServiceImpl_Query_ContextCanceled(t *testing.T) {
	client := domain.NewMockChatCompletionClient(t)
	client.EXPECT().Complete(mock.Anything, mock.Anything).Return(domain.Completion{}, context.Canceled).Once()

	svc := NewLLMServiceImpl(client, domain.NewMockToolRegistry(t), domain.NewMockToolExecutor(t), fastPolicy(), "gpt-4", discardLogger())
	_, err := svc.QueryOne(context.Background(), domain.NewUserMessage("hi"))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestInitLLMService_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	i := InitLLMService{
		Client:   domain.NewMockChatCompletionClient(t),
		Registry: domain.NewMockToolRegistry(t),
		Executor: domain.NewMockToolExecutor(t),
		Policy:   fastPolicy(),
		Logger:   discardLogger(),
		Model:    "gpt-4",
	}

	_, err := i.Initialize(context.Background())
	require.NoError(t, err)

	svc, err := depend.Resolve[LLMService]()
	require.NoError(t, err)
	assert.NotNil(t, svc)
}
