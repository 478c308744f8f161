package llmapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cleitonmarx/moneypilot/internal/adapters/outbound/config"
	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/moneypilot/internal/retry"
	"github.com/cleitonmarx/moneypilot/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// CompletionClient adapts Client to domain.ChatCompletionClient.
type CompletionClient struct {
	client Client
}

// NewCompletionClient creates a new CompletionClient.
func NewCompletionClient(client Client) CompletionClient {
	return CompletionClient{client: client}
}

// Complete implements domain.ChatCompletionClient.
func (cc CompletionClient) Complete(ctx context.Context, req domain.CompletionRequest) (domain.Completion, error) {
	spanCtx, span := telemetry.StartWithAttributes(ctx,
		attribute.String("llm.model", req.Model),
		attribute.Int("llm.messages", len(req.Messages)),
		attribute.Int("llm.tools", len(req.Tools)),
	)
	defer span.End()

	resp, err := cc.client.ChatCompletions(spanCtx, toChatRequest(req))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Completion{}, err
	}

	completion := fromChatResponse(resp)
	span.SetAttributes(attribute.Int("llm.total_tokens", completion.Usage.TotalTokens))
	return completion, nil
}

func toChatRequest(req domain.CompletionRequest) ChatRequest {
	out := ChatRequest{
		Model:       req.Model,
		Messages:    make([]ChatMessage, len(req.Messages)),
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		Extra:       req.Extra,
	}

	for i, msg := range req.Messages {
		out.Messages[i] = toChatMessage(msg)
	}

	for _, tool := range req.Tools {
		out.Tools = append(out.Tools, Tool{
			Type: tool.Type,
			Function: ToolFunction{
				Name:        tool.Function.Name,
				Description: tool.Function.Description,
				Parameters:  tool.Function.Parameters.JSONSchema(),
			},
		})
	}

	switch {
	case req.JSONResponse && req.OutputSchema != nil:
		out.ResponseFormat = &ResponseFormat{
			Type:       "json_schema",
			JSONSchema: &JSONSchema{Name: "output", Schema: req.OutputSchema},
		}
	case req.JSONResponse:
		out.ResponseFormat = &ResponseFormat{Type: "json_object"}
	}
	return out
}

func toChatMessage(msg domain.Message) ChatMessage {
	out := ChatMessage{
		Role:       string(msg.Role),
		Content:    msg.Content,
		Name:       msg.Name,
		ToolCallID: msg.ToolCallID,
	}
	for _, call := range msg.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, ToolCall{
			ID:   call.ID,
			Type: "function",
			Function: ToolCallFunction{
				Name:      call.Function,
				Arguments: call.Arguments,
			},
		})
	}
	return out
}

func fromChatResponse(resp *ChatResponse) domain.Completion {
	completion := domain.Completion{
		ID:      resp.ID,
		Model:   resp.Model,
		Choices: make([]domain.CompletionChoice, len(resp.Choices)),
	}

	for i, choice := range resp.Choices {
		msg := domain.Message{
			Role:    domain.ChatRole(choice.Message.Role),
			Content: choice.Message.Content,
		}
		if msg.Role == "" {
			msg.Role = domain.ChatRole_Assistant
		}
		for _, call := range choice.Message.ToolCalls {
			msg.ToolCalls = append(msg.ToolCalls, domain.ToolCall{
				ID:        call.ID,
				Function:  call.Function.Name,
				Arguments: call.Function.Arguments,
			})
		}
		completion.Choices[i] = domain.CompletionChoice{
			Index:        choice.Index,
			FinishReason: choice.FinishReason,
			Message:      msg,
		}
	}

	if resp.Usage != nil {
		completion.Usage = domain.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return completion
}

// NewRetryPolicy returns the retry policy for LLM requests: transient errors
// are retried up to maxRetries attempts.
func NewRetryPolicy(maxRetries int, logger *slog.Logger) retry.Policy {
	policy := retry.DefaultPolicy(domain.IsTransientErr, logger)
	if maxRetries > 0 {
		policy.MaxAttempts = maxRetries
	}
	return policy
}

// InitCompletionClient registers the CompletionClient and the LLM retry policy.
type InitCompletionClient struct {
	HttpClient *http.Client    `resolve:""`
	Logger     *slog.Logger    `resolve:""`
	Settings   config.Settings `resolve:""`
}

// Initialize registers domain.ChatCompletionClient and retry.Policy in the dependency container.
func (i InitCompletionClient) Initialize(ctx context.Context) (context.Context, error) {
	client := NewClient(i.Settings.LLMBaseURL, i.Settings.LLMAPIKey, i.HttpClient, i.Settings.LLMTimeout)
	depend.Register[domain.ChatCompletionClient](NewCompletionClient(client))
	depend.Register(NewRetryPolicy(i.Settings.LLMMaxRetries, i.Logger))
	return ctx, nil
}
