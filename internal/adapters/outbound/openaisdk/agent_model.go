// Package openaisdk implements the agent model on top of the official OpenAI SDK.
package openaisdk

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/cleitonmarx/moneypilot/internal/adapters/outbound/config"
	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/moneypilot/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"go.opentelemetry.io/otel/attribute"
)

// AgentModel implements domain.AgentModel with the OpenAI chat completions API.
type AgentModel struct {
	client openai.Client
}

// NewAgentModel creates a new AgentModel. Retries are left to the caller.
func NewAgentModel(baseURL, apiKey string, httpClient *http.Client) AgentModel {
	opts := []option.RequestOption{
		option.WithBaseURL(strings.TrimRight(baseURL, "/") + "/"),
		option.WithMaxRetries(0),
	}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	return AgentModel{client: openai.NewClient(opts...)}
}

// Complete implements domain.ChatCompletionClient.
func (m AgentModel) Complete(ctx context.Context, req domain.CompletionRequest) (domain.Completion, error) {
	spanCtx, span := telemetry.StartWithAttributes(ctx, attribute.String("llm.model", req.Model))
	defer span.End()

	resp, err := m.client.Chat.Completions.New(spanCtx, toParams(req), extraOptions(req)...)
	if err != nil {
		err = classify(err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Completion{}, err
	}
	return fromChatCompletion(resp), nil
}

// CompleteStream implements domain.AgentModel. Tool call fragments are
// accumulated by index and returned with the final completion.
func (m AgentModel) CompleteStream(ctx context.Context, req domain.CompletionRequest, onDelta domain.StreamDeltaCallback) (domain.Completion, error) {
	spanCtx, span := telemetry.StartWithAttributes(ctx, attribute.String("llm.model", req.Model))
	defer span.End()

	params := toParams(req)
	params.StreamOptions = openai.ChatCompletionStreamOptionsParam{IncludeUsage: openai.Bool(true)}

	stream := m.client.Chat.Completions.NewStreaming(spanCtx, params, extraOptions(req)...)
	defer stream.Close() //nolint:errcheck

	var (
		content      strings.Builder
		finishReason string
		usage        domain.Usage
		calls        = map[int]*domain.ToolCall{}
		completionID string
		model        string
	)

	for stream.Next() {
		chunk := stream.Current()
		completionID, model = chunk.ID, chunk.Model
		if chunk.Usage.TotalTokens > 0 {
			usage = domain.Usage{
				PromptTokens:     int(chunk.Usage.PromptTokens),
				CompletionTokens: int(chunk.Usage.CompletionTokens),
				TotalTokens:      int(chunk.Usage.TotalTokens),
			}
		}
		if len(chunk.Choices) == 0 {
			continue
		}

		choice := chunk.Choices[0]
		if choice.FinishReason != "" {
			finishReason = choice.FinishReason
		}
		if delta := choice.Delta.Content; delta != "" {
			content.WriteString(delta)
			if err := onDelta(delta); err != nil {
				telemetry.RecordErrorAndStatus(span, err)
				return domain.Completion{}, err
			}
		}
		for _, tc := range choice.Delta.ToolCalls {
			call, ok := calls[int(tc.Index)]
			if !ok {
				call = &domain.ToolCall{}
				calls[int(tc.Index)] = call
			}
			if tc.ID != "" {
				call.ID = tc.ID
			}
			call.Function += tc.Function.Name
			call.Arguments += tc.Function.Arguments
		}
	}
	if err := stream.Err(); err != nil {
		err = classify(err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Completion{}, err
	}

	msg := domain.NewAssistantMessage(content.String())
	for i := range len(calls) {
		if call, ok := calls[i]; ok {
			msg.ToolCalls = append(msg.ToolCalls, *call)
		}
	}

	return domain.Completion{
		ID:    completionID,
		Model: model,
		Choices: []domain.CompletionChoice{{
			FinishReason: finishReason,
			Message:      msg,
		}},
		Usage: usage,
	}, nil
}

func toParams(req domain.CompletionRequest) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(req.Model),
		Messages: toMessageParams(req.Messages),
	}
	if req.MaxTokens != nil {
		params.MaxTokens = openai.Int(int64(*req.MaxTokens))
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	if req.TopP != nil {
		params.TopP = openai.Float(*req.TopP)
	}

	for _, tool := range req.Tools {
		params.Tools = append(params.Tools, openai.ChatCompletionToolUnionParam{
			OfFunction: &openai.ChatCompletionFunctionToolParam{
				Function: shared.FunctionDefinitionParam{
					Name:        tool.Function.Name,
					Description: openai.String(tool.Function.Description),
					Parameters:  shared.FunctionParameters(tool.Function.Parameters.JSONSchema()),
				},
			},
		})
	}

	switch {
	case req.JSONResponse && req.OutputSchema != nil:
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "output",
					Schema: req.OutputSchema,
				},
			},
		}
	case req.JSONResponse:
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}
	return params
}

func extraOptions(req domain.CompletionRequest) []option.RequestOption {
	opts := make([]option.RequestOption, 0, len(req.Extra))
	for key, value := range req.Extra {
		opts = append(opts, option.WithJSONSet(key, value))
	}
	return opts
}

func toMessageParams(msgs []domain.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case domain.ChatRole_System:
			out = append(out, openai.ChatCompletionMessageParamUnion{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{OfString: openai.String(m.Text())},
				},
			})
		case domain.ChatRole_User:
			out = append(out, openai.ChatCompletionMessageParamUnion{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{OfString: openai.String(m.Text())},
				},
			})
		case domain.ChatRole_Assistant:
			asst := &openai.ChatCompletionAssistantMessageParam{}
			if m.Content != nil {
				asst.Content = openai.ChatCompletionAssistantMessageParamContentUnion{OfString: openai.String(*m.Content)}
			}
			for _, tc := range m.ToolCalls {
				asst.ToolCalls = append(asst.ToolCalls, openai.ChatCompletionMessageToolCallUnionParam{
					OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
						ID: tc.ID,
						Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{
							Name:      tc.Function,
							Arguments: tc.Arguments,
						},
					},
				})
			}
			out = append(out, openai.ChatCompletionMessageParamUnion{OfAssistant: asst})
		case domain.ChatRole_Tool:
			callID := ""
			if m.ToolCallID != nil {
				callID = *m.ToolCallID
			}
			out = append(out, openai.ChatCompletionMessageParamUnion{
				OfTool: &openai.ChatCompletionToolMessageParam{
					ToolCallID: callID,
					Content:    openai.ChatCompletionToolMessageParamContentUnion{OfString: openai.String(m.Text())},
				},
			})
		}
	}
	return out
}

func fromChatCompletion(resp *openai.ChatCompletion) domain.Completion {
	completion := domain.Completion{
		ID:    resp.ID,
		Model: resp.Model,
		Usage: domain.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}
	for _, choice := range resp.Choices {
		msg := domain.NewAssistantMessage(choice.Message.Content)
		for _, tc := range choice.Message.ToolCalls {
			if tc.Type != "function" {
				continue
			}
			fn := tc.AsFunction()
			msg.ToolCalls = append(msg.ToolCalls, domain.ToolCall{
				ID:        fn.ID,
				Function:  fn.Function.Name,
				Arguments: fn.Function.Arguments,
			})
		}
		completion.Choices = append(completion.Choices, domain.CompletionChoice{
			Index:        int(choice.Index),
			FinishReason: choice.FinishReason,
			Message:      msg,
		})
	}
	return completion
}

// classify maps SDK errors to the domain error types used by the retry policy.
func classify(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests:
			return domain.NewTransientErr(domain.TransientKind_RateLimit, fmt.Sprintf("LLM API rate limit exceeded: %v", err), err)
		case http.StatusRequestTimeout:
			return domain.NewTransientErr(domain.TransientKind_Timeout, fmt.Sprintf("LLM API request timed out: %v", err), err)
		default:
			return domain.NewUpstreamErr(apiErr.StatusCode, err.Error())
		}
	}

	if errors.Is(err, context.Canceled) {
		return err
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return domain.NewTransientErr(domain.TransientKind_Timeout, fmt.Sprintf("LLM API request timed out: %v", err), err)
	}
	if errors.As(err, &netErr) {
		return domain.NewTransientErr(domain.TransientKind_Connection, fmt.Sprintf("LLM API connection failed: %v", err), err)
	}
	return err
}

var _ domain.AgentModel = AgentModel{}

// InitAgentModel registers the AgentModel in the dependency container.
type InitAgentModel struct {
	HttpClient *http.Client    `resolve:""`
	Settings   config.Settings `resolve:""`
}

// Initialize registers domain.AgentModel.
func (i InitAgentModel) Initialize(ctx context.Context) (context.Context, error) {
	hc := *i.HttpClient
	hc.Timeout = i.Settings.LLMTimeout
	depend.Register[domain.AgentModel](NewAgentModel(i.Settings.LLMBaseURL, i.Settings.LLMAPIKey, &hc))
	return ctx, nil
}
