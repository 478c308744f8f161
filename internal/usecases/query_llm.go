package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cleitonmarx/moneypilot/internal/common"
	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/moneypilot/internal/retry"
	"github.com/cleitonmarx/moneypilot/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DEFAULT_MAX_TOKENS = 250

	LLM_REQUEST_PREFIX = "llm"
)

// QueryParams holds the optional parameters of an LLM query.
type QueryParams struct {
	Model        string
	JSONResponse bool
	ToolNames    []string
	MaxTokens    int
	Temperature  *float64
	TopP         *float64
	Extra        map[string]any
}

// QueryOption defines a functional option for configuring QueryParams.
type QueryOption func(*QueryParams)

// WithJSONResponse asks the model for a JSON object and parses it.
func WithJSONResponse() QueryOption {
	return func(p *QueryParams) {
		p.JSONResponse = true
	}
}

// WithTools offers the named registry tools to the model.
func WithTools(names ...string) QueryOption {
	return func(p *QueryParams) {
		p.ToolNames = append(p.ToolNames, names...)
	}
}

func WithMaxTokens(maxTokens int) QueryOption {
	return func(p *QueryParams) {
		p.MaxTokens = maxTokens
	}
}

func WithTemperature(temperature float64) QueryOption {
	return func(p *QueryParams) {
		p.Temperature = &temperature
	}
}

func WithTopP(topP float64) QueryOption {
	return func(p *QueryParams) {
		p.TopP = &topP
	}
}

// WithModel overrides the configured model for one query.
func WithModel(model string) QueryOption {
	return func(p *QueryParams) {
		p.Model = model
	}
}

// WithExtraParams adds provider specific request body fields.
func WithExtraParams(extra map[string]any) QueryOption {
	return func(p *QueryParams) {
		if p.Extra == nil {
			p.Extra = map[string]any{}
		}
		for k, v := range extra {
			p.Extra[k] = v
		}
	}
}

func (p QueryParams) validate() error {
	if p.MaxTokens <= 0 {
		return domain.NewValidationErr(fmt.Sprintf("max_tokens must be positive, got %d", p.MaxTokens))
	}
	if p.Temperature != nil && (*p.Temperature < 0 || *p.Temperature > 2) {
		return domain.NewValidationErr(fmt.Sprintf("temperature must be between 0 and 2, got %v", *p.Temperature))
	}
	if p.TopP != nil && (*p.TopP < 0 || *p.TopP > 1) {
		return domain.NewValidationErr(fmt.Sprintf("top_p must be between 0 and 1, got %v", *p.TopP))
	}
	return nil
}

// QueryResult is the outcome of an LLM query. JSON is set only in JSON mode.
type QueryResult struct {
	RequestID string
	Message   domain.Message
	JSON      any
	Usage     domain.Usage
}

// LLMService defines the interface for the LLM query use case
type LLMService interface {
	// Query sends the conversation to the model, running one tool round when
	// the model asks for tools.
	Query(ctx context.Context, messages []domain.Message, opts ...QueryOption) (QueryResult, error)
	// QueryOne sends a single message.
	QueryOne(ctx context.Context, message domain.Message, opts ...QueryOption) (QueryResult, error)
}

// LLMServiceImpl is the implementation of the LLMService use case
type LLMServiceImpl struct {
	client   domain.ChatCompletionClient
	registry domain.ToolRegistry
	executor domain.ToolExecutor
	policy   retry.Policy
	model    string
	logger   *slog.Logger
}

// NewLLMServiceImpl creates a new instance of LLMServiceImpl
func NewLLMServiceImpl(
	client domain.ChatCompletionClient,
	registry domain.ToolRegistry,
	executor domain.ToolExecutor,
	policy retry.Policy,
	model string,
	logger *slog.Logger,
) LLMServiceImpl {
	return LLMServiceImpl{
		client:   client,
		registry: registry,
		executor: executor,
		policy:   policy,
		model:    model,
		logger:   logger,
	}
}

// QueryOne sends a single message.
func (s LLMServiceImpl) QueryOne(ctx context.Context, message domain.Message, opts ...QueryOption) (QueryResult, error) {
	return s.Query(ctx, []domain.Message{message}, opts...)
}

// Query sends the conversation to the model.
func (s LLMServiceImpl) Query(ctx context.Context, messages []domain.Message, opts ...QueryOption) (QueryResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	params := QueryParams{
		Model:     s.model,
		MaxTokens: DEFAULT_MAX_TOKENS,
	}
	for _, opt := range opts {
		opt(&params)
	}

	if err := params.validate(); telemetry.RecordErrorAndStatus(span, err) {
		return QueryResult{}, err
	}

	requestID := fmt.Sprintf("%s_%s", LLM_REQUEST_PREFIX, uuid.NewString())
	span.SetAttributes(attribute.String("request_id", requestID))

	result, err := s.query(spanCtx, requestID, messages, params)
	if err != nil {
		err = wrapQueryErr(err)
		telemetry.RecordErrorAndStatus(span, err)
		s.logger.ErrorContext(spanCtx, "LLM query failed",
			"request_id", requestID,
			"error", err,
		)
		return QueryResult{RequestID: requestID}, err
	}

	s.logger.InfoContext(spanCtx, "LLM query completed",
		"request_id", requestID,
		"model", params.Model,
		"prompt_tokens", result.Usage.PromptTokens,
		"completion_tokens", result.Usage.CompletionTokens,
	)
	return result, nil
}

func (s LLMServiceImpl) query(ctx context.Context, requestID string, messages []domain.Message, params QueryParams) (QueryResult, error) {
	req := domain.CompletionRequest{
		Model:        params.Model,
		Messages:     append([]domain.Message(nil), messages...),
		MaxTokens:    common.Ptr(params.MaxTokens),
		Temperature:  params.Temperature,
		TopP:         params.TopP,
		JSONResponse: params.JSONResponse,
		Extra:        params.Extra,
	}

	if len(params.ToolNames) > 0 {
		tools, err := s.registry.ToolSchemas(params.ToolNames)
		if err != nil {
			return QueryResult{}, err
		}
		req.Tools = tools
	}

	completion, err := s.complete(ctx, req)
	if err != nil {
		return QueryResult{}, err
	}
	usage := completion.Usage

	message, ok := completion.PrimaryMessage()
	if !ok {
		return QueryResult{}, domain.NewLLMQueryErr("LLM returned no choices", map[string]any{"request_id": requestID}, nil)
	}

	if message.HasToolCalls() {
		if message.Role == "" {
			message.Role = domain.ChatRole_Assistant
		}
		results := s.executor.Execute(ctx, message.ToolCalls, requestID)
		req.Messages = append(req.Messages, message)
		req.Messages = append(req.Messages, results...)

		s.logger.DebugContext(ctx, "Tool round executed",
			"request_id", requestID,
			"tool_calls", len(message.ToolCalls),
		)

		// single tool round: the follow-up must answer, not call tools again
		req.Tools = nil
		completion, err = s.complete(ctx, req)
		if err != nil {
			return QueryResult{}, err
		}
		usage = usage.Add(completion.Usage)

		message, ok = completion.PrimaryMessage()
		if !ok {
			return QueryResult{}, domain.NewLLMQueryErr("LLM returned no choices", map[string]any{"request_id": requestID}, nil)
		}
	}

	result := QueryResult{
		RequestID: requestID,
		Message:   message,
		Usage:     usage,
	}

	if params.JSONResponse {
		data, err := parseJSONContent(message)
		if err != nil {
			return QueryResult{}, err
		}
		result.JSON = data
	}

	return result, nil
}

// complete sends one request through the retry policy.
func (s LLMServiceImpl) complete(ctx context.Context, req domain.CompletionRequest) (domain.Completion, error) {
	completion, err := retry.Do(ctx, s.policy, func(ctx context.Context) (domain.Completion, error) {
		return s.client.Complete(ctx, req)
	})
	if err != nil {
		return domain.Completion{}, err
	}
	RecordLLMTokensUsed(ctx, "query", completion.Usage)
	return completion, nil
}

func parseJSONContent(message domain.Message) (any, error) {
	if message.Content == nil {
		return nil, domain.NewLLMQueryErr("LLM returned None content for JSON response", nil, nil)
	}
	if message.IsBlank() {
		return nil, domain.NewLLMQueryErr("LLM returned empty content for JSON response", nil, nil)
	}
	return common.CleanJSONResponse(*message.Content)
}

// wrapQueryErr keeps the errors callers act on and wraps everything else.
func wrapQueryErr(err error) error {
	var (
		validationErr  *domain.ValidationErr
		unknownToolErr *domain.UnknownToolErr
		queryErr       *domain.LLMQueryErr
	)
	if errors.As(err, &validationErr) || errors.As(err, &unknownToolErr) || errors.As(err, &queryErr) {
		return err
	}
	return domain.NewLLMQueryErr(fmt.Sprintf("Failed to query LLM: %v", err), nil, err)
}

// InitLLMService is the initializer for the LLMService use case
type InitLLMService struct {
	Client   domain.ChatCompletionClient `resolve:""`
	Registry domain.ToolRegistry         `resolve:""`
	Executor domain.ToolExecutor         `resolve:""`
	Policy   retry.Policy                `resolve:""`
	Logger   *slog.Logger                `resolve:""`
	Model    string                      `config:"LLM_MODEL_NAME" default:"gpt-4"`
}

// Initialize registers the LLMService use case in the dependency container
func (i InitLLMService) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[LLMService](NewLLMServiceImpl(
		i.Client,
		i.Registry,
		i.Executor,
		i.Policy,
		i.Model,
		i.Logger,
	))
	return ctx, nil
}
