package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/cleitonmarx/moneypilot/internal/common"
	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/moneypilot/internal/retry"
	"github.com/cleitonmarx/moneypilot/internal/telemetry"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/google/uuid"
	"github.com/toon-format/toon-go"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DEFAULT_AGENT_NAME      = "agent"
	DEFAULT_AGENT_MAX_STEPS = 5

	AGENT_RUN_PREFIX = "agent"
)

// AgentConfig holds the settings shared by every run of an agent.
type AgentConfig struct {
	Name         string
	SystemPrompt string
	Model        string
	ToolNames    []string
	MaxSteps     int
	MaxTokens    *int
	Temperature  *float64
	Policy       retry.Policy
}

// AgentOption defines a functional option for configuring AgentConfig.
type AgentOption func(*AgentConfig)

func WithAgentName(name string) AgentOption {
	return func(c *AgentConfig) {
		c.Name = name
	}
}

// WithSystemPrompt sets the system prompt template. {name} placeholders are
// replaced by the run parameters.
func WithSystemPrompt(prompt string) AgentOption {
	return func(c *AgentConfig) {
		c.SystemPrompt = prompt
	}
}

func WithAgentModel(model string) AgentOption {
	return func(c *AgentConfig) {
		c.Model = model
	}
}

// WithAgentTools replaces the registry tools offered to the model.
func WithAgentTools(names ...string) AgentOption {
	return func(c *AgentConfig) {
		c.ToolNames = names
	}
}

func WithMaxSteps(steps int) AgentOption {
	return func(c *AgentConfig) {
		c.MaxSteps = steps
	}
}

func WithAgentMaxTokens(maxTokens int) AgentOption {
	return func(c *AgentConfig) {
		c.MaxTokens = &maxTokens
	}
}

func WithAgentTemperature(temperature float64) AgentOption {
	return func(c *AgentConfig) {
		c.Temperature = &temperature
	}
}

// WithRetryPolicy retries non-streamed model calls with the given policy.
func WithRetryPolicy(policy retry.Policy) AgentOption {
	return func(c *AgentConfig) {
		c.Policy = policy
	}
}

// AgentService is a factory of agents producing outputs of type T.
// A string T yields the plain assistant text; any other T is decoded from
// the JSON the model is asked to produce.
type AgentService[T any] struct {
	model    domain.AgentModel
	registry domain.ToolRegistry
	executor domain.ToolExecutor
	logger   *slog.Logger
	config   AgentConfig
}

// NewAgentService creates a new AgentService.
func NewAgentService[T any](
	model domain.AgentModel,
	registry domain.ToolRegistry,
	executor domain.ToolExecutor,
	logger *slog.Logger,
	opts ...AgentOption,
) *AgentService[T] {
	cfg := AgentConfig{
		Name:     DEFAULT_AGENT_NAME,
		MaxSteps: DEFAULT_AGENT_MAX_STEPS,
		Policy:   retry.Policy{MaxAttempts: 1},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &AgentService[T]{
		model:    model,
		registry: registry,
		executor: executor,
		logger:   logger,
		config:   cfg,
	}
}

// Config returns the agent configuration.
func (s *AgentService[T]) Config() AgentConfig {
	return s.config
}

// CreateAgent returns a fresh agent. Overrides apply to this agent only.
func (s *AgentService[T]) CreateAgent(overrides ...AgentOption) (*Agent[T], error) {
	cfg := s.config
	cfg.ToolNames = append([]string(nil), s.config.ToolNames...)
	for _, opt := range overrides {
		opt(&cfg)
	}
	if cfg.MaxSteps < 1 {
		return nil, domain.NewValidationErr(fmt.Sprintf("max_steps must be positive, got %d", cfg.MaxSteps))
	}

	agent := &Agent[T]{
		model:    s.model,
		executor: s.executor,
		logger:   s.logger,
		config:   cfg,
		textOut:  isTextOutput[T](),
	}

	if len(cfg.ToolNames) > 0 {
		tools, err := s.registry.ToolSchemas(cfg.ToolNames)
		if err != nil {
			return nil, err
		}
		agent.tools = tools
	}

	if !agent.textOut {
		schema, err := outputSchema[T]()
		if err != nil {
			return nil, fmt.Errorf("failed to build output schema: %w", err)
		}
		agent.outputSchema = schema
	}
	return agent, nil
}

// Run creates an agent and runs it once.
func (s *AgentService[T]) Run(ctx context.Context, prompt string, runCtx map[string]any, params map[string]string) (T, error) {
	agent, err := s.CreateAgent()
	if err != nil {
		var zero T
		return zero, s.agentErr(ctx, "Agent execution failed", err)
	}
	return agent.Run(ctx, prompt, runCtx, params)
}

// RunStream creates an agent and streams its answer to onChunk.
func (s *AgentService[T]) RunStream(ctx context.Context, prompt string, runCtx map[string]any, params map[string]string, onChunk domain.StreamDeltaCallback) error {
	agent, err := s.CreateAgent()
	if err != nil {
		return s.agentErr(ctx, "Agent streaming failed", err)
	}
	return agent.RunStream(ctx, prompt, runCtx, params, onChunk)
}

func (s *AgentService[T]) agentErr(ctx context.Context, msg string, err error) error {
	s.logger.ErrorContext(ctx, msg, "agent", s.config.Name, "error", err)
	return domain.NewAgentErr(fmt.Sprintf("%s: %v", msg, err), nil, err)
}

// Agent is a single-use agent created by AgentService.
type Agent[T any] struct {
	model        domain.AgentModel
	executor     domain.ToolExecutor
	logger       *slog.Logger
	config       AgentConfig
	tools        []domain.ToolDefinition
	outputSchema map[string]any
	textOut      bool
}

// stepFunc sends one model request.
type stepFunc func(ctx context.Context, req domain.CompletionRequest) (domain.Completion, error)

type agentRun struct {
	id     string
	steps  int
	usage  domain.Usage
	answer domain.Message
}

// Run answers prompt, calling tools until the model replies without tool
// calls or the step limit is reached.
func (a *Agent[T]) Run(ctx context.Context, prompt string, runCtx map[string]any, params map[string]string) (T, error) {
	var zero T

	spanCtx, span := telemetry.StartWithAttributes(ctx, attribute.String("agent.name", a.config.Name))
	defer span.End()

	run, err := a.loop(spanCtx, prompt, runCtx, params, func(ctx context.Context, req domain.CompletionRequest) (domain.Completion, error) {
		return retry.Do(ctx, a.config.Policy, func(ctx context.Context) (domain.Completion, error) {
			return a.model.Complete(ctx, req)
		})
	})
	if err == nil {
		var out T
		out, err = decodeOutput[T](run.answer)
		if err == nil {
			a.logCompleted(spanCtx, run, prompt, runCtx, params)
			return out, nil
		}
	}

	telemetry.RecordErrorAndStatus(span, err)
	return zero, a.fail(spanCtx, "Agent execution failed", run, err)
}

// RunStream is Run with the assistant text forwarded to onChunk as it
// arrives. Streamed calls are not retried.
func (a *Agent[T]) RunStream(ctx context.Context, prompt string, runCtx map[string]any, params map[string]string, onChunk domain.StreamDeltaCallback) error {
	spanCtx, span := telemetry.StartWithAttributes(ctx, attribute.String("agent.name", a.config.Name))
	defer span.End()

	run, err := a.loop(spanCtx, prompt, runCtx, params, func(ctx context.Context, req domain.CompletionRequest) (domain.Completion, error) {
		return a.model.CompleteStream(ctx, req, onChunk)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return a.fail(spanCtx, "Agent streaming failed", run, err)
	}

	a.logCompleted(spanCtx, run, prompt, runCtx, params)
	return nil
}

func (a *Agent[T]) loop(ctx context.Context, prompt string, runCtx map[string]any, params map[string]string, step stepFunc) (agentRun, error) {
	run := agentRun{id: fmt.Sprintf("%s_%s", AGENT_RUN_PREFIX, uuid.NewString())}

	systemPrompt, err := renderSystemPrompt(a.config.SystemPrompt, params, runCtx)
	if err != nil {
		return run, err
	}

	messages := []domain.Message{}
	if systemPrompt != "" {
		messages = append(messages, domain.NewSystemMessage(systemPrompt))
	}
	messages = append(messages, domain.NewUserMessage(prompt))

	for run.steps < a.config.MaxSteps {
		run.steps++

		completion, err := step(ctx, a.request(messages))
		if err != nil {
			return run, err
		}
		run.usage = run.usage.Add(completion.Usage)
		RecordLLMTokensUsed(ctx, "agent", completion.Usage)

		message, ok := completion.PrimaryMessage()
		if !ok {
			return run, errors.New("model returned no choices")
		}
		if !message.HasToolCalls() {
			run.answer = message
			return run, nil
		}

		if message.Role == "" {
			message.Role = domain.ChatRole_Assistant
		}
		messages = append(messages, message)
		messages = append(messages, a.executor.Execute(ctx, message.ToolCalls, run.id)...)
	}

	return run, fmt.Errorf("no final answer after %d steps", a.config.MaxSteps)
}

func (a *Agent[T]) request(messages []domain.Message) domain.CompletionRequest {
	return domain.CompletionRequest{
		Model:        a.config.Model,
		Messages:     messages,
		MaxTokens:    a.config.MaxTokens,
		Temperature:  a.config.Temperature,
		Tools:        a.tools,
		JSONResponse: !a.textOut,
		OutputSchema: a.outputSchema,
	}
}

func (a *Agent[T]) logCompleted(ctx context.Context, run agentRun, prompt string, runCtx map[string]any, params map[string]string) {
	a.logger.InfoContext(ctx, "Agent execution completed",
		"agent", a.config.Name,
		"run_id", run.id,
		"steps", run.steps,
		"prompt_length", len(prompt),
		"has_context", len(runCtx) > 0,
		"has_parameters", len(params) > 0,
		"total_tokens", run.usage.TotalTokens,
	)
}

func (a *Agent[T]) fail(ctx context.Context, msg string, run agentRun, err error) error {
	a.logger.ErrorContext(ctx, msg,
		"agent", a.config.Name,
		"run_id", run.id,
		"steps", run.steps,
		"error", err,
	)
	return domain.NewAgentErr(
		fmt.Sprintf("%s: %v", msg, err),
		map[string]any{"agent": a.config.Name, "run_id": run.id},
		err,
	)
}

// renderSystemPrompt fills {name} placeholders from params and appends the
// run context encoded as TOON. Placeholders without a parameter are kept.
func renderSystemPrompt(template string, params map[string]string, runCtx map[string]any) (string, error) {
	prompt := template
	if len(params) > 0 {
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		pairs := make([]string, 0, 2*len(keys))
		for _, k := range keys {
			pairs = append(pairs, "{"+k+"}", params[k])
		}
		prompt = strings.NewReplacer(pairs...).Replace(prompt)
	}

	if len(runCtx) > 0 {
		encoded, err := toon.MarshalString(runCtx, toon.WithLengthMarkers(true))
		if err != nil {
			return "", fmt.Errorf("failed to encode run context: %w", err)
		}
		prompt = strings.TrimRight(prompt, "\n") + "\n\nContext:\n" + encoded
	}
	return strings.TrimSpace(prompt), nil
}

func isTextOutput[T any]() bool {
	var zero T
	_, ok := any(zero).(string)
	return ok
}

func outputSchema[T any]() (map[string]any, error) {
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeOutput converts the final answer into T.
func decodeOutput[T any](message domain.Message) (T, error) {
	var out T
	if text, ok := any(&out).(*string); ok {
		*text = message.Text()
		return out, nil
	}

	if message.IsBlank() {
		return out, errors.New("model returned an empty answer")
	}
	content := message.Text()
	if err := json.Unmarshal([]byte(content), &out); err == nil {
		return out, nil
	}

	cleaned, err := common.CleanJSONResponse(content)
	if err != nil {
		return out, err
	}
	raw, err := json.Marshal(cleaned)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("failed to decode output: %w", err)
	}
	return out, nil
}
