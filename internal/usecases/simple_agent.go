package usecases

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/moneypilot/internal/retry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/agents.yml
var agentPrompts embed.FS

// AgentPrompt is one entry of the embedded agent catalogue.
type AgentPrompt struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	SystemPrompt string   `yaml:"system_prompt"`
	Tools        []string `yaml:"tools"`
	MaxSteps     int      `yaml:"max_steps"`
}

// LoadAgentPrompts decodes the embedded agent catalogue.
func LoadAgentPrompts() ([]AgentPrompt, error) {
	file, err := agentPrompts.Open("prompts/agents.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open agent prompts: %w", err)
	}
	defer file.Close() //nolint:errcheck

	prompts := []AgentPrompt{}
	if err := yaml.NewDecoder(file).Decode(&prompts); err != nil {
		return nil, fmt.Errorf("failed to decode agent prompts: %w", err)
	}
	return prompts, nil
}

// SimpleAgent is a text agent configured from a catalogue prompt.
type SimpleAgent struct {
	*AgentService[string]
	prompt AgentPrompt
}

// NewSimpleAgent builds the agent of the given catalogue prompt. Options are
// applied after the catalogue settings.
func NewSimpleAgent(
	prompt AgentPrompt,
	model domain.AgentModel,
	registry domain.ToolRegistry,
	executor domain.ToolExecutor,
	logger *slog.Logger,
	opts ...AgentOption,
) *SimpleAgent {
	base := []AgentOption{
		WithAgentName(prompt.Name),
		WithSystemPrompt(prompt.SystemPrompt),
		WithAgentTools(prompt.Tools...),
	}
	if prompt.MaxSteps > 0 {
		base = append(base, WithMaxSteps(prompt.MaxSteps))
	}
	return &SimpleAgent{
		AgentService: NewAgentService[string](model, registry, executor, logger, append(base, opts...)...),
		prompt:       prompt,
	}
}

// Prompt returns the catalogue entry of the agent.
func (a *SimpleAgent) Prompt() AgentPrompt {
	return a.prompt
}

// RunAgentRequest holds the input of one agent run.
type RunAgentRequest struct {
	Agent      string
	Prompt     string
	Context    map[string]any
	Parameters map[string]string
}

// RunAgent defines the interface for running catalogue agents
type RunAgent interface {
	// Execute runs the named agent and returns its answer.
	Execute(ctx context.Context, req RunAgentRequest) (string, error)
	// Stream runs the named agent, forwarding the answer text to onChunk.
	Stream(ctx context.Context, req RunAgentRequest, onChunk domain.StreamDeltaCallback) error
	// Agents lists the catalogue entries sorted by name.
	Agents() []AgentPrompt
}

// RunAgentImpl is the implementation of the RunAgent use case
type RunAgentImpl struct {
	agents   map[string]*SimpleAgent
	defaults map[string]string
}

// NewRunAgentImpl creates a new instance of RunAgentImpl. Default parameters
// are used for placeholders the request does not set.
func NewRunAgentImpl(agents []*SimpleAgent, defaults map[string]string) RunAgentImpl {
	byName := make(map[string]*SimpleAgent, len(agents))
	for _, a := range agents {
		byName[a.prompt.Name] = a
	}
	return RunAgentImpl{agents: byName, defaults: defaults}
}

// Execute runs the named agent.
func (r RunAgentImpl) Execute(ctx context.Context, req RunAgentRequest) (string, error) {
	agent, err := r.validate(req)
	if err != nil {
		return "", err
	}
	return agent.Run(ctx, req.Prompt, req.Context, r.parameters(req.Parameters))
}

// Stream runs the named agent in streaming mode.
func (r RunAgentImpl) Stream(ctx context.Context, req RunAgentRequest, onChunk domain.StreamDeltaCallback) error {
	agent, err := r.validate(req)
	if err != nil {
		return err
	}
	return agent.RunStream(ctx, req.Prompt, req.Context, r.parameters(req.Parameters), onChunk)
}

// Agents lists the catalogue entries sorted by name.
func (r RunAgentImpl) Agents() []AgentPrompt {
	prompts := make([]AgentPrompt, 0, len(r.agents))
	for _, a := range r.agents {
		prompts = append(prompts, a.prompt)
	}
	sort.Slice(prompts, func(i, j int) bool { return prompts[i].Name < prompts[j].Name })
	return prompts
}

func (r RunAgentImpl) validate(req RunAgentRequest) (*SimpleAgent, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, domain.NewValidationErr("prompt cannot be empty")
	}
	agent, ok := r.agents[req.Agent]
	if !ok {
		return nil, domain.NewNotFoundErr(fmt.Sprintf("agent '%s' not found", req.Agent))
	}
	return agent, nil
}

func (r RunAgentImpl) parameters(params map[string]string) map[string]string {
	merged := make(map[string]string, len(r.defaults)+len(params))
	for k, v := range r.defaults {
		merged[k] = v
	}
	for k, v := range params {
		merged[k] = v
	}
	return merged
}

// InitRunAgent is the initializer for the RunAgent use case
type InitRunAgent struct {
	Model    domain.AgentModel   `resolve:""`
	Registry domain.ToolRegistry `resolve:""`
	Executor domain.ToolExecutor `resolve:""`
	Policy   retry.Policy        `resolve:""`
	Logger   *slog.Logger        `resolve:""`
	AppName  string              `config:"APP_NAME" default:"MoneyPilot"`
	LLMModel string              `config:"LLM_MODEL_NAME" default:"gpt-4"`
}

// Initialize loads the agent catalogue and registers the RunAgent use case
func (i InitRunAgent) Initialize(ctx context.Context) (context.Context, error) {
	prompts, err := LoadAgentPrompts()
	if err != nil {
		return ctx, err
	}

	agents := make([]*SimpleAgent, 0, len(prompts))
	for _, p := range prompts {
		agents = append(agents, NewSimpleAgent(p, i.Model, i.Registry, i.Executor, i.Logger,
			WithAgentModel(i.LLMModel),
			WithRetryPolicy(i.Policy),
		))
	}

	depend.Register[RunAgent](NewRunAgentImpl(agents, map[string]string{"app_name": i.AppName}))
	i.Logger.InfoContext(ctx, "Agent catalogue loaded", "agents", len(agents))
	return ctx, nil
}
