package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoadAgentPrompts(t *testing.T) {
	prompts, err := LoadAgentPrompts()
	require.NoError(t, err)

	byName := map[string]AgentPrompt{}
	for _, p := range prompts {
		byName[p.Name] = p
	}
	require.Contains(t, byName, "assistant")
	require.Contains(t, byName, "budget_planner")
	require.Contains(t, byName, "date_resolver")

	assistant := byName["assistant"]
	assert.Contains(t, assistant.SystemPrompt, "{app_name}")
	assert.ElementsMatch(t, []string{"calculator", "current_time", "parse_date"}, assistant.Tools)
	assert.Equal(t, 5, assistant.MaxSteps)

	for _, p := range prompts {
		assert.NotEmpty(t, p.Description, p.Name)
		assert.NotEmpty(t, p.Tools, p.Name)
	}
}

func TestRunAgentImpl(t *testing.T) {
	prompt := AgentPrompt{
		Name:         "assistant",
		Description:  "General assistant",
		SystemPrompt: "You are {app_name}. User currency: {currency}.",
		MaxSteps:     3,
	}

	tests := map[string]struct {
		req             RunAgentRequest
		setExpectations func(*domain.MockAgentModel)
		testFunc        func(t *testing.T, out string, err error)
	}{
		"default-parameters": {
			req: RunAgentRequest{Agent: "assistant", Prompt: "hi", Parameters: map[string]string{"currency": "BRL"}},
			setExpectations: func(m *domain.MockAgentModel) {
				m.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(req domain.CompletionRequest) bool {
					return req.Model == "gpt-4" &&
						req.Messages[0].Text() == "You are MoneyPilot. User currency: BRL."
				})).Return(textCompletion("hello", domain.Usage{}), nil).Once()
			},
			testFunc: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "hello", out)
			},
		},
		"request-overrides-defaults": {
			req: RunAgentRequest{Agent: "assistant", Prompt: "hi", Parameters: map[string]string{"app_name": "Pilot"}},
			setExpectations: func(m *domain.MockAgentModel) {
				m.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(req domain.CompletionRequest) bool {
					return strings.HasPrefix(req.Messages[0].Text(), "You are Pilot.")
				})).Return(textCompletion("hey", domain.Usage{}), nil).Once()
			},
			testFunc: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "hey", out)
			},
		},
		"unknown-agent": {
			req: RunAgentRequest{Agent: "trader", Prompt: "buy"},
			testFunc: func(t *testing.T, _ string, err error) {
				var notFound *domain.NotFoundErr
				require.ErrorAs(t, err, &notFound)
				assert.Equal(t, "agent 'trader' not found", err.Error())
			},
		},
		"blank-prompt": {
			req: RunAgentRequest{Agent: "assistant", Prompt: "  "},
			testFunc: func(t *testing.T, _ string, err error) {
				var validationErr *domain.ValidationErr
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "prompt cannot be empty", err.Error())
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			model := domain.NewMockAgentModel(t)
			if tt.setExpectations != nil {
				tt.setExpectations(model)
			}
			agent := NewSimpleAgent(prompt, model, domain.NewMockToolRegistry(t), domain.NewMockToolExecutor(t), discardLogger(),
				WithAgentModel("gpt-4"),
			)
			runner := NewRunAgentImpl([]*SimpleAgent{agent}, map[string]string{"app_name": "MoneyPilot"})

			out, err := runner.Execute(context.Background(), tt.req)
			tt.testFunc(t, out, err)
		})
	}
}

func TestRunAgentImpl_Stream(t *testing.T) {
	model := domain.NewMockAgentModel(t)
	model.EXPECT().CompleteStream(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ domain.CompletionRequest, onDelta domain.StreamDeltaCallback) (domain.Completion, error) {
			return textCompletion("ok", domain.Usage{}), onDelta("ok")
		}).Once()

	agent := NewSimpleAgent(AgentPrompt{Name: "assistant", SystemPrompt: "You help."}, model,
		domain.NewMockToolRegistry(t), domain.NewMockToolExecutor(t), discardLogger())
	runner := NewRunAgentImpl([]*SimpleAgent{agent}, nil)

	var got strings.Builder
	err := runner.Stream(context.Background(), RunAgentRequest{Agent: "assistant", Prompt: "hi"}, func(delta string) error {
		got.WriteString(delta)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got.String())
}

func TestRunAgentImpl_Agents(t *testing.T) {
	var agents []*SimpleAgent
	for _, name := range []string{"zeta", "alpha", "mid"} {
		agents = append(agents, NewSimpleAgent(AgentPrompt{Name: name}, nil, nil, nil, discardLogger()))
	}
	runner := NewRunAgentImpl(agents, nil)

	var names []string
	for _, p := range runner.Agents() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestNewSimpleAgent_CatalogueSettings(t *testing.T) {
	agent := NewSimpleAgent(AgentPrompt{
		Name:         "budget_planner",
		SystemPrompt: "Plan",
		Tools:        []string{"calculator"},
		MaxSteps:     8,
	}, nil, nil, nil, discardLogger(), WithMaxSteps(3))

	cfg := agent.Config()
	assert.Equal(t, "budget_planner", cfg.Name)
	assert.Equal(t, "Plan", cfg.SystemPrompt)
	assert.Equal(t, []string{"calculator"}, cfg.ToolNames)
	assert.Equal(t, 3, cfg.MaxSteps)
	assert.Equal(t, "budget_planner", agent.Prompt().Name)
}

func TestInitRunAgent_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	i := InitRunAgent{
		Model:    domain.NewMockAgentModel(t),
		Registry: domain.NewMockToolRegistry(t),
		Executor: domain.NewMockToolExecutor(t),
		Policy:   fastPolicy(),
		Logger:   discardLogger(),
		AppName:  "MoneyPilot",
		LLMModel: "gpt-4",
	}

	_, err := i.Initialize(context.Background())
	require.NoError(t, err)

	runner, err := depend.Resolve[RunAgent]()
	require.NoError(t, err)
	assert.Len(t, runner.Agents(), 3)
}
