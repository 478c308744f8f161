package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/moneypilot/internal/workflow"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

const (
	ASSISTANT_WORKFLOW_NAME = "ask_assistant"

	ROUTE_NODE  = "route"
	ANSWER_NODE = "answer"

	// MAX_ANSWER_ATTEMPTS bounds the answer node when the agent replies with blank text.
	MAX_ANSWER_ATTEMPTS = 2

	FALLBACK_AGENT = "assistant"
)

// AssistantState is the state of the ask-assistant workflow.
type AssistantState struct {
	workflow.BaseState
	Question string
	Agent    string
	Answer   string
	Attempts int
}

// routeFunction asks the model which catalogue agent should answer.
type routeFunction struct {
	llm    LLMService
	agents []AgentPrompt
	logger *slog.Logger
}

func (f routeFunction) Key() string { return ROUTE_NODE }

func (f routeFunction) Execute(ctx context.Context, state AssistantState) (AssistantState, error) {
	var catalogue strings.Builder
	for _, a := range f.agents {
		fmt.Fprintf(&catalogue, "- %s: %s\n", a.Name, a.Description)
	}

	res, err := f.llm.Query(ctx, []domain.Message{
		domain.NewSystemMessage(
			"Pick the agent best suited to answer the user's question.\n" +
				"Agents:\n" + catalogue.String() +
				`Reply with a JSON object like {"agent": "<name>"}.`,
		),
		domain.NewUserMessage(state.Question),
	}, WithJSONResponse(), WithMaxTokens(50), WithTemperature(0))
	if err != nil {
		return state, err
	}

	state.Agent = FALLBACK_AGENT
	if choice, ok := res.JSON.(map[string]any); ok {
		if name, ok := choice["agent"].(string); ok && f.known(name) {
			state.Agent = name
		}
	}
	f.logger.DebugContext(ctx, "Question routed", "request_id", state.RequestID, "agent", state.Agent)
	return state, nil
}

func (f routeFunction) known(name string) bool {
	for _, a := range f.agents {
		if a.Name == name {
			return true
		}
	}
	return false
}

// answerFunction runs the routed agent.
type answerFunction struct {
	agents RunAgent
}

func (f answerFunction) Key() string { return ANSWER_NODE }

func (f answerFunction) Execute(ctx context.Context, state AssistantState) (AssistantState, error) {
	state.Attempts++
	answer, err := f.agents.Execute(ctx, RunAgentRequest{
		Agent:  state.Agent,
		Prompt: state.Question,
		Context: map[string]any{
			"request_id": state.RequestID,
			"asked_at":   state.Timestamp.Format(time.RFC3339),
		},
	})
	if err != nil {
		return state, err
	}
	state.Answer = strings.TrimSpace(answer)
	if state.Answer == "" && state.Attempts >= MAX_ANSWER_ATTEMPTS {
		state.Error = "agent returned an empty answer"
	}
	return state, nil
}

// AssistantWorkflow routes a question to a catalogue agent and answers it,
// asking again once when the answer is blank.
type AssistantWorkflow struct {
	route  routeFunction
	answer answerFunction
}

// Functions implements workflow.AgentWorkflow.
func (w AssistantWorkflow) Functions() []workflow.AgentFunction[AssistantState] {
	return []workflow.AgentFunction[AssistantState]{w.route, w.answer}
}

// Edges implements workflow.AgentWorkflow.
func (w AssistantWorkflow) Edges(g *workflow.StateGraph[AssistantState]) error {
	if err := g.AddEdge(workflow.START, ROUTE_NODE); err != nil {
		return err
	}
	if err := g.AddEdge(ROUTE_NODE, ANSWER_NODE); err != nil {
		return err
	}
	return g.AddConditionalEdges(ANSWER_NODE, answerRouter, map[string]string{
		"retry": ANSWER_NODE,
		"done":  workflow.END,
	})
}

func answerRouter(_ context.Context, state AssistantState) (string, error) {
	if state.Answer == "" && !state.Failed() {
		return "retry", nil
	}
	return "done", nil
}

// AskAssistant defines the interface for the AskAssistant use case
type AskAssistant interface {
	// Execute answers the question through the assistant workflow.
	Execute(ctx context.Context, question, userID string) (AssistantState, error)
}

// AskAssistantImpl is the implementation of the AskAssistant use case
type AskAssistantImpl struct {
	service      WorkflowService[AssistantState]
	graph        *workflow.Graph[AssistantState]
	timeProvider domain.CurrentTimeProvider
}

// NewAskAssistantImpl builds the assistant workflow.
func NewAskAssistantImpl(
	llm LLMService,
	agents RunAgent,
	timeProvider domain.CurrentTimeProvider,
	logger *slog.Logger,
) (AskAssistantImpl, error) {
	service := NewWorkflowService[AssistantState](ASSISTANT_WORKFLOW_NAME, logger)
	graph, err := service.BuildWorkflow(AssistantWorkflow{
		route:  routeFunction{llm: llm, agents: agents.Agents(), logger: logger},
		answer: answerFunction{agents: agents},
	})
	if err != nil {
		return AskAssistantImpl{}, err
	}
	return AskAssistantImpl{
		service:      service,
		graph:        graph,
		timeProvider: timeProvider,
	}, nil
}

// Execute answers the question through the assistant workflow.
func (a AskAssistantImpl) Execute(ctx context.Context, question, userID string) (AssistantState, error) {
	if strings.TrimSpace(question) == "" {
		return AssistantState{}, domain.NewValidationErr("question cannot be empty")
	}

	initial := AssistantState{
		BaseState: workflow.BaseState{
			RequestID: uuid.NewString(),
			UserID:    userID,
			Timestamp: a.timeProvider.Now(),
		},
		Question: question,
	}
	return a.service.ExecuteWorkflow(ctx, a.graph, initial)
}

// InitAskAssistant is the initializer for the AskAssistant use case
type InitAskAssistant struct {
	LLM          LLMService                 `resolve:""`
	Agents       RunAgent                   `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *slog.Logger               `resolve:""`
}

// Initialize registers the AskAssistant use case in the dependency container
func (i InitAskAssistant) Initialize(ctx context.Context) (context.Context, error) {
	impl, err := NewAskAssistantImpl(i.LLM, i.Agents, i.TimeProvider, i.Logger)
	if err != nil {
		return ctx, err
	}
	depend.Register[AskAssistant](impl)
	return ctx, nil
}
