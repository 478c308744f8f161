package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/moneypilot/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterState struct {
	workflow.BaseState
	Count int
}

type incrementFunction struct {
	fail bool
}

func (f incrementFunction) Key() string { return "increment" }

func (f incrementFunction) Execute(_ context.Context, state counterState) (counterState, error) {
	if f.fail {
		return state, errors.New("cannot count")
	}
	state.Count++
	return state, nil
}

type counterWorkflow struct {
	fn     incrementFunction
	target int
	noEdge bool
}

func (w counterWorkflow) Functions() []workflow.AgentFunction[counterState] {
	return []workflow.AgentFunction[counterState]{w.fn}
}

func (w counterWorkflow) Edges(g *workflow.StateGraph[counterState]) error {
	if w.noEdge {
		return nil
	}
	if err := g.SetEntryPoint("increment"); err != nil {
		return err
	}
	return g.AddConditionalEdges("increment", func(_ context.Context, s counterState) (string, error) {
		if s.Count >= w.target {
			return workflow.END, nil
		}
		return "increment", nil
	}, nil)
}

func TestWorkflowService(t *testing.T) {
	tests := map[string]struct {
		wf       counterWorkflow
		testFunc func(t *testing.T, svc WorkflowService[counterState], wf counterWorkflow)
	}{
		"build-and-execute": {
			wf: counterWorkflow{target: 3},
			testFunc: func(t *testing.T, svc WorkflowService[counterState], wf counterWorkflow) {
				graph, err := svc.BuildWorkflow(wf)
				require.NoError(t, err)

				final, err := svc.ExecuteWorkflow(context.Background(), graph, counterState{})
				require.NoError(t, err)
				assert.Equal(t, 3, final.Count)
			},
		},
		"build-error": {
			wf: counterWorkflow{noEdge: true},
			testFunc: func(t *testing.T, svc WorkflowService[counterState], wf counterWorkflow) {
				_, err := svc.BuildWorkflow(wf)
				var workflowErr *domain.WorkflowErr
				require.ErrorAs(t, err, &workflowErr)
				assert.Equal(t, "Failed to build workflow: entry point is not set", workflowErr.Message())
				assert.Equal(t, "counter", workflowErr.Details["workflow"])
			},
		},
		"node-error": {
			wf: counterWorkflow{fn: incrementFunction{fail: true}, target: 1},
			testFunc: func(t *testing.T, svc WorkflowService[counterState], wf counterWorkflow) {
				graph, err := svc.BuildWorkflow(wf)
				require.NoError(t, err)

				_, err = svc.ExecuteWorkflow(context.Background(), graph, counterState{})
				var workflowErr *domain.WorkflowErr
				require.ErrorAs(t, err, &workflowErr)
				assert.Equal(t, "Workflow execution failed: node increment: cannot count", workflowErr.Message())
			},
		},
		"recursion-limit": {
			wf: counterWorkflow{target: 100},
			testFunc: func(t *testing.T, svc WorkflowService[counterState], wf counterWorkflow) {
				graph, err := svc.BuildWorkflow(wf)
				require.NoError(t, err)

				final, err := svc.ExecuteWorkflow(context.Background(), graph, counterState{})
				assert.ErrorIs(t, err, workflow.ErrRecursionLimit)
				assert.Equal(t, workflow.DEFAULT_RECURSION_LIMIT, final.Count)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			svc := NewWorkflowService[counterState]("counter", discardLogger())
			tt.testFunc(t, svc, tt.wf)
		})
	}
}
