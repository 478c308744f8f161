package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/moneypilot/internal/telemetry"
	"github.com/cleitonmarx/moneypilot/internal/workflow"
	"go.opentelemetry.io/otel/attribute"
)

// WorkflowService builds and executes agent workflows over state S.
type WorkflowService[S any] struct {
	name   string
	logger *slog.Logger
}

// NewWorkflowService creates a new WorkflowService. The name labels logs and metrics.
func NewWorkflowService[S any](name string, logger *slog.Logger) WorkflowService[S] {
	return WorkflowService[S]{name: name, logger: logger}
}

// BuildWorkflow adds the workflow functions and edges to a graph and compiles it.
func (s WorkflowService[S]) BuildWorkflow(wf workflow.AgentWorkflow[S]) (*workflow.Graph[S], error) {
	s.logger.Info("Building workflow", "workflow", s.name)

	graph, err := workflow.Build(wf)
	if err != nil {
		s.logger.Error("Failed to build workflow", "workflow", s.name, "error", err)
		return nil, domain.NewWorkflowErr(
			fmt.Sprintf("Failed to build workflow: %v", err),
			map[string]any{"workflow": s.name},
			err,
		)
	}

	s.logger.Info("Workflow built and compiled successfully", "workflow", s.name, "nodes", graph.Nodes())
	return graph, nil
}

// ExecuteWorkflow runs the compiled graph from the initial state. On failure
// the state reached so far is returned with the error.
func (s WorkflowService[S]) ExecuteWorkflow(ctx context.Context, graph *workflow.Graph[S], initial S) (S, error) {
	spanCtx, span := telemetry.StartWithAttributes(ctx, attribute.String("workflow.name", s.name))
	defer span.End()

	s.logger.InfoContext(spanCtx, "Executing workflow", "workflow", s.name)

	final, err := graph.Invoke(spanCtx, initial)
	RecordWorkflowRun(spanCtx, s.name, err != nil)
	if telemetry.RecordErrorAndStatus(span, err) {
		s.logger.ErrorContext(spanCtx, "Error executing workflow", "workflow", s.name, "error", err)
		return final, domain.NewWorkflowErr(
			fmt.Sprintf("Workflow execution failed: %v", err),
			map[string]any{"workflow": s.name},
			err,
		)
	}

	s.logger.InfoContext(spanCtx, "Workflow executed successfully", "workflow", s.name)
	return final, nil
}
