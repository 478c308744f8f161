package workflow

import (
	"context"
	"fmt"
	"time"
)

// BaseState holds the fields shared by every workflow state.
type BaseState struct {
	RequestID string
	UserID    string
	Timestamp time.Time
	Error     string
}

// Failed reports whether a node recorded an error in the state.
func (s BaseState) Failed() bool {
	return s.Error != ""
}

// AgentFunction is a node of an agent workflow.
type AgentFunction[S any] interface {
	// Key is the node name.
	Key() string
	// Execute transforms the state.
	Execute(ctx context.Context, state S) (S, error)
}

// AgentWorkflow describes a graph of agent functions.
type AgentWorkflow[S any] interface {
	Functions() []AgentFunction[S]
	// Edges wires the functions, including the entry point.
	Edges(g *StateGraph[S]) error
}

// Build adds the workflow functions and edges to a new graph and compiles it.
func Build[S any](wf AgentWorkflow[S]) (*Graph[S], error) {
	g := NewStateGraph[S]()
	for _, fn := range wf.Functions() {
		if err := g.AddNode(fn.Key(), fn.Execute); err != nil {
			return nil, err
		}
	}
	if err := wf.Edges(g); err != nil {
		return nil, fmt.Errorf("failed to add edges: %w", err)
	}
	return g.Compile()
}
