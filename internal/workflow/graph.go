// Package workflow runs agent functions as a state graph.
//
// A graph is a set of named nodes that transform a state value, connected by
// fixed or conditional edges. Execution starts at the entry point and follows
// the edges until END is reached. The builder validates the topology and the
// compiled graph is executed by langgraphgo.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/smallnest/langgraphgo/graph"
)

const (
	START = "__start__"
	END   = graph.END

	DEFAULT_RECURSION_LIMIT = 25
)

// ErrRecursionLimit is returned when a run visits more nodes than the recursion limit allows.
var ErrRecursionLimit = errors.New("recursion limit reached")

// NodeFunc transforms the state.
type NodeFunc[S any] func(ctx context.Context, state S) (S, error)

// RouterFunc picks the next route from the state.
type RouterFunc[S any] func(ctx context.Context, state S) (string, error)

type conditionalEdge[S any] struct {
	router  RouterFunc[S]
	mapping map[string]string
}

// StateGraph is the builder of a Graph.
type StateGraph[S any] struct {
	nodes       map[string]NodeFunc[S]
	edges       map[string]string
	conditional map[string]conditionalEdge[S]
	entry       string
}

// NewStateGraph creates an empty StateGraph.
func NewStateGraph[S any]() *StateGraph[S] {
	return &StateGraph[S]{
		nodes:       map[string]NodeFunc[S]{},
		edges:       map[string]string{},
		conditional: map[string]conditionalEdge[S]{},
	}
}

// AddNode adds a named node.
func (g *StateGraph[S]) AddNode(name string, fn NodeFunc[S]) error {
	switch {
	case name == "" || name == START || name == END:
		return fmt.Errorf("invalid node name %q", name)
	case fn == nil:
		return fmt.Errorf("node %q has no function", name)
	}
	if _, exists := g.nodes[name]; exists {
		return fmt.Errorf("node %q already exists", name)
	}
	g.nodes[name] = fn
	return nil
}

// AddEdge connects from to to. An edge from START sets the entry point.
func (g *StateGraph[S]) AddEdge(from, to string) error {
	if from == START {
		return g.SetEntryPoint(to)
	}
	if err := g.checkSource(from); err != nil {
		return err
	}
	g.edges[from] = to
	return nil
}

// AddConditionalEdges routes from to the node chosen by router. When mapping
// is not nil the router result is a key of mapping; otherwise it is the node name.
func (g *StateGraph[S]) AddConditionalEdges(from string, router RouterFunc[S], mapping map[string]string) error {
	if router == nil {
		return fmt.Errorf("conditional edge from %q has no router", from)
	}
	if err := g.checkSource(from); err != nil {
		return err
	}
	g.conditional[from] = conditionalEdge[S]{router: router, mapping: mapping}
	return nil
}

// SetEntryPoint sets the first node to run.
func (g *StateGraph[S]) SetEntryPoint(name string) error {
	if name == START || name == END {
		return fmt.Errorf("invalid entry point %q", name)
	}
	g.entry = name
	return nil
}

func (g *StateGraph[S]) checkSource(from string) error {
	if from == END {
		return errors.New("END cannot have outgoing edges")
	}
	if _, exists := g.edges[from]; exists {
		return fmt.Errorf("node %q already has an outgoing edge", from)
	}
	if _, exists := g.conditional[from]; exists {
		return fmt.Errorf("node %q already has an outgoing edge", from)
	}
	return nil
}

// Compile validates the graph and returns a runnable Graph.
func (g *StateGraph[S]) Compile() (*Graph[S], error) {
	if g.entry == "" {
		return nil, errors.New("entry point is not set")
	}
	if _, ok := g.nodes[g.entry]; !ok {
		return nil, fmt.Errorf("entry point %q is not a node", g.entry)
	}

	var problems []error
	for _, name := range sortedKeys(g.nodes) {
		to, hasEdge := g.edges[name]
		cond, hasCond := g.conditional[name]
		switch {
		case !hasEdge && !hasCond:
			problems = append(problems, fmt.Errorf("node %q has no outgoing edge", name))
		case hasEdge && !g.isTarget(to):
			problems = append(problems, fmt.Errorf("edge %q -> %q targets an unknown node", name, to))
		case hasCond:
			for _, target := range cond.mapping {
				if !g.isTarget(target) {
					problems = append(problems, fmt.Errorf("conditional edge %q -> %q targets an unknown node", name, target))
				}
			}
		}
	}
	for from := range g.edges {
		if _, ok := g.nodes[from]; !ok {
			problems = append(problems, fmt.Errorf("edge from unknown node %q", from))
		}
	}
	for from := range g.conditional {
		if _, ok := g.nodes[from]; !ok {
			problems = append(problems, fmt.Errorf("conditional edge from unknown node %q", from))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	lg := graph.NewStateGraph[S]()
	for name, fn := range g.nodes {
		lg.AddNode(name, name, trackedNode(name, fn))
	}
	for from, to := range g.edges {
		lg.AddEdge(from, to)
	}
	for from, cond := range g.conditional {
		lg.AddConditionalEdge(from, g.route(from, cond))
	}
	lg.SetEntryPoint(g.entry)

	runnable, err := lg.Compile()
	if err != nil {
		return nil, err
	}
	return &Graph[S]{
		runnable:       runnable,
		nodes:          sortedKeys(g.nodes),
		recursionLimit: DEFAULT_RECURSION_LIMIT,
	}, nil
}

func (g *StateGraph[S]) isTarget(name string) bool {
	if name == END {
		return true
	}
	_, ok := g.nodes[name]
	return ok
}

// route adapts a router to a langgraphgo condition. Routing failures are kept
// in the run and the condition yields no node, which stops the run.
func (g *StateGraph[S]) route(from string, cond conditionalEdge[S]) func(context.Context, S) string {
	return func(ctx context.Context, state S) string {
		run := runFrom[S](ctx)

		route, err := cond.router(ctx, state)
		if err != nil {
			run.fail(fmt.Errorf("router of %s: %w", from, err))
			return ""
		}

		target := route
		if cond.mapping != nil {
			mapped, ok := cond.mapping[route]
			if !ok {
				run.fail(fmt.Errorf("router of %s returned unknown route %q", from, route))
				return ""
			}
			target = mapped
		}
		if !g.isTarget(target) {
			run.fail(fmt.Errorf("router of %s returned unknown node %q", from, target))
			return ""
		}
		return target
	}
}

// Graph is a compiled, runnable StateGraph. It is safe for concurrent use.
type Graph[S any] struct {
	runnable       *graph.StateRunnable[S]
	nodes          []string
	recursionLimit int
}

// WithRecursionLimit returns a copy of the graph that visits at most limit nodes per run.
func (g *Graph[S]) WithRecursionLimit(limit int) *Graph[S] {
	cp := *g
	cp.recursionLimit = limit
	return &cp
}

// Nodes returns the sorted node names.
func (g *Graph[S]) Nodes() []string {
	return append([]string(nil), g.nodes...)
}

// Invoke runs the graph from the entry point until END.
// On failure the state reached so far is returned with the error.
func (g *Graph[S]) Invoke(ctx context.Context, state S) (S, error) {
	run := &graphRun[S]{limit: g.recursionLimit, state: state}
	final, err := g.runnable.Invoke(context.WithValue(ctx, runKey{}, run), state)

	run.mu.Lock()
	defer run.mu.Unlock()
	if run.err != nil {
		return run.state, run.err
	}
	if err != nil {
		return run.state, err
	}
	return final, nil
}

type runKey struct{}

// graphRun tracks one Invoke: the visited node count, the last good state and
// the first failure.
type graphRun[S any] struct {
	mu    sync.Mutex
	limit int
	steps int
	state S
	err   error
}

func runFrom[S any](ctx context.Context) *graphRun[S] {
	return ctx.Value(runKey{}).(*graphRun[S])
}

func (r *graphRun[S]) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err == nil {
		r.err = err
	}
}

func trackedNode[S any](name string, fn NodeFunc[S]) func(context.Context, S) (S, error) {
	return func(ctx context.Context, state S) (S, error) {
		run := runFrom[S](ctx)

		run.mu.Lock()
		if run.steps >= run.limit {
			run.mu.Unlock()
			err := fmt.Errorf("%w: %d steps without reaching END", ErrRecursionLimit, run.limit)
			run.fail(err)
			return state, err
		}
		run.steps++
		run.mu.Unlock()

		if err := ctx.Err(); err != nil {
			run.fail(err)
			return state, err
		}

		next, err := fn(ctx, state)
		if err != nil {
			err = fmt.Errorf("node %s: %w", name, err)
			run.fail(err)
			return state, err
		}

		run.mu.Lock()
		run.state = next
		run.mu.Unlock()
		return next, nil
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
