package tools

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// Tool is a registered tool: the definition shown to the model and the
// callable behind it.
type Tool struct {
	Definition domain.ToolDefinition
	Func       domain.ToolFunc
}

// Name returns the tool name.
func (t Tool) Name() string {
	return t.Definition.Function.Name
}

// Provider builds a Tool. Providers run lazily, when the registry discovers its tools.
type Provider func() (Tool, error)

// Static returns a Provider for an already built tool.
func Static(tool Tool) Provider {
	return func() (Tool, error) {
		return tool, nil
	}
}

// Registry holds the tools available to the LLM services.
// Tools are discovered from the registered providers on first access and
// kept until Reset or Register is called.
type Registry struct {
	logger    *slog.Logger
	mu        sync.Mutex
	providers []Provider
	tools     map[string]Tool
}

// NewRegistry creates a Registry with the given providers.
func NewRegistry(logger *slog.Logger, providers ...Provider) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger:    logger,
		providers: providers,
	}
}

// Register adds providers to the registry. The next access re-discovers all tools.
func (r *Registry) Register(providers ...Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers = append(r.providers, providers...)
	r.tools = nil
}

// Reset clears the discovered tools. The next access re-discovers them.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools = nil
}

// ToolSchemas returns the definitions of the named tools, in the given order.
func (r *Registry) ToolSchemas(names []string) ([]domain.ToolDefinition, error) {
	tools := r.table()
	schemas := make([]domain.ToolDefinition, 0, len(names))
	for _, name := range names {
		tool, ok := tools[name]
		if !ok {
			return nil, domain.NewUnknownToolErr(name, sortedNames(tools))
		}
		schemas = append(schemas, tool.Definition)
	}
	return schemas, nil
}

// ToolFunc returns the callable registered under name.
func (r *Registry) ToolFunc(name string) (domain.ToolFunc, error) {
	tools := r.table()
	tool, ok := tools[name]
	if !ok {
		return nil, domain.NewUnknownToolErr(name, sortedNames(tools))
	}
	return tool.Func, nil
}

// ToolNames returns the sorted names of all registered tools.
func (r *Registry) ToolNames() []string {
	return sortedNames(r.table())
}

// Tools returns all registered tools sorted by name.
func (r *Registry) Tools() []Tool {
	tools := r.table()
	res := make([]Tool, 0, len(tools))
	for _, name := range sortedNames(tools) {
		res = append(res, tools[name])
	}
	return res
}

// table returns the discovered tools, running discovery if needed.
// The returned map is never mutated after discovery.
func (r *Registry) table() map[string]Tool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tools == nil {
		r.tools = r.discover()
	}
	return r.tools
}

func (r *Registry) discover() map[string]Tool {
	tools := make(map[string]Tool, len(r.providers))
	for i, provide := range r.providers {
		tool, err := safeProvide(provide)
		if err != nil {
			r.logger.Error("Failed to register tool", "provider", i, "error", err)
			continue
		}

		name := tool.Name()
		if name == "" || tool.Func == nil {
			r.logger.Error("Failed to register tool", "provider", i, "error", "tool name and function are required")
			continue
		}
		if _, exists := tools[name]; exists {
			r.logger.Warn("Tool registered more than once, keeping the last registration", "tool", name)
		}
		tools[name] = tool
	}

	r.logger.Debug("Tools discovered", "count", len(tools), "tools", sortedNames(tools))
	return tools
}

func safeProvide(provide Provider) (tool Tool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("tool provider panicked: %v", rec)
		}
	}()
	return provide()
}

func sortedNames(tools map[string]Tool) []string {
	names := make([]string, 0, len(tools))
	for name := range tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var _ domain.ToolRegistry = (*Registry)(nil)

// InitToolRegistry creates an empty Registry and registers it in the
// dependency container. Tool sets add their providers with Register.
type InitToolRegistry struct {
	Logger *slog.Logger `resolve:""`
}

// Initialize registers the Registry both as itself and as domain.ToolRegistry.
func (i InitToolRegistry) Initialize(ctx context.Context) (context.Context, error) {
	registry := NewRegistry(i.Logger)
	depend.Register(registry)
	depend.Register[domain.ToolRegistry](registry)
	return ctx, nil
}
