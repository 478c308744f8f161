// Package builtin contains the tools registered by default.
package builtin

import (
	"context"

	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/moneypilot/internal/tools"
)

// Providers returns the providers of all builtin tools.
func Providers(timeProvider domain.CurrentTimeProvider) []tools.Provider {
	return []tools.Provider{
		EchoTool(),
		CurrentTimeTool(timeProvider),
		ParseDateTool(timeProvider),
		CalculatorTool(),
	}
}

// InitBuiltinTools registers the builtin tools in the tool registry.
type InitBuiltinTools struct {
	Registry     *tools.Registry            `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize adds the builtin providers to the registry.
func (i InitBuiltinTools) Initialize(ctx context.Context) (context.Context, error) {
	i.Registry.Register(Providers(i.TimeProvider)...)
	return ctx, nil
}
