package app

import (
	"context"
	"log/slog"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector is an implementation of the Introspector interface that generates a Mermaid graph
// representation of the application's configuration and dependencies, and registers it in the dependency container.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, "introspection-graph-mermaid")
	return nil
}

// ReportLoggerIntrospector logs which configuration keys fell back to their defaults.
type ReportLoggerIntrospector struct {
	Logger *slog.Logger
}

// Introspect logs the configuration accesses of the report.
func (i ReportLoggerIntrospector) Introspect(ctx context.Context, r introspection.Report) error {
	logger := i.Logger
	if logger == nil {
		logger = slog.Default()
	}

	defaults := []string{}
	for _, c := range r.Configs {
		if c.UsedDefault {
			defaults = append(defaults, c.Key)
		}
	}
	logger.InfoContext(ctx, "Configuration report",
		"keys", len(r.Configs),
		"defaults_used", defaults,
	)
	return nil
}
