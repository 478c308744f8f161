package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
)

var (
	//go:embed templates/introspect.gohtml
	templateFS embed.FS
	tmpl       = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

type introspectTool struct {
	Name        string
	Description string
}

type introspectAgent struct {
	Name     string
	Tools    []string
	MaxSteps int
}

type introspectPage struct {
	Title   string
	Version string
	Graph   string
	Tools   []introspectTool
	Agents  []introspectAgent
}

// IntrospectHandler renders the dependency graph of the application as a
// mermaid diagram next to the registered tools and the agent catalogue.
func (api MoneyPilotServer) IntrospectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mermaidGraph, err := depend.ResolveNamed[string]("introspection-graph-mermaid")
		if err != nil {
			http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
			return
		}

		definitions, err := api.ToolRegistry.ToolSchemas(api.ToolRegistry.ToolNames())
		if err != nil {
			api.Logger.ErrorContext(r.Context(), "Introspect: error loading tool schemas", "error", err)
			http.Error(w, "Failed to load tool schemas", http.StatusInternalServerError)
			return
		}

		page := introspectPage{
			Title:   api.Settings.AppName + " Introspection",
			Version: api.Settings.Version,
			Graph:   mermaidGraph,
		}
		for _, def := range definitions {
			page.Tools = append(page.Tools, introspectTool{Name: def.Function.Name, Description: def.Function.Description})
		}
		for _, p := range api.RunAgentUseCase.Agents() {
			page.Agents = append(page.Agents, introspectAgent{Name: p.Name, Tools: p.Tools, MaxSteps: p.MaxSteps})
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, page); err != nil {
			http.Error(w, "Failed to render introspection page", http.StatusInternalServerError)
		}
	}
}
