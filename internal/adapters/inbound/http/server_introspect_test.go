package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/moneypilot/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestMoneyPilotServer_IntrospectHandler(t *testing.T) {
	tests := map[string]struct {
		setup         func(t *testing.T, m serverMocks)
		expectedCode  int
		expectedType  string
		shouldContain []string
	}{
		"renders-tools-agents-and-graph": {
			setup: func(t *testing.T, m serverMocks) {
				depend.RegisterNamed("graph TD;\nLLMService-->ToolExecutor;", "introspection-graph-mermaid")
				t.Cleanup(depend.ClearContainer)

				m.registry.EXPECT().ToolNames().Return([]string{"calculator", "parse_date"})
				m.registry.EXPECT().ToolSchemas([]string{"calculator", "parse_date"}).Return([]domain.ToolDefinition{
					domain.NewFunctionTool("calculator", "Evaluate an arithmetic expression", nil),
					domain.NewFunctionTool("parse_date", "Resolve a natural language date", nil),
				}, nil)
				m.runAgent.EXPECT().Agents().Return([]usecases.AgentPrompt{
					{Name: "date_resolver", Tools: []string{"parse_date"}, MaxSteps: 4},
				})
			},
			expectedCode: http.StatusOK,
			expectedType: "text/html; charset=utf-8",
			shouldContain: []string{
				"<title>MoneyPilot Introspection</title>",
				"<h1>MoneyPilot Introspection <small>v0.1.0</small></h1>",
				"<h2>Tools (2)</h2>",
				"<tr><td><code>calculator</code></td><td>Evaluate an arithmetic expression</td></tr>",
				"<tr><td><code>parse_date</code></td><td>Resolve a natural language date</td></tr>",
				"<h2>Agents (1)</h2>",
				"<tr><td><code>date_resolver</code></td><td><code>parse_date</code></td><td>4</td></tr>",
				`await mermaid.render('dependency-graph', "graph TD;\nLLMService--\u003eToolExecutor;");`,
			},
		},
		"no-tools-registered": {
			setup: func(t *testing.T, m serverMocks) {
				depend.RegisterNamed("graph TD;", "introspection-graph-mermaid")
				t.Cleanup(depend.ClearContainer)

				m.registry.EXPECT().ToolNames().Return([]string{})
				m.registry.EXPECT().ToolSchemas([]string{}).Return(nil, nil)
				m.runAgent.EXPECT().Agents().Return(nil)
			},
			expectedCode:  http.StatusOK,
			expectedType:  "text/html; charset=utf-8",
			shouldContain: []string{"<h2>Tools (0)</h2>", "No tools registered", "<h2>Agents (0)</h2>"},
		},
		"failed-to-resolve-dependency": {
			setup:         func(t *testing.T, m serverMocks) {},
			expectedCode:  http.StatusInternalServerError,
			expectedType:  "text/plain; charset=utf-8",
			shouldContain: []string{"Failed to resolve dependency graph"},
		},
		"failed-to-load-tool-schemas": {
			setup: func(t *testing.T, m serverMocks) {
				depend.RegisterNamed("graph TD;", "introspection-graph-mermaid")
				t.Cleanup(depend.ClearContainer)

				m.registry.EXPECT().ToolNames().Return([]string{"ghost"})
				m.registry.EXPECT().ToolSchemas([]string{"ghost"}).Return(nil, errors.New("unknown tool"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedType:  "text/plain; charset=utf-8",
			shouldContain: []string{"Failed to load tool schemas"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server, m := newTestServer(t)
			tt.setup(t, m)

			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/introspect", nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedType, w.Header().Get("Content-Type"))
			for _, expectedText := range tt.shouldContain {
				assert.Contains(t, w.Body.String(), expectedText)
			}
		})
	}
}
