package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/cleitonmarx/moneypilot/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/moneypilot/internal/adapters/outbound/config"
	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/moneypilot/internal/telemetry"
	"github.com/cleitonmarx/moneypilot/internal/usecases"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/cors"
)

var _ gen.ServerInterface = (*MoneyPilotServer)(nil)

// MoneyPilotServer is the REST API and MCP HTTP server of MoneyPilot.
type MoneyPilotServer struct {
	Port                int                        `config:"HTTP_PORT" default:"8000"`
	Logger              *slog.Logger               `resolve:""`
	Settings            config.Settings            `resolve:""`
	TimeProvider        domain.CurrentTimeProvider `resolve:""`
	ToolRegistry        domain.ToolRegistry        `resolve:""`
	LLMService          usecases.LLMService        `resolve:""`
	RunAgentUseCase     usecases.RunAgent          `resolve:""`
	AskAssistantUseCase usecases.AskAssistant      `resolve:""`
	MCPServer           *mcp.Server                `resolve:""`
}

// Handler returns the server routes wrapped in the recover, telemetry and CORS middlewares.
func (api MoneyPilotServer) Handler() http.Handler {
	mux := http.NewServeMux()

	// Register introspection endpoint for debugging and testing purposes
	mux.Handle("/introspect", api.IntrospectHandler())

	if api.MCPServer != nil {
		mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return api.MCPServer
		}, nil)
		mux.Handle("/mcp", telemetry.Middleware("moneypilot-mcp")(mcpHandler))
	}

	// Create the OpenAPI handler with telemetry middleware
	h := gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseURL:    api.Settings.APIPrefix,
		BaseRouter: mux,
		Middlewares: []gen.MiddlewareFunc{
			telemetry.Middleware("moneypilot-api"),
		},
		ErrorHandlerFunc: respondParamError,
	})
	h = api.recoverMiddleware(h)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.New(cors.Options{
		AllowedOrigins:   api.Settings.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodOptions, http.MethodHead,
		},
		AllowedHeaders: []string{"*"},
	}).Handler(h)
}

// recoverMiddleware turns handler panics into a 500 response.
func (api MoneyPilotServer) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				api.Logger.ErrorContext(r.Context(), "Unhandled exception",
					"path", r.URL.Path,
					"method", r.Method,
					"exception", fmt.Sprint(rec),
					"stack", string(debug.Stack()),
				)
				respondErrorResp(w, gen.ErrorResp{Code: gen.INTERNALERROR, Detail: INTERNAL_ERROR_DETAIL})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Run starts the HTTP server for the MoneyPilotServer.
func (api MoneyPilotServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Info("Starting MoneyPilot application",
			"version", api.Settings.Version,
			"port", api.Port,
			"api_prefix", api.Settings.APIPrefix,
		)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Error("MoneyPilotServer: error during shutdown", "error", err)
		} else {
			api.Logger.Info("Shutting down MoneyPilot application")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the MoneyPilotServer is ready by calling the health endpoint.
func (api MoneyPilotServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d%s/health", api.Port, api.Settings.APIPrefix), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
