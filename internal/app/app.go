package app

import (
	"github.com/cleitonmarx/moneypilot/internal/adapters/inbound/http"
	"github.com/cleitonmarx/moneypilot/internal/adapters/inbound/mcpserver"
	"github.com/cleitonmarx/moneypilot/internal/adapters/outbound/config"
	"github.com/cleitonmarx/moneypilot/internal/adapters/outbound/llmapi"
	"github.com/cleitonmarx/moneypilot/internal/adapters/outbound/log"
	"github.com/cleitonmarx/moneypilot/internal/adapters/outbound/openaisdk"
	"github.com/cleitonmarx/moneypilot/internal/adapters/outbound/time"
	"github.com/cleitonmarx/moneypilot/internal/telemetry"
	"github.com/cleitonmarx/moneypilot/internal/tools"
	"github.com/cleitonmarx/moneypilot/internal/tools/builtin"
	"github.com/cleitonmarx/moneypilot/internal/usecases"
	"github.com/cleitonmarx/symbiont"
)

// NewMoneyPilotApp creates and returns a new instance of the MoneyPilot application.
func NewMoneyPilotApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&config.InitSettings{},
			&time.InitCurrentTimeProvider{},
			&llmapi.InitCompletionClient{},
			&openaisdk.InitAgentModel{},

			&tools.InitToolRegistry{},
			&builtin.InitBuiltinTools{},
			&tools.InitToolExecutor{},

			&usecases.InitLLMService{},
			&usecases.InitRunAgent{},
			&usecases.InitAskAssistant{},
			&mcpserver.InitMCPServer{},
		).
		Host(
			&http.MoneyPilotServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
