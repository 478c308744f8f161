// Package mcpserver exposes the registered tools over the Model Context Protocol.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cleitonmarx/moneypilot/internal/adapters/outbound/config"
	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/moneypilot/internal/tools"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const MCP_BATCH_PREFIX = "mcp"

// NewServer builds an MCP server with one tool per registry entry. Calls go
// through the executor, so failures come back as error results instead of
// protocol errors.
func NewServer(
	name, version string,
	registry domain.ToolRegistry,
	executor domain.ToolExecutor,
	logger *slog.Logger,
) (*mcp.Server, error) {
	server := mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil)

	definitions, err := registry.ToolSchemas(registry.ToolNames())
	if err != nil {
		return nil, fmt.Errorf("failed to load tool schemas: %w", err)
	}
	for _, def := range definitions {
		server.AddTool(&mcp.Tool{
			Name:        def.Function.Name,
			Description: def.Function.Description,
			InputSchema: def.Function.Parameters.JSONSchema(),
		}, callTool(def.Function.Name, executor, logger))
	}
	return server, nil
}

func callTool(name string, executor domain.ToolExecutor, logger *slog.Logger) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		batchID := fmt.Sprintf("%s_%s", MCP_BATCH_PREFIX, uuid.NewString())
		// MCP clients may omit arguments entirely for tools without parameters.
		arguments := string(req.Params.Arguments)
		if len(req.Params.Arguments) == 0 {
			arguments = "{}"
		}
		results := executor.Execute(ctx, []domain.ToolCall{{
			ID:        batchID,
			Function:  name,
			Arguments: arguments,
		}}, batchID)
		if len(results) == 0 {
			return nil, fmt.Errorf("tool %s returned no result", name)
		}

		content := results[0].Text()
		isError := tools.IsErrorResult(content)
		if isError {
			logger.WarnContext(ctx, "MCP tool call failed", "tool", name, "batch_id", batchID)
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: content}},
			IsError: isError,
		}, nil
	}
}

// InitMCPServer registers the MCP server in the dependency container.
type InitMCPServer struct {
	Settings config.Settings     `resolve:""`
	Registry domain.ToolRegistry `resolve:""`
	Executor domain.ToolExecutor `resolve:""`
	Logger   *slog.Logger        `resolve:""`
}

// Initialize builds the MCP server over the registered tools.
func (i InitMCPServer) Initialize(ctx context.Context) (context.Context, error) {
	server, err := NewServer(i.Settings.AppName, i.Settings.Version, i.Registry, i.Executor, i.Logger)
	if err != nil {
		return ctx, err
	}
	depend.Register(server)
	i.Logger.InfoContext(ctx, "MCP server ready", "tools", len(i.Registry.ToolNames()))
	return ctx, nil
}
