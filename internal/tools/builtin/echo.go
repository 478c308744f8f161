package builtin

import (
	"context"

	"github.com/cleitonmarx/moneypilot/internal/tools"
)

type echoArgs struct {
	Message string `json:"message" jsonschema:"Text to return unchanged"`
}

// EchoTool returns its message unchanged.
func EchoTool() tools.Provider {
	return tools.NewTypedTool(
		"echo",
		"Return the given message unchanged. Useful to check tool calling.",
		func(_ context.Context, args echoArgs) (any, error) {
			return args.Message, nil
		},
	)
}
