package domain

import "context"

// CompletionRequest represents a chat completion request to the LLM API.
type CompletionRequest struct {
	Model        string
	Messages     []Message
	MaxTokens    *int
	Temperature  *float64
	TopP         *float64
	Tools        []ToolDefinition
	JSONResponse bool
	// OutputSchema, when set with JSONResponse, constrains the JSON output to the schema.
	OutputSchema map[string]any
	// Extra holds provider specific parameters merged into the request body.
	Extra map[string]any
}

// Completion represents the response of a chat completion request.
type Completion struct {
	ID      string
	Model   string
	Choices []CompletionChoice
	Usage   Usage
}

// CompletionChoice represents a completion choice.
type CompletionChoice struct {
	Index        int
	FinishReason string
	Message      Message
}

// Usage contains token usage information.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Add sums two usages.
func (u Usage) Add(other Usage) Usage {
	return Usage{
		PromptTokens:     u.PromptTokens + other.PromptTokens,
		CompletionTokens: u.CompletionTokens + other.CompletionTokens,
		TotalTokens:      u.TotalTokens + other.TotalTokens,
	}
}

// PrimaryMessage returns the message of the first choice.
func (c Completion) PrimaryMessage() (Message, bool) {
	if len(c.Choices) == 0 {
		return Message{}, false
	}
	return c.Choices[0].Message, true
}

// ChatCompletionClient sends chat completion requests to an LLM API.
type ChatCompletionClient interface {
	// Complete sends a non-streaming chat completion request.
	Complete(ctx context.Context, req CompletionRequest) (Completion, error)
}

// StreamDeltaCallback is called for each text delta of a streamed completion.
type StreamDeltaCallback func(delta string) error

// AgentModel is the model backend used by agents. It supports both full and
// streamed completions.
type AgentModel interface {
	ChatCompletionClient
	// CompleteStream streams the assistant text, calling onDelta for each chunk,
	// and returns the accumulated completion including any tool calls.
	CompleteStream(ctx context.Context, req CompletionRequest, onDelta StreamDeltaCallback) (Completion, error)
}
