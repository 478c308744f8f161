package domain

import (
	"context"
	"sort"
)

// ToolFunc is the callable behind a registered tool. Arguments are the
// decoded JSON object the model supplied in its tool call.
type ToolFunc func(ctx context.Context, args map[string]any) (any, error)

// ToolDefinition describes a tool the model may call (OpenAI function tool).
type ToolDefinition struct {
	Type     string
	Function ToolFunction
}

// ToolFunction represents a function tool for the LLM.
type ToolFunction struct {
	Name        string
	Description string
	Parameters  ToolParameters
}

// ToolParameters represents the parameters schema for a function tool.
type ToolParameters struct {
	Type       string
	Properties map[string]ToolParameter
}

// ToolParameter represents a single parameter in the function tool schema.
type ToolParameter struct {
	Type        string
	Description string
	Required    bool
	Enum        []string
}

// NewFunctionTool builds a function ToolDefinition.
func NewFunctionTool(name, description string, properties map[string]ToolParameter) ToolDefinition {
	if properties == nil {
		properties = map[string]ToolParameter{}
	}
	return ToolDefinition{
		Type: "function",
		Function: ToolFunction{
			Name:        name,
			Description: description,
			Parameters: ToolParameters{
				Type:       "object",
				Properties: properties,
			},
		},
	}
}

// RequiredNames returns the sorted names of the required parameters.
func (p ToolParameters) RequiredNames() []string {
	required := []string{}
	for name, param := range p.Properties {
		if param.Required {
			required = append(required, name)
		}
	}
	sort.Strings(required)
	return required
}

// JSONSchema renders the parameters as a JSON schema object.
func (p ToolParameters) JSONSchema() map[string]any {
	typ := p.Type
	if typ == "" {
		typ = "object"
	}
	properties := make(map[string]any, len(p.Properties))
	for name, param := range p.Properties {
		prop := map[string]any{"type": param.Type}
		if param.Description != "" {
			prop["description"] = param.Description
		}
		if len(param.Enum) > 0 {
			prop["enum"] = param.Enum
		}
		properties[name] = prop
	}
	schema := map[string]any{
		"type":       typ,
		"properties": properties,
	}
	if required := p.RequiredNames(); len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// RecordDumper is implemented by structured tool results that know how to
// dump themselves into a plain record before serialization.
type RecordDumper interface {
	Dump() map[string]any
}

// ToolRegistry resolves registered tools by name.
type ToolRegistry interface {
	// ToolSchemas returns the definitions of the named tools, in the given order.
	ToolSchemas(names []string) ([]ToolDefinition, error)
	// ToolFunc returns the callable registered under name.
	ToolFunc(name string) (ToolFunc, error)
	// ToolNames returns the sorted names of all registered tools.
	ToolNames() []string
}

// ToolExecutor executes a batch of tool calls.
type ToolExecutor interface {
	// Execute runs the calls and returns one tool result message per call, in order.
	Execute(ctx context.Context, calls []ToolCall, batchID string) []Message
}
