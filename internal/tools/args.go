package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/google/jsonschema-go/jsonschema"
)

// DecodeArgs decodes the tool argument map into target. Unknown fields are rejected.
func DecodeArgs(args map[string]any, target any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("invalid tool arguments: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("invalid tool arguments: %w", err)
	}

	var extra any
	if err := decoder.Decode(&extra); err != io.EOF {
		return fmt.Errorf("tool arguments must contain a single JSON object")
	}
	return nil
}

// NewTypedTool returns a Provider for a tool whose arguments decode into T.
// The parameter schema is derived from T's json and jsonschema struct tags;
// fields without omitempty are required.
func NewTypedTool[T any](name, description string, fn func(ctx context.Context, args T) (any, error)) Provider {
	return func() (Tool, error) {
		params, err := ParametersFor[T]()
		if err != nil {
			return Tool{}, fmt.Errorf("tool %s: %w", name, err)
		}

		return Tool{
			Definition: domain.ToolDefinition{
				Type: "function",
				Function: domain.ToolFunction{
					Name:        name,
					Description: description,
					Parameters:  params,
				},
			},
			Func: func(ctx context.Context, args map[string]any) (any, error) {
				var input T
				if err := DecodeArgs(args, &input); err != nil {
					return nil, err
				}
				return fn(ctx, input)
			},
		}, nil
	}
}

// ParametersFor builds the tool parameters of the struct type T.
func ParametersFor[T any]() (domain.ToolParameters, error) {
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		return domain.ToolParameters{}, fmt.Errorf("failed to build parameters schema: %w", err)
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	properties := make(map[string]domain.ToolParameter, len(schema.Properties))
	for name, prop := range schema.Properties {
		param := domain.ToolParameter{
			Type:        schemaType(prop),
			Description: prop.Description,
			Required:    required[name],
		}
		for _, v := range prop.Enum {
			param.Enum = append(param.Enum, fmt.Sprint(v))
		}
		properties[name] = param
	}

	return domain.ToolParameters{Type: "object", Properties: properties}, nil
}

func schemaType(s *jsonschema.Schema) string {
	if s.Type != "" {
		return s.Type
	}
	for _, t := range s.Types {
		if t != "null" {
			return t
		}
	}
	return "string"
}
