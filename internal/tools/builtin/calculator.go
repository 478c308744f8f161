package builtin

import (
	"context"
	"errors"
	"fmt"

	"github.com/cleitonmarx/moneypilot/internal/tools"
)

var operations = []string{"add", "subtract", "multiply", "divide"}

type calculatorArgs struct {
	Operation string  `json:"operation" jsonschema:"Arithmetic operation to apply"`
	A         float64 `json:"a" jsonschema:"Left operand"`
	B         float64 `json:"b" jsonschema:"Right operand"`
}

// Calculation is the result of the calculator tool.
type Calculation struct {
	Operation string
	A, B      float64
	Result    float64
}

// Dump returns the calculation as a plain record.
func (c Calculation) Dump() map[string]any {
	return map[string]any{
		"operation": c.Operation,
		"a":         c.A,
		"b":         c.B,
		"result":    c.Result,
	}
}

// CalculatorTool applies a basic arithmetic operation to two numbers.
func CalculatorTool() tools.Provider {
	typed := tools.NewTypedTool(
		"calculator",
		"Apply add, subtract, multiply or divide to two numbers. Use it for any arithmetic on amounts.",
		func(_ context.Context, args calculatorArgs) (any, error) {
			result, err := calculate(args.Operation, args.A, args.B)
			if err != nil {
				return nil, err
			}
			return Calculation{Operation: args.Operation, A: args.A, B: args.B, Result: result}, nil
		},
	)

	return func() (tools.Tool, error) {
		tool, err := typed()
		if err != nil {
			return tool, err
		}
		params := tool.Definition.Function.Parameters
		op := params.Properties["operation"]
		op.Enum = operations
		params.Properties["operation"] = op
		return tool, nil
	}
}

func calculate(operation string, a, b float64) (float64, error) {
	switch operation {
	case "add":
		return a + b, nil
	case "subtract":
		return a - b, nil
	case "multiply":
		return a * b, nil
	case "divide":
		if b == 0 {
			return 0, errors.New("division by zero")
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("unsupported operation %q, expected one of %v", operation, operations)
	}
}
