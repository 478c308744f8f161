package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transferArgs struct {
	Account string  `json:"account" jsonschema:"Target account"`
	Amount  float64 `json:"amount" jsonschema:"Amount to transfer"`
	Memo    string  `json:"memo,omitempty" jsonschema:"Optional memo"`
}

func TestDecodeArgs(t *testing.T) {
	tests := map[string]struct {
		args      map[string]any
		expect    transferArgs
		expectErr bool
	}{
		"valid": {
			args:   map[string]any{"account": "savings", "amount": 12.5},
			expect: transferArgs{Account: "savings", Amount: 12.5},
		},
		"unknown-field": {
			args:      map[string]any{"account": "savings", "currency": "BRL"},
			expectErr: true,
		},
		"wrong-type": {
			args:      map[string]any{"amount": "ten"},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got transferArgs
			err := DecodeArgs(tt.args, &got)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestNewTypedTool(t *testing.T) {
	provider := NewTypedTool("transfer", "Move money", func(_ context.Context, args transferArgs) (any, error) {
		return args.Amount * 2, nil
	})

	tool, err := provider()
	require.NoError(t, err)
	assert.Equal(t, "transfer", tool.Name())
	assert.Equal(t, "function", tool.Definition.Type)

	params := tool.Definition.Function.Parameters
	assert.Equal(t, "object", params.Type)
	assert.Equal(t, []string{"account", "amount"}, params.RequiredNames())
	assert.Equal(t, "number", params.Properties["amount"].Type)
	assert.Equal(t, "string", params.Properties["memo"].Type)
	assert.Equal(t, "Target account", params.Properties["account"].Description)

	got, err := tool.Func(context.Background(), map[string]any{"account": "a", "amount": 2.0})
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)

	_, err = tool.Func(context.Background(), map[string]any{"unexpected": true})
	assert.Error(t, err)
}
