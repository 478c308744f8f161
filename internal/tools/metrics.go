package tools

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter            = otel.Meter("tools")
	ToolCalls        metric.Int64Counter
	ToolCallDuration metric.Float64Histogram
)

func init() {
	var err error
	ToolCalls, err = meter.Int64Counter(
		"tool_calls_total",
		metric.WithDescription("Total tool calls executed"),
	)
	if err != nil {
		panic(err)
	}

	ToolCallDuration, err = meter.Float64Histogram(
		"tool_call_duration_seconds",
		metric.WithDescription("Tool call execution time"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordToolCall records a tool call outcome and its duration.
// errorType is empty for successful calls.
func RecordToolCall(ctx context.Context, toolName, errorType string, elapsed time.Duration) {
	outcome := "success"
	if errorType != "" {
		outcome = errorType
	}
	attrs := metric.WithAttributes(
		attribute.String("tool_name", toolName),
		attribute.String("outcome", outcome),
	)
	ToolCalls.Add(ctx, 1, attrs)
	ToolCallDuration.Record(ctx, elapsed.Seconds(), attrs)
}
