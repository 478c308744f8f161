package usecases

import (
	"context"

	"github.com/cleitonmarx/moneypilot/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter         = otel.Meter("usecases")
	LLMTokensUsed metric.Int64Counter
	WorkflowRuns  metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	WorkflowRuns, err = meter.Int64Counter(
		"workflow_runs_total",
		metric.WithDescription("Total workflow executions by outcome"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the tokens of one chat completion.
func RecordLLMTokensUsed(ctx context.Context, source string, usage domain.Usage) {
	LLMTokensUsed.Add(ctx, int64(usage.PromptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
		attribute.String("source", source),
	))
	LLMTokensUsed.Add(ctx, int64(usage.CompletionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
		attribute.String("source", source),
	))
}

// RecordWorkflowRun counts a finished workflow execution.
func RecordWorkflowRun(ctx context.Context, workflow string, failed bool) {
	outcome := "success"
	if failed {
		outcome = "failure"
	}
	WorkflowRuns.Add(ctx, 1, metric.WithAttributes(
		attribute.String("workflow", workflow),
		attribute.String("outcome", outcome),
	))
}
