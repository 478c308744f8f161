package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cleitonmarx/moneypilot/internal/common"
	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/moneypilot/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const (
	DEFAULT_MAX_CONCURRENCY = 8

	// Prefix of the generated batch ids.
	TOOL_BATCH_PREFIX = "tool"

	ERROR_TYPE_JSON_DECODE    = "json_decode_error"
	ERROR_TYPE_TYPE           = "type_error"
	ERROR_TYPE_UNKNOWN_TOOL   = "unknown_tool_error"
	ERROR_TYPE_TOOL_EXECUTION = "tool_execution_error"
)

// Executor runs batches of tool calls requested by the model.
// Every call produces exactly one tool result message; failures are
// reported as error content and never abort the batch.
type Executor struct {
	registry       domain.ToolRegistry
	logger         *slog.Logger
	maxConcurrency int
}

// NewExecutor creates a new Executor. A non-positive maxConcurrency uses DEFAULT_MAX_CONCURRENCY.
func NewExecutor(registry domain.ToolRegistry, logger *slog.Logger, maxConcurrency int) Executor {
	if maxConcurrency <= 0 {
		maxConcurrency = DEFAULT_MAX_CONCURRENCY
	}
	if logger == nil {
		logger = slog.Default()
	}
	return Executor{
		registry:       registry,
		logger:         logger,
		maxConcurrency: maxConcurrency,
	}
}

// Execute runs the calls concurrently and returns the results in call order.
func (e Executor) Execute(ctx context.Context, calls []domain.ToolCall, batchID string) []domain.Message {
	results := make([]domain.Message, len(calls))
	if len(calls) == 0 {
		return results
	}

	if batchID == "" {
		batchID = fmt.Sprintf("%s_%s", TOOL_BATCH_PREFIX, uuid.NewString())
	}

	spanCtx, span := telemetry.StartWithAttributes(ctx,
		attribute.String("batch_id", batchID),
		attribute.Int("tool_calls", len(calls)),
	)
	defer span.End()

	e.logger.DebugContext(spanCtx, "Executing tool calls", "batch_id", batchID, "count", len(calls))

	// A plain group: a failing call must not cancel its peers.
	var g errgroup.Group
	g.SetLimit(e.maxConcurrency)
	for i, call := range calls {
		g.Go(func() error {
			results[i] = e.executeOne(spanCtx, i, call, batchID)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (e Executor) executeOne(ctx context.Context, index int, call domain.ToolCall, batchID string) domain.Message {
	start := time.Now()

	content, err := e.run(ctx, call)
	errorType := ""
	if err != nil {
		errorType = err.ErrorType
		content = errorContent(err)
		e.logger.WarnContext(ctx, "Tool call failed",
			"batch_id", batchID,
			"call_index", index,
			"tool_call_id", call.ID,
			"tool_name", call.Function,
			"error_type", err.ErrorType,
			"error", err.Error(),
		)
	} else {
		e.logger.DebugContext(ctx, "Tool call succeeded",
			"batch_id", batchID,
			"call_index", index,
			"tool_call_id", call.ID,
			"tool_name", call.Function,
			"result", common.Preview(content, common.LOG_PREVIEW_LENGTH),
		)
	}

	RecordToolCall(ctx, call.Function, errorType, time.Since(start))
	return domain.NewToolResultMessage(call.ID, call.Function, content)
}

func (e Executor) run(ctx context.Context, call domain.ToolCall) (string, *domain.ToolExecutionErr) {
	args, err := parseArguments(call.Function, call.Arguments)
	if err != nil {
		return "", err
	}

	fn, lookupErr := e.registry.ToolFunc(call.Function)
	if lookupErr != nil {
		return "", domain.NewToolExecutionErr(call.Function, ERROR_TYPE_UNKNOWN_TOOL, lookupErr.Error(), lookupErr)
	}

	value, callErr := invoke(ctx, fn, args)
	if callErr != nil {
		return "", domain.NewToolExecutionErr(call.Function, ERROR_TYPE_TOOL_EXECUTION, callErr.Error(), callErr)
	}

	return Serialize(value), nil
}

// parseArguments decodes the raw argument text. Blank text is invalid JSON.
func parseArguments(toolName, raw string) (map[string]any, *domain.ToolExecutionErr) {
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, domain.NewToolExecutionErr(
			toolName,
			ERROR_TYPE_JSON_DECODE,
			fmt.Sprintf("Invalid JSON in tool arguments: %s", err),
			err,
		)
	}

	args, ok := decoded.(map[string]any)
	if !ok {
		return nil, domain.NewToolExecutionErr(
			toolName,
			ERROR_TYPE_TYPE,
			fmt.Sprintf("Tool arguments must be a dictionary, got %s", jsonKind(decoded)),
			nil,
		)
	}
	return args, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func invoke(ctx context.Context, fn domain.ToolFunc, args map[string]any) (value any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("tool panicked: %v", rec)
		}
	}()
	return fn(ctx, args)
}

type errorResult struct {
	Error     string `json:"error"`
	ErrorType string `json:"error_type"`
	ToolName  string `json:"tool_name"`
}

func errorContent(err *domain.ToolExecutionErr) string {
	return common.SafeJSON(errorResult{
		Error:     err.Error(),
		ErrorType: err.ErrorType,
		ToolName:  err.ToolName,
	})
}

// IsErrorResult reports whether a tool result content is an error produced by the Executor.
func IsErrorResult(content string) bool {
	var res errorResult
	if err := json.Unmarshal([]byte(content), &res); err != nil {
		return false
	}
	return res.Error != "" && res.ErrorType != ""
}

var _ domain.ToolExecutor = Executor{}

// InitToolExecutor registers the Executor in the dependency container.
type InitToolExecutor struct {
	Logger         *slog.Logger        `resolve:""`
	Registry       domain.ToolRegistry `resolve:""`
	MaxConcurrency int                 `config:"TOOL_MAX_CONCURRENCY" default:"8"`
}

// Initialize registers the Executor as domain.ToolExecutor.
func (i InitToolExecutor) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ToolExecutor](NewExecutor(i.Registry, i.Logger, i.MaxConcurrency))
	return ctx, nil
}
