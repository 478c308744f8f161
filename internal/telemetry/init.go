package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

const SERVICE_NAME = "moneypilot"

// InitOpenTelemetry sets up OpenTelemetry tracing and metrics exporting.
// An endpoint set to "-" disables the corresponding provider.
type InitOpenTelemetry struct {
	Logger          *slog.Logger `resolve:""`
	TracesEndpoint  string       `config:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT" default:"-"`
	MetricsEndpoint string       `config:"OTEL_EXPORTER_OTLP_METRICS_ENDPOINT" default:"-"`
	tp              *sdktrace.TracerProvider
	se              sdktrace.SpanExporter
	mp              *sdkmetric.MeterProvider
	me              sdkmetric.Exporter
}

// Initialize sets up the propagator and the enabled providers.
func (o *InitOpenTelemetry) Initialize(ctx context.Context) (context.Context, error) {
	otel.SetTextMapPropagator(newPropagator())

	res, err := newAppResource(ctx)
	if err != nil {
		return ctx, err
	}

	if o.TracesEndpoint != "-" {
		o.tp, o.se, err = newTracerProvider(ctx, res)
		if err != nil {
			return ctx, err
		}
		otel.SetTracerProvider(o.tp)
	}

	if o.MetricsEndpoint != "-" {
		o.mp, o.me, err = newMeterProvider(ctx, res)
		if err != nil {
			return ctx, err
		}
		otel.SetMeterProvider(o.mp)
	}

	return ctx, nil
}

// Close shuts down the providers and exporters that were started.
func (o *InitOpenTelemetry) Close() {
	cancelCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if o.tp != nil {
		if err := o.tp.Shutdown(cancelCtx); err != nil {
			o.Logger.Error("Error shutting down tracer provider", "error", err)
		}
		if err := o.se.Shutdown(cancelCtx); err != nil {
			o.Logger.Error("Error shutting down span exporter", "error", err)
		}
	}
	if o.mp != nil {
		if err := o.mp.Shutdown(cancelCtx); err != nil {
			o.Logger.Error("Error shutting down meter provider", "error", err)
		}
		if err := o.me.Shutdown(cancelCtx); err != nil {
			o.Logger.Error("Error shutting down meter exporter", "error", err)
		}
	}
}

// InitHttpClient registers an *http.Client instrumented with OpenTelemetry.
// The retryable transport only retries gateway failures (502, 503, 504);
// rate limits, timeouts and connection errors are surfaced to the caller,
// whose retry policy classifies them.
type InitHttpClient struct {
	Logger   *slog.Logger `resolve:""`
	RetryMax int          `config:"HTTP_CLIENT_RETRY_MAX" default:"2"`
}

func (i InitHttpClient) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewHttpClient(i.Logger, i.RetryMax))
	return ctx, nil
}

// NewHttpClient builds the instrumented retryable HTTP client.
func NewHttpClient(logger *slog.Logger, retryMax int) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryWaitMax = 5 * time.Second
	retryClient.RetryMax = retryMax
	retryClient.CheckRetry = gatewayRetryPolicy
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil
	if logger != nil {
		retryClient.Logger = logger
	}

	stdClient := retryClient.StandardClient()
	stdClient.Transport = otelhttp.NewTransport(
		stdClient.Transport,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
	)
	return stdClient
}

// newPropagator creates a new composite text map propagator.
func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

func newAppResource(ctx context.Context) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(SERVICE_NAME),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

// gatewayRetryPolicy retries only responses signalling an unavailable
// upstream. Transport errors are returned untouched for classification.
func gatewayRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil || resp == nil {
		return false, err
	}

	switch resp.StatusCode {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true, nil
	}
	return false, nil
}
