package config

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
)

// UNSET marks an optional setting that was not provided.
const UNSET = "-"

// Settings is the application configuration, built once at start and
// passed by value to the components that need it.
type Settings struct {
	AppName                  string
	Version                  string
	Debug                    bool
	LogLevel                 string
	APIPrefix                string
	CORSOrigins              []string
	LLMAPIKey                string
	LLMBaseURL               string
	LLMModelName             string
	LLMTimeout               time.Duration
	LLMMaxRetries            int
	AccessTokenExpireMinutes int
}

// FeatureSummary returns the non-secret settings worth logging at start.
func (s Settings) FeatureSummary() map[string]any {
	return map[string]any{
		"app_name":          s.AppName,
		"version":           s.Version,
		"debug":             s.Debug,
		"log_level":         s.LogLevel,
		"api_prefix":        s.APIPrefix,
		"cors_origins":      s.CORSOrigins,
		"llm_base_url":      s.LLMBaseURL,
		"llm_model":         s.LLMModelName,
		"llm_timeout":       s.LLMTimeout.String(),
		"llm_max_retries":   s.LLMMaxRetries,
		"llm_api_key_set":   s.LLMAPIKey != "",
		"token_expire_mins": s.AccessTokenExpireMinutes,
	}
}

// InitSettings reads the environment sourced settings and registers them.
type InitSettings struct {
	Logger                   *slog.Logger `resolve:""`
	AppName                  string       `config:"APP_NAME" default:"MoneyPilot"`
	Version                  string       `config:"APP_VERSION" default:"0.1.0"`
	Debug                    bool         `config:"DEBUG" default:"false"`
	LogLevel                 string       `config:"LOG_LEVEL" default:"INFO"`
	APIPrefix                string       `config:"API_PREFIX" default:"/api/v1"`
	CORSOrigins              string       `config:"CORS_ORIGINS" default:"http://localhost:3000"`
	LLMAPIKey                string       `config:"LLM_API_KEY" default:"-"`
	LLMBaseURL               string       `config:"LLM_API_BASE_URL" default:"https://api.openai.com/v1"`
	LLMModelName             string       `config:"LLM_MODEL_NAME" default:"gpt-4"`
	LLMTimeoutSeconds        int          `config:"LLM_TIMEOUT_SECONDS" default:"600"`
	LLMMaxRetries            int          `config:"LLM_MAX_RETRIES" default:"3"`
	AccessTokenExpireMinutes int          `config:"ACCESS_TOKEN_EXPIRE_MINUTES" default:"30"`
}

// Initialize builds the Settings and registers them in the dependency container.
func (i InitSettings) Initialize(ctx context.Context) (context.Context, error) {
	settings := i.Settings()
	depend.Register(settings)
	i.Logger.Info("Settings loaded", "features", settings.FeatureSummary())
	return ctx, nil
}

// Settings converts the raw configuration values into Settings.
func (i InitSettings) Settings() Settings {
	return Settings{
		AppName:                  i.AppName,
		Version:                  i.Version,
		Debug:                    i.Debug,
		LogLevel:                 strings.ToUpper(i.LogLevel),
		APIPrefix:                "/" + strings.Trim(i.APIPrefix, "/"),
		CORSOrigins:              splitList(i.CORSOrigins),
		LLMAPIKey:                optional(i.LLMAPIKey),
		LLMBaseURL:               strings.TrimRight(i.LLMBaseURL, "/"),
		LLMModelName:             i.LLMModelName,
		LLMTimeout:               time.Duration(i.LLMTimeoutSeconds) * time.Second,
		LLMMaxRetries:            i.LLMMaxRetries,
		AccessTokenExpireMinutes: i.AccessTokenExpireMinutes,
	}
}

func splitList(s string) []string {
	items := []string{}
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func optional(s string) string {
	if s == UNSET {
		return ""
	}
	return s
}
