package common

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/cleitonmarx/moneypilot/internal/domain"
)

const (
	// RESPONSE_PREVIEW_LENGTH bounds the response text attached to parse failures.
	RESPONSE_PREVIEW_LENGTH = 1000
	// LOG_PREVIEW_LENGTH bounds response text written to logs.
	LOG_PREVIEW_LENGTH = 200
)

var (
	fencedBlockRe   = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	trailingBraceRe = regexp.MustCompile(`,\s*}`)
	trailingBrackRe = regexp.MustCompile(`,\s*]`)
	jsonSpanRe      = regexp.MustCompile(`(?s)[{\[].*[}\]]`)
)

// CleanJSONResponse recovers a JSON value from a free-form LLM response.
//
// Attempts, first success wins:
//  1. the whole text;
//  2. the first fenced code block, optionally tagged json;
//  3. the first {...} or [...] span after trailing commas are stripped.
//
// The span search is greedy and leftmost, so with several JSON-like
// substrings the outermost leftmost span is used.
func CleanJSONResponse(response string) (any, error) {
	if response == "" {
		return nil, domain.NewLLMQueryErr("Empty response received", nil, nil)
	}

	var out any
	if err := json.Unmarshal([]byte(response), &out); err == nil {
		return out, nil
	}

	if m := fencedBlockRe.FindStringSubmatch(response); m != nil {
		err := json.Unmarshal([]byte(m[1]), &out)
		if err == nil {
			return out, nil
		}
		slog.Debug("Failed to parse JSON from markdown block",
			"error", err,
			"response_preview", Preview(response, LOG_PREVIEW_LENGTH),
		)
	}

	cleaned := trailingBraceRe.ReplaceAllString(response, "}")
	cleaned = trailingBrackRe.ReplaceAllString(cleaned, "]")
	if span := jsonSpanRe.FindString(cleaned); span != "" {
		err := json.Unmarshal([]byte(span), &out)
		if err == nil {
			return out, nil
		}
		slog.Debug("Failed to parse JSON after cleaning attempts",
			"error", err,
			"response_preview", Preview(response, LOG_PREVIEW_LENGTH),
		)
	}

	return nil, domain.NewLLMQueryErr(
		"Failed to parse JSON response after all attempts",
		map[string]any{"response": Preview(response, RESPONSE_PREVIEW_LENGTH)},
		nil,
	)
}

// SafeJSON encodes v as JSON. Values that cannot be encoded fall back to the
// JSON string of their default format, so the result is always valid JSON.
func SafeJSON(v any) string {
	b, err := json.Marshal(v)
	if err == nil {
		return string(b)
	}
	b, err = json.Marshal(fmt.Sprint(v))
	if err != nil {
		return `""`
	}
	return string(b)
}
