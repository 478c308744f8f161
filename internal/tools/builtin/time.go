package builtin

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/moneypilot/internal/tools"
)

type currentTimeArgs struct {
	Timezone string `json:"timezone,omitempty" jsonschema:"IANA timezone name, for example America/Sao_Paulo. Defaults to UTC"`
}

type currentTimeResult struct {
	Timezone string `json:"timezone"`
	Datetime string `json:"datetime"`
	Date     string `json:"date"`
	Weekday  string `json:"weekday"`
}

// CurrentTimeTool reports the current date and time in a timezone.
func CurrentTimeTool(timeProvider domain.CurrentTimeProvider) tools.Provider {
	return tools.NewTypedTool(
		"current_time",
		"Get the current date and time. Use it before reasoning about relative dates.",
		func(_ context.Context, args currentTimeArgs) (any, error) {
			loc, err := loadLocation(args.Timezone)
			if err != nil {
				return nil, err
			}
			now := timeProvider.Now().In(loc)
			return currentTimeResult{
				Timezone: loc.String(),
				Datetime: now.Format(time.RFC3339),
				Date:     now.Format(time.DateOnly),
				Weekday:  now.Weekday().String(),
			}, nil
		},
	)
}

type parseDateArgs struct {
	Text     string `json:"text" jsonschema:"Text containing a date, for example 'next friday' or 'March 3, 2026'"`
	Timezone string `json:"timezone,omitempty" jsonschema:"IANA timezone used to resolve relative dates. Defaults to UTC"`
}

type parseDateResult struct {
	Input string `json:"input"`
	Date  string `json:"date"`
}

// ParseDateTool extracts a calendar date from free text.
func ParseDateTool(timeProvider domain.CurrentTimeProvider) tools.Provider {
	return tools.NewTypedTool(
		"parse_date",
		"Extract a calendar date (YYYY-MM-DD) from text. Understands ISO dates, month names, today, tomorrow, yesterday and next <weekday>.",
		func(_ context.Context, args parseDateArgs) (any, error) {
			loc, err := loadLocation(args.Timezone)
			if err != nil {
				return nil, err
			}
			date, ok := ExtractDate(args.Text, timeProvider.Now(), loc)
			if !ok {
				return nil, fmt.Errorf("no date found in %q", args.Text)
			}
			return parseDateResult{
				Input: args.Text,
				Date:  date.Format(time.DateOnly),
			}, nil
		},
	)
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q", name)
	}
	return loc, nil
}
