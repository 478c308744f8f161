package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider is an implementation of domain.CurrentTimeProvider using the standard time package.
// Times are reported in UTC.
type CurrentTimeProvider struct{}

// Now returns the current UTC time.
func (ts CurrentTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// InitCurrentTimeProvider registers the CurrentTimeProvider in the dependency container.
type InitCurrentTimeProvider struct{}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](CurrentTimeProvider{})
	return ctx, nil
}
