package http

import (
	"net/http"
	"time"

	"github.com/cleitonmarx/moneypilot/internal/adapters/inbound/http/gen"
)

// Health reports that the service is up.
func (api MoneyPilotServer) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, gen.HealthResp{
		Status:    "healthy",
		AppName:   api.Settings.AppName,
		Version:   api.Settings.Version,
		Timestamp: api.TimeProvider.Now().UTC().Format(time.RFC3339),
		Debug:     api.Settings.Debug,
	})
}
