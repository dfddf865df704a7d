// internal/app/features/health/handler.go
package health

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/stemboard/internal/app/admin"
	metricsstore "github.com/dalemusser/stemboard/internal/app/store/metrics"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Ctrl *admin.Controller
	Log  *zap.Logger
}

// NewHandler constructs a health Handler over the dashboard controller.
func NewHandler(ctrl *admin.Controller, logger *zap.Logger) *Handler {
	return &Handler{
		Ctrl: ctrl,
		Log:  logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string     `json:"status"`
	Counts  countsJSON `json:"counts"`
	Unread  int        `json:"unread"`
	Message string     `json:"message,omitempty"`
}

type countsJSON struct {
	Schools  int `json:"schools"`
	Events   int `json:"events"`
	Team     int `json:"team"`
	Messages int `json:"messages"`
}

func toJSON(c metricsstore.Counts) countsJSON {
	return countsJSON{Schools: c.Schools, Events: c.Events, Team: c.Team, Messages: c.Messages}
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "counts":{"schools":3,"events":3,"team":3,"messages":3}, "unread":2 }
//
// When the displayed counters disagree with the collections: 503 and
//
//	{ "status":"error", "counts":{…}, "message":"Dashboard counters are stale" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	counts, shown, drawn := h.Ctrl.CounterCheck()
	resp := healthResponse{
		Status: "ok",
		Counts: toJSON(counts),
		Unread: h.Ctrl.Stats().Unread,
	}

	if drawn {
		if shown != counts {
			h.Log.Error("health-check: counters stale",
				zap.Int("schools", counts.Schools),
				zap.Int("shown_schools", shown.Schools),
				zap.Int("messages", counts.Messages),
				zap.Int("shown_messages", shown.Messages))
			w.WriteHeader(http.StatusServiceUnavailable)
			resp.Status = "error"
			resp.Message = "Dashboard counters are stale"
		}
	}

	_ = json.NewEncoder(w).Encode(resp)
}
