package controllers

import (
	"fmt"
	"net/http"
	"time"
	"watd/internal/services"

	json "github.com/goccy/go-json"
)

type HealthController struct {
	activity  services.ActivityServiceInterface
	startTime time.Time
}

type healthResponse struct {
	Status         string  `json:"status"`
	Uptime         string  `json:"uptime"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
	CurrentDate    string  `json:"current_date"`
	PendingEvents  int     `json:"pending_events"`
	EventsReceived int64   `json:"events_received"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:         "ok",
		Uptime:         formatDuration(uptime),
		UptimeSeconds:  uptime.Seconds(),
		CurrentDate:    hc.activity.CurrentDate(),
		PendingEvents:  hc.activity.PendingEvents(),
		EventsReceived: hc.activity.EventsReceived(),
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(activity services.ActivityServiceInterface) *HealthController {
	return &HealthController{
		activity:  activity,
		startTime: time.Now(),
	}
}
