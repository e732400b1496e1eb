package controllers

import (
	"io"
	"net/http"
	"time"
	"watd/internal/models"
	"watd/internal/providers"
	"watd/internal/services"
	"watd/internal/structures"
	"watd/internal/tracker"

	json "github.com/goccy/go-json"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	config   *structures.Config
	logger   providers.Logger
	activity services.ActivityServiceInterface
	files    *tracker.FileManager
	cache    providers.CacheProviderInterface
	metrics  providers.MetricsProviderInterface
}

func NewApiController(config *structures.Config, logger providers.Logger, activity services.ActivityServiceInterface, files *tracker.FileManager, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) *ApiController {
	return &ApiController{
		config:   config,
		logger:   logger,
		activity: activity,
		files:    files,
		cache:    cache,
		metrics:  metrics,
	}
}

type eventPayload struct {
	Ts string `json:"ts"`
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		ac.logger.Errorf(providers.TypeApp, "Error while serving %s: %s", cacheKey, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// parseEventTime accepts RFC 3339 or a zone-less wall-clock stamp, which is
// what the input-hook collaborator sends. Zone-less stamps are local time.
func parseEventTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(time.Local), nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", value, time.Local)
}

// ReceiveEvent accepts an activity event. The body may carry an explicit
// timestamp; an empty body means "now".
func (ac *ApiController) ReceiveEvent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload eventPayload
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil && err != io.EOF {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ts := time.Now()
	if payload.Ts != "" {
		ts, err = parseEventTime(payload.Ts)
		if err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
	}

	ac.activity.RecordEvent(ts)
	ac.metrics.IncEventsReceived()
	w.WriteHeader(http.StatusAccepted)
}

func (ac *ApiController) serveTable(w http.ResponseWriter, cacheKey, path string, schema models.Schema) {
	ac.serveFromCacheOrCompute(w, cacheKey, func() (any, error) {
		records, err := ac.files.LoadTable(path, schema)
		if err != nil {
			return nil, err
		}
		rows := make([]map[string]string, 0, len(records))
		for _, rec := range records {
			row := make(map[string]string, len(schema))
			row[models.ColDate] = rec.Date
			for _, col := range schema[1:] {
				row[col] = rec.Get(col)
			}
			rows = append(rows, row)
		}
		return rows, nil
	})
}

func (ac *ApiController) GetActivity(w http.ResponseWriter, r *http.Request) {
	ac.serveTable(w, "activity", ac.config.ActivityPath(), models.ActivitySchema)
}

func (ac *ApiController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ac.serveTable(w, "orders", ac.config.OrdersPath(), models.OrdersSchema)
}

func (ac *ApiController) GetCombined(w http.ResponseWriter, r *http.Request) {
	ac.serveTable(w, "combined", ac.config.CombinedPath(), models.CombinedSchema)
}
