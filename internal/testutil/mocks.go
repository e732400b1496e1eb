package testutil

import (
	"sync"
	"time"
	"watd/internal/models"
	"watd/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// HasLevel reports whether any entry was recorded at the given level.
func (m *MockLogger) HasLevel(level string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Logs {
		if e.Level == level {
			return true
		}
	}
	return false
}

// MockActivityService implements services.ActivityServiceInterface with a
// real ActiveDay underneath but synchronous event delivery.
type MockActivityService struct {
	Day       *models.ActiveDay
	Started   bool
	Stopped   bool
	Seeded    []SeedCall
	Rollovers []string
}

type SeedCall struct {
	Date  string
	First string
	Last  string
}

func NewMockActivityService(now time.Time) *MockActivityService {
	return &MockActivityService{Day: models.NewActiveDay(now)}
}

func (m *MockActivityService) RecordEvent(t time.Time) { m.Day.Observe(t) }
func (m *MockActivityService) Start()                  { m.Started = true }
func (m *MockActivityService) Stop()                   { m.Stopped = true }
func (m *MockActivityService) Snapshot() models.DaySnapshot {
	return m.Day.Snapshot()
}
func (m *MockActivityService) Rollover(newDate string) models.DaySnapshot {
	m.Rollovers = append(m.Rollovers, newDate)
	return m.Day.Rollover(newDate)
}
func (m *MockActivityService) CurrentDate() string { return m.Day.Date() }
func (m *MockActivityService) SeedDay(date, first, last string) {
	m.Seeded = append(m.Seeded, SeedCall{Date: date, First: first, Last: last})
	m.Day.Seed(date, first, last)
}
func (m *MockActivityService) PendingEvents() int    { return 0 }
func (m *MockActivityService) EventsReceived() int64 { return 0 }

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

// MockMetrics implements providers.MetricsProviderInterface and records counts.
type MockMetrics struct {
	mu         sync.Mutex
	Requests   int
	Events     int
	Flushes    int
	TableRows  map[string]int
	FetchCalls map[string]int // "mode/status"
	CacheHits  int
	CacheMiss  int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		TableRows:  make(map[string]int),
		FetchCalls: make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncEventsReceived() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events++
}
func (m *MockMetrics) ObserveFlushDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Flushes++
}
func (m *MockMetrics) SetTableRows(table string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TableRows[table] = count
}
func (m *MockMetrics) IncFetchTotal(mode, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchCalls[mode+"/"+status]++
}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMiss++
}

func (m *MockMetrics) FetchCount(mode, status string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.FetchCalls[mode+"/"+status]
}
