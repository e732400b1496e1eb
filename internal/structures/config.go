package structures

import (
	"net/http"
	"path/filepath"
	"time"
)

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
	FetchMode  string
}

type Route struct {
	Url     string
	Handler http.Handler
}

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type TablesConfig struct {
	Dir          string `yaml:"dir" validate:"required|unixPath"`
	ActivityFile string `yaml:"activityFile"`
	OrdersFile   string `yaml:"ordersFile"`
	CombinedFile string `yaml:"combinedFile"`
	ArchiveDir   string `yaml:"archiveDir"`
}

type TrackerConfig struct {
	FlushInterval         time.Duration `yaml:"flushInterval" validate:"required"`
	RolloverCheckInterval time.Duration `yaml:"rolloverCheckInterval" validate:"required"`
	EventBuffer           int           `yaml:"eventBuffer"`
}

type OrdersConfig struct {
	Enabled     bool          `yaml:"enabled"`
	BaseUrl     string        `yaml:"baseUrl"`
	EnvFile     string        `yaml:"envFile"`
	MorningAt   string        `yaml:"morningAt"`
	AfternoonAt string        `yaml:"afternoonAt"`
	Timeout     time.Duration `yaml:"timeout"`
	Weekdays    []string      `yaml:"weekdays"`
	ApiKey      string        `yaml:"-"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	Tracker   TrackerConfig `yaml:"tracker"`
	Tables    TablesConfig  `yaml:"tables"`
	Orders    OrdersConfig  `yaml:"orders"`
	WebServer Server        `yaml:"webServer"`
	Logger    LoggerConfig  `yaml:"logger"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
}

func (c *Config) ActivityPath() string {
	return filepath.Join(c.Tables.Dir, c.Tables.ActivityFile)
}

func (c *Config) OrdersPath() string {
	return filepath.Join(c.Tables.Dir, c.Tables.OrdersFile)
}

func (c *Config) CombinedPath() string {
	return filepath.Join(c.Tables.Dir, c.Tables.CombinedFile)
}
