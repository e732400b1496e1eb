package providers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"watd/internal/structures"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.SetDefault("tables.activityFile", "activity_log.csv")
	viper.SetDefault("tables.ordersFile", "orders_log.csv")
	viper.SetDefault("tables.combinedFile", "combined_log.csv")
	viper.SetDefault("tracker.eventBuffer", 1024)
	viper.SetDefault("cache.ttl", "5s")
	viper.SetDefault("orders.baseUrl", "https://api.shipstation.com/v2")
	viper.SetDefault("orders.morningAt", "05:30")
	viper.SetDefault("orders.afternoonAt", "16:15")
	viper.SetDefault("orders.timeout", "30s")
	viper.SetDefault("orders.weekdays", []string{"Monday", "Tuesday", "Wednesday", "Thursday"})

	viper.BindEnv("logger.level", "WATD_LOG_LEVEL")
	viper.BindEnv("tracker.flushInterval", "WATD_FLUSH_INTERVAL")
	viper.BindEnv("tracker.rolloverCheckInterval", "WATD_ROLLOVER_CHECK_INTERVAL")
	viper.BindEnv("cache.enabled", "WATD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "WATD_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	if conf.Orders.Enabled {
		if conf.Orders.EnvFile != "" {
			// Best effort: the key may also come straight from the environment.
			_ = godotenv.Load(conf.Orders.EnvFile)
		}
		conf.Orders.ApiKey = strings.TrimSpace(os.Getenv("SHIPSTATION_API_KEY"))
		if conf.Orders.ApiKey == "" {
			return nil, fmt.Errorf("orders polling enabled but SHIPSTATION_API_KEY is not set")
		}
	}

	conf.AppName = "WarehouseActivityTracker"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
