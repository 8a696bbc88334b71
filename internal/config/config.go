package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// LoggingConfig controls log output
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// RedisConfig points at the cache under test
type RedisConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	DB   int    `mapstructure:"db"`
}

// ProbeConfig controls how latency measurements are taken
type ProbeConfig struct {
	BenchmarkRequests int           `mapstructure:"benchmark_requests"`
	BenchmarkClients  int           `mapstructure:"benchmark_clients"`
	Timeout           time.Duration `mapstructure:"timeout"`
	CacheTTL          time.Duration `mapstructure:"cache_ttl"`
	SampleInterval    time.Duration `mapstructure:"sample_interval"`
}

// Config holds all configuration for the performance monitor
type Config struct {
	Service      string        `mapstructure:"service"`
	Port         int           `mapstructure:"port"`
	DatabasePath string        `mapstructure:"database_path"`
	Redis        RedisConfig   `mapstructure:"redis"`
	Probe        ProbeConfig   `mapstructure:"probe"`
	Logging      LoggingConfig `mapstructure:"logging"`
}

// RedisAddr returns the host:port address of the cache under test
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// Load reads configuration from an optional yaml file, environment
// variables and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	// env overrides: REDIS_HOST, REDIS_PORT etc.
	v.AutomaticEnv()
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.db", "REDIS_DB")

	// Defaults
	v.SetDefault("service", "ForgeOS")
	v.SetDefault("port", 9054)
	v.SetDefault("database_path", "perfmon.db")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("probe.benchmark_requests", 1000)
	v.SetDefault("probe.benchmark_clients", 10)
	v.SetDefault("probe.timeout", 5*time.Second)
	v.SetDefault("probe.cache_ttl", 10*time.Second)
	v.SetDefault("probe.sample_interval", 30*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database path cannot be empty")
	}
	if c.Redis.Host == "" {
		return fmt.Errorf("redis host cannot be empty")
	}
	if c.Probe.BenchmarkRequests <= 0 {
		return fmt.Errorf("benchmark request count must be positive")
	}
	if c.Probe.Timeout <= 0 {
		return fmt.Errorf("probe timeout must be positive")
	}
	if c.Probe.SampleInterval <= 0 {
		return fmt.Errorf("sample interval must be positive")
	}
	return nil
}
