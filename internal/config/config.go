package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	Port     string
	LogLevel slog.Level

	SearchLatency   time.Duration
	ResultsLatency  time.Duration
	SearchTimeout   time.Duration
	BookingLatency  time.Duration
	GeneratorSeed   uint64
	ShutdownTimeout time.Duration

	RateLimitEnabled bool
	RateLimitBackend string
	RateLimitRPS     float64
	RateLimitBurst   int
	RateLimitWindow  time.Duration

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")

	v.SetDefault("search.latency", "500ms")
	v.SetDefault("search.results_latency", "1500ms")
	v.SetDefault("search.timeout", "5s")
	v.SetDefault("booking.latency", "1s")
	v.SetDefault("generator.seed", 0)

	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.backend", BackendMemory)
	v.SetDefault("ratelimit.rps", 10)
	v.SetDefault("ratelimit.burst", 20)
	v.SetDefault("ratelimit.window", "1s")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("shutdown.timeout", "10s")
}

// Load reads defaults, an optional config file, a .env file and the
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	v := viper.New()
	setDefaults(v)

	if path := os.Getenv("TRANSITBOOK_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/transitbook")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Debug("no config file found, using defaults and env vars")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log.level"))); err != nil {
		return nil, fmt.Errorf("bad log.level: %w", err)
	}

	backend := strings.ToLower(v.GetString("ratelimit.backend"))
	if backend != BackendMemory && backend != BackendRedis {
		return nil, fmt.Errorf("bad ratelimit.backend %q: must be %s or %s", backend, BackendMemory, BackendRedis)
	}

	cfg := &Config{
		Port:             v.GetString("port"),
		LogLevel:         level,
		GeneratorSeed:    v.GetUint64("generator.seed"),
		RateLimitEnabled: v.GetBool("ratelimit.enabled"),
		RateLimitBackend: backend,
		RateLimitRPS:     v.GetFloat64("ratelimit.rps"),
		RateLimitBurst:   v.GetInt("ratelimit.burst"),
		RedisHost:        v.GetString("redis.host"),
		RedisPort:        v.GetString("redis.port"),
		RedisPassword:    v.GetString("redis.password"),
		RedisDB:          v.GetInt("redis.db"),
	}

	durations := map[string]*time.Duration{
		"search.latency":         &cfg.SearchLatency,
		"search.results_latency": &cfg.ResultsLatency,
		"search.timeout":         &cfg.SearchTimeout,
		"booking.latency":        &cfg.BookingLatency,
		"ratelimit.window":       &cfg.RateLimitWindow,
		"shutdown.timeout":       &cfg.ShutdownTimeout,
	}

	for key, dst := range durations {
		d, err := time.ParseDuration(v.GetString(key))
		if err != nil {
			return nil, fmt.Errorf("bad %s: %w", key, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("bad %s: must not be negative", key)
		}
		*dst = d
	}

	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, errors.New("ratelimit.rps and ratelimit.burst must be positive")
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
