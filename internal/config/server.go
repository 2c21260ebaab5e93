package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Cache backends accepted by ServerConfig.Cache.Backend.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// ServerConfig holds API server settings.
type ServerConfig struct {
	Port        string      `mapstructure:"port"`
	Env         string      `mapstructure:"env"`
	StaticDir   string      `mapstructure:"static_dir"`
	CORSOrigins []string    `mapstructure:"cors_origins"`
	RateLimit   RateLimit   `mapstructure:"rate_limit"`
	Cache       CacheConfig `mapstructure:"cache"`
}

// RateLimit configures the per-client token bucket: Capacity requests,
// refilled in full every Window. Capacity 0 disables it.
type RateLimit struct {
	Capacity int           `mapstructure:"capacity"`
	Window   time.Duration `mapstructure:"window"`
}

type CacheConfig struct {
	Backend       string        `mapstructure:"backend"`
	TTL           time.Duration `mapstructure:"ttl"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
}

func (c ServerConfig) Production() bool {
	return c.Env == "production"
}

// LoadServer reads server settings from an optional file and the environment.
// Env var overrides use prefix DEBTPLAN_, e.g. DEBTPLAN_CACHE_BACKEND=redis.
// The file is taken from DEBTPLAN_CONFIG when path is empty.
func LoadServer(path string) (ServerConfig, error) {
	v := viper.New()

	// default values
	v.SetDefault("port", "8080")
	v.SetDefault("env", "development")
	v.SetDefault("static_dir", "./web/dist")
	v.SetDefault("cors_origins", []string{"*"})
	v.SetDefault("rate_limit.capacity", 60)
	v.SetDefault("rate_limit.window", time.Minute)
	v.SetDefault("cache.backend", CacheMemory)
	v.SetDefault("cache.ttl", time.Hour)
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)

	if path == "" {
		path = os.Getenv("DEBTPLAN_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return ServerConfig{}, fmt.Errorf("read server config: %w", err)
		}
	}

	v.SetEnvPrefix("DEBTPLAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var c ServerConfig
	if err := v.Unmarshal(&c); err != nil {
		return ServerConfig{}, fmt.Errorf("unmarshal server config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return ServerConfig{}, err
	}
	return c, nil
}

func (c ServerConfig) Validate() error {
	switch c.Cache.Backend {
	case CacheMemory, CacheRedis, CacheNone:
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	if c.RateLimit.Capacity < 0 {
		return fmt.Errorf("rate_limit.capacity must be >= 0")
	}
	if c.RateLimit.Capacity > 0 && c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be > 0")
	}
	return nil
}
