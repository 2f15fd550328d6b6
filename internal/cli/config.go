package cli

import (
	"errors"
	"os"

	"github.com/mcoot/promoclaim-go/internal/factory"
	redisstorage "github.com/mcoot/promoclaim-go/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	StorageType string
	RedisURL    string
	Campaign    string
	Output      string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		StorageType: getEnvOrDefault("PROMOCLAIM_STORAGE", factory.StorageTypeRedis),
		RedisURL:    getEnvOrDefault("PROMOCLAIM_REDIS_URL", redisstorage.DefaultConfig().URL),
		Campaign:    os.Getenv("PROMOCLAIM_CAMPAIGN"),
		Output:      "text",
	}
}

// BuildApp wires an application against the configured storage backend
func (c *Config) BuildApp() (*factory.App, error) {
	fcfg := factory.Config{
		StorageType: c.StorageType,
	}
	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fcfg.RedisConfig = &redisCfg
	}
	return factory.New(fcfg)
}

// RequireCampaign validates that a campaign namespace was provided
func (c *Config) RequireCampaign() error {
	if c.Campaign == "" {
		return errors.New("a campaign is required (--campaign or PROMOCLAIM_CAMPAIGN)")
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
