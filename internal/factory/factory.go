package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/promoclaim-go/internal/dependencies/clock"
	"github.com/mcoot/promoclaim-go/internal/dependencies/random"
	"github.com/mcoot/promoclaim-go/internal/services/adminauth"
	"github.com/mcoot/promoclaim-go/internal/services/claim"
	"github.com/mcoot/promoclaim-go/internal/services/pool"
	"github.com/mcoot/promoclaim-go/internal/services/report"
	"github.com/mcoot/promoclaim-go/internal/storage"
	"github.com/mcoot/promoclaim-go/internal/storage/memory"
	redisstorage "github.com/mcoot/promoclaim-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	ClaimService  *claim.Service
	PoolService   *pool.Service
	ReportService *report.Service
	AdminAuth     *adminauth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// AdminPassword is the shared secret for admin surfaces.
	// If empty, admin endpoints reject every request.
	AdminPassword string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	adminAuth, err := adminauth.New(cfg.AdminPassword)
	if err != nil {
		return nil, err
	}

	return newWithDependencies(store, clock.New(), random.New(), adminAuth, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, adminAuth *adminauth.Service, logger *slog.Logger) *App {
	return &App{
		Storage:       store,
		Clock:         clk,
		Random:        rnd,
		ClaimService:  claim.New(store, clk, rnd, logger),
		PoolService:   pool.New(store, rnd, logger),
		ReportService: report.New(store, rnd),
		AdminAuth:     adminAuth,
	}
}
