package kvstore

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendLevelDB  = "leveldb"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

// Options selects and configures a backend.
type Options struct {
	Backend       string
	LevelDBPath   string
	Redis         RedisOptions
	PostgresDSN   string
	MongoURI      string
	MongoDatabase string
}

// Open builds the store named by opts.Backend.
func Open(ctx context.Context, opts Options, logger *log.Logger) (KeyValueStore, error) {
	switch opts.Backend {
	case "", BackendMemory:
		logger.Println("Using in-memory store")
		return NewMemoryStore(), nil
	case BackendLevelDB:
		return OpenLevelDB(opts.LevelDBPath, logger)
	case BackendRedis:
		ropts := opts.Redis
		if ropts.MaxRetries == 0 {
			ropts.MaxRetries = 5
		}
		if ropts.RetryDelay == 0 {
			ropts.RetryDelay = 5 * time.Second
		}
		return ConnectRedis(ctx, ropts, logger)
	case BackendPostgres:
		return OpenPostgres(opts.PostgresDSN, logger)
	case BackendMongo:
		return ConnectMongo(ctx, opts.MongoURI, opts.MongoDatabase, logger)
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}
