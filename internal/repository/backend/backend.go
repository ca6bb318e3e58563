// Package backend opens the record store selected by configuration.
package backend

import (
	"alcyxob/training-tracker/internal/config"
	"alcyxob/training-tracker/internal/repository"
	"alcyxob/training-tracker/internal/repository/file"
	"alcyxob/training-tracker/internal/repository/mongo"
	redisstore "alcyxob/training-tracker/internal/repository/redis"
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const indexTimeout = time.Minute

// Open connects the configured backend. When the document store cannot be reached the
// local file store is used instead, so the tracker keeps working offline.
func Open(ctx context.Context, cfg config.Config) (repository.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendMongo:
		st, err := openMongo(ctx, cfg.Database)
		if err == nil {
			return st, nil
		}
		log.Warnf("mongo unavailable (%s), falling back to file store at %s", err, cfg.File.Path)
		return openFile(cfg.File)
	case config.BackendRedis:
		return openRedis(ctx, cfg.Redis)
	case config.BackendFile:
		return openFile(cfg.File)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func openMongo(ctx context.Context, cfg config.DatabaseConfig) (repository.Store, error) {
	client, err := mongo.ConnectDB(ctx, cfg.URI)
	if err != nil {
		return nil, err
	}
	st := mongo.NewStore(client, cfg.Name)

	idxCtx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()
	if err := st.EnsureIndexes(idxCtx); err != nil {
		log.Warnf("ensure workout indexes: %s", err)
	}

	log.Infof("using mongo store, database %s", cfg.Name)
	return st, nil
}

func openRedis(ctx context.Context, cfg config.RedisConfig) (repository.Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	log.Infof("using redis store at %s", cfg.Addr)
	return redisstore.NewStore(client, cfg.KeyPrefix), nil
}

func openFile(cfg config.FileConfig) (repository.Store, error) {
	st, err := file.Open(cfg.Path, cfg.TokenPath)
	if err != nil {
		return nil, err
	}
	log.Infof("using file store at %s", cfg.Path)
	return st, nil
}
