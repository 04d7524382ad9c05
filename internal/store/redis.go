package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/qiyin-tech/expload/pkg/expload"
)

// RedisStore implements expload.Store against a single Redis server using
// HSET. One connection per invocation, opened at command start and held
// until the command returns.
type RedisStore struct {
	client *redis.Client
	logger expload.Logger
}

// Connect creates a Redis client for addr and verifies the connection with
// a PING so a bad address or credential fails before any file is read.
func Connect(ctx context.Context, addr, password string, logger expload.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %v: %w", addr, err, expload.ErrConnectionFailed)
	}

	logger.Verbose("Connected to redis at %s", addr)
	return &RedisStore{client: client, logger: logger}, nil
}

// SetField writes one field into the named hash.
func (s *RedisStore) SetField(ctx context.Context, key, field, value string) error {
	if err := s.client.HSet(ctx, key, field, value).Err(); err != nil {
		return fmt.Errorf("hset %s %s: %v: %w", key, field, err, expload.ErrWriteFailed)
	}
	s.logger.Verbose("HSET %s %s=%s", key, field, value)
	return nil
}

// SetFields bulk-upserts fields into the named hash with a single HSET.
// An empty slice performs no network write.
func (s *RedisStore) SetFields(ctx context.Context, key string, fields []expload.Field) error {
	if len(fields) == 0 {
		return nil
	}

	pairs := make([]interface{}, 0, len(fields)*2)
	for _, f := range fields {
		pairs = append(pairs, f.Name, f.Value)
	}

	if err := s.client.HSet(ctx, key, pairs...).Err(); err != nil {
		return fmt.Errorf("hset %s (%d fields): %v: %w", key, len(fields), err, expload.ErrWriteFailed)
	}
	s.logger.Verbose("HSET %s (%d fields)", key, len(fields))
	return nil
}

// Close releases the client connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Verify RedisStore implements the Store interface at compile time
var _ expload.Store = (*RedisStore)(nil)
