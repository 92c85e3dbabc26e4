package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"resume-builder/internal/domain"
)

// RedisStore keeps the two slots as plain keys. Snapshots carry no TTL;
// they live until overwritten or explicitly cleared.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) LoadResume(ctx context.Context) (domain.Resume, error) {
	b, err := s.client.Get(ctx, ResumeKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Resume{}, ErrNotFound
		}
		return domain.Resume{}, err
	}
	rec, err := decodeResume(b)
	if err != nil {
		log.Printf("storage: corrupt resume snapshot, starting fresh: %v", err)
		return domain.Resume{}, ErrNotFound
	}
	return rec, nil
}

func (s *RedisStore) SaveResume(ctx context.Context, rec domain.Resume) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, ResumeKey, b, 0).Err()
}

func (s *RedisStore) ClearResume(ctx context.Context) error {
	return s.client.Del(ctx, ResumeKey).Err()
}

func (s *RedisStore) LoadTheme(ctx context.Context) (domain.ThemeSettings, error) {
	b, err := s.client.Get(ctx, ThemeKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.ThemeSettings{}, ErrNotFound
		}
		return domain.ThemeSettings{}, err
	}
	t, err := decodeTheme(b)
	if err != nil {
		log.Printf("storage: corrupt theme snapshot, using defaults: %v", err)
		return domain.ThemeSettings{}, ErrNotFound
	}
	return t, nil
}

func (s *RedisStore) SaveTheme(ctx context.Context, t domain.ThemeSettings) error {
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, ThemeKey, b, 0).Err()
}
