// Package sessions содержит серверное хранилище сессий поверх Redis.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	svc "unotes/internal/ports/services"
	"unotes/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodCreate  = "create"
	LogMethodResolve = "resolve"
	LogMethodDestroy = "destroy"

	ErrorFailedToStore   = "failed to store session in redis"
	ErrorFailedToResolve = "failed to resolve session in redis"
	ErrorFailedToDestroy = "failed to destroy session in redis"
)

// keyPrefix - префикс ключей сессий в Redis.
const keyPrefix = "session:"

// RedisStore реализует интерфейс SessionStore с использованием Redis.
// Токен сессии непрозрачен; идентификация пользователя живет только на сервере.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создает новое хранилище сессий.
func NewRedisStore(client *redis.Client, ttl time.Duration) svc.SessionStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Create выпускает новый токен сессии для пользователя.
func (s *RedisStore) Create(ctx context.Context, userID string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodCreate))

	token := uuid.New().String()
	if err := s.client.Set(ctx, keyPrefix+token, userID, s.ttl).Err(); err != nil {
		log.Error(ctx, ErrorFailedToStore, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToStore, err)
	}

	return token, nil
}

// Resolve возвращает ID пользователя по токену сессии.
func (s *RedisStore) Resolve(ctx context.Context, token string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodResolve))

	userID, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", svc.ErrSessionNotFound
		}
		log.Error(ctx, ErrorFailedToResolve, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToResolve, err)
	}

	return userID, nil
}

// Destroy завершает сессию.
func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodDestroy))

	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		log.Error(ctx, ErrorFailedToDestroy, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToDestroy, err)
	}

	return nil
}
