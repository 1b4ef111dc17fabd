package repository

import (
	"context"
	"errors"
	"fmt"

	domainRepo "github.com/lotfi-dotcom/artztTerminapp/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

type redisSlotStore struct {
	client *redis.Client
}

// NewRedisSlotStore stores each slot as a plain Redis string without expiry.
func NewRedisSlotStore(client *redis.Client) domainRepo.SlotStore {
	return &redisSlotStore{client: client}
}

func (s *redisSlotStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *redisSlotStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
