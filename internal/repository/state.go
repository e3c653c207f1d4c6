package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "crisis_map"

// StateStore - локальное состояние клиента в Redis: флаг передачи позиции
// и прочитанные уведомления
type StateStore struct {
	redisClient *redis.Client
}

func NewStateStore(redisClient *redis.Client) *StateStore {
	return &StateStore{redisClient: redisClient}
}

func sharingKey(userID string) string {
	return fmt.Sprintf("%s:%s:sharing", keyPrefix, userID)
}

func readKey(userID string) string {
	return fmt.Sprintf("%s:%s:read", keyPrefix, userID)
}

// SetSharing сохраняет флаг передачи позиции
func (s *StateStore) SetSharing(ctx context.Context, userID string, sharing bool) error {
	if err := s.redisClient.Set(ctx, sharingKey(userID), strconv.FormatBool(sharing), 0).Err(); err != nil {
		return fmt.Errorf("failed to store sharing flag: %w", err)
	}
	return nil
}

// IsSharing читает флаг; отсутствие ключа - false
func (s *StateStore) IsSharing(ctx context.Context, userID string) (bool, error) {
	val, err := s.redisClient.Get(ctx, sharingKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get sharing flag: %w", err)
	}
	return val == "true", nil
}

// AddReadID запоминает прочитанное уведомление
func (s *StateStore) AddReadID(ctx context.Context, userID string, id int64) error {
	if err := s.redisClient.SAdd(ctx, readKey(userID), id).Err(); err != nil {
		return fmt.Errorf("failed to store read notification: %w", err)
	}
	return nil
}

// ReadIDs возвращает множество прочитанных уведомлений
func (s *StateStore) ReadIDs(ctx context.Context, userID string) (map[int64]bool, error) {
	members, err := s.redisClient.SMembers(ctx, readKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get read notifications: %w", err)
	}

	ids := make(map[int64]bool, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		ids[id] = true
	}
	return ids, nil
}

// GeocodeCache - кэш ответов геокодера в Redis
type GeocodeCache struct {
	redisClient *redis.Client
}

func NewGeocodeCache(redisClient *redis.Client) *GeocodeCache {
	return &GeocodeCache{redisClient: redisClient}
}

// GetGeocode возвращает закэшированный ответ; промах - (nil, nil)
func (c *GeocodeCache) GetGeocode(ctx context.Context, key string) ([]byte, error) {
	val, err := c.redisClient.Get(ctx, "geocode:"+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get geocode from cache: %w", err)
	}
	return val, nil
}

// SetGeocode кэширует ответ геокодера
func (c *GeocodeCache) SetGeocode(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.redisClient.Set(ctx, "geocode:"+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set geocode in cache: %w", err)
	}
	return nil
}
