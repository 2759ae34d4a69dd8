package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// keyPrefix префикс ключей черновиков в Redis
const keyPrefix = "reservation:draft:"

// RedisStore хранилище черновиков в Redis
// Запись живет domain.DraftTTL: Redis вытесняет её сам, но потребители
// дополнительно проверяют timestamp записи (см. DraftRecord.IsExpired)
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore создает хранилище черновиков поверх Redis клиента
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Set сохраняет черновик одним JSON-блобом с TTL
// Семантика last-write-wins: черновиком владеет одна сессия мастера
func (s *RedisStore) Set(ctx context.Context, record *domain.DraftRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := s.client.Set(ctx, key(record.OrderID), payload, domain.DraftTTL).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrInternal, record.OrderID, err)
	}

	return nil
}

// Get читает черновик по номеру заказа
func (s *RedisStore) Get(ctx context.Context, orderID string) (*domain.DraftRecord, error) {
	payload, err := s.client.Get(ctx, key(orderID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrInternal, orderID, err)
	}

	var record domain.DraftRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &record, nil
}

// Clear удаляет черновик; отсутствие записи ошибкой не считается
func (s *RedisStore) Clear(ctx context.Context, orderID string) error {
	if err := s.client.Del(ctx, key(orderID)).Err(); err != nil {
		return fmt.Errorf("%w: del %s: %v", ErrInternal, orderID, err)
	}
	return nil
}

func key(orderID string) string {
	return keyPrefix + orderID
}
