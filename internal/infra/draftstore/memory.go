package draftstore

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// MemoryStore in-memory реализация хранилища черновиков для тестов
// Повторяет TTL-семантику Redis через проверку времени на чтении
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*domain.DraftRecord
	stored  map[string]time.Time

	// nowFn подменяется в тестах для контроля времени
	nowFn func() time.Time
}

// NewMemoryStore создает пустое in-memory хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*domain.DraftRecord),
		stored:  make(map[string]time.Time),
		nowFn:   time.Now,
	}
}

// SetNowFunc подменяет источник времени (для тестов вытеснения по TTL)
func (s *MemoryStore) SetNowFunc(nowFn func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowFn = nowFn
}

// Set сохраняет черновик
func (s *MemoryStore) Set(_ context.Context, record *domain.DraftRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cloned := *record
	s.records[record.OrderID] = &cloned
	s.stored[record.OrderID] = s.nowFn()
	return nil
}

// Get читает черновик; записи старше TTL вытесняются как в Redis
func (s *MemoryStore) Get(_ context.Context, orderID string) (*domain.DraftRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[orderID]
	if !ok {
		return nil, ErrDraftNotFound
	}

	if s.nowFn().Sub(s.stored[orderID]) > domain.DraftTTL {
		delete(s.records, orderID)
		delete(s.stored, orderID)
		return nil, ErrDraftNotFound
	}

	cloned := *record
	return &cloned, nil
}

// Clear удаляет черновик
func (s *MemoryStore) Clear(_ context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, orderID)
	delete(s.stored, orderID)
	return nil
}
