package confirm_booking

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/draftstore"
	"github.com/m04kA/SMC-ReservationService/internal/service/sessions"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type fakeSessions struct {
	draft        *domain.BookingDraft
	draftErr     error
	completeErr  error
	completedID  string
	completedRef string
}

func (f *fakeSessions) ConfirmableDraft(id string) (*domain.BookingDraft, error) {
	if f.draftErr != nil {
		return nil, f.draftErr
	}
	return f.draft, nil
}

func (f *fakeSessions) Complete(id, refNumber string) error {
	if f.completeErr != nil {
		return f.completeErr
	}
	f.completedID = id
	f.completedRef = refNumber
	return nil
}

type fakeRepo struct {
	mu      sync.Mutex
	err     error
	records []*domain.BookingRecord
	created chan struct{}
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{created: make(chan struct{}, 1)}
}

func (f *fakeRepo) Create(ctx context.Context, record *domain.BookingRecord) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	f.records = append(f.records, record)
	select {
	case f.created <- struct{}{}:
	default:
	}
	return true, nil
}

func (f *fakeRepo) stored() []*domain.BookingRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*domain.BookingRecord(nil), f.records...)
}

type fakeTxManager struct{ calls int }

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakePayments struct {
	err      error
	handoffs []*domain.HandoffRecord
}

func (f *fakePayments) RegisterDraft(ctx context.Context, record *domain.HandoffRecord) error {
	if f.err != nil {
		return f.err
	}
	f.handoffs = append(f.handoffs, record)
	return nil
}

func paidDraft() *domain.BookingDraft {
	return &domain.BookingDraft{
		Venue: domain.VenueByID(domain.VenueF1),
		Date:  time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
		Range: domain.TimeRange{
			Start: types.TimeString("12:00"),
			End:   types.TimeString("14:00"),
		},
		People:        3,
		DurationHours: 2,
		Price:         600,
		Contact: domain.Contact{
			Name:    "Ivan",
			Surname: "Petrov",
			Phone:   "+79161234567",
		},
	}
}

func freeDraft() *domain.BookingDraft {
	draft := paidDraft()
	draft.Venue = domain.VenueByID(domain.VenueBoardGames)
	draft.Price = 0
	return draft
}

type testEnv struct {
	uc       *UseCase
	sessions *fakeSessions
	repo     *fakeRepo
	store    *draftstore.MemoryStore
	payments *fakePayments
	tx       *fakeTxManager
}

func newTestEnv(draft *domain.BookingDraft) *testEnv {
	env := &testEnv{
		sessions: &fakeSessions{draft: draft},
		repo:     newFakeRepo(),
		store:    draftstore.NewMemoryStore(),
		payments: &fakePayments{},
		tx:       &fakeTxManager{},
	}
	env.uc = NewUseCase(env.sessions, env.repo, env.store, env.payments, env.tx, nopLogger{})
	env.uc.timeProvider = &fixedTime{now: time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)}
	return env
}

func TestUseCase_Execute_PaidPath(t *testing.T) {
	env := newTestEnv(paidDraft())
	ctx := context.Background()

	resp, err := env.uc.Execute(ctx, &Request{SessionID: "s-1"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.RefNumber, "RS-"))
	assert.False(t, resp.Free)
	assert.Equal(t, int64(600), resp.Price)
	assert.Equal(t, int64(60000), resp.AmountMinor)

	require.NotNil(t, resp.Payment)
	assert.Equal(t, "F1 Racing Simulator", resp.Payment.VenueName)
	assert.Equal(t, "10.09.2026", resp.Payment.FormattedDate)
	assert.Equal(t, "12:00-14:00", resp.Payment.FormattedTimeRange)
	assert.Equal(t, "Ivan Petrov", resp.Payment.ContactName)

	// Запись сохранена синхронно, в транзакции
	assert.Equal(t, 1, env.tx.calls)
	records := env.repo.stored()
	require.Len(t, records, 1)
	assert.Equal(t, resp.RefNumber, records[0].RefNumber)
	assert.Equal(t, domain.VenueF1, records[0].Venue)

	// Черновик лежит в общем хранилище под reference number
	stored, err := env.store.Get(ctx, resp.RefNumber)
	require.NoError(t, err)
	assert.Equal(t, "f1", stored.Venue)
	assert.Equal(t, int64(600), stored.Price)
	assert.Equal(t, "12:00", stored.StartTime)

	// Платежный сервис получил handoff, сессия завершена
	require.Len(t, env.payments.handoffs, 1)
	assert.Equal(t, resp.RefNumber, env.payments.handoffs[0].RefNumber)
	assert.Equal(t, resp.RefNumber, env.sessions.completedRef)
	assert.Equal(t, "s-1", env.sessions.completedID)
}

func TestUseCase_Execute_PaidPathPersistenceFailureIsFatal(t *testing.T) {
	env := newTestEnv(paidDraft())
	env.repo.err = errors.New("connection refused")

	_, err := env.uc.Execute(context.Background(), &Request{SessionID: "s-1"})
	require.ErrorIs(t, err, ErrPersistenceFailure)

	// Handoff не эмитится, сессия не завершена
	assert.Empty(t, env.payments.handoffs)
	assert.Empty(t, env.sessions.completedRef)
}

func TestUseCase_Execute_PaymentRegistrationIsBestEffort(t *testing.T) {
	env := newTestEnv(paidDraft())
	env.payments.err = errors.New("payment service down")

	resp, err := env.uc.Execute(context.Background(), &Request{SessionID: "s-1"})
	require.NoError(t, err)

	// Пользователь все равно получает платежный payload
	require.NotNil(t, resp.Payment)
	assert.Equal(t, resp.RefNumber, env.sessions.completedRef)
}

func TestUseCase_Execute_FreePath(t *testing.T) {
	env := newTestEnv(freeDraft())
	ctx := context.Background()

	resp, err := env.uc.Execute(ctx, &Request{SessionID: "s-2"})
	require.NoError(t, err)

	assert.True(t, resp.Free)
	assert.Nil(t, resp.Payment)
	assert.Zero(t, resp.AmountMinor)
	assert.Equal(t, resp.RefNumber, env.sessions.completedRef)

	// Черновик и платежный сервис не задействованы
	assert.Empty(t, env.payments.handoffs)
	_, err = env.store.Get(ctx, resp.RefNumber)
	assert.ErrorIs(t, err, draftstore.ErrDraftNotFound)

	// Сохранение идет в фоне, вне транзакции
	assert.Equal(t, 0, env.tx.calls)
	select {
	case <-env.repo.created:
	case <-time.After(2 * time.Second):
		t.Fatal("async persist did not happen")
	}
	records := env.repo.stored()
	require.Len(t, records, 1)
	assert.Equal(t, domain.VenueBoardGames, records[0].Venue)
}

func TestUseCase_Execute_SessionErrors(t *testing.T) {
	env := newTestEnv(nil)
	ctx := context.Background()

	env.sessions.draftErr = sessions.ErrSessionNotFound
	_, err := env.uc.Execute(ctx, &Request{SessionID: "s-x"})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	env.sessions.draftErr = sessions.ErrNotConfirmable
	_, err = env.uc.Execute(ctx, &Request{SessionID: "s-x"})
	assert.ErrorIs(t, err, ErrNotConfirmable)
}
