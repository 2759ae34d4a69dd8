package save_event_order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	err    error
	seen   map[string]bool
	orders []*domain.EventOrder
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{seen: make(map[string]bool)}
}

func (f *fakeRepo) Save(ctx context.Context, order *domain.EventOrder) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.seen[order.OrderRef] {
		return false, nil
	}
	f.seen[order.OrderRef] = true
	f.orders = append(f.orders, order)
	return true, nil
}

func validRequest() *Request {
	return &Request{
		OrderRef:     "EV-1756730000-ab12",
		EventID:      42,
		Tickets:      2,
		AmountMinor:  150000,
		CustomerName: "Ivan Petrov",
		Phone:        "+7 916 123 45 67",
	}
}

func TestUseCase_Execute(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, resp.Created)

	require.Len(t, repo.orders, 1)
	assert.Equal(t, "+79161234567", repo.orders[0].Phone)
	assert.Equal(t, int64(42), repo.orders[0].EventID)
}

func TestUseCase_Execute_DuplicateIsNotAnError(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUseCase(repo, nopLogger{})
	ctx := context.Background()

	first, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)
	assert.True(t, first.Created)

	second, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)
	assert.False(t, second.Created)

	assert.Len(t, repo.orders, 1)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := NewUseCase(newFakeRepo(), nopLogger{})
	ctx := context.Background()

	req := validRequest()
	req.OrderRef = "  "
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidOrderRef)

	req = validRequest()
	req.Tickets = 0
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidTickets)

	req = validRequest()
	req.CustomerName = ""
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidContact)

	req = validRequest()
	req.Phone = "123"
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidContact)
}

func TestUseCase_Execute_RepositoryFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("connection refused")
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
