package get_quote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	uc := NewUseCase(nopLogger{})
	ctx := context.Background()

	tests := []struct {
		name        string
		req         Request
		price       int64
		amountMinor int64
		billed      int
		free        bool
	}{
		{
			name:        "f1 two hours three people",
			req:         Request{Venue: domain.VenueF1, Hours: 2, People: 3},
			price:       600,
			amountMinor: 60000,
			billed:      2,
		},
		{
			name:        "vr hour and a half rounds up",
			req:         Request{Venue: domain.VenueVR, Hours: 1.5, People: 1},
			price:       100,
			amountMinor: 10000,
			billed:      2,
		},
		{
			name:   "board games free",
			req:    Request{Venue: domain.VenueBoardGames, Hours: 4, People: 6},
			billed: 4,
			free:   true,
		},
		{
			name:   "unknown venue treated as free",
			req:    Request{Venue: "karaoke", Hours: 2, People: 2},
			billed: 2,
			free:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(ctx, &tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.price, resp.Price)
			assert.Equal(t, tt.amountMinor, resp.AmountMinor)
			assert.Equal(t, tt.billed, resp.BilledHours)
			assert.Equal(t, tt.free, resp.Free)
		})
	}
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := NewUseCase(nopLogger{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{Venue: domain.VenueF1, Hours: 0, People: 1})
	assert.ErrorIs(t, err, ErrInvalidHours)

	_, err = uc.Execute(ctx, &Request{Venue: domain.VenueF1, Hours: 2, People: 0})
	assert.ErrorIs(t, err, ErrInvalidPeople)
}
