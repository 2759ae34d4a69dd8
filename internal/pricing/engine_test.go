package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

func TestPrice_F1Tiers(t *testing.T) {
	f1 := domain.VenueByID(domain.VenueF1)

	tests := []struct {
		name     string
		hours    float64
		people   int
		expected int64
	}{
		{"half hour hits first tier", 0.5, 1, 100},
		{"exactly one hour", 1, 1, 100},
		{"hour and a half hits second tier", 1.5, 1, 200},
		{"exactly two hours", 2, 1, 200},
		{"beyond two hours caps flat", 2.5, 1, 300},
		{"three hours caps flat", 3, 1, 300},
		{"eight hours still flat cap", 8, 1, 300},
		{"two hours for three people", 2, 3, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Price(f1, tt.hours, tt.people))
		})
	}
}

func TestPrice_HourlyVenues(t *testing.T) {
	vr := domain.VenueByID(domain.VenueVR)
	computers := domain.VenueByID(domain.VenueComputers)

	// 1.5 часа округляются вверх до 2
	assert.Equal(t, int64(100), Price(vr, 1.5, 1))
	assert.Equal(t, int64(50), Price(vr, 1, 1))
	assert.Equal(t, int64(150), Price(vr, 2.25, 1))

	assert.Equal(t, int64(30), Price(computers, 0.75, 1))
	assert.Equal(t, int64(90), Price(computers, 3, 1))
}

func TestPrice_FreeVenues(t *testing.T) {
	assert.Equal(t, int64(0), Price(domain.VenueByID(domain.VenueBoardGames), 4, 6))
	// Неизвестный ID резолвится в бесплатную площадку
	assert.Equal(t, int64(0), Price(domain.VenueByID("karaoke"), 2, 2))
}

func TestPrice_HeadcountFloor(t *testing.T) {
	vr := domain.VenueByID(domain.VenueVR)

	// people < 1 трактуется как 1
	assert.Equal(t, Price(vr, 2, 1), Price(vr, 2, 0))
	assert.Equal(t, Price(vr, 2, 1), Price(vr, 2, -3))
}

func TestPrice_ZeroDuration(t *testing.T) {
	assert.Equal(t, int64(0), Price(domain.VenueByID(domain.VenueF1), 0, 5))
}

func TestPrice_MonotoneInDuration(t *testing.T) {
	durations := []float64{0.25, 0.5, 1, 1.25, 1.5, 2, 2.5, 3, 4, 6, 12}

	for _, id := range []domain.VenueID{domain.VenueF1, domain.VenueVR, domain.VenueComputers} {
		venue := domain.VenueByID(id)
		prev := int64(0)
		for _, d := range durations {
			p := Price(venue, d, 2)
			assert.GreaterOrEqual(t, p, prev, "venue %s duration %v", id, d)
			prev = p
		}
	}
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(60000), MinorUnits(600))
	assert.Equal(t, int64(0), MinorUnits(0))
}
