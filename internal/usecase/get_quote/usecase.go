package get_quote

import (
	"context"
	"fmt"
	"math"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/pricing"
)

// UseCase use case для расчета стоимости без создания брони
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute выполняет use case расчета стоимости
// Неизвестная площадка трактуется как бесплатная, это не ошибка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetQuote: venue=%s, hours=%.2f, people=%d", req.Venue, req.Hours, req.People)

	// 1. Валидация входных данных
	if req.Hours <= 0 {
		uc.logger.Warn("GetQuote: invalid hours=%.2f", req.Hours)
		return nil, fmt.Errorf("%w: %.2f", ErrInvalidHours, req.Hours)
	}
	if req.People < domain.MinPeople {
		uc.logger.Warn("GetQuote: invalid people=%d", req.People)
		return nil, fmt.Errorf("%w: %d", ErrInvalidPeople, req.People)
	}

	// 2. Считаем стоимость по каталогу площадок
	venue := domain.VenueByID(req.Venue)
	price := pricing.Price(venue, req.Hours, req.People)

	resp := &Response{
		Venue:       venue.ID,
		VenueName:   venue.Name,
		Pricing:     venue.Pricing,
		Hours:       req.Hours,
		BilledHours: int(math.Ceil(req.Hours)),
		People:      req.People,
		Price:       price,
		Free:        venue.IsFree(),
	}
	if venue.NeedsPayment {
		resp.AmountMinor = pricing.MinorUnits(price)
	}

	uc.logger.Info("GetQuote: venue=%s -> price=%d (minor=%d)", venue.ID, resp.Price, resp.AmountMinor)

	return resp, nil
}
