package get_slot_options

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/slots"
)

// UseCase use case для получения наборов опций временного интервала
type UseCase struct {
	hours        domain.OpeningHoursTable
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(hours domain.OpeningHoursTable, logger Logger) *UseCase {
	return &UseCase{
		hours:        hours,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения опций слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSlotOptions: venue=%s, date=%s", req.Venue, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSlotOptions: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и часы работы на дату
	now := uc.timeProvider.Now()
	hours := uc.hours.HoursFor(req.Date)

	resp := &Response{
		Venue:      req.Venue,
		Date:       req.Date,
		OpenHour:   hours.Open,
		CloseHour:  hours.Close,
		StartHours: slots.StartHourOptions(hours, req.Date, now),
	}

	// 3. При выбранном часе начала добавляем зависимые наборы
	if req.StartHour != nil {
		startHour := *req.StartHour
		startMinute := 0
		if req.StartMinute != nil {
			startMinute = *req.StartMinute
		}

		resp.StartMinutes = slots.MinuteOptions(hours, startHour, true, startHour, startMinute)
		resp.EndHours = slots.EndHourOptions(hours, startHour)

		// 4. При выбранном часе конца добавляем минуты конца
		if req.EndHour != nil {
			resp.EndMinutes = slots.MinuteOptions(hours, *req.EndHour, false, startHour, startMinute)
		}
	}

	uc.logger.Info("GetSlotOptions: venue=%s date=%s -> %d start hours",
		req.Venue, req.Date.Format(domain.DateFormat), len(resp.StartHours))

	return resp, nil
}
