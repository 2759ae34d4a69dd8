package save_event_order

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/validation"
)

// UseCase use case сохранения заказа билетного мероприятия
// Идемпотентность обеспечивается на уровне БД: повторный сабмит с тем же
// order_ref не создает дубликат и не считается ошибкой
type UseCase struct {
	orderRepo EventOrderRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(orderRepo EventOrderRepository, logger Logger) *UseCase {
	return &UseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Execute выполняет use case сохранения заказа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SaveEventOrder: ref=%s, event=%d, tickets=%d", req.OrderRef, req.EventID, req.Tickets)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SaveEventOrder: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем заказ
	order := &domain.EventOrder{
		OrderRef:     req.OrderRef,
		EventID:      req.EventID,
		Tickets:      req.Tickets,
		AmountMinor:  req.AmountMinor,
		CustomerName: strings.TrimSpace(req.CustomerName),
		Phone:        validation.NormalizePhone(req.Phone),
	}

	created, err := uc.orderRepo.Save(ctx, order)
	if err != nil {
		uc.logger.Error("SaveEventOrder: failed to save ref=%s: %v", req.OrderRef, err)
		return nil, fmt.Errorf("%w: failed to save order: %v", ErrInternal, err)
	}

	if !created {
		uc.logger.Warn("SaveEventOrder: ref=%s already saved, skipping duplicate", req.OrderRef)
	} else {
		uc.logger.Info("SaveEventOrder: ref=%s saved", req.OrderRef)
	}

	return &Response{
		OrderRef: req.OrderRef,
		Created:  created,
	}, nil
}

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.OrderRef) == "" {
		return ErrInvalidOrderRef
	}
	if req.Tickets < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidTickets, req.Tickets)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: empty customer name", ErrInvalidContact)
	}
	if !validation.IsPhoneValid(req.Phone) {
		return fmt.Errorf("%w: bad phone", ErrInvalidContact)
	}
	return nil
}
