package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/payments"
	"github.com/m04kA/SMC-ReservationService/internal/pricing"
	"github.com/m04kA/SMC-ReservationService/internal/service/sessions"
)

// asyncPersistTimeout лимит на фоновое сохранение брони бесплатной площадки
const asyncPersistTimeout = 10 * time.Second

// UseCase use case подтверждения брони
// Платный путь: запись сохраняется синхронно в сериализуемой транзакции,
// затем эмитится handoff (черновик в общее хранилище + регистрация в
// платежном сервисе). Бесплатный путь завершается сразу, сохранение
// выполняется в фоне и не блокирует пользователя
type UseCase struct {
	sessions      WizardSessions
	bookingRepo   BookingRepository
	draftStore    DraftStore
	paymentClient PaymentServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	wizardSessions WizardSessions,
	bookingRepo BookingRepository,
	draftStore DraftStore,
	paymentClient PaymentServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions:      wizardSessions,
		bookingRepo:   bookingRepo,
		draftStore:    draftStore,
		paymentClient: paymentClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case подтверждения брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: session=%s", req.SessionID)

	// 1. Получаем черновик сессии на шаге подтверждения
	draft, err := uc.sessions.ConfirmableDraft(req.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			uc.logger.Warn("ConfirmBooking: session=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		if errors.Is(err, sessions.ErrNotConfirmable) {
			uc.logger.Warn("ConfirmBooking: session=%s not at confirm step", req.SessionID)
			return nil, ErrNotConfirmable
		}
		uc.logger.Error("ConfirmBooking: failed to read session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to read session: %v", ErrInternal, err)
	}

	// 2. Присваиваем reference number
	now := uc.timeProvider.Now()
	refNumber := newRefNumber(now)

	handoff := buildHandoff(draft, refNumber, now)
	record := buildBookingRecord(handoff)

	// 3. Сохраняем запись бронирования
	if handoff.NeedsPayment {
		// Платный путь: без сохраненной записи handoff не эмитится
		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			created, err := uc.bookingRepo.Create(txCtx, record)
			if err != nil {
				return err
			}
			if !created {
				uc.logger.Warn("ConfirmBooking: ref=%s already persisted, skipping duplicate", refNumber)
			}
			return nil
		})
		if err != nil {
			uc.logger.Error("ConfirmBooking: failed to persist ref=%s: %v", refNumber, err)
			return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
		}

		// 4. Эмитим handoff: черновик в общее хранилище с TTL
		// Потеря черновика деградирует только возврат из оплаты,
		// сама бронь уже сохранена
		if err := uc.draftStore.Set(ctx, buildDraftRecord(handoff)); err != nil {
			uc.logger.Error("ConfirmBooking: failed to store draft ref=%s: %v", refNumber, err)
		}

		// 5. Регистрируем черновик в платежном сервисе
		if err := uc.paymentClient.RegisterDraft(ctx, handoff); err != nil {
			uc.logger.Error("ConfirmBooking: failed to register payment draft ref=%s: %v", refNumber, err)
		}
	} else {
		// Бесплатный путь: пользователь не ждет БД
		go uc.persistAsync(record)
	}

	// 6. Завершаем сессию мастера
	if err := uc.sessions.Complete(req.SessionID, refNumber); err != nil {
		uc.logger.Error("ConfirmBooking: failed to complete session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to complete session: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmBooking: session=%s confirmed, ref=%s, payment=%t",
		req.SessionID, refNumber, handoff.NeedsPayment)

	resp := &Response{
		RefNumber:   refNumber,
		Free:        !handoff.NeedsPayment,
		Price:       handoff.Price,
		AmountMinor: handoff.AmountMinor,
	}
	if handoff.NeedsPayment {
		resp.Payment = payments.FromHandoffRecord(handoff)
	}

	return resp, nil
}

// persistAsync сохраняет запись бесплатной брони в фоне
// Ошибка логируется и не доносится до пользователя
func (uc *UseCase) persistAsync(record *domain.BookingRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), asyncPersistTimeout)
	defer cancel()

	created, err := uc.bookingRepo.Create(ctx, record)
	if err != nil {
		uc.logger.Error("ConfirmBooking: async persist failed ref=%s: %v", record.RefNumber, err)
		return
	}
	if !created {
		uc.logger.Warn("ConfirmBooking: async persist ref=%s already exists", record.RefNumber)
	}
}

// newRefNumber генерирует reference number вида RS-<unix>-<фрагмент uuid>
// Уникальность обеспечивает uuid, timestamp оставлен для читаемости в логах
func newRefNumber(now time.Time) string {
	fragment := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("RS-%d-%s", now.Unix(), fragment)
}

func buildHandoff(draft *domain.BookingDraft, refNumber string, now time.Time) *domain.HandoffRecord {
	record := &domain.HandoffRecord{
		RefNumber:    refNumber,
		VenueID:      draft.Venue.ID,
		VenueName:    draft.Venue.Name,
		ContactName:  contactName(draft.Contact),
		Phone:        draft.Contact.Phone,
		Date:         draft.Date,
		Range:        draft.Range,
		People:       draft.People,
		Price:        draft.Price,
		NeedsPayment: draft.Venue.NeedsPayment,
		CreatedAt:    now,
	}
	if record.NeedsPayment {
		record.AmountMinor = pricing.MinorUnits(draft.Price)
	}
	return record
}

func buildBookingRecord(handoff *domain.HandoffRecord) *domain.BookingRecord {
	return &domain.BookingRecord{
		RefNumber:   handoff.RefNumber,
		Venue:       handoff.VenueID,
		BookingDate: handoff.Date,
		Range:       handoff.Range,
		People:      handoff.People,
		Price:       handoff.Price,
		ContactName: handoff.ContactName,
		Phone:       handoff.Phone,
	}
}

func buildDraftRecord(handoff *domain.HandoffRecord) *domain.DraftRecord {
	return &domain.DraftRecord{
		OrderID:     handoff.RefNumber,
		Venue:       string(handoff.VenueID),
		Date:        handoff.Date.Format(domain.DateFormat),
		StartTime:   handoff.Range.Start.String(),
		EndTime:     handoff.Range.End.String(),
		People:      handoff.People,
		Price:       handoff.Price,
		Phone:       handoff.Phone,
		ContactName: handoff.ContactName,
		Timestamp:   handoff.CreatedAt,
	}
}

func contactName(contact domain.Contact) string {
	return strings.TrimSpace(contact.Name + " " + contact.Surname)
}
