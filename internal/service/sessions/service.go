package sessions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/draftstore"
	"github.com/m04kA/SMC-ReservationService/internal/pricing"
	"github.com/m04kA/SMC-ReservationService/internal/validation"
	"github.com/m04kA/SMC-ReservationService/internal/wizard"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Session одна интерактивная сессия мастера бронирования
// Черновиком владеет ровно одна сессия; конкурентной мутации одного
// черновика нет, блокировка нужна только для карты сессий
type Session struct {
	ID        string
	State     wizard.State
	Draft     domain.BookingDraft
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Service управляет сессиями мастера: продвигает конечный автомат,
// пересчитывает производные поля (длительность, цену) на каждой мутации
// и гейтит переходы вперед валидаторами
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	hours        domain.OpeningHoursTable
	draftStore   DraftStore
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый сервис сессий мастера
func NewService(hours domain.OpeningHoursTable, draftStore DraftStore, logger Logger) *Service {
	return &Service{
		sessions:     make(map[string]*Session),
		hours:        hours,
		draftStore:   draftStore,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Start создает новую сессию мастера
// Если площадка была выбрана до открытия мастера, черновик предзаполняется
// и мастер сразу переходит на шаг выбора количества гостей
func (s *Service) Start(preselected *domain.VenueID) *Session {
	now := s.timeProvider.Now()

	session := &Session{
		ID:        uuid.NewString(),
		State:     wizard.Initial(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	session.Draft.CreatedAt = now

	if preselected != nil {
		session.State = wizard.Preselected()
		session.Draft.Venue = domain.VenueByID(*preselected)
		s.logger.Info("Start: session=%s preseeded with venue=%s, fast-forward to %s",
			session.ID, *preselected, session.State.Step)
	} else {
		s.logger.Info("Start: session=%s at %s", session.ID, session.State.Step)
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return snapshot(session)
}

// Get возвращает снимок сессии
func (s *Service) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return snapshot(session), nil
}

// SelectVenue выбирает площадку и продвигает мастер на шаг количества гостей
func (s *Service) SelectVenue(id string, venueID domain.VenueID) (*Session, error) {
	return s.mutate(id, func(session *Session) error {
		next, err := wizard.Transition(session.State, wizard.EventVenueSelected)
		if err != nil {
			return err
		}

		session.State = next
		session.Draft.Venue = domain.VenueByID(venueID)
		s.recalculate(&session.Draft)

		s.logger.Info("SelectVenue: session=%s venue=%s -> %s", id, venueID, next.Step)
		return nil
	})
}

// SetPeople задает количество гостей
// Больше MaxSelfServePeople гостей самостоятельно не бронируются:
// мастер уходит в терминальную ветку телефонного оформления
func (s *Service) SetPeople(id string, people int) (*Session, error) {
	if people < domain.MinPeople {
		return nil, fmt.Errorf("%w: people=%d", ErrInvalidPeople, people)
	}

	return s.mutate(id, func(session *Session) error {
		event := wizard.EventHeadcountSelected
		if people > domain.MaxSelfServePeople {
			event = wizard.EventHeadcountOverflow
		}

		next, err := wizard.Transition(session.State, event)
		if err != nil {
			return err
		}

		session.State = next
		session.Draft.People = people
		s.recalculate(&session.Draft)

		s.logger.Info("SetPeople: session=%s people=%d -> %s", id, people, next.Step)
		return nil
	})
}

// SetDateTime задает дату и временной диапазон
// Переход вперед блокируется, пока диапазон не пройдет обе проверки:
// корректность (конец позже начала) и попадание в часы работы
func (s *Service) SetDateTime(id string, date time.Time, rng domain.TimeRange) (*Session, error) {
	return s.mutate(id, func(session *Session) error {
		if !validation.IsDateTimeValid(date, rng) {
			return NewValidationError(domain.CodeInvalidDateTime)
		}

		if code := validation.OpeningHoursViolation(s.hours.HoursFor(date), rng); code != "" {
			return NewValidationError(code)
		}

		next, err := wizard.Transition(session.State, wizard.EventDateTimeSubmitted)
		if err != nil {
			return err
		}

		session.State = next
		session.Draft.Date = date
		session.Draft.Range = rng
		s.recalculate(&session.Draft)

		s.logger.Info("SetDateTime: session=%s date=%s range=%s-%s duration=%dh price=%d -> %s",
			id, date.Format(domain.DateFormat), rng.Start, rng.End,
			session.Draft.DurationHours, session.Draft.Price, next.Step)
		return nil
	})
}

// SetName задает имя и фамилию (подшаг Name шага контактов)
func (s *Service) SetName(id, name, surname string) (*Session, error) {
	return s.mutate(id, func(session *Session) error {
		if !validation.IsNameValid(name, surname) {
			return NewValidationError(domain.CodeInvalidContact)
		}

		next, err := wizard.Transition(session.State, wizard.EventNameSubmitted)
		if err != nil {
			return err
		}

		session.State = next
		session.Draft.Contact.Name = name
		session.Draft.Contact.Surname = surname

		s.logger.Info("SetName: session=%s -> %s/%s", id, next.Step, next.ContactSub)
		return nil
	})
}

// SetPhone задает телефон (подшаг Phone шага контактов)
func (s *Service) SetPhone(id, phone string) (*Session, error) {
	return s.mutate(id, func(session *Session) error {
		if !validation.IsPhoneValid(phone) {
			return NewValidationError(domain.CodeInvalidContact)
		}

		next, err := wizard.Transition(session.State, wizard.EventPhoneSubmitted)
		if err != nil {
			return err
		}

		session.State = next
		session.Draft.Contact.Phone = validation.NormalizePhone(phone)

		s.logger.Info("SetPhone: session=%s -> %s", id, next.Step)
		return nil
	})
}

// GoBack возвращает мастер на более ранний шаг
// Навигация вперед через GoBack невозможна - только через события с валидацией
func (s *Service) GoBack(id string, target wizard.Step) (*Session, error) {
	return s.mutate(id, func(session *Session) error {
		next, err := wizard.GoTo(session.State, target)
		if err != nil {
			return err
		}

		session.State = next

		s.logger.Info("GoBack: session=%s -> %s", id, next.Step)
		return nil
	})
}

// ConfirmableDraft возвращает черновик сессии, стоящей на шаге подтверждения
// Используется usecase'ом сабмита; сам сабмит завершается через Complete
func (s *Service) ConfirmableDraft(id string) (*domain.BookingDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if session.State.Step != wizard.StepConfirm {
		return nil, fmt.Errorf("%w: session=%s at %s", ErrNotConfirmable, id, session.State.Step)
	}

	draft := session.Draft
	return &draft, nil
}

// Complete переводит сессию в терминальное состояние после эмиссии
// handoff-записи и фиксирует присвоенный reference number
func (s *Service) Complete(id, refNumber string) error {
	_, err := s.mutate(id, func(session *Session) error {
		next, err := wizard.Transition(session.State, wizard.EventConfirmed)
		if err != nil {
			return err
		}

		session.State = next
		session.Draft.RefNumber = refNumber

		s.logger.Info("Complete: session=%s ref=%s -> %s", id, refNumber, next.Step)
		return nil
	})
	return err
}

// Resume восстанавливает мастер из общего хранилища черновиков
// (возврат управления от платежного сервиса). Черновик старше TTL
// очищается, и мастер начинается заново с выбора площадки
func (s *Service) Resume(ctx context.Context, orderID string) (*Session, error) {
	record, err := s.draftStore.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, draftstore.ErrDraftNotFound) {
			s.logger.Warn("Resume: draft order=%s not found", orderID)
			return nil, ErrDraftNotFound
		}
		s.logger.Error("Resume: failed to read draft order=%s: %v", orderID, err)
		return nil, fmt.Errorf("%w: failed to read draft: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()

	if record.IsExpired(now) {
		if err := s.draftStore.Clear(ctx, orderID); err != nil {
			s.logger.Error("Resume: failed to clear expired draft order=%s: %v", orderID, err)
		}
		s.logger.Warn("Resume: draft order=%s expired (age=%s), wizard restarts", orderID, now.Sub(record.Timestamp))
		return nil, ErrDraftExpired
	}

	session := &Session{
		ID:        uuid.NewString(),
		State:     wizard.Resumed(),
		Draft:     draftFromRecord(record),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.Info("Resume: session=%s rehydrated from order=%s at %s", session.ID, orderID, session.State.Step)
	return snapshot(session), nil
}

// mutate выполняет мутацию сессии под блокировкой и возвращает снимок
func (s *Service) mutate(id string, fn func(*Session) error) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if err := fn(session); err != nil {
		return nil, err
	}

	session.UpdatedAt = s.timeProvider.Now()
	return snapshot(session), nil
}

// recalculate пересчитывает производные поля черновика
// Цена и длительность всегда функции остальных полей и никогда
// не мутируются независимо
func (s *Service) recalculate(draft *domain.BookingDraft) {
	if !draft.HasDateTime() {
		draft.DurationHours = 0
		draft.Price = 0
		return
	}

	draft.DurationHours = draft.Range.CeilHours()
	draft.Price = pricing.Price(draft.Venue, draft.Range.DurationHours(), draft.People)
}

// draftFromRecord восстанавливает черновик из записи хранилища
// Отсутствующие опциональные поля допустимы по контракту хранилища
func draftFromRecord(record *domain.DraftRecord) domain.BookingDraft {
	draft := domain.BookingDraft{
		Venue:     domain.VenueByID(domain.VenueID(record.Venue)),
		People:    record.People,
		Price:     record.Price,
		RefNumber: record.OrderID,
		CreatedAt: record.Timestamp,
		Contact: domain.Contact{
			Name:  record.ContactName,
			Phone: record.Phone,
		},
	}

	if record.Date != "" {
		if date, err := time.Parse(domain.DateFormat, record.Date); err == nil {
			draft.Date = date
		}
	}

	if record.StartTime != "" && record.EndTime != "" {
		draft.Range = domain.TimeRange{
			Start: types.TimeString(record.StartTime),
			End:   types.TimeString(record.EndTime),
		}
		draft.DurationHours = draft.Range.CeilHours()
	}

	return draft
}

func snapshot(session *Session) *Session {
	cloned := *session
	return &cloned
}
