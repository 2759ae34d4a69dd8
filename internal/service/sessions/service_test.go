package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/draftstore"
	"github.com/m04kA/SMC-ReservationService/internal/wizard"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

func newTestService() (*Service, *draftstore.MemoryStore, *fixedTime) {
	store := draftstore.NewMemoryStore()
	clock := &fixedTime{now: time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)}
	store.SetNowFunc(clock.Now)

	svc := NewService(domain.StandardWeek(), store, nopLogger{})
	svc.timeProvider = clock
	return svc, store, clock
}

func rng(start, end string) domain.TimeRange {
	return domain.TimeRange{Start: types.TimeString(start), End: types.TimeString(end)}
}

// futureDate будний день с часами работы 10-22
var futureDate = time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC) // Thursday

func TestService_FullWizardFlow(t *testing.T) {
	svc, _, _ := newTestService()

	session := svc.Start(nil)
	require.Equal(t, wizard.StepVenueSelect, session.State.Step)

	session, err := svc.SelectVenue(session.ID, domain.VenueF1)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepHeadcount, session.State.Step)

	session, err = svc.SetPeople(session.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepDateTime, session.State.Step)

	session, err = svc.SetDateTime(session.ID, futureDate, rng("12:00", "14:00"))
	require.NoError(t, err)
	assert.Equal(t, wizard.StepContact, session.State.Step)
	assert.Equal(t, wizard.SubStepName, session.State.ContactSub)

	// Производные поля: 2 часа на f1 для троих = 200 * 3 = 600
	assert.Equal(t, 2, session.Draft.DurationHours)
	assert.Equal(t, int64(600), session.Draft.Price)

	session, err = svc.SetName(session.ID, "Ivan", "Petrov")
	require.NoError(t, err)
	assert.Equal(t, wizard.SubStepPhone, session.State.ContactSub)

	session, err = svc.SetPhone(session.ID, "+7 916 123 45 67")
	require.NoError(t, err)
	assert.Equal(t, wizard.StepConfirm, session.State.Step)
	assert.Equal(t, "+79161234567", session.Draft.Contact.Phone)

	draft, err := svc.ConfirmableDraft(session.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(600), draft.Price)

	require.NoError(t, svc.Complete(session.ID, "RS-1"))

	session, err = svc.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepDone, session.State.Step)
	assert.Equal(t, "RS-1", session.Draft.RefNumber)
}

func TestService_PreselectedVenueFastForwards(t *testing.T) {
	svc, _, _ := newTestService()

	venueID := domain.VenueVR
	session := svc.Start(&venueID)

	assert.Equal(t, wizard.StepHeadcount, session.State.Step)
	assert.Equal(t, domain.VenueVR, session.Draft.Venue.ID)
}

func TestService_HeadcountOverflowRoutesToCallPrompt(t *testing.T) {
	svc, _, _ := newTestService()

	venueID := domain.VenueF1
	session := svc.Start(&venueID)

	session, err := svc.SetPeople(session.ID, domain.MaxSelfServePeople+1)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepCallPrompt, session.State.Step)

	// Из телефонной ветки мастер дальше не продвигается
	_, err = svc.SetDateTime(session.ID, futureDate, rng("12:00", "14:00"))
	assert.ErrorIs(t, err, wizard.ErrIllegalTransition)

	_, err = svc.ConfirmableDraft(session.ID)
	assert.ErrorIs(t, err, ErrNotConfirmable)
}

func TestService_SetPeopleRejectsNonPositive(t *testing.T) {
	svc, _, _ := newTestService()

	venueID := domain.VenueF1
	session := svc.Start(&venueID)

	_, err := svc.SetPeople(session.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidPeople)
}

func TestService_DateTimeValidationGatesAdvance(t *testing.T) {
	svc, _, _ := newTestService()

	venueID := domain.VenueComputers
	session := svc.Start(&venueID)
	session, err := svc.SetPeople(session.ID, 2)
	require.NoError(t, err)

	tests := []struct {
		name string
		rng  domain.TimeRange
		code domain.ErrorCode
	}{
		{"unordered range", rng("14:00", "12:00"), domain.CodeInvalidDateTime},
		{"start before opening", rng("08:00", "12:00"), domain.CodeStartBeforeOpening},
		{"end after closing", rng("20:00", "23:30"), domain.CodeEndAfterClosing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SetDateTime(session.ID, futureDate, tt.rng)
			require.ErrorIs(t, err, ErrValidation)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.code, vErr.Code)
		})
	}

	// Сессия осталась на шаге даты, ошибки не продвинули мастер
	got, err := svc.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepDateTime, got.State.Step)

	// Корректный диапазон проходит
	got, err = svc.SetDateTime(session.ID, futureDate, rng("12:00", "13:30"))
	require.NoError(t, err)
	assert.Equal(t, wizard.StepContact, got.State.Step)
	// 1.5 часа округляются до 2, computers 30/час: 2*30*2 гостя = 120
	assert.Equal(t, 2, got.Draft.DurationHours)
	assert.Equal(t, int64(120), got.Draft.Price)
}

func TestService_ContactValidation(t *testing.T) {
	svc, _, _ := newTestService()

	venueID := domain.VenueVR
	session := svc.Start(&venueID)
	session, err := svc.SetPeople(session.ID, 1)
	require.NoError(t, err)
	session, err = svc.SetDateTime(session.ID, futureDate, rng("15:00", "16:00"))
	require.NoError(t, err)

	_, err = svc.SetName(session.ID, "", "Petrov")
	require.ErrorIs(t, err, ErrValidation)

	session, err = svc.SetName(session.ID, "Ivan", "Petrov")
	require.NoError(t, err)

	_, err = svc.SetPhone(session.ID, "12345")
	require.ErrorIs(t, err, ErrValidation)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, domain.CodeInvalidContact, vErr.Code)
}

func TestService_GoBackResetsContactSubStep(t *testing.T) {
	svc, _, _ := newTestService()

	venueID := domain.VenueVR
	session := svc.Start(&venueID)
	session, _ = svc.SetPeople(session.ID, 1)
	session, err := svc.SetDateTime(session.ID, futureDate, rng("15:00", "16:00"))
	require.NoError(t, err)
	session, err = svc.SetName(session.ID, "Ivan", "Petrov")
	require.NoError(t, err)
	require.Equal(t, wizard.SubStepPhone, session.State.ContactSub)

	// Назад на шаг даты и снова вперед: подшаг контактов сброшен на имя
	session, err = svc.GoBack(session.ID, wizard.StepDateTime)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepDateTime, session.State.Step)

	session, err = svc.SetDateTime(session.ID, futureDate, rng("17:00", "18:00"))
	require.NoError(t, err)
	assert.Equal(t, wizard.SubStepName, session.State.ContactSub)
}

func TestService_Resume(t *testing.T) {
	svc, store, clock := newTestService()
	ctx := context.Background()

	record := &domain.DraftRecord{
		OrderID:     "RS-1756730000-abc123",
		Venue:       "f1",
		Date:        "2026-09-10",
		StartTime:   "12:00",
		EndTime:     "14:00",
		People:      3,
		Price:       600,
		Phone:       "+79161234567",
		ContactName: "Ivan",
		Timestamp:   clock.now,
	}
	require.NoError(t, store.Set(ctx, record))

	clock.now = clock.now.Add(2 * time.Minute)

	session, err := svc.Resume(ctx, record.OrderID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepConfirm, session.State.Step)
	assert.Equal(t, domain.VenueF1, session.Draft.Venue.ID)
	assert.Equal(t, 3, session.Draft.People)
	assert.Equal(t, int64(600), session.Draft.Price)
	assert.Equal(t, record.OrderID, session.Draft.RefNumber)
	assert.Equal(t, 2, session.Draft.DurationHours)

	// Восстановленную сессию можно сразу подтвердить
	_, err = svc.ConfirmableDraft(session.ID)
	assert.NoError(t, err)
}

func TestService_ResumeExpiredDraftClearsRecord(t *testing.T) {
	svc, store, clock := newTestService()
	ctx := context.Background()

	record := &domain.DraftRecord{
		OrderID:   "RS-stale",
		Venue:     "vr",
		Timestamp: clock.now,
	}
	require.NoError(t, store.Set(ctx, record))

	clock.now = clock.now.Add(domain.DraftTTL + time.Minute)

	// MemoryStore вытесняет по TTL так же, как Redis; проверяем через
	// запись с ранним timestamp, но свежим временем сохранения
	require.NoError(t, store.Set(ctx, record))

	_, err := svc.Resume(ctx, record.OrderID)
	require.ErrorIs(t, err, ErrDraftExpired)

	// Просроченная запись очищена
	_, err = store.Get(ctx, record.OrderID)
	assert.ErrorIs(t, err, draftstore.ErrDraftNotFound)
}

func TestService_ResumeMissingDraft(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Resume(context.Background(), "RS-missing")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestService_UnknownSession(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.SelectVenue("nope", domain.VenueF1)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
