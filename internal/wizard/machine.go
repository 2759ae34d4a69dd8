package wizard

import (
	"errors"
	"fmt"
)

// Step шаг мастера бронирования
type Step int

const (
	StepVenueSelect Step = iota
	StepHeadcount
	StepDateTime
	StepContact
	StepConfirm
	// StepCallPrompt терминальный шаг для групп больше MaxSelfServePeople:
	// бронирование продолжается по телефону, мастер дальше не идет
	StepCallPrompt
	// StepDone терминальный шаг после эмиссии handoff-записи
	StepDone
)

// String возвращает имя шага для логов и API
func (s Step) String() string {
	switch s {
	case StepVenueSelect:
		return "venue_select"
	case StepHeadcount:
		return "headcount"
	case StepDateTime:
		return "date_time"
	case StepContact:
		return "contact"
	case StepConfirm:
		return "confirm"
	case StepCallPrompt:
		return "call_prompt"
	case StepDone:
		return "done"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// ContactSubStep вложенный подшаг внутри StepContact
type ContactSubStep int

const (
	SubStepName ContactSubStep = iota
	SubStepPhone
)

// String возвращает имя подшага
func (s ContactSubStep) String() string {
	if s == SubStepPhone {
		return "phone"
	}
	return "name"
}

// Event событие мастера, продвигающее состояние вперед
type Event int

const (
	EventVenueSelected Event = iota
	EventHeadcountSelected
	// EventHeadcountOverflow выбрано "8+" гостей
	EventHeadcountOverflow
	EventDateTimeSubmitted
	EventNameSubmitted
	EventPhoneSubmitted
	EventConfirmed
)

// String возвращает имя события
func (e Event) String() string {
	switch e {
	case EventVenueSelected:
		return "venue_selected"
	case EventHeadcountSelected:
		return "headcount_selected"
	case EventHeadcountOverflow:
		return "headcount_overflow"
	case EventDateTimeSubmitted:
		return "date_time_submitted"
	case EventNameSubmitted:
		return "name_submitted"
	case EventPhoneSubmitted:
		return "phone_submitted"
	case EventConfirmed:
		return "confirmed"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// State состояние мастера: текущий шаг плюс подшаг контактов
type State struct {
	Step       Step
	ContactSub ContactSubStep
}

var (
	// ErrIllegalTransition возвращается при недопустимом переходе вперед
	ErrIllegalTransition = errors.New("wizard: illegal transition")

	// ErrNotBackward возвращается при попытке перейти вперед через GoTo
	ErrNotBackward = errors.New("wizard: goTo allows backward navigation only")

	// ErrTerminalState возвращается при попытке навигации из терминального шага
	ErrTerminalState = errors.New("wizard: state is terminal")
)

// Initial returns the state a freshly mounted wizard starts in
func Initial() State {
	return State{Step: StepVenueSelect}
}

// Preselected returns the fast-forwarded state used when a venue was
// chosen before the wizard mounted
func Preselected() State {
	return State{Step: StepHeadcount}
}

// Resumed returns the state of a wizard rehydrated from a stored draft:
// contact sub-steps are already satisfied, re-entry goes straight to Confirm
func Resumed() State {
	return State{Step: StepConfirm, ContactSub: SubStepPhone}
}

// IsTerminal returns true for states that accept no further events
func (s State) IsTerminal() bool {
	return s.Step == StepCallPrompt || s.Step == StepDone
}

// Transition applies a forward event to the state. Every move not listed
// in the transition table is rejected with ErrIllegalTransition; forward
// progress only ever happens through here, so validation gates cannot be
// bypassed by skipping steps.
func Transition(s State, e Event) (State, error) {
	switch s.Step {
	case StepVenueSelect:
		if e == EventVenueSelected {
			return State{Step: StepHeadcount}, nil
		}

	case StepHeadcount:
		switch e {
		case EventHeadcountSelected:
			return State{Step: StepDateTime}, nil
		case EventHeadcountOverflow:
			return State{Step: StepCallPrompt}, nil
		}

	case StepDateTime:
		if e == EventDateTimeSubmitted {
			return State{Step: StepContact, ContactSub: SubStepName}, nil
		}

	case StepContact:
		if s.ContactSub == SubStepName && e == EventNameSubmitted {
			return State{Step: StepContact, ContactSub: SubStepPhone}, nil
		}
		if s.ContactSub == SubStepPhone && e == EventPhoneSubmitted {
			return State{Step: StepConfirm}, nil
		}

	case StepConfirm:
		if e == EventConfirmed {
			return State{Step: StepDone}, nil
		}
	}

	return s, fmt.Errorf("%w: %s + %s", ErrIllegalTransition, s.Step, e)
}

// GoTo navigates backward to an earlier step. Forward navigation must go
// through Transition; terminal states allow no navigation at all.
// Re-entering the contact step always resets the sub-step to Name.
func GoTo(s State, target Step) (State, error) {
	if s.IsTerminal() {
		return s, fmt.Errorf("%w: %s", ErrTerminalState, s.Step)
	}
	if target == StepCallPrompt || target == StepDone {
		return s, fmt.Errorf("%w: cannot navigate to %s", ErrNotBackward, target)
	}
	if target >= s.Step {
		return s, fmt.Errorf("%w: %s -> %s", ErrNotBackward, s.Step, target)
	}
	return State{Step: target, ContactSub: SubStepName}, nil
}
