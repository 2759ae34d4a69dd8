package domain

import "time"

// Booking rules
const (
	// LeadTimeMinutes минимальный интервал между "сейчас" и началом слота в тот же день
	LeadTimeMinutes = 60

	// DraftTTL время жизни черновика в общем хранилище
	DraftTTL = 5 * time.Minute

	// MaxSelfServePeople максимальное количество гостей для самостоятельного
	// бронирования; большие группы направляются на телефонное оформление
	MaxSelfServePeople = 7

	// MinPeople минимальное количество гостей
	MinPeople = 1
)

// MinuteSteps допустимые минуты начала и конца слота
var MinuteSteps = []int{0, 15, 30, 45}

// Time format constants
const (
	TimeFormat        = "15:04"      // HH:MM
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DisplayDateFormat = "02.01.2006" // DD.MM.YYYY, для платежного сервиса
)
