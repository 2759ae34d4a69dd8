package payments

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// PaymentDraft payload, передаваемый платежному сервису при handoff
// Состав полей зафиксирован контрактом платежного коллаборатора
type PaymentDraft struct {
	RefNumber          string `json:"refNumber"`
	VenueName          string `json:"venueName"`
	ContactName        string `json:"contactName"`
	FormattedDate      string `json:"formattedDate"`      // DD.MM.YYYY
	FormattedTimeRange string `json:"formattedTimeRange"` // "HH:MM-HH:MM"
	People             int    `json:"people"`
	Price              int64  `json:"price"`       // в целых единицах
	AmountMinor        int64  `json:"amountMinor"` // в минорных единицах
	Phone              string `json:"phone"`
	RawDate            string `json:"rawDate"`   // YYYY-MM-DD
	StartTime          string `json:"startTime"` // HH:MM
	EndTime            string `json:"endTime"`   // HH:MM
}

// FromHandoffRecord строит платежный payload из handoff-записи
func FromHandoffRecord(record *domain.HandoffRecord) *PaymentDraft {
	return &PaymentDraft{
		RefNumber:          record.RefNumber,
		VenueName:          record.VenueName,
		ContactName:        record.ContactName,
		FormattedDate:      record.Date.Format(domain.DisplayDateFormat),
		FormattedTimeRange: fmt.Sprintf("%s-%s", record.Range.Start, record.Range.End),
		People:             record.People,
		Price:              record.Price,
		AmountMinor:        record.AmountMinor,
		Phone:              record.Phone,
		RawDate:            record.Date.Format(domain.DateFormat),
		StartTime:          record.Range.Start.String(),
		EndTime:            record.Range.End.String(),
	}
}

// ErrorResponse модель ошибки от платежного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
