package save_event_order

import (
	saveEventOrder "github.com/m04kA/SMC-ReservationService/internal/usecase/save_event_order"
)

// SaveEventOrderRequest HTTP request model
type SaveEventOrderRequest struct {
	OrderRef     string `json:"orderRef"`
	EventID      int64  `json:"eventId"`
	Tickets      int    `json:"tickets"`
	AmountMinor  int64  `json:"amountMinor"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SaveEventOrderRequest) ToUseCaseRequest() *saveEventOrder.Request {
	return &saveEventOrder.Request{
		OrderRef:     r.OrderRef,
		EventID:      r.EventID,
		Tickets:      r.Tickets,
		AmountMinor:  r.AmountMinor,
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
	}
}
