package confirm_booking

import (
	"github.com/m04kA/SMC-ReservationService/internal/integrations/payments"
)

// Request запрос подтверждения брони из сессии мастера
type Request struct {
	SessionID string
}

// Response результат подтверждения
// Payment заполняется только для платных площадок и содержит payload,
// передаваемый платежному коллаборатору
type Response struct {
	RefNumber   string                 `json:"refNumber"`
	Free        bool                   `json:"free"`
	Price       int64                  `json:"price"`
	AmountMinor int64                  `json:"amountMinor"`
	Payment     *payments.PaymentDraft `json:"payment,omitempty"`
}
