package save_event_order

// Request запрос на сохранение заказа билетного мероприятия
type Request struct {
	OrderRef     string
	EventID      int64
	Tickets      int
	AmountMinor  int64
	CustomerName string
	Phone        string
}

// Response результат сохранения
// Created=false означает, что заказ с таким order_ref уже был сохранен
type Response struct {
	OrderRef string `json:"orderRef"`
	Created  bool   `json:"created"`
}
