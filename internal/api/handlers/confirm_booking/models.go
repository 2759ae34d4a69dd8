package confirm_booking

// SubmitErrorResponse ошибка сабмита с машинным кодом
// Используется для фатальной ошибки сохранения на платном пути
type SubmitErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
