package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платежного сервиса
// Регистрирует handoff-черновик перед переходом пользователя к оплате
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платежного сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// RegisterDraft передает handoff-черновик платежному сервису
// Вызывается только для платных площадок; ошибка не отменяет handoff -
// пользователь все равно получает платежный payload, решение за вызывающим
func (c *Client) RegisterDraft(ctx context.Context, record *domain.HandoffRecord) error {
	payload := FromHandoffRecord(record)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal draft: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/payments/drafts", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		c.log.Info("Payment draft registered: ref=%s, amount_minor=%d", record.RefNumber, record.AmountMinor)
		return nil
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: ref=%s", ErrDraftRejected, record.RefNumber)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
