package erpservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/WPS-DockService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для отправки уведомлений в ERP склада
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ERP
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NotifyCheckIn отправляет в ERP запись о прибытии грузовика
func (c *Client) NotifyCheckIn(ctx context.Context, payload *domain.ERPPayload) (*NotifyResponse, error) {
	url := fmt.Sprintf("%s/api/receiving/check-ins", c.baseURL)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		// Продолжаем обработку
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var result NotifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

// NotifyCheckInWithGracefulDegradation отправляет уведомление с graceful degradation
// Check-in уже зафиксирован в БД: при недоступности ERP возвращается ErrServiceDegraded,
// payload остается у вызывающей стороны для повторной отправки
func (c *Client) NotifyCheckInWithGracefulDegradation(ctx context.Context, payload *domain.ERPPayload) (*NotifyResponse, error) {
	c.log.Info("Notifying ERP about check-in of appointment id=%d", payload.AppointmentID)

	result, err := c.NotifyCheckIn(ctx, payload)
	if err != nil {
		c.log.Error("ERP unavailable, applying graceful degradation for appointment id=%d: %v", payload.AppointmentID, err)
		return nil, fmt.Errorf("%w: appointment_id=%d, error=%v", ErrServiceDegraded, payload.AppointmentID, err)
	}

	c.log.Info("Successfully notified ERP about appointment id=%d, reference=%s", payload.AppointmentID, result.Reference)
	return result, nil
}
