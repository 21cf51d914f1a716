package gueststore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент внешнего справочника гостей.
// CRUD гостей живет в отдельном модуле; ядру бронирований нужна
// только проверка существования гостя в рамках отеля.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочника гостей
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetGuest получает гостя по ID в рамках отеля
func (c *Client) GetGuest(ctx context.Context, hotelID, guestID int64) (*Guest, error) {
	url := fmt.Sprintf("%s/internal/hotels/%d/guests/%d", c.baseURL, hotelID, guestID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
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
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrGuestNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var guest Guest
	if err := json.NewDecoder(resp.Body).Decode(&guest); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &guest, nil
}

// GetGuestWithGracefulDegradation получает гостя с graceful degradation.
// Недоступность справочника не должна блокировать создание бронирования:
// в этом случае возвращается ErrServiceDegraded, а вызывающая сторона
// сохраняет guest_id как есть.
func (c *Client) GetGuestWithGracefulDegradation(ctx context.Context, hotelID, guestID int64) (*Guest, error) {
	guest, err := c.GetGuest(ctx, hotelID, guestID)
	if err != nil {
		// Бизнес-ошибку (гость не найден) пробрасываем дальше
		if errors.Is(err, ErrGuestNotFound) {
			c.log.Info("No guest id=%d found for hotel=%d", guestID, hotelID)
			return nil, err
		}

		// Для остальных ошибок (недоступность, timeout, парсинг) —
		// graceful degradation с повышением уровня логирования
		c.log.Error("GuestStore unavailable, applying graceful degradation for hotel=%d guest=%d: %v",
			hotelID, guestID, err)
		return nil, fmt.Errorf("%w: hotel=%d guest=%d, error=%v", ErrServiceDegraded, hotelID, guestID, err)
	}

	return guest, nil
}
