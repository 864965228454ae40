package httpprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/payment"
)

type createOrderRequest struct {
	TransactionID string `json:"transaction_id"`
	Amount        int64  `json:"amount"`
	Description   string `json:"description"`
}

type createOrderResponse struct {
	Reference string `json:"reference"`
	PayURL    string `json:"pay_url"`
	Deeplink  string `json:"deeplink"`
}

type orderStatusResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// Client talks to the payment provider's order API. Transport errors and 5xx
// answers are retried with exponential backoff until maxElapsed; 4xx answers
// fail at once.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxElapsed time.Duration
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout, maxElapsed time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		maxElapsed: maxElapsed,
		logger:     logger,
	}
}

func (c *Client) CreateOrder(ctx context.Context, order payment.Order) (*payment.CreatedOrder, error) {
	body, err := json.Marshal(createOrderRequest{
		TransactionID: order.TransactionID.String(),
		Amount:        order.Amount,
		Description:   order.Description,
	})
	if err != nil {
		return nil, err
	}

	var resp createOrderResponse
	if err := c.do(ctx, http.MethodPost, "/orders", body, &resp); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &payment.CreatedOrder{
		Reference: resp.Reference,
		PayURL:    resp.PayURL,
		Deeplink:  resp.Deeplink,
	}, nil
}

func (c *Client) QueryOrder(ctx context.Context, reference string) (payment.OrderStatus, error) {
	var resp orderStatusResponse
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(reference), nil, &resp); err != nil {
		return "", fmt.Errorf("query order %s: %w", reference, err)
	}

	status := payment.OrderStatus(resp.Status)
	switch status {
	case payment.OrderPending, payment.OrderPaid, payment.OrderDeclined:
		return status, nil
	default:
		return "", fmt.Errorf("query order %s: unknown status %q", reference, resp.Status)
	}
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	bo := backoff.NewExponentialBackOff(backoff.WithMaxElapsedTime(c.maxElapsed))

	attempt := 0
	return backoff.Retry(func() error {
		attempt++

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return backoff.Permanent(err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Warn("provider request failed", "method", method, "path", path, "attempt", attempt, "error", err)
			return err
		}
		defer resp.Body.Close()

		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		switch {
		case resp.StatusCode >= http.StatusInternalServerError:
			c.logger.Warn("provider returned server error", "method", method, "path", path, "attempt", attempt, "status", resp.StatusCode)
			return fmt.Errorf("provider status %d", resp.StatusCode)
		case resp.StatusCode >= http.StatusBadRequest:
			return backoff.Permanent(fmt.Errorf("provider status %d: %s", resp.StatusCode, bytes.TrimSpace(payload)))
		}

		if err := json.Unmarshal(payload, out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode provider response: %w", err))
		}
		return nil
	}, backoff.WithContext(bo, ctx))
}
