package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"ticketGate/internal/lib/logger/sl"
)

// Dispatcher delivers best-effort JSON notifications to organizer
// webhooks. Delivery failures are logged and swallowed; they never
// reach the HTTP caller, and dispatch never runs inside a store
// transaction.
type Dispatcher struct {
	log     *slog.Logger
	client  *http.Client
	timeout time.Duration
}

func NewDispatcher(log *slog.Logger, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Dispatcher{
		log:     log,
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// Send posts the payload synchronously. Non-2xx responses count as
// delivery failures.
func (d *Dispatcher) Send(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}

// Dispatch fires the notification without blocking the caller. A nil
// dispatcher and an empty URL are both no-ops, so handlers can call it
// unconditionally.
func (d *Dispatcher) Dispatch(url string, payload any) {
	if d == nil || url == "" {
		return
	}

	go func() {
		if err := d.Send(context.Background(), url, payload); err != nil {
			d.log.Error("webhook delivery failed",
				slog.String("url", url),
				sl.Err(err),
			)
		}
	}()
}
