package events

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// WebhookNotifier forwards lifecycle events to an external endpoint, e.g. a
// kitchen display system running outside this process. Deliveries are signed
// so the receiver can verify origin.
type WebhookNotifier struct {
	Endpoint string
	Secret   string
	Client   *http.Client
	Now      func() time.Time
}

// Notify implements Notifier by POSTing the event as JSON.
func (n WebhookNotifier) Notify(ctx context.Context, event Event) error {
	if n.Endpoint == "" {
		return nil
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode webhook body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Resto-Topic", event.Topic)
	if n.Secret != "" {
		ts := n.now().Unix()
		req.Header.Set("X-Resto-Timestamp", strconv.FormatInt(ts, 10))
		req.Header.Set("X-Resto-Signature", ComputeSignature(n.Secret, ts, event.ID.String(), body))
	}

	resp, err := n.client().Do(req)
	if err != nil {
		return fmt.Errorf("deliver webhook: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook endpoint returned %d", resp.StatusCode)
	}
	return nil
}

func (n WebhookNotifier) client() *http.Client {
	if n.Client != nil {
		return n.Client
	}
	return defaultWebhookClient
}

func (n WebhookNotifier) now() time.Time {
	if n.Now != nil {
		return n.Now()
	}
	return time.Now()
}

var defaultWebhookClient = NewWebhookClient(5 * time.Second)

// NewWebhookClient returns an HTTP client instrumented for outbound tracing.
func NewWebhookClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// ComputeSignature calculates the delivery signature: HMAC-SHA256 over
// "<ts>.<eventID>.<body>" using the shared secret.
func ComputeSignature(secret string, ts int64, eventID string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write([]byte(strconv.FormatInt(ts, 10)))
	_, _ = mac.Write([]byte("."))
	_, _ = mac.Write([]byte(eventID))
	_, _ = mac.Write([]byte("."))
	_, _ = mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
