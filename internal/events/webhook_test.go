package events_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-resto/internal/events"
)

func TestWebhookNotifierDelivers(t *testing.T) {
	var gotBody []byte
	var gotHeaders http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotHeaders = r.Header.Clone()
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	event := events.Event{
		ID:          uuid.New(),
		Topic:       events.TopicOrderQuoted,
		AggregateID: uuid.New(),
		Payload:     json.RawMessage(`{"final_amount":43200}`),
		OccurredAt:  time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC),
	}
	notifier := events.WebhookNotifier{
		Endpoint: srv.URL,
		Secret:   "kitchen-secret",
		Now:      func() time.Time { return time.Unix(1_717_254_000, 0) },
	}

	require.NoError(t, notifier.Notify(context.Background(), event))

	var decoded events.Event
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	require.Equal(t, event.ID, decoded.ID)
	require.Equal(t, events.TopicOrderQuoted, gotHeaders.Get("X-Resto-Topic"))
	require.Equal(t, "1717254000", gotHeaders.Get("X-Resto-Timestamp"))

	want := events.ComputeSignature("kitchen-secret", 1_717_254_000, event.ID.String(), gotBody)
	require.Equal(t, want, gotHeaders.Get("X-Resto-Signature"))
}

func TestWebhookNotifierRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	notifier := events.WebhookNotifier{Endpoint: srv.URL}
	err := notifier.Notify(context.Background(), events.Event{ID: uuid.New(), Topic: events.TopicOrderQuoted})
	require.Error(t, err)
	require.Contains(t, err.Error(), "502")
}

func TestWebhookNotifierNoEndpointIsNoop(t *testing.T) {
	notifier := events.WebhookNotifier{}
	require.NoError(t, notifier.Notify(context.Background(), events.Event{ID: uuid.New()}))
}
