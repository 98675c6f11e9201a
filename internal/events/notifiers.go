package events

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// KitchenNotifier surfaces order events on the kitchen display feed.
// Only order topics are relevant to the kitchen; everything else is ignored.
type KitchenNotifier struct {
	Log zerolog.Logger
}

// Notify implements Notifier.
func (n KitchenNotifier) Notify(_ context.Context, event Event) error {
	if !strings.HasPrefix(event.Topic, "order.") {
		return nil
	}
	n.Log.Info().
		Str("channel", "kitchen").
		Str("topic", event.Topic).
		Str("order_id", event.AggregateID.String()).
		RawJSON("payload", event.Payload).
		Msg("kitchen_display")
	return nil
}

// CashierNotifier mirrors pricing events to the cashier console so the
// final amount shown at the till always matches the computed quote.
type CashierNotifier struct {
	Log zerolog.Logger
}

// Notify implements Notifier.
func (n CashierNotifier) Notify(_ context.Context, event Event) error {
	n.Log.Info().
		Str("channel", "cashier").
		Str("topic", event.Topic).
		Str("aggregate_id", event.AggregateID.String()).
		RawJSON("payload", event.Payload).
		Msg("cashier_notification")
	return nil
}
