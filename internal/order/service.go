package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/backend-resto/internal/events"
	"github.com/noah-isme/backend-resto/internal/menu"
	"github.com/noah-isme/backend-resto/internal/obs"
	"github.com/noah-isme/backend-resto/internal/pricing"
)

// ErrItemUnavailable is returned when a quote targets an item that exists but
// is not currently orderable.
var ErrItemUnavailable = errors.New("order: item unavailable")

// MenuLookup resolves menu items for quoting.
type MenuLookup interface {
	Get(ctx context.Context, id uuid.UUID) (menu.Item, error)
}

// Emitter publishes order lifecycle events.
type Emitter interface {
	Emit(ctx context.Context, topic string, aggregateID uuid.UUID, payload any) (events.Event, error)
}

// QuoteInput describes a single-item quote request.
type QuoteInput struct {
	ItemID         uuid.UUID
	Customizations []pricing.Request
	// Strategy names a registered discount strategy. Empty means no discount.
	Strategy   string
	MemberTier string
	IsBirthday bool
	// AsOf is the pricing instant for time-windowed strategies. Zero means
	// "now" as seen by the service clock.
	AsOf time.Time
}

// Quote is the computed outcome of pricing one customized item.
type Quote struct {
	ItemID      uuid.UUID         `json:"item_id"`
	Description string            `json:"description"`
	Breakdown   pricing.Breakdown `json:"breakdown"`
	Pricing     pricing.Result    `json:"pricing"`
	Skipped     int               `json:"skipped_customizations"`
	QuotedAt    time.Time         `json:"quoted_at"`
}

// Service orchestrates quoting: menu lookup, customization composition,
// breakdown reconstruction and discount application. It persists nothing;
// each quote is emitted as an order.quoted event.
type Service struct {
	Menu     MenuLookup
	Registry *pricing.Registry
	Bus      Emitter
	Now      func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Quote prices one item with its customization chain under a single named
// discount strategy. An unknown strategy name is surfaced, never defaulted.
func (s *Service) Quote(ctx context.Context, in QuoteInput) (Quote, error) {
	composed, item, asOf, err := s.compose(ctx, in)
	if err != nil {
		return Quote{}, err
	}

	strategy := pricing.Strategy(pricing.NoDiscount{})
	if in.Strategy != "" {
		strategy, err = s.Registry.Build(in.Strategy)
		if err != nil {
			s.countQuote("single", "unknown_strategy")
			return Quote{}, err
		}
	}

	pctx := pricing.NewContext()
	pctx.SetStrategy(strategy)
	result, err := pctx.Calculate(composed.ResolvedPrice(), pricing.Params{
		MemberTier: in.MemberTier,
		IsBirthday: in.IsBirthday,
		AsOf:       asOf,
	})
	if err != nil {
		s.countQuote("single", "invalid")
		return Quote{}, err
	}

	quote := s.assemble(item, composed, result, asOf)
	s.record("single", result)
	s.emit(ctx, item.ID, quote)
	return quote, nil
}

// BestQuote prices one item and scans every registered strategy for the
// largest discount. Ties go to the earliest-registered strategy.
func (s *Service) BestQuote(ctx context.Context, in QuoteInput) (Quote, error) {
	composed, item, asOf, err := s.compose(ctx, in)
	if err != nil {
		return Quote{}, err
	}

	params := pricing.Params{
		MemberTier: in.MemberTier,
		IsBirthday: in.IsBirthday,
		AsOf:       asOf,
	}
	selection, err := pricing.SelectBest(composed.ResolvedPrice(), params, s.Registry.All())
	if err != nil {
		s.countQuote("best", "invalid")
		return Quote{}, err
	}

	amount := composed.ResolvedPrice()
	result := pricing.Result{
		Original: amount,
		Discount: selection.Discount,
		Final:    amount - selection.Discount,
		Strategy: selection.Label,
	}
	quote := s.assemble(item, composed, result, asOf)
	s.record("best", result)
	s.emit(ctx, item.ID, quote)
	return quote, nil
}

func (s *Service) compose(ctx context.Context, in QuoteInput) (pricing.Composed, menu.Item, time.Time, error) {
	if s == nil || s.Menu == nil || s.Registry == nil {
		return pricing.Composed{}, menu.Item{}, time.Time{}, errors.New("order service not configured")
	}
	item, err := s.Menu.Get(ctx, in.ItemID)
	if err != nil {
		return pricing.Composed{}, menu.Item{}, time.Time{}, err
	}
	if !item.Available {
		return pricing.Composed{}, menu.Item{}, time.Time{}, fmt.Errorf("%q: %w", item.Name, ErrItemUnavailable)
	}
	asOf := in.AsOf
	if asOf.IsZero() {
		asOf = s.now()
	}
	composed := pricing.Compose(item.PricedBase(), in.Customizations)
	if composed.Skipped > 0 && obs.CustomizationsSkippedTotal != nil {
		obs.CustomizationsSkippedTotal.Add(float64(composed.Skipped))
	}
	return composed, item, asOf, nil
}

func (s *Service) assemble(item menu.Item, composed pricing.Composed, result pricing.Result, asOf time.Time) Quote {
	return Quote{
		ItemID:      item.ID,
		Description: composed.Describe(),
		Breakdown:   composed.Breakdown(),
		Pricing:     result,
		Skipped:     composed.Skipped,
		QuotedAt:    asOf,
	}
}

func (s *Service) record(mode string, result pricing.Result) {
	s.countQuote(mode, "ok")
	if obs.DiscountSelectedTotal != nil {
		obs.DiscountSelectedTotal.WithLabelValues(result.Strategy).Inc()
	}
	if obs.QuoteFinalAmount != nil {
		obs.QuoteFinalAmount.Observe(float64(result.Final))
	}
}

func (s *Service) countQuote(mode, result string) {
	if obs.QuotesTotal != nil {
		obs.QuotesTotal.WithLabelValues(mode, result).Inc()
	}
}

func (s *Service) emit(ctx context.Context, itemID uuid.UUID, quote Quote) {
	if s.Bus == nil {
		return
	}
	// Emission is best-effort; a notification failure never voids the quote.
	_, _ = s.Bus.Emit(ctx, events.TopicOrderQuoted, itemID, quote)
}
