package pricing

import (
	"fmt"
	"strings"
	"time"
)

// Params carries the contextual inputs consumed by discount strategies.
// Strategies read only what they need; everything is explicit so a
// calculation never depends on ambient state such as the wall clock.
type Params struct {
	MemberTier string
	IsBirthday bool
	// AsOf is the instant the order is priced at, used by time-windowed
	// strategies. The zero value means no window matches.
	AsOf time.Time
}

// Strategy computes a discount for an amount given contextual params.
// Implementations return the raw discount; clamping to [0, amount] happens
// once in the Context, never per strategy.
type Strategy interface {
	Discount(amount Money, p Params) Money
	Label() string
}

// NoDiscount always yields zero. It is the default strategy of a Context.
type NoDiscount struct{}

// Discount implements Strategy.
func (NoDiscount) Discount(Money, Params) Money { return 0 }

// Label implements Strategy.
func (NoDiscount) Label() string { return "Regular Price (No Discount)" }

var memberRates = map[string]int32{
	"silver":   500,
	"gold":     1_000,
	"platinum": 1_500,
}

// Member discounts by membership tier. Unknown tiers yield zero rather than
// an error so a stale tier on the customer record never blocks an order.
type Member struct{}

// Discount implements Strategy.
func (Member) Discount(amount Money, p Params) Money {
	rate := memberRates[strings.ToLower(strings.TrimSpace(p.MemberTier))]
	if rate <= 0 {
		return 0
	}
	return (amount * Money(rate)) / bpsDenominator
}

// Label implements Strategy.
func (Member) Label() string { return "Member Discount" }

// Promo grants a flat amount off once the order reaches a minimum spend.
// Threshold and amount are per-instance so several promo configurations can
// run concurrently.
type Promo struct {
	Amount   Money
	MinSpend Money
}

// Discount implements Strategy.
func (s Promo) Discount(amount Money, _ Params) Money {
	if amount < s.MinSpend {
		return 0
	}
	return s.Amount
}

// Label implements Strategy.
func (s Promo) Label() string {
	return fmt.Sprintf("Promo Discount (Rp%d off for min Rp%d)", s.Amount, s.MinSpend)
}

// Voucher applies a percentage rate capped at a maximum discount.
type Voucher struct {
	RateBps int32
	Cap     Money
}

// Discount implements Strategy.
func (s Voucher) Discount(amount Money, _ Params) Money {
	if s.RateBps <= 0 {
		return 0
	}
	discount := (amount * Money(s.RateBps)) / bpsDenominator
	if s.Cap > 0 && discount > s.Cap {
		discount = s.Cap
	}
	return discount
}

// Label implements Strategy.
func (s Voucher) Label() string {
	return fmt.Sprintf("Voucher Discount (%s off, max Rp%d)", formatBps(s.RateBps), s.Cap)
}

// HappyHour applies a percentage rate when the as-of time-of-day falls inside
// an inclusive window. Start and End are minutes since midnight.
type HappyHour struct {
	RateBps int32
	Start   int
	End     int
}

// Discount implements Strategy.
func (s HappyHour) Discount(amount Money, p Params) Money {
	if s.RateBps <= 0 || p.AsOf.IsZero() {
		return 0
	}
	minute := p.AsOf.Hour()*60 + p.AsOf.Minute()
	if minute < s.Start || minute > s.End {
		return 0
	}
	return (amount * Money(s.RateBps)) / bpsDenominator
}

// Label implements Strategy.
func (s HappyHour) Label() string {
	return fmt.Sprintf("Happy Hour (%s off, %02d:%02d - %02d:%02d)",
		formatBps(s.RateBps), s.Start/60, s.Start%60, s.End/60, s.End%60)
}

// Birthday applies a percentage rate only when the birthday flag is set.
type Birthday struct {
	RateBps int32
}

// Discount implements Strategy.
func (s Birthday) Discount(amount Money, p Params) Money {
	if !p.IsBirthday || s.RateBps <= 0 {
		return 0
	}
	return (amount * Money(s.RateBps)) / bpsDenominator
}

// Label implements Strategy.
func (s Birthday) Label() string {
	return fmt.Sprintf("Birthday Special (%s off)", formatBps(s.RateBps))
}

func formatBps(bps int32) string {
	if bps%100 == 0 {
		return fmt.Sprintf("%d%%", bps/100)
	}
	return fmt.Sprintf("%d.%02d%%", bps/100, bps%100)
}
