package pricing

import (
	"math/rand"
	"testing"
	"time"
)

func asOf(hour, minute int) time.Time {
	return time.Date(2024, time.March, 8, hour, minute, 0, 0, time.UTC)
}

func TestNoDiscount(t *testing.T) {
	if got := (NoDiscount{}).Discount(150_000, Params{}); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestMemberDiscountTiers(t *testing.T) {
	cases := []struct {
		tier string
		want Money
	}{
		{"silver", 7_500},
		{"gold", 15_000},
		{"platinum", 22_500},
		{"PLATINUM", 22_500},
		{"bronze", 0},
		{"", 0},
	}
	for _, tc := range cases {
		got := Member{}.Discount(150_000, Params{MemberTier: tc.tier})
		if got != tc.want {
			t.Fatalf("tier %q: expected %d, got %d", tc.tier, tc.want, got)
		}
	}
}

func TestPromoDiscountThreshold(t *testing.T) {
	promo := Promo{Amount: 20_000, MinSpend: 100_000}
	if got := promo.Discount(90_000, Params{}); got != 0 {
		t.Fatalf("below threshold: expected 0, got %d", got)
	}
	if got := promo.Discount(150_000, Params{}); got != 20_000 {
		t.Fatalf("above threshold: expected 20000, got %d", got)
	}
	if got := promo.Discount(100_000, Params{}); got != 20_000 {
		t.Fatalf("threshold is inclusive: expected 20000, got %d", got)
	}
}

func TestVoucherDiscountCap(t *testing.T) {
	voucher := Voucher{RateBps: 2_000, Cap: 50_000}
	if got := voucher.Discount(150_000, Params{}); got != 30_000 {
		t.Fatalf("expected 30000, got %d", got)
	}
	if got := voucher.Discount(400_000, Params{}); got != 50_000 {
		t.Fatalf("expected cap at 50000, got %d", got)
	}
}

func TestHappyHourWindow(t *testing.T) {
	happy := HappyHour{RateBps: 2_500, Start: 14 * 60, End: 16 * 60}
	if got := happy.Discount(150_000, Params{AsOf: asOf(15, 30)}); got != 37_500 {
		t.Fatalf("inside window: expected 37500, got %d", got)
	}
	if got := happy.Discount(150_000, Params{AsOf: asOf(18, 0)}); got != 0 {
		t.Fatalf("outside window: expected 0, got %d", got)
	}
	// Bounds are inclusive.
	if got := happy.Discount(100_000, Params{AsOf: asOf(14, 0)}); got != 25_000 {
		t.Fatalf("window start: expected 25000, got %d", got)
	}
	if got := happy.Discount(100_000, Params{AsOf: asOf(16, 0)}); got != 25_000 {
		t.Fatalf("window end: expected 25000, got %d", got)
	}
	if got := happy.Discount(100_000, Params{}); got != 0 {
		t.Fatalf("zero as-of: expected 0, got %d", got)
	}
}

func TestBirthdayDiscountFlag(t *testing.T) {
	birthday := Birthday{RateBps: 3_000}
	if got := birthday.Discount(150_000, Params{IsBirthday: true}); got != 45_000 {
		t.Fatalf("expected 45000, got %d", got)
	}
	if got := birthday.Discount(150_000, Params{}); got != 0 {
		t.Fatalf("expected 0 without the flag, got %d", got)
	}
}

// Every strategy must hold 0 <= discount <= amount for any non-negative amount.
func TestDiscountBounds(t *testing.T) {
	strategies := NewRegistry(DefaultStrategyConfig()).All()
	params := Params{MemberTier: "platinum", IsBirthday: true, AsOf: asOf(15, 0)}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		amount := Money(rng.Intn(1_000_000))
		for _, s := range strategies {
			discount := s.Discount(amount, params)
			if discount < 0 || discount > amount {
				t.Fatalf("%s: discount %d out of [0, %d]", s.Label(), discount, amount)
			}
		}
	}
}
