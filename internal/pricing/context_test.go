package pricing

import (
	"errors"
	"testing"
)

// overDiscounter deliberately exceeds the amount to prove the context clamps.
type overDiscounter struct{}

func (overDiscounter) Discount(amount Money, _ Params) Money { return amount * 2 }
func (overDiscounter) Label() string                         { return "Broken Promo" }

type fixedDiscounter struct {
	amount Money
	label  string
}

func (f fixedDiscounter) Discount(Money, Params) Money { return f.amount }
func (f fixedDiscounter) Label() string                { return f.label }

func TestContextDefaultsToNoDiscount(t *testing.T) {
	ctx := NewContext()
	result, err := ctx.Calculate(150_000, Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Discount != 0 || result.Final != 150_000 {
		t.Fatalf("expected passthrough result, got %+v", result)
	}
	if result.Strategy != (NoDiscount{}).Label() {
		t.Fatalf("expected no-discount label, got %q", result.Strategy)
	}
}

func TestContextRejectsNegativeAmount(t *testing.T) {
	ctx := NewContext()
	if _, err := ctx.Calculate(-1, Params{}); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestContextSwapStrategy(t *testing.T) {
	ctx := NewContext()
	ctx.SetStrategy(Member{})
	result, err := ctx.Calculate(150_000, Params{MemberTier: "gold"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Discount != 15_000 || result.Final != 135_000 {
		t.Fatalf("expected gold tier result, got %+v", result)
	}

	ctx.SetStrategy(nil)
	result, err = ctx.Calculate(150_000, Params{MemberTier: "gold"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Discount != 0 {
		t.Fatalf("nil strategy should reset to no-discount, got %+v", result)
	}
}

func TestContextClampsMisbehavingStrategy(t *testing.T) {
	ctx := NewContext()
	ctx.SetStrategy(overDiscounter{})
	result, err := ctx.Calculate(80_000, Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Discount != 80_000 || result.Final != 0 {
		t.Fatalf("expected discount clamped to amount, got %+v", result)
	}
}

func TestContextUnknownTierDegradesToZero(t *testing.T) {
	ctx := NewContext()
	ctx.SetStrategy(Member{})
	result, err := ctx.Calculate(150_000, Params{MemberTier: "bronze"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Discount != 0 || result.Final != 150_000 {
		t.Fatalf("unknown tier must yield zero discount, got %+v", result)
	}
}

func TestSelectBestPlatinumBirthdayHappyHour(t *testing.T) {
	registry := NewRegistry(DefaultStrategyConfig())
	params := Params{MemberTier: "platinum", IsBirthday: true, AsOf: asOf(15, 0)}

	selection, err := SelectBest(200_000, params, registry.All())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// member 30000, promo 20000, voucher min(40000, 50000), happy hour 50000,
	// birthday 60000: birthday wins.
	if selection.Discount != 60_000 {
		t.Fatalf("expected winning discount 60000, got %d", selection.Discount)
	}
	if selection.Label != (Birthday{RateBps: 3_000}).Label() {
		t.Fatalf("expected birthday winner, got %q", selection.Label)
	}
}

func TestSelectBestFirstListedWinsTies(t *testing.T) {
	candidates := []Strategy{
		fixedDiscounter{amount: 10_000, label: "first"},
		fixedDiscounter{amount: 10_000, label: "second"},
	}
	selection, err := SelectBest(50_000, Params{}, candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if selection.Label != "first" {
		t.Fatalf("tie must go to the first-listed candidate, got %q", selection.Label)
	}
}

func TestSelectBestValidation(t *testing.T) {
	if _, err := SelectBest(-1, Params{}, []Strategy{NoDiscount{}}); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := SelectBest(100, Params{}, nil); !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
}

func TestSelectBestClampsCandidates(t *testing.T) {
	candidates := []Strategy{
		fixedDiscounter{amount: 5_000, label: "modest"},
		overDiscounter{},
	}
	selection, err := SelectBest(10_000, Params{}, candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if selection.Discount != 10_000 || selection.Label != "Broken Promo" {
		t.Fatalf("expected clamped winner at the amount, got %+v", selection)
	}
}
