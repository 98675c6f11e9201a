package pricing

import (
	"errors"
	"reflect"
	"testing"
)

func TestRegistryBuildsKnownStrategies(t *testing.T) {
	registry := NewRegistry(DefaultStrategyConfig())
	for _, name := range registry.Names() {
		strategy, err := registry.Build(name)
		if err != nil {
			t.Fatalf("build %q: %v", name, err)
		}
		if strategy == nil {
			t.Fatalf("build %q returned nil strategy", name)
		}
	}
}

func TestRegistryUnknownNameSurfaced(t *testing.T) {
	registry := NewRegistry(DefaultStrategyConfig())
	if _, err := registry.Build("loyalty_points"); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestRegistryBuildIsCaseInsensitive(t *testing.T) {
	registry := NewRegistry(DefaultStrategyConfig())
	strategy, err := registry.Build(" Birthday ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := strategy.(Birthday); !ok {
		t.Fatalf("expected Birthday strategy, got %T", strategy)
	}
}

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	registry := NewRegistry(DefaultStrategyConfig())
	want := []string{
		StrategyNone, StrategyMember, StrategyPromo,
		StrategyVoucher, StrategyHappyHour, StrategyBirthday,
	}
	if got := registry.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected canonical order %v, got %v", want, got)
	}
	if got := len(registry.All()); got != len(want) {
		t.Fatalf("expected %d strategies, got %d", len(want), got)
	}
}

func TestRegistryCustomRegistration(t *testing.T) {
	registry := NewRegistry(DefaultStrategyConfig())
	err := registry.Register("double_birthday", func(c StrategyConfig) Strategy {
		return Birthday{RateBps: c.BirthdayRateBps * 2}
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	strategy, err := registry.Build("double_birthday")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strategy.Discount(100_000, Params{IsBirthday: true}); got != 60_000 {
		t.Fatalf("expected doubled rate (60000), got %d", got)
	}

	if err := registry.Register(StrategyMember, func(StrategyConfig) Strategy { return Member{} }); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}

func TestRegistryConfigFlowsIntoStrategies(t *testing.T) {
	cfg := DefaultStrategyConfig()
	cfg.PromoAmount = 25_000
	cfg.PromoMinSpend = 80_000
	registry := NewRegistry(cfg)

	strategy, err := registry.Build(StrategyPromo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strategy.Discount(90_000, Params{}); got != 25_000 {
		t.Fatalf("expected configured promo amount, got %d", got)
	}
}
