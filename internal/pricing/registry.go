package pricing

import (
	"fmt"
	"strings"
)

// Canonical strategy names registered by NewRegistry.
const (
	StrategyNone      = "none"
	StrategyMember    = "member"
	StrategyPromo     = "promo"
	StrategyVoucher   = "voucher"
	StrategyHappyHour = "happy_hour"
	StrategyBirthday  = "birthday"
)

// StrategyConfig carries constructor parameters for the configurable strategies.
type StrategyConfig struct {
	PromoAmount      Money
	PromoMinSpend    Money
	VoucherRateBps   int32
	VoucherCap       Money
	HappyHourRateBps int32
	HappyHourStart   int
	HappyHourEnd     int
	BirthdayRateBps  int32
}

// DefaultStrategyConfig returns the stock promo configuration.
func DefaultStrategyConfig() StrategyConfig {
	return StrategyConfig{
		PromoAmount:      20_000,
		PromoMinSpend:    100_000,
		VoucherRateBps:   2_000,
		VoucherCap:       50_000,
		HappyHourRateBps: 2_500,
		HappyHourStart:   14 * 60,
		HappyHourEnd:     16 * 60,
		BirthdayRateBps:  3_000,
	}
}

// Factory builds a strategy instance from the registry configuration.
type Factory func(StrategyConfig) Strategy

// Registry maps strategy names to factories. Registration order is preserved
// and drives the candidate order of All, which makes best-discount scans
// deterministic. Registries are plain values owned by their creator; there is
// no package-level mutable instance.
type Registry struct {
	cfg       StrategyConfig
	names     []string
	factories map[string]Factory
}

// NewRegistry returns a registry with all built-in strategies registered in
// their canonical order.
func NewRegistry(cfg StrategyConfig) *Registry {
	r := &Registry{cfg: cfg, factories: make(map[string]Factory)}
	_ = r.Register(StrategyNone, func(StrategyConfig) Strategy { return NoDiscount{} })
	_ = r.Register(StrategyMember, func(StrategyConfig) Strategy { return Member{} })
	_ = r.Register(StrategyPromo, func(c StrategyConfig) Strategy {
		return Promo{Amount: c.PromoAmount, MinSpend: c.PromoMinSpend}
	})
	_ = r.Register(StrategyVoucher, func(c StrategyConfig) Strategy {
		return Voucher{RateBps: c.VoucherRateBps, Cap: c.VoucherCap}
	})
	_ = r.Register(StrategyHappyHour, func(c StrategyConfig) Strategy {
		return HappyHour{RateBps: c.HappyHourRateBps, Start: c.HappyHourStart, End: c.HappyHourEnd}
	})
	_ = r.Register(StrategyBirthday, func(c StrategyConfig) Strategy {
		return Birthday{RateBps: c.BirthdayRateBps}
	})
	return r
}

// Register adds a named strategy factory. Names are case-insensitive and
// must be unique within the registry.
func (r *Registry) Register(name string, factory Factory) error {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return fmt.Errorf("pricing: strategy name is required")
	}
	if factory == nil {
		return fmt.Errorf("pricing: strategy factory is required")
	}
	if _, exists := r.factories[normalized]; exists {
		return fmt.Errorf("pricing: strategy %q already registered", normalized)
	}
	r.names = append(r.names, normalized)
	r.factories[normalized] = factory
	return nil
}

// Build instantiates the named strategy. Unknown names are surfaced with
// ErrUnknownStrategy.
func (r *Registry) Build(name string) (Strategy, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	factory, ok := r.factories[normalized]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return factory(r.cfg), nil
}

// Names returns the registered strategy names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// All instantiates every registered strategy in registration order.
func (r *Registry) All() []Strategy {
	out := make([]Strategy, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.factories[name](r.cfg))
	}
	return out
}
