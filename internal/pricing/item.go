package pricing

import "github.com/google/uuid"

// Money represents a monetary value stored in minor units.
type Money = int64

// Percentage rates are carried in basis points (1% = 100 bps).
const bpsDenominator = 10_000

// Node is a priced node in a customization chain. Both the base item and
// every customization layer implement it, so callers never inspect the
// concrete shape to read a price or description.
type Node interface {
	// ResolvedPrice returns the price of this node including everything it wraps.
	ResolvedPrice() Money
	// Describe returns the display name with all customization suffixes applied.
	Describe() string
}

// BaseItem is the immutable terminus of a customization chain.
type BaseItem struct {
	ID        uuid.UUID
	Name      string
	BasePrice Money
	// SizeBps scales the base price in basis points. Zero means no scaling.
	SizeBps int32
}

// ResolvedPrice returns the base price with the size multiplier applied.
func (b BaseItem) ResolvedPrice() Money {
	if b.SizeBps <= 0 || b.SizeBps == bpsDenominator {
		return b.BasePrice
	}
	return (b.BasePrice * Money(b.SizeBps)) / bpsDenominator
}

// Describe returns the item display name.
func (b BaseItem) Describe() string { return b.Name }
