package menu

import (
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/backend-resto/internal/pricing"
)

// ItemKind classifies a menu item.
type ItemKind string

// Supported menu item kinds.
const (
	KindFood     ItemKind = "food"
	KindBeverage ItemKind = "beverage"
	KindPackage  ItemKind = "package"
)

// Beverage sizes and their price multipliers in basis points.
const (
	SizeSmall   = "small"
	SizeRegular = "regular"
	SizeLarge   = "large"
)

var sizeBps = map[string]int32{
	SizeSmall:   8_000,
	SizeRegular: 10_000,
	SizeLarge:   13_000,
}

// Item is a menu entry. BasePrice is in minor currency units; beverages carry
// a size whose multiplier applies on top of the base price.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Kind        ItemKind  `json:"kind"`
	Name        string    `json:"name"`
	BasePrice   int64     `json:"basePrice"`
	Description string    `json:"description,omitempty"`
	Size        string    `json:"size,omitempty"`
	Ingredients []string  `json:"ingredients,omitempty"`
	Includes    []string  `json:"includes,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SizeMultiplierBps returns the price multiplier for the item size.
// Non-beverages and unknown sizes scale by exactly 1.
func (i Item) SizeMultiplierBps() int32 {
	if i.Kind != KindBeverage {
		return 10_000
	}
	if bps, ok := sizeBps[i.Size]; ok {
		return bps
	}
	return 10_000
}

// ListedPrice returns the effective price shown on the menu.
func (i Item) ListedPrice() int64 {
	return i.PricedBase().ResolvedPrice()
}

// PricedBase converts the item into the pricing engine's base node.
func (i Item) PricedBase() pricing.BaseItem {
	return pricing.BaseItem{
		ID:        i.ID,
		Name:      i.Name,
		BasePrice: i.BasePrice,
		SizeBps:   i.SizeMultiplierBps(),
	}
}

// ValidKind reports whether the kind is one of the supported values.
func ValidKind(kind ItemKind) bool {
	switch kind {
	case KindFood, KindBeverage, KindPackage:
		return true
	default:
		return false
	}
}
