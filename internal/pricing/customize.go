package pricing

import (
	"fmt"
	"strings"
)

// Kind identifies a customization layer type.
type Kind string

// Recognized customization kinds.
const (
	KindCheese  Kind = "cheese"
	KindTopping Kind = "topping"
	KindLarge   Kind = "large"
	KindSpicy   Kind = "spicy"
	KindGift    Kind = "gift"
	KindIce     Kind = "ice"
	KindSugar   Kind = "sugar"
)

// Fixed surcharges in minor units.
const (
	CheesePrice         Money = 5_000
	DefaultToppingPrice Money = 7_000
	LargePrice          Money = 10_000
	SpicyPricePerLevel  Money = 3_000
	GiftWrapPrice       Money = 5_000
)

// Request describes a single customization to apply on top of an item.
type Request struct {
	Kind Kind `json:"kind"`
	// Name is the topping name for KindTopping.
	Name string `json:"name,omitempty"`
	// Price overrides the default topping surcharge when set.
	Price *Money `json:"price,omitempty"`
	// Level is the spice level for KindSpicy (minimum 1).
	Level int `json:"level,omitempty"`
	// LevelLabel is the ice/sugar level for KindIce and KindSugar
	// (e.g. "less", "normal", "more").
	LevelLabel string `json:"levelLabel,omitempty"`
}

// Layer wraps exactly one inner node and adds an incremental cost plus a
// description suffix. Layers are created through Compose only.
type Layer struct {
	kind   Kind
	inner  Node
	cost   Money
	label  string
	suffix string
}

// ResolvedPrice returns the wrapped price plus this layer's increment.
func (l Layer) ResolvedPrice() Money { return l.inner.ResolvedPrice() + l.cost }

// Describe appends this layer's suffix to the wrapped description.
func (l Layer) Describe() string { return l.inner.Describe() + l.suffix }

// Kind returns the layer kind tag.
func (l Layer) Kind() Kind { return l.kind }

// Inner returns the wrapped node.
func (l Layer) Inner() Node { return l.inner }

// Cost returns the incremental cost this layer contributes.
func (l Layer) Cost() Money { return l.cost }

// Label returns the breakdown entry label for this layer.
func (l Layer) Label() string { return l.label }

// Composed is the result of applying customization requests to a base item.
// It is the outermost node of the chain.
type Composed struct {
	Node
	// Skipped counts requests with an unrecognized kind. Unknown kinds are
	// ignored rather than failing the whole order: the request list is
	// user-composed, so a partially invalid list still prices the rest.
	Skipped int
}

// Compose wraps base in one layer per recognized request, strictly in input
// order. An empty request list returns the base item unchanged.
func Compose(base BaseItem, requests []Request) Composed {
	var node Node = base
	skipped := 0
	for _, req := range requests {
		layer, ok := buildLayer(node, req)
		if !ok {
			skipped++
			continue
		}
		node = layer
	}
	return Composed{Node: node, Skipped: skipped}
}

func buildLayer(inner Node, req Request) (Layer, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(string(req.Kind)))) {
	case KindCheese:
		return Layer{
			kind:   KindCheese,
			inner:  inner,
			cost:   CheesePrice,
			label:  "Extra Cheese",
			suffix: " + Extra Cheese",
		}, true
	case KindTopping:
		name := strings.TrimSpace(req.Name)
		if name == "" {
			name = "Topping"
		}
		price := DefaultToppingPrice
		if req.Price != nil && *req.Price >= 0 {
			price = *req.Price
		}
		return Layer{
			kind:   KindTopping,
			inner:  inner,
			cost:   price,
			label:  "Extra " + name,
			suffix: " + Extra " + name,
		}, true
	case KindLarge:
		return Layer{
			kind:   KindLarge,
			inner:  inner,
			cost:   LargePrice,
			label:  "Large Size",
			suffix: " (Large Size)",
		}, true
	case KindSpicy:
		level := req.Level
		if level < 1 {
			level = 1
		}
		return Layer{
			kind:   KindSpicy,
			inner:  inner,
			cost:   SpicyPricePerLevel * Money(level),
			label:  fmt.Sprintf("Extra Spicy Level %d", level),
			suffix: fmt.Sprintf(" (Extra Spicy Level %d)", level),
		}, true
	case KindGift:
		return Layer{
			kind:   KindGift,
			inner:  inner,
			cost:   GiftWrapPrice,
			label:  "Gift Wrap",
			suffix: " + Gift Wrap",
		}, true
	case KindIce:
		label := levelOrNormal(req.LevelLabel)
		return Layer{
			kind:   KindIce,
			inner:  inner,
			label:  titleCase(label) + " Ice",
			suffix: " (" + titleCase(label) + " Ice)",
		}, true
	case KindSugar:
		label := levelOrNormal(req.LevelLabel)
		return Layer{
			kind:   KindSugar,
			inner:  inner,
			label:  titleCase(label) + " Sugar",
			suffix: " (" + titleCase(label) + " Sugar)",
		}, true
	default:
		return Layer{}, false
	}
}

func levelOrNormal(label string) string {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return "normal"
	}
	return trimmed
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
