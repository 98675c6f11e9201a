package pricing

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func baseItem(name string, price Money) BaseItem {
	return BaseItem{ID: uuid.New(), Name: name, BasePrice: price}
}

func TestComposeSingleCheese(t *testing.T) {
	burger := baseItem("Beef Burger", 35_000)
	composed := Compose(burger, []Request{{Kind: KindCheese}})
	if got := composed.ResolvedPrice(); got != 40_000 {
		t.Fatalf("expected 40000, got %d", got)
	}
	if desc := composed.Describe(); !strings.HasSuffix(desc, "+ Extra Cheese") {
		t.Fatalf("expected description ending with %q, got %q", "+ Extra Cheese", desc)
	}
}

func TestComposeEmptyRequestsReturnsBase(t *testing.T) {
	item := baseItem("Pepperoni Pizza", 50_000)
	composed := Compose(item, nil)
	if composed.ResolvedPrice() != 50_000 {
		t.Fatalf("expected base price unchanged, got %d", composed.ResolvedPrice())
	}
	if composed.Describe() != "Pepperoni Pizza" {
		t.Fatalf("expected bare name, got %q", composed.Describe())
	}
	if composed.Skipped != 0 {
		t.Fatalf("expected no skipped requests, got %d", composed.Skipped)
	}
}

func TestComposeStackedLayers(t *testing.T) {
	nasi := baseItem("Nasi Goreng Spesial", 25_000)
	composed := Compose(nasi, []Request{
		{Kind: KindTopping, Name: "Telur"},
		{Kind: KindSpicy, Level: 2},
		{Kind: KindLarge},
	})
	// 25000 + 7000 (default topping) + 6000 (2 x 3000) + 10000
	if got := composed.ResolvedPrice(); got != 48_000 {
		t.Fatalf("expected 48000, got %d", got)
	}
	want := "Nasi Goreng Spesial + Extra Telur (Extra Spicy Level 2) (Large Size)"
	if desc := composed.Describe(); desc != want {
		t.Fatalf("expected %q, got %q", want, desc)
	}
}

func TestComposeToppingPriceOverride(t *testing.T) {
	price := Money(10_000)
	pizza := Compose(baseItem("Pizza", 50_000), []Request{
		{Kind: KindTopping, Name: "Beef", Price: &price},
	})
	if got := pizza.ResolvedPrice(); got != 60_000 {
		t.Fatalf("expected 60000, got %d", got)
	}
}

func TestComposeCosmeticLayersAreFree(t *testing.T) {
	coffee := baseItem("Kopi Susu", 15_000)
	composed := Compose(coffee, []Request{
		{Kind: KindIce, LevelLabel: "less"},
		{Kind: KindSugar, LevelLabel: "more"},
	})
	if got := composed.ResolvedPrice(); got != 15_000 {
		t.Fatalf("expected price unchanged at 15000, got %d", got)
	}
	desc := composed.Describe()
	if !strings.Contains(desc, "(Less Ice)") || !strings.Contains(desc, "(More Sugar)") {
		t.Fatalf("expected both cosmetic suffixes in %q", desc)
	}
}

func TestComposeSkipsUnknownKinds(t *testing.T) {
	composed := Compose(baseItem("Burger", 35_000), []Request{
		{Kind: "glitter"},
		{Kind: KindCheese},
		{Kind: "confetti"},
	})
	if composed.Skipped != 2 {
		t.Fatalf("expected 2 skipped requests, got %d", composed.Skipped)
	}
	if got := composed.ResolvedPrice(); got != 40_000 {
		t.Fatalf("expected recognized layer still applied, got %d", got)
	}
}

func TestComposeOrderAffectsDescriptionNotTotal(t *testing.T) {
	requests := []Request{{Kind: KindCheese}, {Kind: KindGift}, {Kind: KindLarge}}
	reversed := []Request{{Kind: KindLarge}, {Kind: KindGift}, {Kind: KindCheese}}

	a := Compose(baseItem("Burger", 35_000), requests)
	b := Compose(baseItem("Burger", 35_000), reversed)
	if a.ResolvedPrice() != b.ResolvedPrice() {
		t.Fatalf("totals differ: %d vs %d", a.ResolvedPrice(), b.ResolvedPrice())
	}
	if a.Describe() == b.Describe() {
		t.Fatalf("expected descriptions to differ with application order")
	}
}

func TestComposeSpicyLevelFloorsAtOne(t *testing.T) {
	composed := Compose(baseItem("Mie Goreng", 20_000), []Request{{Kind: KindSpicy}})
	if got := composed.ResolvedPrice(); got != 23_000 {
		t.Fatalf("expected level to default to 1 (23000), got %d", got)
	}
}

func TestBaseItemSizeMultiplier(t *testing.T) {
	large := BaseItem{Name: "Es Teh", BasePrice: 10_000, SizeBps: 13_000}
	if got := large.ResolvedPrice(); got != 13_000 {
		t.Fatalf("expected 13000 for large size, got %d", got)
	}
	small := BaseItem{Name: "Es Teh", BasePrice: 10_000, SizeBps: 8_000}
	if got := small.ResolvedPrice(); got != 8_000 {
		t.Fatalf("expected 8000 for small size, got %d", got)
	}
}
