package pricing

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestItemizeStackedChain(t *testing.T) {
	composed := Compose(baseItem("Nasi Goreng Spesial", 25_000), []Request{
		{Kind: KindTopping, Name: "Telur"},
		{Kind: KindSpicy, Level: 2},
		{Kind: KindLarge},
	})
	breakdown := Itemize(composed)

	if len(breakdown.Items) != 4 {
		t.Fatalf("expected 4 entries (base + 3 layers), got %d", len(breakdown.Items))
	}
	if breakdown.Total != 48_000 {
		t.Fatalf("expected total 48000, got %d", breakdown.Total)
	}
	if breakdown.Total != composed.ResolvedPrice() {
		t.Fatalf("total %d diverges from resolved price %d", breakdown.Total, composed.ResolvedPrice())
	}

	wantLabels := []string{"Nasi Goreng Spesial", "Extra Telur", "Extra Spicy Level 2", "Large Size"}
	for i, entry := range breakdown.Items {
		if entry.Label != wantLabels[i] {
			t.Fatalf("entry %d: expected label %q, got %q", i, wantLabels[i], entry.Label)
		}
	}
}

func TestItemizeExcludesCosmeticLayers(t *testing.T) {
	composed := Compose(baseItem("Kopi Susu", 15_000), []Request{
		{Kind: KindIce, LevelLabel: "less"},
		{Kind: KindSugar, LevelLabel: "more"},
	})
	breakdown := Itemize(composed)
	if len(breakdown.Items) != 1 {
		t.Fatalf("expected only the base entry, got %d entries", len(breakdown.Items))
	}
	if breakdown.Items[0].Amount != 15_000 || breakdown.Total != 15_000 {
		t.Fatalf("expected 15000 base and total, got %+v", breakdown)
	}
}

func TestItemizeBaseOnly(t *testing.T) {
	breakdown := Itemize(baseItem("Sate Ayam", 30_000))
	if len(breakdown.Items) != 1 || breakdown.Total != 30_000 {
		t.Fatalf("unexpected breakdown for bare base item: %+v", breakdown)
	}
}

func TestItemizeIsIdempotent(t *testing.T) {
	composed := Compose(baseItem("Burger", 35_000), []Request{
		{Kind: KindCheese},
		{Kind: KindGift},
	})
	first := Itemize(composed)
	second := Itemize(composed)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated itemize produced different results: %+v vs %+v", first, second)
	}
}

// Every randomly generated chain must satisfy total == resolved price and the
// listed entries must sum exactly to the total.
func TestItemizeRandomChains(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	kinds := []Kind{KindCheese, KindTopping, KindLarge, KindSpicy, KindGift, KindIce, KindSugar, "bogus"}

	for i := 0; i < 200; i++ {
		base := baseItem("Item", Money(rng.Intn(100_000)))
		var requests []Request
		for j := 0; j < rng.Intn(8); j++ {
			req := Request{Kind: kinds[rng.Intn(len(kinds))]}
			switch req.Kind {
			case KindTopping:
				price := Money(rng.Intn(20_000))
				req.Name = "Random"
				req.Price = &price
			case KindSpicy:
				req.Level = rng.Intn(5) + 1
			case KindIce, KindSugar:
				req.LevelLabel = "less"
			}
			requests = append(requests, req)
		}

		composed := Compose(base, requests)
		breakdown := Itemize(composed)

		if breakdown.Total != composed.ResolvedPrice() {
			t.Fatalf("chain %d: total %d != resolved %d", i, breakdown.Total, composed.ResolvedPrice())
		}
		var sum Money
		for _, entry := range breakdown.Items {
			if entry.Amount <= 0 && entry.Label != base.Name {
				t.Fatalf("chain %d: non-positive layer entry %+v", i, entry)
			}
			sum += entry.Amount
		}
		if sum != breakdown.Total {
			t.Fatalf("chain %d: entries sum %d != total %d", i, sum, breakdown.Total)
		}
	}
}
