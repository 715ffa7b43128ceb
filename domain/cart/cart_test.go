package cart

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func candidate(id, name string, price string) Candidate {
	return Candidate{
		ProductID: id,
		Name:      name,
		UnitPrice: decimal.RequireFromString(price),
	}
}

func TestAddItemMergesByIdentity(t *testing.T) {
	agg := NewAggregator()

	const n = 5
	for i := 0; i < n; i++ {
		agg.AddItem(candidate("7", "Anklet", "300"))
	}

	items := agg.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if items[0].Quantity != n {
		t.Errorf("expected quantity %d, got %d", n, items[0].Quantity)
	}
	want := decimal.RequireFromString("1500")
	if !agg.Total().Equal(want) {
		t.Errorf("expected total %s, got %s", want, agg.Total())
	}

	t.Log("✓ Cart merge law tests passed")
}

func TestAddItemPreservesOrdering(t *testing.T) {
	agg := NewAggregator()
	agg.AddItem(candidate("A", "Gold Ring", "500"))
	agg.AddItem(candidate("B", "Necklace", "1200"))
	agg.AddItem(candidate("A", "Gold Ring", "500"))

	items := agg.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].ProductID != "A" || items[1].ProductID != "B" {
		t.Errorf("expected order [A B], got [%s %s]", items[0].ProductID, items[1].ProductID)
	}
	if items[0].Quantity != 2 {
		t.Errorf("expected A quantity 2, got %d", items[0].Quantity)
	}
	if items[1].Quantity != 1 {
		t.Errorf("expected B quantity 1, got %d", items[1].Quantity)
	}
}

func TestAddItemCopiesCandidate(t *testing.T) {
	agg := NewAggregator()
	agg.AddItem(candidate("1", "Bracelet", "250.50"))

	// Re-adding with a changed price must not retroactively touch the
	// existing line: the cart keeps what the customer agreed to pay.
	agg.AddItem(candidate("1", "Bracelet", "999"))

	items := agg.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if !items[0].UnitPrice.Equal(decimal.RequireFromString("250.50")) {
		t.Errorf("expected original unit price 250.50, got %s", items[0].UnitPrice)
	}
}

func TestRemoveItem(t *testing.T) {
	agg := NewAggregator()
	agg.AddItem(candidate("1", "Ring", "100"))
	agg.AddItem(candidate("2", "Chain", "200"))

	agg.RemoveItem("1")
	items := agg.Items()
	if len(items) != 1 || items[0].ProductID != "2" {
		t.Fatalf("expected only line 2 to remain, got %v", items)
	}

	// Removing an absent identity is a no-op, not an error.
	agg.RemoveItem("does-not-exist")
	if agg.Len() != 1 {
		t.Errorf("expected cart unchanged after absent remove, got %d lines", agg.Len())
	}
}

func TestClear(t *testing.T) {
	agg := NewAggregator()
	agg.AddItem(candidate("1", "Ring", "100"))
	agg.AddItem(candidate("2", "Chain", "200"))

	agg.Clear()
	if agg.Len() != 0 {
		t.Fatalf("expected empty cart after clear, got %d lines", agg.Len())
	}
	if !agg.Total().IsZero() {
		t.Errorf("expected zero total for empty cart, got %s", agg.Total())
	}
}

func TestTotalAccumulationIsExact(t *testing.T) {
	agg := NewAggregator()

	// Many small decimal additions must not drift the way float64 would.
	for i := 0; i < 1000; i++ {
		agg.AddItem(candidate("coin", "Coin Pendant", "0.10"))
	}

	want := decimal.RequireFromString("100.00")
	if !agg.Total().Equal(want) {
		t.Fatalf("expected exact total %s, got %s", want, agg.Total())
	}
}

func TestWatchReceivesSnapshots(t *testing.T) {
	agg := NewAggregator()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, unsubscribe := agg.Watch(ctx)
	defer unsubscribe()

	agg.AddItem(candidate("1", "Ring", "100"))

	select {
	case snapshot := <-ch:
		if len(snapshot) != 1 || snapshot[0].ProductID != "1" {
			t.Fatalf("unexpected snapshot: %v", snapshot)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for cart snapshot")
	}

	agg.Clear()
	select {
	case snapshot := <-ch:
		if len(snapshot) != 0 {
			t.Fatalf("expected empty snapshot after clear, got %v", snapshot)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for clear snapshot")
	}
}
