package domain

import (
	"testing"
)

func TestCart_MergeItemIncrementsExistingLine(t *testing.T) {
	cart := EmptyCart("u1")
	cart.MergeItem("p1", "Caneca", 1, 19.90)
	cart.MergeItem("p1", "Caneca", 2, 19.90)

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", cart.Items[0].Quantity)
	}
}

func TestCart_MergeItemFirstPriceWins(t *testing.T) {
	cart := EmptyCart("u1")
	cart.MergeItem("p1", "Caneca", 1, 19.90)
	cart.MergeItem("p1", "Caneca", 1, 25.00)

	if cart.Items[0].UnitPrice != 19.90 {
		t.Errorf("expected unit price 19.90, got %v", cart.Items[0].UnitPrice)
	}
}

func TestCart_TotalConsistentAcrossMutations(t *testing.T) {
	cart := EmptyCart("u1")
	cart.MergeItem("p1", "Caneca", 2, 19.90)
	cart.MergeItem("p2", "Camiseta", 1, 49.50)

	if !cart.ConsistentTotal() {
		t.Errorf("total %v does not match computed %v after add", cart.Total, cart.ComputedTotal())
	}

	cart.Items[0].Quantity = 5
	cart.Recompute()
	if !cart.ConsistentTotal() {
		t.Errorf("total %v does not match computed %v after quantity change", cart.Total, cart.ComputedTotal())
	}

	cart.RemoveItem("p2")
	if !cart.ConsistentTotal() {
		t.Errorf("total %v does not match computed %v after remove", cart.Total, cart.ComputedTotal())
	}

	cart.RemoveItem("p1")
	if !cart.IsEmpty() || cart.Total != 0 {
		t.Errorf("expected empty cart with zero total, got %d items, total %v", len(cart.Items), cart.Total)
	}
}

func TestCart_ItemCountSumsQuantities(t *testing.T) {
	cart := EmptyCart("u1")
	cart.MergeItem("p1", "Caneca", 2, 10)
	cart.MergeItem("p2", "Camiseta", 3, 20)

	if got := cart.ItemCount(); got != 5 {
		t.Errorf("expected item count 5, got %d", got)
	}
}

func TestCart_FilterItemsIsPure(t *testing.T) {
	cart := EmptyCart("u1")
	cart.MergeItem("p1", "Caneca Azul", 1, 10)
	cart.MergeItem("p2", "Camiseta", 1, 20)
	totalBefore := cart.Total

	got := cart.FilterItems("caneca")
	if len(got) != 1 || got[0].ProductID != "p1" {
		t.Fatalf("expected only p1, got %+v", got)
	}

	// Applying the same filter twice yields the same result.
	again := cart.FilterItems("caneca")
	if len(again) != len(got) {
		t.Errorf("filter is not idempotent: %d then %d lines", len(got), len(again))
	}

	if len(cart.Items) != 2 || cart.Total != totalBefore {
		t.Errorf("filter mutated the cart: %d items, total %v", len(cart.Items), cart.Total)
	}

	if all := cart.FilterItems(""); len(all) != 2 {
		t.Errorf("empty filter should return all lines, got %d", len(all))
	}
}

func TestCart_FilterItemsCaseInsensitive(t *testing.T) {
	cart := EmptyCart("u1")
	cart.MergeItem("p1", "CANECA", 1, 10)

	if got := cart.FilterItems("caneca"); len(got) != 1 {
		t.Errorf("expected case-insensitive match, got %d lines", len(got))
	}
}
