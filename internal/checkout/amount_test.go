package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/vitrinedev/vitrine/internal/domain"
)

func staticCart(total float64, items int) func(context.Context) (*domain.Cart, error) {
	return func(context.Context) (*domain.Cart, error) {
		cart := domain.EmptyCart("u1")
		for i := 0; i < items; i++ {
			cart.MergeItem("p1", "Caneca", 1, total/float64(items))
		}
		cart.Total = total
		return cart, nil
	}
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		total float64
		want  int64
	}{
		{19.90, 1990},
		{0.01, 1},
		{100, 10000},
		{10.005, 1001}, // rounds to nearest, never truncates
		{29.99, 2999},
	}
	for _, tt := range tests {
		if got := ToMinorUnits(tt.total); got != tt.want {
			t.Errorf("ToMinorUnits(%v) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestResolveAmount_ExplicitWins(t *testing.T) {
	snapshot := 50.0
	got, err := ResolveAmount(context.Background(), AmountRequest{
		ExplicitCents: 1990,
		SnapshotTotal: snapshot,
		HasSnapshot:   true,
	}, staticCart(100, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1990 {
		t.Errorf("explicit amount should win, got %d", got)
	}
}

func TestResolveAmount_SnapshotBeforeFetch(t *testing.T) {
	fetched := false
	fetch := func(ctx context.Context) (*domain.Cart, error) {
		fetched = true
		return domain.EmptyCart("u1"), nil
	}

	got, err := ResolveAmount(context.Background(), AmountRequest{
		SnapshotTotal: 19.90,
		HasSnapshot:   true,
	}, fetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1990 {
		t.Errorf("expected 1990 from snapshot, got %d", got)
	}
	if fetched {
		t.Error("cart must not be fetched when a snapshot is available")
	}
}

func TestResolveAmount_FallsBackToFetch(t *testing.T) {
	got, err := ResolveAmount(context.Background(), AmountRequest{}, staticCart(29.99, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2999 {
		t.Errorf("expected 2999 from fetched cart, got %d", got)
	}
}

func TestResolveAmount_EmptyCart(t *testing.T) {
	_, err := ResolveAmount(context.Background(), AmountRequest{}, func(context.Context) (*domain.Cart, error) {
		return domain.EmptyCart("u1"), nil
	})
	if !errors.Is(err, domain.ErrCartEmpty) {
		t.Errorf("expected ErrCartEmpty, got %v", err)
	}
}

func TestResolveAmount_NegativeExplicit(t *testing.T) {
	_, err := ResolveAmount(context.Background(), AmountRequest{ExplicitCents: -100}, staticCart(10, 1))
	if domain.ErrorCode(err) != domain.EINVALID {
		t.Errorf("expected EINVALID, got %v", err)
	}
}

func TestResolveAmount_FetchErrorPropagates(t *testing.T) {
	boom := domain.Network(nil, "test", "backend down")
	_, err := ResolveAmount(context.Background(), AmountRequest{}, func(context.Context) (*domain.Cart, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected fetch error to propagate, got %v", err)
	}
}
