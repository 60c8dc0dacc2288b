package checkout

import (
	"context"
	"math"

	"github.com/vitrinedev/vitrine/internal/domain"
)

// AmountRequest carries the candidate charge amounts for one checkout entry.
// Resolution precedence is fixed and documented here so the amount the user
// saw and the amount that gets charged can never diverge silently:
//
//  1. ExplicitCents - the explicit amount query parameter, already in minor units
//  2. SnapshotTotal - the cart total the client navigated with, in decimal currency
//  3. a fresh fetch of the authoritative cart total
//
// Conversion from a decimal total rounds to the nearest minor unit exactly
// once, at resolution; the amount is never re-derived mid-flow from a
// possibly-stale cart.
type AmountRequest struct {
	ExplicitCents int64
	SnapshotTotal float64
	HasSnapshot   bool
	Currency      string
}

// ToMinorUnits converts a decimal currency amount to minor units, rounding to
// nearest (19.90 becomes 1990, never 1989).
func ToMinorUnits(total float64) int64 {
	return int64(math.Round(total * 100))
}

// ResolveAmount applies the precedence above. fetchCart is only consulted
// when neither an explicit amount nor a snapshot was provided.
func ResolveAmount(ctx context.Context, req AmountRequest, fetchCart func(context.Context) (*domain.Cart, error)) (int64, error) {
	const op = "checkout.resolve_amount"

	if req.ExplicitCents > 0 {
		return req.ExplicitCents, nil
	}
	if req.ExplicitCents < 0 {
		return 0, domain.Invalid(op, "amount must be positive")
	}

	if req.HasSnapshot {
		cents := ToMinorUnits(req.SnapshotTotal)
		if cents <= 0 {
			return 0, domain.ErrCartEmpty
		}
		return cents, nil
	}

	cart, err := fetchCart(ctx)
	if err != nil {
		return 0, err
	}
	if cart.IsEmpty() {
		return 0, domain.ErrCartEmpty
	}

	cents := ToMinorUnits(cart.Total)
	if cents <= 0 {
		return 0, domain.ErrCartEmpty
	}
	return cents, nil
}
