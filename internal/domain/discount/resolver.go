package discount

import (
	"sort"

	"github.com/google/uuid"
)

// EffectivePrice is the read-side pricing result attached to package views.
type EffectivePrice struct {
	BasePrice       float64
	DiscountedPrice float64
	DiscountApplied bool
}

// PickApplicable selects the single discount applied to a package from the
// currently-active set. The caller is responsible for prefiltering by date
// window; no date check happens here.
//
// Tie-break is deterministic: a package-specific discount beats a global
// one, and within the same class the most recently created wins. Storage
// iteration order never decides the outcome.
func PickApplicable(packageID uuid.UUID, active []*Discount) *Discount {
	var candidates []*Discount
	for _, d := range active {
		if d.AppliesTo(packageID) {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i], candidates[j]
		if di.IsGlobal() != dj.IsGlobal() {
			return !di.IsGlobal()
		}
		return di.CreatedAt().After(dj.CreatedAt())
	})

	return candidates[0]
}

// ResolveEffectivePrice annotates a base price with at most one applicable
// discount. With no match the identity holds: discountedPrice == basePrice
// and DiscountApplied is false.
func ResolveEffectivePrice(packageID uuid.UUID, basePrice float64, active []*Discount) EffectivePrice {
	applied := PickApplicable(packageID, active)
	if applied == nil {
		return EffectivePrice{
			BasePrice:       basePrice,
			DiscountedPrice: basePrice,
			DiscountApplied: false,
		}
	}

	return EffectivePrice{
		BasePrice:       basePrice,
		DiscountedPrice: applied.Apply(basePrice),
		DiscountApplied: true,
	}
}
