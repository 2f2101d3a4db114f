//go:build unit

package discount_test

import (
	"testing"
	"time"

	"hotelhub/internal/domain/discount"
	"hotelhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickApplicable(t *testing.T) {
	pkgID := uuid.New()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	t.Run("no candidates", func(t *testing.T) {
		other := builder.NewDiscountBuilder().WithApplicablePackages(uuid.New()).BuildReconstructed()
		assert.Nil(t, discount.PickApplicable(pkgID, []*discount.Discount{other}))
	})

	t.Run("package-specific beats global", func(t *testing.T) {
		global := builder.NewDiscountBuilder().
			WithName("Global").
			WithCreatedAt(now).
			BuildReconstructed()
		scoped := builder.NewDiscountBuilder().
			WithName("Scoped").
			WithApplicablePackages(pkgID).
			WithCreatedAt(now.Add(-time.Hour)).
			BuildReconstructed()

		picked := discount.PickApplicable(pkgID, []*discount.Discount{global, scoped})
		require.NotNil(t, picked)
		assert.Equal(t, "Scoped", picked.Name(), "older scoped discount still wins over newer global")
	})

	t.Run("most recently created wins within the same class", func(t *testing.T) {
		older := builder.NewDiscountBuilder().
			WithName("Older").
			WithCreatedAt(now.Add(-time.Hour)).
			BuildReconstructed()
		newer := builder.NewDiscountBuilder().
			WithName("Newer").
			WithCreatedAt(now).
			BuildReconstructed()

		picked := discount.PickApplicable(pkgID, []*discount.Discount{older, newer})
		require.NotNil(t, picked)
		assert.Equal(t, "Newer", picked.Name())

		// Input order never decides the outcome.
		picked = discount.PickApplicable(pkgID, []*discount.Discount{newer, older})
		require.NotNil(t, picked)
		assert.Equal(t, "Newer", picked.Name())
	})
}

func TestResolveEffectivePrice(t *testing.T) {
	pkgID := uuid.New()

	t.Run("no applicable discount keeps base price", func(t *testing.T) {
		result := discount.ResolveEffectivePrice(pkgID, 150, nil)

		assert.Equal(t, 150.0, result.BasePrice)
		assert.Equal(t, 150.0, result.DiscountedPrice)
		assert.False(t, result.DiscountApplied)
	})

	t.Run("percentage discount applied", func(t *testing.T) {
		d := builder.NewDiscountBuilder().WithValue(20).BuildReconstructed()

		result := discount.ResolveEffectivePrice(pkgID, 100, []*discount.Discount{d})

		assert.Equal(t, 100.0, result.BasePrice)
		assert.InDelta(t, 80, result.DiscountedPrice, 0.0001)
		assert.True(t, result.DiscountApplied)
	})

	t.Run("fixed discount applied", func(t *testing.T) {
		d := builder.NewDiscountBuilder().AsFixed(30).BuildReconstructed()

		result := discount.ResolveEffectivePrice(pkgID, 100, []*discount.Discount{d})

		assert.InDelta(t, 70, result.DiscountedPrice, 0.0001)
		assert.True(t, result.DiscountApplied)
	})
}
