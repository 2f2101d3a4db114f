package queries

import (
	"context"
	"time"

	"hotelhub/internal/domain/discount"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDiscountNotFound = errs.New("discount not found")
	ErrInvalidDateRange = errs.New("invalid date range")
)

type DiscountReadStore interface {
	ListAll(ctx context.Context) ([]*discount.Discount, error)
	// ActiveAt returns discounts whose inclusive window contains t,
	// newest-created first.
	ActiveAt(ctx context.Context, t time.Time) ([]*discount.Discount, error)
	FindByID(ctx context.Context, id uuid.UUID) (*discount.Discount, error)
}

type DiscountQueries interface {
	ListDiscounts(ctx context.Context) ([]*DiscountView, error)
	ListActiveDiscounts(ctx context.Context) ([]*DiscountView, error)
	GetDiscount(ctx context.Context, id uuid.UUID) (*DiscountView, error)
}

type discountQueriesImpl struct {
	discounts DiscountReadStore
	clock     clock.Clock
}

func NewDiscountQueries(discounts DiscountReadStore, clk clock.Clock) DiscountQueries {
	return &discountQueriesImpl{discounts: discounts, clock: clk}
}

func (q *discountQueriesImpl) ListDiscounts(ctx context.Context) ([]*DiscountView, error) {
	all, err := q.discounts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDiscountViews(all), nil
}

// ListActiveDiscounts filters by date itself: expired discounts are only
// purged by a periodic sweep, so stored rows cannot be assumed active.
func (q *discountQueriesImpl) ListActiveDiscounts(ctx context.Context) ([]*DiscountView, error) {
	active, err := q.discounts.ActiveAt(ctx, q.clock.Now())
	if err != nil {
		return nil, err
	}
	return toDiscountViews(active), nil
}

func (q *discountQueriesImpl) GetDiscount(ctx context.Context, id uuid.UUID) (*DiscountView, error) {
	d, err := q.discounts.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, err
	}
	return toDiscountView(d), nil
}

func toDiscountViews(ds []*discount.Discount) []*DiscountView {
	views := make([]*DiscountView, len(ds))
	for i, d := range ds {
		views[i] = toDiscountView(d)
	}
	return views
}

func toDiscountView(d *discount.Discount) *DiscountView {
	return &DiscountView{
		ID:                 d.ID(),
		Code:               d.Code(),
		Name:               d.Name(),
		Description:        d.Description(),
		Kind:               d.Kind().String(),
		Value:              d.Value(),
		ApplicablePackages: d.ApplicablePackages(),
		StartDate:          d.StartDate(),
		EndDate:            d.EndDate(),
		CreatedAt:          d.CreatedAt(),
		UpdatedAt:          d.UpdatedAt(),
	}
}
