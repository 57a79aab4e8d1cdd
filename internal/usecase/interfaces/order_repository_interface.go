package interfaces

import (
	"context"

	"b2b_sourcing/internal/domain/entities"
)

// IOrderRepository persists materialized orders, at most one per request.
//
// Create fails with entities.ErrConflict when the request already has an order;
// Update is a compare-and-set on Version like the request repository.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.Order, error)
	ListByBuyerID(ctx context.Context, buyerID string) ([]entities.Order, error)
	Update(ctx context.Context, o entities.Order, expectedVersion int64) (entities.Order, error)
}
