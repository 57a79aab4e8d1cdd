package repository

import (
	"context"
	"sync"

	"b2b_sourcing/internal/domain/entities"
	"b2b_sourcing/internal/usecase/interfaces"
)

// OrderMemoryRepository keys orders by request id, like the orders table.
type OrderMemoryRepository struct {
	mu        sync.RWMutex
	byRequest map[string]entities.Order
	byID      map[string]string
}

var _ interfaces.IOrderRepository = (*OrderMemoryRepository)(nil)

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{
		byRequest: make(map[string]entities.Order),
		byID:      make(map[string]string),
	}
}

func (r *OrderMemoryRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byRequest[o.RequestID]; ok {
		return entities.Order{}, entities.ErrConflict
	}
	r.byRequest[o.RequestID] = o.Clone()
	r.byID[o.ID] = o.RequestID
	return o.Clone(), nil
}

func (r *OrderMemoryRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	requestID, ok := r.byID[id]
	if !ok {
		return entities.Order{}, nil
	}
	return r.byRequest[requestID].Clone(), nil
}

func (r *OrderMemoryRepository) GetByRequestID(_ context.Context, requestID string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.byRequest[requestID]
	if !ok {
		return entities.Order{}, nil
	}
	return o.Clone(), nil
}

func (r *OrderMemoryRepository) ListByBuyerID(_ context.Context, buyerID string) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Order, 0)
	for _, o := range r.byRequest {
		if o.BuyerID == buyerID {
			out = append(out, o.Clone())
		}
	}
	sortOrders(out)
	return out, nil
}

func (r *OrderMemoryRepository) Update(_ context.Context, o entities.Order, expectedVersion int64) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.byRequest[o.RequestID]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if cur.Version != expectedVersion {
		return entities.Order{}, entities.ErrConflict
	}
	next := o.Clone()
	next.Version = expectedVersion + 1
	r.byRequest[o.RequestID] = next
	return next.Clone(), nil
}
