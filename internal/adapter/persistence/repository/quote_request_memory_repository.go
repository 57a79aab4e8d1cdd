package repository

import (
	"context"
	"sync"

	"b2b_sourcing/internal/domain/entities"
	"b2b_sourcing/internal/usecase/interfaces"
)

// QuoteRequestMemoryRepository keeps request documents in process memory. It
// honors the same version precondition as the DynamoDB repository.
type QuoteRequestMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.QuoteRequest
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestMemoryRepository)(nil)

func NewQuoteRequestMemoryRepository() *QuoteRequestMemoryRepository {
	return &QuoteRequestMemoryRepository{items: make(map[string]entities.QuoteRequest)}
}

func (r *QuoteRequestMemoryRepository) Create(_ context.Context, req entities.QuoteRequest) (entities.QuoteRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[req.ID]; ok {
		return entities.QuoteRequest{}, entities.ErrConflict
	}
	r.items[req.ID] = req.Clone()
	return req.Clone(), nil
}

func (r *QuoteRequestMemoryRepository) GetByID(_ context.Context, id string) (entities.QuoteRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.items[id]
	if !ok {
		return entities.QuoteRequest{}, nil
	}
	return req.Clone(), nil
}

func (r *QuoteRequestMemoryRepository) Update(_ context.Context, req entities.QuoteRequest, expectedVersion int64) (entities.QuoteRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[req.ID]
	if !ok {
		return entities.QuoteRequest{}, entities.ErrRequestNotFound
	}
	if cur.Version != expectedVersion {
		return entities.QuoteRequest{}, entities.ErrConflict
	}
	next := req.Clone()
	next.Version = expectedVersion + 1
	r.items[req.ID] = next
	return next.Clone(), nil
}

func (r *QuoteRequestMemoryRepository) List(_ context.Context, filter entities.RequestFilter) ([]entities.QuoteRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.QuoteRequest, 0, len(r.items))
	for _, req := range r.items {
		if matchesFilter(req, filter) {
			out = append(out, req.Clone())
		}
	}
	sortRequests(out)
	return out, nil
}
