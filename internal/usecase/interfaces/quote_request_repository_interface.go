package interfaces

import (
	"context"

	"b2b_sourcing/internal/domain/entities"
)

// IQuoteRequestRepository persists QuoteRequest documents, quotes included.
//
// The engine relies on:
//   - GetByID returning a zero-value request (empty ID) when nothing is stored
//   - Update being a compare-and-set on Version: it stores r with Version
//     expectedVersion+1 or fails with entities.ErrConflict
//   - List never mixing quotes across requests
type IQuoteRequestRepository interface {
	Create(ctx context.Context, r entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	Update(ctx context.Context, r entities.QuoteRequest, expectedVersion int64) (entities.QuoteRequest, error)
	List(ctx context.Context, filter entities.RequestFilter) ([]entities.QuoteRequest, error)
}
