package interfaces

import (
	"context"

	"b2b_sourcing/internal/domain/entities"
)

// IVendorDirectory is the read-only vendor registry. GetByID returns a zero-value
// profile when the id is unknown.
type IVendorDirectory interface {
	GetByID(ctx context.Context, id string) (entities.VendorProfile, error)
	List(ctx context.Context) ([]entities.VendorProfile, error)
}
