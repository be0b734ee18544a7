package interfaces

import (
	"context"

	"bondprojector/internal/domain/entity/bonds"

	"github.com/google/uuid"
)

// CatalogRepository exposes the read-only bond catalog in its seeded order.
type CatalogRepository interface {
	List(ctx context.Context) ([]bonds.Bond, error)
	Get(ctx context.Context, uid uuid.UUID) (bonds.Bond, error)
}
