// Package experiences caches fetched experience listings locally so browsing
// keeps working when the backend is unreachable. The cache is read-only
// fallback: it is only ever written from confirmed server responses.
package experiences

import (
	"context"

	"github.com/prepshare/prepshare/internal/client/models"
)

// Repository describes the local experience cache.
type Repository interface {
	// ReplaceAll atomically swaps the cache contents for list.
	ReplaceAll(ctx context.Context, list []models.Experience) error

	// Upsert inserts or updates a single experience by id.
	Upsert(ctx context.Context, exp models.Experience) error

	// GetAll returns cached experiences, newest first.
	GetAll(ctx context.Context) ([]models.Experience, error)

	// GetByID returns one cached experience, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Experience, error)
}
