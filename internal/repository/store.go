package repository

import (
	"context"
	"time"

	"github.com/yukikurage/demodb/internal/models"
)

// Store defines the per-entity data access the services depend on.
// Table implements it.
type Store[T any] interface {
	// Create inserts row and assigns its id
	Create(ctx context.Context, row *T) error

	// FindByID finds a row by ID with optional preloading
	FindByID(ctx context.Context, id uint64, preload ...string) (*T, error)

	// List returns one page of rows matching filter
	List(ctx context.Context, filter string, page int) ([]T, error)

	// Lookup returns id/label options for pickers
	Lookup(ctx context.Context, query string) ([]models.Option, error)

	// Replace overwrites the row
	Replace(ctx context.Context, id uint64, row *T) error

	// ReplaceIfUnchanged overwrites the row if its updated_at still equals token
	ReplaceIfUnchanged(ctx context.Context, id uint64, token time.Time, row *T) error

	// Delete removes the row
	Delete(ctx context.Context, id uint64) error
}
