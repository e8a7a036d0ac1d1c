package brand

import (
	"context"

	"github.com/modelmonitor/model-monitor/internal/models"
)

// Repository is the persistence contract for the brand aggregate.
// Every lookup is owner-scoped: a brand id belonging to another user
// behaves exactly like a missing one.
type Repository interface {
	ListByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Brand, error)

	Create(
		ctx context.Context,
		b *models.Brand,
	) error

	GetForUser(
		ctx context.Context,
		brandID uint,
		userID uint,
	) (*models.Brand, error)

	// UpdateForUser overwrites name and prompt of an owned brand.
	// The ownership check and the write run in one transaction.
	UpdateForUser(
		ctx context.Context,
		brandID uint,
		userID uint,
		name string,
		prompt string,
	) (*models.Brand, error)

	SetLogoURL(
		ctx context.Context,
		brandID uint,
		userID uint,
		logoURL string,
	) (*models.Brand, error)

	// DeleteForUser removes an owned brand; responses and ratings go
	// with it via the schema-level cascade.
	DeleteForUser(
		ctx context.Context,
		brandID uint,
		userID uint,
	) error
}
