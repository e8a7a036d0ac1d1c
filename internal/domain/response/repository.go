package response

import (
	"context"

	"github.com/modelmonitor/model-monitor/internal/dto"
	"github.com/modelmonitor/model-monitor/internal/models"
)

type BrandStats struct {
	Responses int64 `json:"responses"`
	Positive  int64 `json:"positive"`
	Negative  int64 `json:"negative"`
	Unrated   int64 `json:"unrated"`
}

type Repository interface {
	// ListWithRatings returns a brand's responses left-joined with
	// their rating, newest first. Rating fields are nil when the
	// response has never been rated.
	ListWithRatings(
		ctx context.Context,
		brandID uint,
	) ([]dto.ResponseWithRating, error)

	Create(
		ctx context.Context,
		r *models.Response,
	) error

	// GetForUser resolves a response through its brand's owner.
	GetForUser(
		ctx context.Context,
		responseID uint,
		userID uint,
	) (*models.Response, error)

	// UpsertRating writes the rating for a response, overwriting any
	// previous value, and returns the resulting row.
	UpsertRating(
		ctx context.Context,
		responseID uint,
		value bool,
	) (*models.Rating, error)

	Stats(
		ctx context.Context,
		brandID uint,
	) (*BrandStats, error)
}
