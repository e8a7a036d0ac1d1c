package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/modelmonitor/model-monitor/internal/domain/response"
	"github.com/modelmonitor/model-monitor/internal/dto"
	"github.com/modelmonitor/model-monitor/internal/httperr"
	"github.com/modelmonitor/model-monitor/internal/models"
)

type ResponseGormRepository struct {
	db *gorm.DB
}

func NewResponseGormRepository(db *gorm.DB) *ResponseGormRepository {
	return &ResponseGormRepository{db: db}
}

func (r *ResponseGormRepository) ListWithRatings(
	ctx context.Context,
	brandID uint,
) ([]dto.ResponseWithRating, error) {

	rows := []dto.ResponseWithRating{}
	if err := r.db.WithContext(ctx).
		Table("responses").
		Select(
			"responses.id, responses.brand_id, responses.response_text, responses.created_at, " +
				"ratings.rating AS rating, ratings.id AS rating_id",
		).
		Joins("LEFT JOIN ratings ON ratings.response_id = responses.id").
		Where("responses.brand_id = ?", brandID).
		Order("responses.created_at DESC, responses.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ResponseGormRepository) Create(
	ctx context.Context,
	res *models.Response,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ResponseGormRepository) GetForUser(
	ctx context.Context,
	responseID uint,
	userID uint,
) (*models.Response, error) {

	var res models.Response
	if err := r.db.WithContext(ctx).
		Joins("JOIN brands ON brands.id = responses.brand_id").
		Where("responses.id = ? AND brands.user_id = ?", responseID, userID).
		First(&res).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness("response_not_found")
		}
		return nil, err
	}
	return &res, nil
}

// UpsertRating relies on the unique index on ratings.response_id: a
// single statement either inserts the rating or overwrites the value,
// so two concurrent ratings can never leave two rows.
func (r *ResponseGormRepository) UpsertRating(
	ctx context.Context,
	responseID uint,
	value bool,
) (*models.Rating, error) {

	rating := models.Rating{
		ResponseID: responseID,
		Rating:     value,
	}

	// RETURNING makes the statement hand back the row it wrote, so the
	// conflict path fills in the existing id without a separate read.
	if err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "response_id"}},
				DoUpdates: clause.Assignments(map[string]any{"rating": value}),
			},
			clause.Returning{},
		).
		Create(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ResponseGormRepository) Stats(
	ctx context.Context,
	brandID uint,
) (*domain.BrandStats, error) {

	stats := domain.BrandStats{}

	if err := r.db.WithContext(ctx).
		Model(&models.Response{}).
		Where("brand_id = ?", brandID).
		Count(&stats.Responses).Error; err != nil {
		return nil, err
	}

	type ratingCount struct {
		Rating bool
		Total  int64
	}
	var counts []ratingCount
	if err := r.db.WithContext(ctx).
		Table("ratings").
		Select("ratings.rating AS rating, COUNT(*) AS total").
		Joins("JOIN responses ON responses.id = ratings.response_id").
		Where("responses.brand_id = ?", brandID).
		Group("ratings.rating").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	for _, rc := range counts {
		if rc.Rating {
			stats.Positive = rc.Total
		} else {
			stats.Negative = rc.Total
		}
	}
	stats.Unrated = stats.Responses - stats.Positive - stats.Negative
	return &stats, nil
}
