package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/modelmonitor/model-monitor/internal/httperr"
	"github.com/modelmonitor/model-monitor/internal/models"
)

type BrandGormRepository struct {
	db *gorm.DB
}

func NewBrandGormRepository(db *gorm.DB) *BrandGormRepository {
	return &BrandGormRepository{db: db}
}

func (r *BrandGormRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]models.Brand, error) {

	var brands []models.Brand
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *BrandGormRepository) Create(
	ctx context.Context,
	b *models.Brand,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BrandGormRepository) GetForUser(
	ctx context.Context,
	brandID uint,
	userID uint,
) (*models.Brand, error) {

	var b models.Brand
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", brandID, userID).
		First(&b).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness("brand_not_found")
		}
		return nil, err
	}
	return &b, nil
}

// UpdateForUser runs the ownership check and the write in one
// transaction so a concurrent delete cannot slip between them.
func (r *BrandGormRepository) UpdateForUser(
	ctx context.Context,
	brandID uint,
	userID uint,
	name string,
	prompt string,
) (*models.Brand, error) {

	var b models.Brand
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("id = ? AND user_id = ?", brandID, userID).
			First(&b).Error; err != nil {

			if err == gorm.ErrRecordNotFound {
				return httperr.ErrBusiness("brand_not_found")
			}
			return err
		}

		b.Name = name
		b.Prompt = prompt
		return tx.Save(&b).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BrandGormRepository) SetLogoURL(
	ctx context.Context,
	brandID uint,
	userID uint,
	logoURL string,
) (*models.Brand, error) {

	var b models.Brand
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("id = ? AND user_id = ?", brandID, userID).
			First(&b).Error; err != nil {

			if err == gorm.ErrRecordNotFound {
				return httperr.ErrBusiness("brand_not_found")
			}
			return err
		}

		b.LogoURL = logoURL
		return tx.Save(&b).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteForUser deletes an owned brand. Responses and their ratings
// are removed by the foreign-key cascade.
func (r *BrandGormRepository) DeleteForUser(
	ctx context.Context,
	brandID uint,
	userID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", brandID, userID).
		Delete(&models.Brand{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("brand_not_found")
	}
	return nil
}
