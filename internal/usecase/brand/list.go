package brand

import (
	"context"

	domain "github.com/modelmonitor/model-monitor/internal/domain/brand"
	"github.com/modelmonitor/model-monitor/internal/models"
)

type ListBrands struct {
	repo domain.Repository
}

func NewListBrands(repo domain.Repository) *ListBrands {
	return &ListBrands{repo: repo}
}

func (uc *ListBrands) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Brand, error) {
	return uc.repo.ListByUser(ctx, userID)
}
