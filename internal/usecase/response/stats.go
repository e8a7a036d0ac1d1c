package response

import (
	"context"

	brandDomain "github.com/modelmonitor/model-monitor/internal/domain/brand"
	domain "github.com/modelmonitor/model-monitor/internal/domain/response"
)

type BrandStats struct {
	brands    brandDomain.Repository
	responses domain.Repository
}

func NewBrandStats(
	brands brandDomain.Repository,
	responses domain.Repository,
) *BrandStats {
	return &BrandStats{
		brands:    brands,
		responses: responses,
	}
}

func (uc *BrandStats) Execute(
	ctx context.Context,
	userID uint,
	brandID uint,
) (*domain.BrandStats, error) {

	if _, err := uc.brands.GetForUser(ctx, brandID, userID); err != nil {
		return nil, err
	}

	return uc.responses.Stats(ctx, brandID)
}
