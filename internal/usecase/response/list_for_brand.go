package response

import (
	"context"

	brandDomain "github.com/modelmonitor/model-monitor/internal/domain/brand"
	domain "github.com/modelmonitor/model-monitor/internal/domain/response"
	"github.com/modelmonitor/model-monitor/internal/dto"
)

type ListForBrand struct {
	brands    brandDomain.Repository
	responses domain.Repository
}

func NewListForBrand(
	brands brandDomain.Repository,
	responses domain.Repository,
) *ListForBrand {
	return &ListForBrand{
		brands:    brands,
		responses: responses,
	}
}

func (uc *ListForBrand) Execute(
	ctx context.Context,
	userID uint,
	brandID uint,
) ([]dto.ResponseWithRating, error) {

	if _, err := uc.brands.GetForUser(ctx, brandID, userID); err != nil {
		return nil, err
	}

	return uc.responses.ListWithRatings(ctx, brandID)
}
