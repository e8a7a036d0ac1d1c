package response

import (
	"context"

	"github.com/modelmonitor/model-monitor/internal/audit"
	brandDomain "github.com/modelmonitor/model-monitor/internal/domain/brand"
	domain "github.com/modelmonitor/model-monitor/internal/domain/response"
	"github.com/modelmonitor/model-monitor/internal/models"
)

type GenerateResponse struct {
	brands    brandDomain.Repository
	responses domain.Repository
	generator *domain.Generator
	audit     *audit.Dispatcher
}

func NewGenerateResponse(
	brands brandDomain.Repository,
	responses domain.Repository,
	generator *domain.Generator,
	audit *audit.Dispatcher,
) *GenerateResponse {
	return &GenerateResponse{
		brands:    brands,
		responses: responses,
		generator: generator,
		audit:     audit,
	}
}

func (uc *GenerateResponse) Execute(
	ctx context.Context,
	userID uint,
	brandID uint,
) (*models.Response, error) {

	if _, err := uc.brands.GetForUser(ctx, brandID, userID); err != nil {
		return nil, err
	}

	res := models.Response{
		BrandID:      brandID,
		ResponseText: uc.generator.Generate(),
	}

	if err := uc.responses.Create(ctx, &res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "response_generated",
		Entity:   "response",
		EntityID: &res.ID,
	})

	return &res, nil
}
