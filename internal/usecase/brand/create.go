package brand

import (
	"context"
	"strings"

	"github.com/modelmonitor/model-monitor/internal/audit"
	domain "github.com/modelmonitor/model-monitor/internal/domain/brand"
	"github.com/modelmonitor/model-monitor/internal/httperr"
	"github.com/modelmonitor/model-monitor/internal/models"
)

type CreateBrand struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBrand(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBrand {
	return &CreateBrand{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBrand) Execute(
	ctx context.Context,
	userID uint,
	name string,
	prompt string,
) (*models.Brand, error) {

	if strings.TrimSpace(name) == "" {
		return nil, httperr.ErrBusiness("brand_name_required")
	}

	b := models.Brand{
		UserID: userID,
		Name:   name,
		Prompt: prompt,
	}

	if err := uc.repo.Create(ctx, &b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "brand_created",
		Entity:   "brand",
		EntityID: &b.ID,
		Metadata: map[string]string{"name": b.Name},
	})

	return &b, nil
}
