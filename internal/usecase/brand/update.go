package brand

import (
	"context"

	"github.com/modelmonitor/model-monitor/internal/audit"
	domain "github.com/modelmonitor/model-monitor/internal/domain/brand"
	"github.com/modelmonitor/model-monitor/internal/models"
)

type UpdateBrand struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBrand(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBrand {
	return &UpdateBrand{
		repo:  repo,
		audit: audit,
	}
}

// Execute overwrites both fields of an owned brand. An omitted prompt
// arrives as "" and is written as such.
func (uc *UpdateBrand) Execute(
	ctx context.Context,
	userID uint,
	brandID uint,
	name string,
	prompt string,
) (*models.Brand, error) {

	b, err := uc.repo.UpdateForUser(ctx, brandID, userID, name, prompt)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "brand_updated",
		Entity:   "brand",
		EntityID: &b.ID,
		Metadata: map[string]string{"name": b.Name},
	})

	return b, nil
}
