package brand

import (
	"context"

	"github.com/modelmonitor/model-monitor/internal/audit"
	domain "github.com/modelmonitor/model-monitor/internal/domain/brand"
)

type DeleteBrand struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBrand(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBrand {
	return &DeleteBrand{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBrand) Execute(
	ctx context.Context,
	userID uint,
	brandID uint,
) error {

	if err := uc.repo.DeleteForUser(ctx, brandID, userID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "brand_deleted",
		Entity:   "brand",
		EntityID: &brandID,
	})

	return nil
}
