package brand

import (
	"bytes"
	"context"

	"github.com/modelmonitor/model-monitor/internal/audit"
	domain "github.com/modelmonitor/model-monitor/internal/domain/brand"
	"github.com/modelmonitor/model-monitor/internal/httperr"
	"github.com/modelmonitor/model-monitor/internal/images"
	"github.com/modelmonitor/model-monitor/internal/models"
	"github.com/modelmonitor/model-monitor/internal/storage"
)

type SetBrandLogo struct {
	repo     domain.Repository
	uploader *storage.Uploader
	audit    *audit.Dispatcher
}

func NewSetBrandLogo(
	repo domain.Repository,
	uploader *storage.Uploader,
	audit *audit.Dispatcher,
) *SetBrandLogo {
	return &SetBrandLogo{
		repo:     repo,
		uploader: uploader,
		audit:    audit,
	}
}

// Execute normalizes the uploaded image to a bounded webp and stores
// it, then records the public URL on the brand.
func (uc *SetBrandLogo) Execute(
	ctx context.Context,
	userID uint,
	brandID uint,
	raw []byte,
) (*models.Brand, error) {

	if uc.uploader == nil {
		return nil, httperr.ErrBusiness("logo_storage_not_configured")
	}

	if _, err := uc.repo.GetForUser(ctx, brandID, userID); err != nil {
		return nil, err
	}

	webpData, err := images.NormalizeLogo(raw)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	url, err := uc.uploader.PutWebp(ctx, bytes.NewReader(webpData), int64(len(webpData)))
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.SetLogoURL(ctx, brandID, userID, url)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "brand_logo_updated",
		Entity:   "brand",
		EntityID: &b.ID,
		Metadata: map[string]string{"logo_url": url},
	})

	return b, nil
}
