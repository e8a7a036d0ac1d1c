package response

import (
	"context"

	"github.com/modelmonitor/model-monitor/internal/audit"
	domain "github.com/modelmonitor/model-monitor/internal/domain/response"
	"github.com/modelmonitor/model-monitor/internal/models"
)

type RateResponse struct {
	responses domain.Repository
	audit     *audit.Dispatcher
}

func NewRateResponse(
	responses domain.Repository,
	audit *audit.Dispatcher,
) *RateResponse {
	return &RateResponse{
		responses: responses,
		audit:     audit,
	}
}

// Execute records a thumbs-up/down for a response the user owns
// through its brand. Re-rating overwrites the previous value.
func (uc *RateResponse) Execute(
	ctx context.Context,
	userID uint,
	responseID uint,
	value bool,
) (*models.Rating, error) {

	res, err := uc.responses.GetForUser(ctx, responseID, userID)
	if err != nil {
		return nil, err
	}

	rating, err := uc.responses.UpsertRating(ctx, res.ID, value)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "response_rated",
		Entity:   "response",
		EntityID: &res.ID,
		Metadata: map[string]bool{"rating": value},
	})

	return rating, nil
}
