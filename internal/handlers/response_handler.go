package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/modelmonitor/model-monitor/internal/httperr"
	"github.com/modelmonitor/model-monitor/internal/httpresp"
	"github.com/modelmonitor/model-monitor/internal/middleware"
	ucResponse "github.com/modelmonitor/model-monitor/internal/usecase/response"
	"github.com/modelmonitor/model-monitor/internal/ws"
)

type ResponseHandler struct {
	listUC     *ucResponse.ListForBrand
	generateUC *ucResponse.GenerateResponse
	rateUC     *ucResponse.RateResponse
	hub        *ws.Hub
}

func NewResponseHandler(
	listUC *ucResponse.ListForBrand,
	generateUC *ucResponse.GenerateResponse,
	rateUC *ucResponse.RateResponse,
	hub *ws.Hub,
) *ResponseHandler {
	return &ResponseHandler{
		listUC:     listUC,
		generateUC: generateUC,
		rateUC:     rateUC,
		hub:        hub,
	}
}

// --------- Requests ---------

type RateRequest struct {
	// Pointer so a missing field is told apart from false.
	Rating *bool `json:"rating"`
}

// --------- Handlers ---------

func (h *ResponseHandler) ListForBrand(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	brandID, ok := idParam(c, "brandId")
	if !ok {
		return
	}

	rows, err := h.listUC.Execute(c.Request.Context(), userID, brandID)
	if err != nil {
		if httperr.IsBusiness(err, "brand_not_found") {
			httperr.NotFound(c, "brand_not_found", "Brand not found")
			return
		}
		httperr.Internal(c, "failed_to_list_responses", "Server error")
		return
	}

	httpresp.OK(c, rows)
}

func (h *ResponseHandler) Generate(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	brandID, ok := idParam(c, "brandId")
	if !ok {
		return
	}

	res, err := h.generateUC.Execute(c.Request.Context(), userID, brandID)
	if err != nil {
		if httperr.IsBusiness(err, "brand_not_found") {
			httperr.NotFound(c, "brand_not_found", "Brand not found")
			return
		}
		httperr.Internal(c, "failed_to_generate_response", "Server error")
		return
	}

	h.hub.BroadcastToUser(userID, ws.Message{
		Type: "response_generated",
		Data: res,
	})

	httpresp.Created(c, res)
}

func (h *ResponseHandler) Rate(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	responseID, ok := idParam(c, "responseId")
	if !ok {
		return
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Rating == nil {
		httperr.BadRequest(c, "rating_must_be_boolean", "Rating must be true or false")
		return
	}

	rating, err := h.rateUC.Execute(c.Request.Context(), userID, responseID, *req.Rating)
	if err != nil {
		if httperr.IsBusiness(err, "response_not_found") {
			httperr.NotFound(c, "response_not_found", "Response not found")
			return
		}
		httperr.Internal(c, "failed_to_rate_response", "Server error")
		return
	}

	httpresp.OK(c, rating)
}
