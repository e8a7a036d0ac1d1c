package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/modelmonitor/model-monitor/internal/httperr"
	"github.com/modelmonitor/model-monitor/internal/httpresp"
	"github.com/modelmonitor/model-monitor/internal/middleware"
	ucBrand "github.com/modelmonitor/model-monitor/internal/usecase/brand"
	ucResponse "github.com/modelmonitor/model-monitor/internal/usecase/response"
)

type BrandHandler struct {
	listUC    *ucBrand.ListBrands
	createUC  *ucBrand.CreateBrand
	updateUC  *ucBrand.UpdateBrand
	deleteUC  *ucBrand.DeleteBrand
	setLogoUC *ucBrand.SetBrandLogo
	statsUC   *ucResponse.BrandStats
}

func NewBrandHandler(
	listUC *ucBrand.ListBrands,
	createUC *ucBrand.CreateBrand,
	updateUC *ucBrand.UpdateBrand,
	deleteUC *ucBrand.DeleteBrand,
	setLogoUC *ucBrand.SetBrandLogo,
	statsUC *ucResponse.BrandStats,
) *BrandHandler {
	return &BrandHandler{
		listUC:    listUC,
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		setLogoUC: setLogoUC,
		statsUC:   statsUC,
	}
}

// --------- Requests ---------

type CreateBrandRequest struct {
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}

type UpdateBrandRequest struct {
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}

// --------- Handlers ---------

func (h *BrandHandler) List(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	brands, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_brands", "Server error")
		return
	}

	httpresp.OK(c, brands)
}

func (h *BrandHandler) Create(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var req CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	brand, err := h.createUC.Execute(c.Request.Context(), userID, req.Name, req.Prompt)
	if err != nil {
		if httperr.IsBusiness(err, "brand_name_required") {
			httperr.BadRequest(c, "brand_name_required", "Brand name is required")
			return
		}
		httperr.Internal(c, "failed_to_create_brand", "Server error")
		return
	}

	httpresp.Created(c, brand)
}

func (h *BrandHandler) Update(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	brandID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	brand, err := h.updateUC.Execute(c.Request.Context(), userID, brandID, req.Name, req.Prompt)
	if err != nil {
		if httperr.IsBusiness(err, "brand_not_found") {
			httperr.NotFound(c, "brand_not_found", "Brand not found")
			return
		}
		httperr.Internal(c, "failed_to_update_brand", "Server error")
		return
	}

	httpresp.OK(c, brand)
}

func (h *BrandHandler) Delete(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	brandID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, brandID); err != nil {
		if httperr.IsBusiness(err, "brand_not_found") {
			httperr.NotFound(c, "brand_not_found", "Brand not found")
			return
		}
		httperr.Internal(c, "failed_to_delete_brand", "Server error")
		return
	}

	httpresp.Message(c, "Brand deleted successfully")
}

func (h *BrandHandler) UploadLogo(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	brandID, ok := idParam(c, "id")
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("logo")
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Multipart field 'logo' is required")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, 10<<20))
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Could not read upload")
		return
	}

	brand, err := h.setLogoUC.Execute(c.Request.Context(), userID, brandID, raw)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "brand_not_found"):
			httperr.NotFound(c, "brand_not_found", "Brand not found")
		case httperr.IsBusiness(err, "invalid_image"):
			httperr.BadRequest(c, "invalid_image", "Upload is not a decodable image")
		case httperr.IsBusiness(err, "logo_storage_not_configured"):
			httperr.Unavailable(c, "logo_storage_not_configured", "Logo storage is not configured")
		default:
			httperr.Internal(c, "failed_to_upload_logo", "Server error")
		}
		return
	}

	httpresp.OK(c, brand)
}

func (h *BrandHandler) Stats(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	brandID, ok := idParam(c, "id")
	if !ok {
		return
	}

	stats, err := h.statsUC.Execute(c.Request.Context(), userID, brandID)
	if err != nil {
		if httperr.IsBusiness(err, "brand_not_found") {
			httperr.NotFound(c, "brand_not_found", "Brand not found")
			return
		}
		httperr.Internal(c, "failed_to_get_stats", "Server error")
		return
	}

	httpresp.OK(c, stats)
}

// idParam parses a numeric path parameter, answering 404 on garbage:
// "/api/brands/abc" names a brand that cannot exist.
func idParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		httperr.Write(c, http.StatusNotFound, "not_found", "Not found")
		return 0, false
	}
	return uint(id), true
}
