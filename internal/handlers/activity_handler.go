package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/modelmonitor/model-monitor/internal/audit"
	"github.com/modelmonitor/model-monitor/internal/httperr"
	"github.com/modelmonitor/model-monitor/internal/httpresp"
	"github.com/modelmonitor/model-monitor/internal/middleware"
)

const activityFeedLimit = 50

// ActivityHandler exposes the user's recent audit trail.
type ActivityHandler struct {
	logger *audit.Logger
}

func NewActivityHandler(logger *audit.Logger) *ActivityHandler {
	return &ActivityHandler{logger: logger}
}

func (h *ActivityHandler) List(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	logs, err := h.logger.Recent(userID, activityFeedLimit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_activity", "Server error")
		return
	}

	httpresp.OK(c, logs)
}
