package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/modelmonitor/model-monitor/internal/auth"
	"github.com/modelmonitor/model-monitor/internal/config"
	"github.com/modelmonitor/model-monitor/internal/httperr"
	"github.com/modelmonitor/model-monitor/internal/ws"
)

type WsHandler struct {
	config   *config.Config
	denylist *auth.Denylist
	hub      *ws.Hub
}

func NewWsHandler(cfg *config.Config, denylist *auth.Denylist, hub *ws.Hub) *WsHandler {
	return &WsHandler{config: cfg, denylist: denylist, hub: hub}
}

// Serve authenticates via a token query parameter, since browsers
// cannot set headers on websocket handshakes, then hands the
// connection to the hub.
func (h *WsHandler) Serve(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		httperr.Unauthorized(c, "missing_token", "Access token required")
		return
	}

	claims, err := auth.ParseToken(h.config, tokenString)
	if err != nil || h.denylist.IsRevoked(c.Request.Context(), tokenString) {
		httperr.Forbidden(c, "invalid_token", "Invalid token")
		return
	}

	ws.ServeWs(h.hub, claims.UserID, c.Writer, c.Request)
}
