package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppWebHandler serves the single-page client. All three routes render
// the same shell; the page script decides what to show from the URL
// and the stored token.
type AppWebHandler struct{}

func NewAppWebHandler() *AppWebHandler {
	return &AppWebHandler{}
}

func (h *AppWebHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "base.html", gin.H{
		"Page": "login",
	})
}

func (h *AppWebHandler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "base.html", gin.H{
		"Page": "dashboard",
	})
}

func (h *AppWebHandler) BrandDetail(c *gin.Context) {
	c.HTML(http.StatusOK, "base.html", gin.H{
		"Page":    "brand",
		"BrandID": c.Param("id"),
	})
}
