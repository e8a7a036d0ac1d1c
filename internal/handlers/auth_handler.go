package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/modelmonitor/model-monitor/internal/auth"
	"github.com/modelmonitor/model-monitor/internal/config"
	"github.com/modelmonitor/model-monitor/internal/httperr"
	"github.com/modelmonitor/model-monitor/internal/middleware"
	"github.com/modelmonitor/model-monitor/internal/models"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	denylist *auth.Denylist
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, denylist *auth.Denylist) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, denylist: denylist}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Login never reveals which field was wrong: malformed or missing
// credentials get the same 401 as a wrong password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
			return
		}
		httperr.Internal(c, "internal_error", "Server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(h.config, &user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}

// Logout is stateless for the client: it just drops the token. When a
// denylist is wired the presented token also stops working server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	if raw := bearerToken(c); raw != "" {
		if claims, err := auth.ParseToken(h.config, raw); err == nil {
			if err := h.denylist.Revoke(c.Request.Context(), raw, claims.Expiry); err != nil {
				httperr.Internal(c, "failed_to_revoke_token", "Server error")
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (h *AuthHandler) Verify(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)
	email := c.GetString(middleware.ContextUserEmail)

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user": gin.H{
			"id":    userID,
			"email": email,
		},
	})
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
