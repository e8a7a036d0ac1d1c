package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/modelmonitor/model-monitor/internal/config"
	"github.com/modelmonitor/model-monitor/internal/models"
)

const TokenTTL = 24 * time.Hour

type Claims struct {
	UserID uint
	Email  string
	Expiry time.Time
}

func GenerateToken(cfg *config.Config, user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   now.Add(TokenTTL).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseToken verifies the signature and expiry and returns the
// embedded identity.
func ParseToken(cfg *config.Config, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	sub, ok1 := mapClaims["sub"].(float64)
	email, ok2 := mapClaims["email"].(string)
	exp, ok3 := mapClaims["exp"].(float64)
	if !ok1 || !ok2 || !ok3 {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &Claims{
		UserID: uint(sub),
		Email:  email,
		Expiry: time.Unix(int64(exp), 0),
	}, nil
}
