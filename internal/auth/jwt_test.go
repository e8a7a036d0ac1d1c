package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/modelmonitor/model-monitor/internal/config"
	"github.com/modelmonitor/model-monitor/internal/models"
)

func testCfg(secret string) *config.Config {
	return &config.Config{JWTSecret: secret}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testCfg("secret-key")
	user := &models.User{ID: 7, Email: "user1@example.com"}

	token, err := GenerateToken(cfg, user)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseToken(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if claims.UserID != 7 || claims.Email != "user1@example.com" {
		t.Errorf("claims = %+v", claims)
	}

	ttl := time.Until(claims.Expiry)
	if ttl < TokenTTL-time.Minute || ttl > TokenTTL {
		t.Errorf("expiry %v not ~%v out", ttl, TokenTTL)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(testCfg("secret-a"), &models.User{ID: 1, Email: "a@example.com"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseToken(testCfg("secret-b"), token); err == nil {
		t.Error("token signed with another secret parsed")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	cfg := testCfg("secret-key")

	claims := jwt.MapClaims{
		"sub":   float64(1),
		"email": "a@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
		"iat":   time.Now().Add(-2 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseToken(cfg, token); err == nil {
		t.Error("expired token parsed")
	}
}

func TestParseRejectsWrongAlgorithm(t *testing.T) {
	cfg := testCfg("secret-key")

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":   float64(1),
		"email": "a@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseToken(cfg, token); err == nil {
		t.Error("alg=none token parsed")
	}
}
