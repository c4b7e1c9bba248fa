package auth

import (
	"testing"
	"time"
)

const testSecret = "progression_test_secret"

func TestGenerateAndParseJWT(t *testing.T) {
	userId := uint(42)
	username := "operator"
	role := "admin"

	tokenString, err := GenerateJWT(testSecret, userId, username, role, time.Hour)
	if err != nil {
		t.Fatalf("failed to generate JWT: %v", err)
	}
	if tokenString == "" {
		t.Fatalf("empty token string")
	}

	claims, err := ParseJWT(testSecret, tokenString)
	if err != nil {
		t.Fatalf("failed to parse JWT: %v", err)
	}
	if claims.UserID != userId {
		t.Errorf("expected userId=%d, got %d", userId, claims.UserID)
	}
	if claims.Username != username {
		t.Errorf("expected username=%s, got %s", username, claims.Username)
	}
	if claims.Role != role {
		t.Errorf("expected role=%s, got %s", role, claims.Role)
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		t.Errorf("token should not be expired, got expiresAt=%v", claims.ExpiresAt)
	}
}

func TestParseJWT_InvalidToken(t *testing.T) {
	_, err := ParseJWT(testSecret, "this.is.not.a.valid.jwt")
	if err == nil {
		t.Errorf("expected error for invalid JWT, got nil")
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	tokenString, err := GenerateJWT(testSecret, 99, "operator", "user", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate JWT: %v", err)
	}

	_, err = ParseJWT("totally_wrong_secret", tokenString)
	if err == nil {
		t.Errorf("expected error for wrong secret, got nil")
	}
}

func TestParseJWT_Expired(t *testing.T) {
	tokenString, err := GenerateJWT(testSecret, 7, "operator", "user", -time.Minute)
	if err != nil {
		t.Fatalf("failed to generate JWT: %v", err)
	}

	_, err = ParseJWT(testSecret, tokenString)
	if err == nil {
		t.Errorf("expected error for expired token, got nil")
	}
}
