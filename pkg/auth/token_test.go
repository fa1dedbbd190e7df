package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/supplyline-io/supplyline-backend/pkg/config"
	"github.com/supplyline-io/supplyline-backend/pkg/enums"
)

var tokenTestConfig = config.JWTConfig{
	Secret:            "token-test-secret",
	Issuer:            "supplyline",
	ExpirationMinutes: 15,
}

func TestMintAndParseAccessToken(t *testing.T) {
	userID := uuid.New()
	signed, err := MintAccessToken(tokenTestConfig, time.Now().UTC(), AccessTokenPayload{
		UserID: userID,
		Role:   enums.UserRoleEmployee,
		JTI:    "session-1",
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseAccessToken(tokenTestConfig, signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Role != enums.UserRoleEmployee {
		t.Fatalf("expected employee role, got %s", claims.Role)
	}
	if claims.ID != "session-1" {
		t.Fatalf("expected jti session-1, got %s", claims.ID)
	}
}

func TestMintAccessToken_defaultsJTI(t *testing.T) {
	signed, err := MintAccessToken(tokenTestConfig, time.Now().UTC(), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   enums.UserRoleCustomer,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	claims, err := ParseAccessToken(tokenTestConfig, signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.ID == "" {
		t.Fatal("expected generated jti")
	}
}

func TestMintAccessToken_rejectsBadConfig(t *testing.T) {
	payload := AccessTokenPayload{UserID: uuid.New(), Role: enums.UserRoleManager}

	cases := []struct {
		name string
		cfg  config.JWTConfig
	}{
		{"missing secret", config.JWTConfig{Issuer: "supplyline", ExpirationMinutes: 15}},
		{"missing issuer", config.JWTConfig{Secret: "s", ExpirationMinutes: 15}},
		{"zero expiry", config.JWTConfig{Secret: "s", Issuer: "supplyline"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := MintAccessToken(tc.cfg, time.Now().UTC(), payload); err == nil {
				t.Fatal("expected error")
			}
		})
	}

	if _, err := MintAccessToken(tokenTestConfig, time.Now().UTC(), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   enums.UserRole("intruder"),
	}); err == nil {
		t.Fatal("expected error for invalid role")
	}
}

func TestParseAccessToken_rejectsExpired(t *testing.T) {
	past := time.Now().UTC().Add(-2 * time.Hour)
	signed, err := MintAccessToken(tokenTestConfig, past, AccessTokenPayload{
		UserID: uuid.New(),
		Role:   enums.UserRoleCustomer,
		JTI:    "expired-session",
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseAccessToken(tokenTestConfig, signed); err == nil {
		t.Fatal("expected expired token to be rejected")
	}

	claims, err := ParseAccessTokenAllowExpired(tokenTestConfig, signed)
	if err != nil {
		t.Fatalf("parse allow expired: %v", err)
	}
	if claims.ID != "expired-session" {
		t.Fatalf("expected jti to survive expiry, got %s", claims.ID)
	}
}

func TestParseAccessToken_rejectsWrongSecret(t *testing.T) {
	signed, err := MintAccessToken(tokenTestConfig, time.Now().UTC(), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   enums.UserRoleCustomer,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	other := tokenTestConfig
	other.Secret = "different-secret"
	if _, err := ParseAccessToken(other, signed); err == nil {
		t.Fatal("expected signature mismatch to be rejected")
	}
}
