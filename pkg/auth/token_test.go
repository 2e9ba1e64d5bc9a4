package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/quintech/quintech-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "secret",
		Issuer:            "quintech",
		ExpirationMinutes: 30,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	accountID := uuid.New()

	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{
		AccountID: accountID,
		Handle:    "alice",
		Admin:     true,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Handle != "alice" {
		t.Fatalf("unexpected handle claim %q", claims.Handle)
	}
	if claims.AccountID != accountID {
		t.Fatalf("unexpected account id claim %s", claims.AccountID)
	}
	if !claims.Admin {
		t.Fatalf("expected admin claim")
	}
	if claims.ID == "" {
		t.Fatalf("expected jti to be set")
	}
}

func TestParseAccessTokenRejectsWrongIssuer(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{
		AccountID: uuid.New(),
		Handle:    "alice",
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	other := cfg
	other.Issuer = "someone-else"
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Fatalf("expected issuer mismatch to fail")
	}
}

func TestMintAccessTokenRequiresHandle(t *testing.T) {
	if _, err := MintAccessToken(testJWTConfig(), time.Now(), AccessTokenPayload{
		AccountID: uuid.New(),
	}); err == nil {
		t.Fatalf("expected missing handle to fail")
	}
}
