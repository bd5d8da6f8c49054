package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestMint(t *testing.T) {
	secret := []byte("test-secret")
	signed, err := Mint(secret, "alice", time.Hour)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) { return secret, nil })
	if err != nil || !tok.Valid {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "alice" || claims.Issuer != Issuer {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		t.Errorf("unexpected expiry: %v", claims.ExpiresAt)
	}
}

func TestMint_Expired(t *testing.T) {
	secret := []byte("test-secret")
	signed, err := Mint(secret, "alice", -time.Minute)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if _, err := jwt.Parse(signed, func(*jwt.Token) (interface{}, error) { return secret, nil }); err == nil {
		t.Error("expected expired token to fail validation")
	}
}

func TestMint_Errors(t *testing.T) {
	if _, err := Mint(nil, "alice", time.Hour); err == nil {
		t.Error("expected error for empty secret")
	}
	if _, err := Mint([]byte("s"), "", time.Hour); err == nil {
		t.Error("expected error for empty subject")
	}
}
