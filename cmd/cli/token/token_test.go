package token

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crucial707/cronlens/cmd/cli/config"
	"github.com/golang-jwt/jwt/v5"
)

func TestTokenCmd_Saves(t *testing.T) {
	t.Setenv("CRONLENS_TOKEN_FILE", filepath.Join(t.TempDir(), "token"))

	cmd := tokenCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--secret", "s3cret", "--subject", "ops", "--ttl", "1h"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(buf.String(), `Token for "ops" saved`) {
		t.Errorf("unexpected output %q", buf.String())
	}

	saved, err := config.ReadToken()
	if err != nil {
		t.Fatalf("ReadToken: %v", err)
	}
	claims := &jwt.RegisteredClaims{}
	if _, err := jwt.ParseWithClaims(saved, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("s3cret"), nil
	}); err != nil {
		t.Fatalf("parse saved token: %v", err)
	}
	if claims.Subject != "ops" {
		t.Errorf("subject: got %q, want ops", claims.Subject)
	}
}

func TestTokenCmd_Print(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	t.Setenv("CRONLENS_TOKEN_FILE", path)

	cmd := tokenCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--secret", "s3cret", "--subject", "ops", "--print"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.Count(strings.TrimSpace(buf.String()), ".") != 2 {
		t.Errorf("expected a JWT, got %q", buf.String())
	}
	if _, err := config.ReadToken(); err != config.ErrNoToken {
		t.Errorf("--print should not save; ReadToken err = %v", err)
	}
}

func TestTokenCmd_EmptySecret(t *testing.T) {
	cmd := tokenCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--secret", "", "--print"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for empty secret")
	}
}
