package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultAPIURL = "http://localhost:8080"
	tokenFileName = ".cronlens_token"
)

// ErrNoToken means no token has been stored yet.
var ErrNoToken = errors.New("no saved token; run \"cronlens token\" first")

// APIURL returns the base URL for the cronlens API.
// It can be overridden with the CRONLENS_API_URL environment variable.
func APIURL() string {
	if v := os.Getenv("CRONLENS_API_URL"); v != "" {
		return strings.TrimRight(v, "/")
	}
	return defaultAPIURL
}

// TokenPath returns where the CLI keeps its bearer token.
// CRONLENS_TOKEN_FILE overrides the default of ~/.cronlens_token.
func TokenPath() string {
	if v := os.Getenv("CRONLENS_TOKEN_FILE"); v != "" {
		return v
	}
	dir, _ := os.UserHomeDir()
	return filepath.Join(dir, tokenFileName)
}

// SaveToken writes token to TokenPath with owner-only permissions.
func SaveToken(token string) error {
	if err := os.WriteFile(TokenPath(), []byte(token), 0o600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// ReadToken returns the stored token.
func ReadToken() (string, error) {
	data, err := os.ReadFile(TokenPath())
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
