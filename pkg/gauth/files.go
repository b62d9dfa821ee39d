package gauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// NewFromFiles builds a Credential from an OAuth desktop client secrets file
// and a token file written by scripts/gtasks-auth. Refreshed tokens are
// written back to tokenPath.
func NewFromFiles(ctx context.Context, credentialsPath, tokenPath string, scopes []string, opts ...Option) (*Credential, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	cfg, err := google.ConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}

	tok, err := LoadToken(tokenPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s not found, run scripts/gtasks-auth first", ErrNotAuthenticated, tokenPath)
	}
	if err != nil {
		return nil, err
	}

	opts = append([]Option{WithOnRefresh(func(fresh *oauth2.Token) error {
		return SaveToken(tokenPath, fresh)
	})}, opts...)
	return NewCredential(tok, ConfigRefresher(cfg), opts...), nil
}

// ConfigRefresher refreshes tokens through the OAuth config's token endpoint.
func ConfigRefresher(cfg *oauth2.Config) Refresher {
	return func(ctx context.Context, old *oauth2.Token) (*oauth2.Token, error) {
		if old == nil || old.RefreshToken == "" {
			return nil, errors.New("no refresh token")
		}
		return cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: old.RefreshToken}).Token()
	}
}

// LoadToken reads a JSON encoded token.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	return &tok, nil
}

// SaveToken writes tok as JSON, readable only by the owner.
func SaveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}
