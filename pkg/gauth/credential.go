package gauth

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
)

// Refresher exchanges the current token for a fresh one.
type Refresher func(ctx context.Context, old *oauth2.Token) (*oauth2.Token, error)

// Option configures a Credential.
type Option func(*Credential)

// WithOnRefresh registers a hook that receives every refreshed token, e.g. to persist it.
func WithOnRefresh(fn func(*oauth2.Token) error) Option {
	return func(c *Credential) {
		c.onRefresh = fn
	}
}

// WithHookError receives errors returned by the refresh hook. The refreshed
// token is used either way.
func WithHookError(fn func(error)) Option {
	return func(c *Credential) {
		c.onHookErr = fn
	}
}

// Credential holds the access token shared by Google API clients. It is an
// oauth2.TokenSource and is safe for concurrent use.
type Credential struct {
	mu        sync.Mutex
	tok       *oauth2.Token
	refresh   Refresher
	onRefresh func(*oauth2.Token) error
	onHookErr func(error)
}

// NewCredential creates a Credential. tok may be nil until the user signs in;
// refresh may be nil when the token cannot be renewed.
func NewCredential(tok *oauth2.Token, refresh Refresher, opts ...Option) *Credential {
	c := &Credential{tok: tok, refresh: refresh}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token implements oauth2.TokenSource. An expired token is refreshed first.
func (c *Credential) Token() (*oauth2.Token, error) {
	return c.token(context.Background())
}

// Set replaces the current token.
func (c *Credential) Set(tok *oauth2.Token) {
	c.mu.Lock()
	c.tok = tok
	c.mu.Unlock()
}

// Current returns the held token without refreshing it.
func (c *Credential) Current() *oauth2.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tok
}

func (c *Credential) token(ctx context.Context) (*oauth2.Token, error) {
	c.mu.Lock()
	tok := c.tok
	c.mu.Unlock()

	if tok == nil {
		return nil, ErrNotAuthenticated
	}
	if tok.Valid() || c.refresh == nil {
		return tok, nil
	}
	return c.Refresh(ctx, tok)
}

// Refresh renews the token that failed. When another caller already replaced
// failed, the newer token is returned without a second refresh.
func (c *Credential) Refresh(ctx context.Context, failed *oauth2.Token) (*oauth2.Token, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tok == nil {
		return nil, ErrNotAuthenticated
	}
	if failed != nil && c.tok.AccessToken != failed.AccessToken {
		return c.tok, nil
	}
	if c.refresh == nil {
		return nil, ErrSessionExpired
	}

	fresh, err := c.refresh(ctx, c.tok)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}
	if fresh == nil || fresh.AccessToken == "" {
		return nil, ErrSessionExpired
	}
	if fresh.RefreshToken == "" {
		fresh.RefreshToken = c.tok.RefreshToken
	}
	c.tok = fresh
	if c.onRefresh != nil {
		if err := c.onRefresh(fresh); err != nil && c.onHookErr != nil {
			c.onHookErr(err)
		}
	}
	return fresh, nil
}
