package gauth

import (
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

type transport struct {
	cred *Credential
	base http.RoundTripper
}

// Transport authorizes requests with the credential's bearer token. A 401
// response triggers one refresh and one retry of the request.
func (c *Credential) Transport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &transport{cred: c, base: base}
}

// Client returns an HTTP client using Transport over base.
func (c *Credential) Client(base http.RoundTripper) *http.Client {
	return &http.Client{Transport: c.Transport(base)}
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	tok, err := t.cred.token(ctx)
	if err != nil {
		closeBody(req)
		return nil, err
	}

	resp, err := t.base.RoundTrip(authorize(req, tok))
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}
	if req.Body != nil && req.GetBody == nil {
		return resp, nil
	}

	drain(resp)
	fresh, err := t.cred.Refresh(ctx, tok)
	if err != nil {
		return nil, err
	}

	retry := authorize(req, fresh)
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("gauth: rewind request body: %w", err)
		}
		retry.Body = body
	}
	return t.base.RoundTrip(retry)
}

func authorize(req *http.Request, tok *oauth2.Token) *http.Request {
	r := req.Clone(req.Context())
	tok.SetAuthHeader(r)
	return r
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	resp.Body.Close()
}

func closeBody(req *http.Request) {
	if req.Body != nil {
		req.Body.Close()
	}
}
