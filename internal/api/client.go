// Package api is the typed client for the personal-finance dashboard
// backend. It owns the cross-cutting request contract (bearer token,
// CSRF header on mutations, global 401 handling) and normalizes the
// backend's drifting field names into the canonical model types, so
// render code never sees raw wire shapes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

const csrfCookieName = "csrftoken"

// Client talks to the dashboard backend. All methods take a context
// and return wrapped errors; none of them retry.
type Client struct {
	httpClient *http.Client
	session    *Session
	base       *url.URL
}

// NewClient builds a client for the given base URL using the given
// session. The session is the only credential source; a client built
// with an empty session can still call the login endpoint.
func NewClient(baseURL string, session *Session) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		base:    base,
		session: session,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
	}, nil
}

// Session returns the session this client was built with.
func (c *Client) Session() *Session {
	return c.session
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	rel, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("invalid request path %q: %w", path, err)
	}
	u := c.base.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if method != http.MethodGet {
		if token := c.csrfToken(u); token != "" {
			req.Header.Set("X-CSRFToken", token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusUnauthorized && !isLoginPath(path) {
		if c.session.Clear() {
			slog.Warn("session expired, cleared stored credentials", "path", path)
		}
		return ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// csrfToken reads the csrftoken cookie the backend set on an earlier
// response. Mutating requests echo it back in the X-CSRFToken header.
// The jar is queried with the URL being mutated: cookies set without
// an explicit Path get a default path scoped to the setting endpoint's
// directory, which the bare base URL would never match.
func (c *Client) csrfToken(u *url.URL) string {
	for _, cookie := range c.httpClient.Jar.Cookies(u) {
		if cookie.Name == csrfCookieName {
			return cookie.Value
		}
	}
	return ""
}

// isLoginPath exempts the login endpoint from 401 handling so a bad
// password does not wipe an unrelated stored session.
func isLoginPath(path string) bool {
	return strings.Contains(path, "/login/")
}

// readErrorMessage pulls a human-readable message out of an error
// body. The backend is inconsistent about the field name.
func readErrorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}

	var payload struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return strings.TrimSpace(string(data))
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Detail
}

// decodeList decodes an endpoint that returns either a bare JSON
// array or a DRF-style pagination envelope, depending on the backend
// version.
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	var page struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(raw, &page); err == nil && page.Results != nil {
		return page.Results, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("unexpected list shape: %w", err)
	}
	return items, nil
}
