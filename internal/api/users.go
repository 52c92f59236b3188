package api

import (
	"context"
	"fmt"

	"github.com/finsight-cli/finsight/internal/model"
)

// Login exchanges credentials for a token pair and persists it in the
// session. A 401 here means bad credentials, not an expired session,
// and does not touch any stored tokens.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	var resp struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := c.post(ctx, "/users/login/", body, &resp); err != nil {
		return err
	}
	if resp.Access == "" {
		return fmt.Errorf("login response carried no access token")
	}
	if err := c.session.SetTokens(resp.Access, resp.Refresh); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Logout revokes the refresh token server-side. The local session is
// cleared whether or not the call succeeds; a dead backend should
// never keep a client logged in.
func (c *Client) Logout(ctx context.Context) error {
	body := map[string]string{
		"refresh_token": c.session.RefreshToken(),
	}
	err := c.post(ctx, "/users/logout/", body, nil)
	c.session.Clear()
	return err
}

// Profile fetches the signed-in user's profile.
func (c *Client) Profile(ctx context.Context) (model.Profile, error) {
	var record struct {
		Username string `json:"username"`
		Avatar   string `json:"avatar"`
	}
	if err := c.get(ctx, "/users/api/user-profile/", &record); err != nil {
		return model.Profile{}, err
	}
	return model.Profile{Username: record.Username, Avatar: record.Avatar}, nil
}

// Notifications fetches the user's notifications, newest first.
func (c *Client) Notifications(ctx context.Context) ([]model.Notification, error) {
	var records []struct {
		Title     string `json:"title"`
		Message   string `json:"message"`
		Timestamp string `json:"timestamp"`
	}
	if err := c.get(ctx, "/users/api/user-notifications/", &records); err != nil {
		return nil, err
	}

	notifications := make([]model.Notification, 0, len(records))
	for _, r := range records {
		notifications = append(notifications, model.Notification{
			Title:     r.Title,
			Message:   r.Message,
			Timestamp: r.Timestamp,
		})
	}
	return notifications, nil
}
