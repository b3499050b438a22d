// Package badger is the HTTP client for the external Badger
// gamification service. All badge, user, and event logic lives on the
// vendor side; this package only moves requests and snapshots across the
// wire.
package badger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/osse101/BadgerShop_Go/internal/domain"
)

// Client is the surface of the Badger API the shop uses
type Client interface {
	// GetUser fetches the vendor-side profile for a user
	GetUser(ctx context.Context, userID string) (*domain.BadgerUser, error)

	// GetUserBadges fetches the user's badges in the given status
	// ("all" for every status), with progress conditions inlined
	GetUserBadges(ctx context.Context, userID, status string) ([]domain.Badge, error)

	// SendEvent delivers a gamification event for the user
	SendEvent(ctx context.Context, userID, event string, metadata map[string]string) error

	// AwardBadge grants a badge directly, bypassing its conditions
	AwardBadge(ctx context.Context, userID, badgeID string) error
}

// Config holds the vendor credentials and endpoint
type Config struct {
	AppID     string
	AppSecret string
	BaseURL   string
}

// client is the HTTP implementation of Client
type client struct {
	cfg  Config
	http *http.Client
}

// New creates a Badger API client
func New(cfg Config) Client {
	return &client{
		cfg: cfg,
		http: &http.Client{
			Timeout: RequestTimeout,
		},
	}
}

type badgesResponse struct {
	Badges []domain.Badge `json:"badges"`
}

type eventRequest struct {
	UserID   string            `json:"userId"`
	Event    string            `json:"event"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

func (c *client) GetUser(ctx context.Context, userID string) (*domain.BadgerUser, error) {
	if userID == "" {
		return nil, domain.ErrIdentityMissing
	}

	path := fmt.Sprintf("/apps/%s/users/%s", c.cfg.AppID, url.PathEscape(userID))

	var user domain.BadgerUser
	if err := c.do(ctx, http.MethodGet, path, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *client) GetUserBadges(ctx context.Context, userID, status string) ([]domain.Badge, error) {
	if userID == "" {
		return nil, domain.ErrIdentityMissing
	}

	path := fmt.Sprintf("/apps/%s/users/%s/badges?status=%s&include=conditions",
		c.cfg.AppID, url.PathEscape(userID), url.QueryEscape(status))

	var resp badgesResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Badges, nil
}

func (c *client) SendEvent(ctx context.Context, userID, event string, metadata map[string]string) error {
	if userID == "" {
		return domain.ErrIdentityMissing
	}
	if event == "" {
		return fmt.Errorf("%w: event name is required", domain.ErrInvalidInput)
	}

	path := fmt.Sprintf("/apps/%s/events", c.cfg.AppID)
	body := eventRequest{
		UserID:   userID,
		Event:    event,
		Metadata: metadata,
	}

	return c.do(ctx, http.MethodPost, path, body, nil)
}

func (c *client) AwardBadge(ctx context.Context, userID, badgeID string) error {
	if userID == "" {
		return domain.ErrIdentityMissing
	}
	if badgeID == "" {
		return fmt.Errorf("%w: badge id is required", domain.ErrInvalidInput)
	}

	path := fmt.Sprintf("/apps/%s/users/%s/badges/%s",
		c.cfg.AppID, url.PathEscape(userID), url.PathEscape(badgeID))

	return c.do(ctx, http.MethodPost, path, nil, nil)
}

// do executes one API call, decoding the JSON response into out when
// out is non-nil
func (c *client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBadgeFetch, err)
	}

	req.Header.Set(HeaderAppID, c.cfg.AppID)
	req.Header.Set("Authorization", "Bearer "+c.cfg.AppSecret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBadgeFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, path)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d", domain.ErrVendorUnavailable, resp.StatusCode)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: status %d", domain.ErrBadgeFetch, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", domain.ErrBadgeFetch, err)
		}
	}
	return nil
}
