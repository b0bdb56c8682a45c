package clerk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"

	"cuaderno/internal/entity"
	"cuaderno/internal/entity/generated"
	"cuaderno/internal/usecase"
)

const (
	DefaultAPIURL = "https://api.clerk.com"

	metadataKey  = "subscription"
	maxErrorBody = 4 << 10
)

// APIError is returned for non-2xx responses of the Backend API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("clerk api: status %d: %s", e.StatusCode, e.Body)
}

// Client reads and writes subscription records kept in Clerk user public metadata.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default client with a 10s timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func New(baseURL, secretKey string, options ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, o := range options {
		o(c)
	}
	return c
}

type user struct {
	ID             string                     `json:"id"`
	PublicMetadata map[string]json.RawMessage `json:"public_metadata"`
}

type metadataPatch struct {
	PublicMetadata map[string]*generated.SubscriptionRecord `json:"public_metadata"`
}

// GetSubscription returns the record stored under public_metadata.subscription.
func (c *Client) GetSubscription(ctx context.Context, userID string) (*entity.Subscription, error) {
	var u user
	err := c.do(ctx, http.MethodGet, "/v1/users/"+url.PathEscape(userID), nil, &u)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, usecase.ErrSubscriptionNotFound
		}
		return nil, err
	}

	raw, ok := u.PublicMetadata[metadataKey]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return nil, usecase.ErrSubscriptionNotFound
	}

	var rec generated.SubscriptionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode metadata of user %s: %w", userID, err)
	}
	if err := rec.Validate(strfmt.Default); err != nil {
		return nil, fmt.Errorf("invalid metadata of user %s: %w", userID, err)
	}
	return entity.FromRecord(userID, &rec), nil
}

// SetSubscription merges the record into the user's public metadata.
func (c *Client) SetSubscription(ctx context.Context, s *entity.Subscription) error {
	body := metadataPatch{
		PublicMetadata: map[string]*generated.SubscriptionRecord{
			metadataKey: entity.ToRecord(s),
		},
	}
	return c.do(ctx, http.MethodPatch, "/v1/users/"+url.PathEscape(s.UserID)+"/metadata", body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("clerk %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
