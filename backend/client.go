// Package backend is a typed HTTP client for the blog automation REST
// backend. Success is judged solely by the response status being 2xx; error
// bodies are not parsed.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/eringen/blogpilot/views"
)

// Client talks to the automation backend under its /api base path.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (test seam).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithTimeout sets the per-request timeout. Applied to the client in place,
// so WithHTTPClient wins if both are given.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// New creates a client for the backend at baseURL (no trailing slash needed).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StatusError reports a non-2xx backend response.
type StatusError struct {
	Op   string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: backend returned status %d", e.Op, e.Code)
}

// CreateWebsiteRequest is the POST /api/websites body.
type CreateWebsiteRequest struct {
	Name    string  `json:"name"`
	Domain  string  `json:"domain"`
	CMSType string  `json:"cms_type"`
	APIURL  string  `json:"api_url"`
	APIKey  *string `json:"api_key,omitempty"`
}

// GenerateRequest is the POST /api/generate body. CustomTopic serializes to
// an explicit null when absent, matching what the backend expects.
type GenerateRequest struct {
	Category     string  `json:"category"`
	CustomTopic  *string `json:"custom_topic"`
	FocusKeyword string  `json:"focus_keyword,omitempty"`
}

// GenerateResult is the subset of the generation response the dashboard uses.
type GenerateResult struct {
	SEOScore       float64 `json:"seo_score"`
	FocusKeyphrase string  `json:"focus_keyphrase,omitempty"`
}

type publishRequest struct {
	PostID       int64 `json:"post_id"`
	WebsiteID    int64 `json:"website_id"`
	ForcePublish bool  `json:"force_publish"`
}

type websitesResponse struct {
	Websites []views.Website `json:"websites"`
}

type postsResponse struct {
	Posts []views.Post `json:"posts"`
}

// ListWebsites fetches all configured websites.
func (c *Client) ListWebsites(ctx context.Context) ([]views.Website, error) {
	var resp websitesResponse
	if err := c.do(ctx, http.MethodGet, "/api/websites", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Websites, nil
}

// ListPosts fetches all generated posts.
func (c *Client) ListPosts(ctx context.Context) ([]views.Post, error) {
	var resp postsResponse
	if err := c.do(ctx, http.MethodGet, "/api/posts", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Posts, nil
}

// GetPost fetches a single post by id.
func (c *Client) GetPost(ctx context.Context, id int64) (views.Post, error) {
	var p views.Post
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/posts/%d", id), nil, &p)
	return p, err
}

// CreateWebsite registers a new publishing target.
func (c *Client) CreateWebsite(ctx context.Context, req CreateWebsiteRequest) error {
	return c.do(ctx, http.MethodPost, "/api/websites", req, nil)
}

// DeleteWebsite removes a website by id.
func (c *Client) DeleteWebsite(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/websites/%d", id), nil, nil)
}

// DeletePost removes a post by id.
func (c *Client) DeletePost(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/posts/%d", id), nil, nil)
}

// Generate triggers AI article generation and returns the reported score and
// keyphrase.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	var res GenerateResult
	err := c.do(ctx, http.MethodPost, "/api/generate", req, &res)
	return res, err
}

// Publish pushes a post to the given website. force_publish is always sent
// so the backend never blocks on its own score threshold.
func (c *Client) Publish(ctx context.Context, postID, websiteID int64) error {
	return c.do(ctx, http.MethodPost, "/api/publish", publishRequest{
		PostID:       postID,
		WebsiteID:    websiteID,
		ForcePublish: true,
	}, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Op: op, Code: resp.StatusCode}
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}
	return nil
}
