// Package github wraps the go-github client with the calls needed to archive a repository's issues.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// DefaultTimeout is the HTTP timeout applied to every request
const DefaultTimeout = 60 * time.Second

// Client wraps the GitHub API client for a single repository
type Client struct {
	client  *github.Client
	content *http.Client
	owner   string
	repo    string
	perPage int
}

// NewClient creates a new GitHub client with token authentication
func NewClient(ctx context.Context, token string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout

	c := NewClientWithHTTPClient(tc)
	c.content = newContentClient(func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	return c
}

// NewBasicAuthClient creates a new GitHub client with HTTP basic authentication
func NewBasicAuthClient(user, password string) *Client {
	tp := &github.BasicAuthTransport{
		Username: user,
		Password: password,
	}
	hc := tp.Client()
	hc.Timeout = DefaultTimeout

	c := NewClientWithHTTPClient(hc)
	c.content = newContentClient(func(req *http.Request) {
		req.SetBasicAuth(user, password)
	})
	return c
}

// NewClientWithHTTPClient creates a GitHub client on top of a preconfigured http.Client.
// Content downloads use httpClient as is.
func NewClientWithHTTPClient(httpClient *http.Client) *Client {
	return &Client{
		client:  github.NewClient(httpClient),
		content: httpClient,
		perPage: 100,
	}
}

// WithRepository returns a copy of the client scoped to owner/repo
func (c *Client) WithRepository(owner, repo string) *Client {
	scoped := *c
	scoped.owner = owner
	scoped.repo = repo
	return &scoped
}

// WithPerPage sets the page size requested from list endpoints
func (c *Client) WithPerPage(perPage int) *Client {
	scoped := *c
	scoped.perPage = perPage
	return &scoped
}

// SetBaseURL points the client at a different API root, such as GitHub Enterprise.
// The underlying go-github client is shared, so every scoped copy sees the change.
func (c *Client) SetBaseURL(rawURL string) error {
	if !strings.HasSuffix(rawURL, "/") {
		rawURL += "/"
	}
	baseURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to parse API URL %q: %w", rawURL, err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return fmt.Errorf("API URL %q must be absolute", rawURL)
	}

	c.client.BaseURL = baseURL
	return nil
}

// Owner returns the repository owner the client is scoped to
func (c *Client) Owner() string {
	return c.owner
}

// Repo returns the repository name the client is scoped to
func (c *Client) Repo() string {
	return c.repo
}
