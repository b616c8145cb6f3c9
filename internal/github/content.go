package github

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v57/github"
)

type authHostKey struct{}

// hostAuthTransport adds credentials only to requests for the host a download started on.
// Redirects to another host (object storage, signed URLs) are sent without them.
type hostAuthTransport struct {
	base      http.RoundTripper
	authorize func(*http.Request)
}

func (t *hostAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	host, _ := req.Context().Value(authHostKey{}).(string)
	if host == "" || !strings.EqualFold(req.URL.Host, host) {
		return t.base.RoundTrip(req)
	}

	authed := req.Clone(req.Context())
	t.authorize(authed)
	return t.base.RoundTrip(authed)
}

func newContentClient(authorize func(*http.Request)) *http.Client {
	return &http.Client{
		Transport: &hostAuthTransport{
			base:      http.DefaultTransport,
			authorize: authorize,
		},
		Timeout: DefaultTimeout,
	}
}

// DownloadContent fetches an arbitrary URL and copies the body to w.
// Credentials are sent to the URL's own host only, never to a redirect target on another host.
// Non-2xx responses return an APIError and nothing is written.
func (c *Client) DownloadContent(ctx context.Context, rawURL string, w io.Writer) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", rawURL, err)
	}

	req, err := http.NewRequestWithContext(context.WithValue(ctx, authHostKey{}, u.Host), http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", rawURL, err)
	}
	req.Header.Set("Accept", "*/*")
	req.Header.Set("User-Agent", c.client.UserAgent)

	slog.Debug("GitHub API: Downloading content", "url", rawURL)
	resp, err := c.content.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if err := github.CheckResponse(resp); err != nil {
		return fmt.Errorf("failed to download %s: %w", rawURL, wrapError(err))
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to read %s: %w", rawURL, err)
	}
	return nil
}
