package contents

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/alan/issues-downloader/internal/github"
	"golang.org/x/time/rate"
)

// Fetcher performs an authenticated GET and copies the response body to w
type Fetcher interface {
	DownloadContent(ctx context.Context, rawURL string, w io.Writer) error
}

// Result counts the outcome of content downloads
type Result struct {
	Downloaded int
	Skipped    int
	Failed     int
}

// Add accumulates another result into r
func (r *Result) Add(other Result) {
	r.Downloaded += other.Downloaded
	r.Skipped += other.Skipped
	r.Failed += other.Failed
}

// Downloader writes content URLs to {dir}/{group key}/{file name}
type Downloader struct {
	fetcher Fetcher
	dir     string
	limiter *rate.Limiter
}

// NewDownloader creates a downloader that waits at least delay between network downloads.
// A zero delay disables throttling.
func NewDownloader(fetcher Fetcher, dir string, delay time.Duration) *Downloader {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}

	return &Downloader{
		fetcher: fetcher,
		dir:     dir,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Download fetches every URL of every group. Files already on disk are skipped without a request.
// HTTP failures are logged and skipped; filesystem failures and context cancellation are returned.
func (d *Downloader) Download(ctx context.Context, groups []ContentGroup) (Result, error) {
	var result Result

	for _, group := range groups {
		for _, rawURL := range group.URLs {
			name, err := fileName(rawURL)
			if err != nil {
				slog.Warn("Skipping content with unusable URL", "url", rawURL, "group", group.Key, "error", err)
				result.Failed++
				continue
			}

			dest := filepath.Join(d.dir, group.Key, name)
			if _, err := os.Stat(dest); err == nil {
				slog.Debug("Content already downloaded", "path", dest)
				result.Skipped++
				continue
			}

			if err := d.limiter.Wait(ctx); err != nil {
				return result, fmt.Errorf("failed waiting to download content: %w", err)
			}

			var buf bytes.Buffer
			if err := d.fetcher.DownloadContent(ctx, rawURL, &buf); err != nil {
				slog.Warn("Failed to download content", "url", rawURL, "group", group.Key, "status", github.StatusCode(err), "error", err)
				result.Failed++
				continue
			}

			if err := writeContent(dest, buf.Bytes()); err != nil {
				return result, err
			}

			slog.Info("Downloaded content", "url", rawURL, "path", dest, "bytes", buf.Len())
			result.Downloaded++
		}
	}

	return result, nil
}

// fileName returns the last path segment of rawURL
func fileName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse content URL: %w", err)
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" || name == ".." {
		return "", fmt.Errorf("content URL %q has no file name", rawURL)
	}
	return name, nil
}

func writeContent(dest string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed to create content directory: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil { //nolint:gosec // downloaded content is meant to be readable
		return fmt.Errorf("failed to write content file: %w", err)
	}
	return nil
}
