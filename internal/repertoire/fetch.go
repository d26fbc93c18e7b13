// Package repertoire loads the candidate code points from the Latin script
// Root Zone Label Generation Rules.
package repertoire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"
)

// DefaultSourceURL is the published Root Zone LGR for the Latin script.
const DefaultSourceURL = "https://www.icann.org/sites/default/files/lgr/rz-lgr-5-latin-script-26may22-en.html"

// Fetch downloads the LGR page into cacheDir and returns the local path.
// An already cached copy is reused unless refresh is set.
func Fetch(ctx context.Context, rawURL, cacheDir string, refresh bool) (string, bool, error) {
	if rawURL == "" {
		return "", false, fmt.Errorf("source URL is required")
	}
	if cacheDir == "" {
		return "", false, fmt.Errorf("cache directory is required")
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create cache dir: %w", err)
	}

	filename, err := cacheFilename(rawURL)
	if err != nil {
		return "", false, err
	}
	destPath := filepath.Join(cacheDir, filename)
	if !refresh {
		if _, err := os.Stat(destPath); err == nil {
			return destPath, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat cached page: %w", err)
		}
	}

	resp, err := httpRequest(ctx, rawURL)
	if err != nil {
		return "", false, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("unexpected status fetching LGR page: %s", resp.Status)
	}

	tmpFile, err := os.CreateTemp(cacheDir, "lgr-*.html")
	if err != nil {
		return "", false, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return "", false, fmt.Errorf("failed to download LGR page: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", false, fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return "", false, fmt.Errorf("failed to move page into cache: %w", err)
	}
	return destPath, false, nil
}

func httpRequest(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func cacheFilename(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid source URL: %w", err)
	}
	name := path.Base(parsed.Path)
	if name == "" || name == "." || name == "/" {
		name = "lgr.html"
	}
	return name, nil
}
