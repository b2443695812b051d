package loaders

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// NetworkError is returned when a CSV asset cannot be retrieved. Callers
// degrade to an empty dataset instead of propagating it to the UI.
type NetworkError struct {
	Path   string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.Path, e.Status)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Fetcher retrieves CSV assets served under a fixed base URL.
type Fetcher struct {
	BaseURL string
	Client  *http.Client
}

func NewFetcher(baseURL string) *Fetcher {
	return &Fetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{},
	}
}

// Fetch returns the raw text of one CSV asset. Any non-2xx response or
// transport failure is a NetworkError. No retries are attempted.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	url := f.BaseURL + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &NetworkError{Path: path, Err: err}
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", &NetworkError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &NetworkError{Path: path, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Path: path, Err: err}
	}

	return string(body), nil
}
