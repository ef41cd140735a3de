package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"gamedatatrack/internal/common"
	"gamedatatrack/internal/config"

	"github.com/rs/zerolog"
)

// ErrNotModified is returned when the server answers a conditional GET with 304.
var ErrNotModified = common.NewError("content not modified")

// Fetcher handles fetching tracked file content over HTTP.
type Fetcher struct {
	httpClient *http.Client
	logger     zerolog.Logger
	cfg        *config.TrackerConfig
}

// NewFetcher creates a new Fetcher.
func NewFetcher(client *http.Client, logger zerolog.Logger, cfg *config.TrackerConfig) *Fetcher {
	if client == nil {
		timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
		if cfg.HTTPTimeoutSeconds <= 0 {
			timeout = time.Duration(config.DefaultHTTPTimeoutSeconds) * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Fetcher{
		httpClient: client,
		logger:     logger.With().Str("component", "Fetcher").Logger(),
		cfg:        cfg,
	}
}

// FetchInput holds parameters for Fetch.
type FetchInput struct {
	URL                  string
	PreviousETag         string
	PreviousLastModified string
}

// FetchResult holds results from Fetch.
type FetchResult struct {
	Content        []byte
	ContentType    string
	ETag           string
	LastModified   string
	HTTPStatusCode int
}

// LastModifiedTime parses the Last-Modified response header. The boolean is
// false when the header was absent or unparseable.
func (fr *FetchResult) LastModifiedTime() (time.Time, bool) {
	if fr.LastModified == "" {
		return time.Time{}, false
	}
	t, err := http.ParseTime(fr.LastModified)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// Fetch fetches the content of a tracked file from the given URL. When the
// previous ETag or Last-Modified values are set, a conditional GET is issued
// and ErrNotModified is returned for a 304 response.
func (f *Fetcher) Fetch(ctx context.Context, input FetchInput) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, input.URL, nil)
	if err != nil {
		f.logger.Error().Err(err).Str("url", input.URL).Msg("Failed to create new HTTP request")
		return nil, common.WrapError(err, fmt.Sprintf("creating request for %s", input.URL))
	}

	if f.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", f.cfg.UserAgent)
	}
	if input.PreviousETag != "" {
		req.Header.Set("If-None-Match", input.PreviousETag)
	}
	if input.PreviousLastModified != "" {
		req.Header.Set("If-Modified-Since", input.PreviousLastModified)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.logger.Error().Err(err).Str("url", input.URL).Msg("Failed to execute HTTP request")
		return nil, common.NewNetworkError(input.URL, "HTTP request failed", err)
	}
	defer resp.Body.Close()

	result := &FetchResult{
		ETag:           resp.Header.Get("ETag"),
		LastModified:   resp.Header.Get("Last-Modified"),
		ContentType:    resp.Header.Get("Content-Type"),
		HTTPStatusCode: resp.StatusCode,
	}

	if resp.StatusCode == http.StatusNotModified {
		f.logger.Debug().Str("url", input.URL).Msg("Content not modified (304)")
		return result, ErrNotModified
	}

	if resp.StatusCode != http.StatusOK {
		f.logger.Warn().Str("url", input.URL).Int("status_code", resp.StatusCode).Msg("Received non-OK HTTP status")
		// Read a limited amount of the body so the error carries context.
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		result.Content = bodyBytes
		return result, common.NewHTTPErrorWithURL(resp.StatusCode, string(bodyBytes), input.URL)
	}

	maxSize := f.cfg.MaxContentSize
	if maxSize <= 0 {
		maxSize = config.DefaultMaxContentSize
	}
	if resp.ContentLength > 0 && resp.ContentLength > int64(maxSize) {
		return nil, fmt.Errorf("content too large: %d bytes (max: %d bytes)", resp.ContentLength, maxSize)
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxSize)+1))
	if err != nil {
		f.logger.Error().Err(err).Str("url", input.URL).Msg("Failed to read response body")
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(bodyBytes) > maxSize {
		return nil, fmt.Errorf("content too large: %d bytes (max: %d bytes)", len(bodyBytes), maxSize)
	}

	result.Content = bodyBytes

	f.logger.Debug().Str("url", input.URL).Str("content_type", result.ContentType).Int("size", len(result.Content)).Msg("File content fetched successfully")
	return result, nil
}
