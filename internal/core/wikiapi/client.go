package wikiapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fulmenhq/gofulmen/logging"
	"go.uber.org/zap"

	"github.com/wikilens/wiki/internal/core"
)

// Client queries a MediaWiki action API. One method call issues exactly one
// GET request; there is no retry and no caching.
type Client struct {
	// BaseURL defaults to DefaultBaseURL when empty.
	BaseURL string
	// HTTPClient defaults to a client with no timeout.
	HTTPClient *http.Client
	// UserAgent is sent only when non-empty.
	UserAgent string
	Logger    *logging.Logger
}

// Search runs a full-text search and returns hits in API (relevance) order.
func (c *Client) Search(ctx context.Context, term string) ([]core.SearchResult, error) {
	body, err := c.fetch(ctx, core.OperationSearch, SearchParams(term))
	if err != nil {
		return nil, err
	}
	return decodeSearch(body)
}

// Page returns the plaintext extract of the page with the given id.
func (c *Client) Page(ctx context.Context, pageID uint64) (*core.PageExtract, error) {
	body, err := c.fetch(ctx, core.OperationPage, PageParams(pageID))
	if err != nil {
		return nil, err
	}
	return decodePage(body, pageID)
}

// Random returns n random main-namespace pages in API order.
func (c *Client) Random(ctx context.Context, n uint64) ([]core.RandomPage, error) {
	body, err := c.fetch(ctx, core.OperationRandom, RandomParams(n))
	if err != nil {
		return nil, err
	}
	return decodeRandom(body)
}

func (c *Client) fetch(ctx context.Context, op core.Operation, params url.Values) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	endpoint, err := BuildURL(c.baseURL(), params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if ua := strings.TrimSpace(c.UserAgent); ua != "" {
		req.Header.Set("User-Agent", ua)
	}

	requestID := core.GetRequestID(ctx)
	startedAt := time.Now()
	c.debug("API request",
		zap.String("request_id", requestID),
		zap.String("operation", string(op)),
		zap.String("url", endpoint))

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrRequest, err)
	}

	c.debug("API response",
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(startedAt)))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d %s", ErrHTTPStatus, resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	if !utf8.Valid(body) {
		return nil, fmt.Errorf("%w: body is not valid UTF-8", ErrDecode)
	}

	return body, nil
}

func (c *Client) baseURL() string {
	if c != nil && strings.TrimSpace(c.BaseURL) != "" {
		return strings.TrimSpace(c.BaseURL)
	}
	return DefaultBaseURL
}

func (c *Client) httpClient() *http.Client {
	if c != nil && c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{}
}

func (c *Client) debug(msg string, fields ...zap.Field) {
	if c == nil || c.Logger == nil {
		return
	}
	c.Logger.Debug(msg, fields...)
}
