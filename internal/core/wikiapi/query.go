package wikiapi

import (
	"fmt"
	"net/url"
	"strconv"
)

// DefaultBaseURL is the English Wikipedia action API endpoint.
const DefaultBaseURL = "https://en.wikipedia.org/w/api.php"

// BuildURL appends params to base as a form-encoded query string.
// Existing query parameters on base are preserved unless params overrides them.
func BuildURL(base string, params url.Values) (string, error) {
	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidEndpoint, parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%w: missing host in %q", ErrInvalidEndpoint, base)
	}

	query := parsed.Query()
	for key, values := range params {
		query[key] = append([]string(nil), values...)
	}
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

// SearchParams returns the query parameters for a full-text search.
func SearchParams(term string) url.Values {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", term)
	params.Set("format", "json")
	return params
}

// PageParams returns the query parameters for a plaintext extract of one page.
func PageParams(pageID uint64) url.Values {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("explaintext", "")
	params.Set("exsectionformat", "plain")
	params.Set("pageids", strconv.FormatUint(pageID, 10))
	params.Set("format", "json")
	return params
}

// RandomParams returns the query parameters for n random main-namespace pages.
func RandomParams(n uint64) url.Values {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "random")
	params.Set("rnlimit", strconv.FormatUint(n, 10))
	params.Set("rnnamespace", "0")
	params.Set("format", "json")
	return params
}
