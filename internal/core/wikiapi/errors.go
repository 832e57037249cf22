package wikiapi

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEndpoint reports a base URL that cannot be used to build requests.
	ErrInvalidEndpoint = errors.New("invalid api endpoint")
	// ErrRequest reports a transport failure before a complete response was read.
	ErrRequest = errors.New("api request failed")
	// ErrHTTPStatus reports a non-2xx response.
	ErrHTTPStatus = errors.New("unexpected api status")
	// ErrDecode reports a body that is not UTF-8 encoded JSON.
	ErrDecode = errors.New("undecodable api response")
	// ErrSchema reports JSON that does not have the expected shape.
	ErrSchema = errors.New("unexpected api response shape")
	// ErrAPI reports an error payload returned by the API itself.
	ErrAPI = errors.New("api returned an error")
	// ErrPageNotFound reports a page id the wiki does not know.
	ErrPageNotFound = errors.New("page not found")
)

// APIError carries the code and info fields of a MediaWiki error payload.
type APIError struct {
	Code string
	Info string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error [%s]: %s", e.Code, e.Info)
}

// Unwrap lets errors.Is match ErrAPI.
func (e *APIError) Unwrap() error {
	return ErrAPI
}
