package wikiapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/wikilens/wiki/internal/core"
)

type searchResponse struct {
	Query struct {
		Search []struct {
			Title  string `json:"title"`
			PageID uint64 `json:"pageid"`
		} `json:"search"`
	} `json:"query"`
}

type pageResponse struct {
	Query struct {
		Pages map[string]struct {
			PageID  uint64          `json:"pageid"`
			Title   string          `json:"title"`
			Extract *string         `json:"extract"`
			Missing json.RawMessage `json:"missing"`
			Invalid json.RawMessage `json:"invalid"`
		} `json:"pages"`
	} `json:"query"`
}

type randomResponse struct {
	Query struct {
		Random []struct {
			Title string `json:"title"`
			ID    uint64 `json:"id"`
		} `json:"random"`
	} `json:"query"`
}

// decodeInto validates body for op and unmarshals it into out.
//
// API error payloads are reported before the shape is checked, since they
// never carry a query object.
func decodeInto(op core.Operation, body []byte, out any) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return fmt.Errorf("%w: trailing data after json document", ErrDecode)
	}

	if apiErr := apiErrorFrom(doc); apiErr != nil {
		return apiErr
	}

	if err := validate(op, doc); err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s response: %w", ErrSchema, op, err)
	}
	return nil
}

func apiErrorFrom(doc any) *APIError {
	root, ok := doc.(map[string]any)
	if !ok {
		return nil
	}
	errObj, ok := root["error"].(map[string]any)
	if !ok {
		return nil
	}
	code, _ := errObj["code"].(string)
	info, _ := errObj["info"].(string)
	return &APIError{Code: code, Info: info}
}

func decodeSearch(body []byte) ([]core.SearchResult, error) {
	var payload searchResponse
	if err := decodeInto(core.OperationSearch, body, &payload); err != nil {
		return nil, err
	}

	results := make([]core.SearchResult, 0, len(payload.Query.Search))
	for _, hit := range payload.Query.Search {
		results = append(results, core.SearchResult{Title: hit.Title, PageID: hit.PageID})
	}
	return results, nil
}

func decodePage(body []byte, pageID uint64) (*core.PageExtract, error) {
	var payload pageResponse
	if err := decodeInto(core.OperationPage, body, &payload); err != nil {
		return nil, err
	}

	key := strconv.FormatUint(pageID, 10)
	page, ok := payload.Query.Pages[key]
	if !ok {
		return nil, fmt.Errorf("%w: page response: query.pages has no entry %q", ErrSchema, key)
	}
	if len(page.Missing) > 0 || len(page.Invalid) > 0 {
		return nil, fmt.Errorf("%w: pageid %d", ErrPageNotFound, pageID)
	}
	if page.Extract == nil {
		return nil, fmt.Errorf("%w: page response: query.pages.%s.extract is missing", ErrSchema, key)
	}

	return &core.PageExtract{PageID: pageID, Title: page.Title, Extract: *page.Extract}, nil
}

func decodeRandom(body []byte) ([]core.RandomPage, error) {
	var payload randomResponse
	if err := decodeInto(core.OperationRandom, body, &payload); err != nil {
		return nil, err
	}

	pages := make([]core.RandomPage, 0, len(payload.Query.Random))
	for _, entry := range payload.Query.Random {
		pages = append(pages, core.RandomPage{Title: entry.Title, ID: entry.ID})
	}
	return pages, nil
}
