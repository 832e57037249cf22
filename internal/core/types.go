package core

// Operation identifies which API query an invocation runs.
type Operation string

const (
	OperationSearch Operation = "search"
	OperationPage   Operation = "page"
	OperationRandom Operation = "random"
)

// SearchResult is one hit of a keyword search, in relevance order.
type SearchResult struct {
	Title  string `json:"title"`
	PageID uint64 `json:"pageid"`
}

// PageExtract is the plaintext extract of a single page.
type PageExtract struct {
	PageID  uint64 `json:"pageid"`
	Title   string `json:"title,omitempty"`
	Extract string `json:"extract"`
}

// RandomPage is one entry of the random page list.
type RandomPage struct {
	Title string `json:"title"`
	ID    uint64 `json:"id"`
}
