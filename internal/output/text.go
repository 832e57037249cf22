package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/wikilens/wiki/internal/core"
)

// WriteSearchResults writes one "<title> (<pageid>)" line per result, in order.
func WriteSearchResults(w io.Writer, results []core.SearchResult) error {
	for _, result := range results {
		if _, err := fmt.Fprintf(w, "%s (%d)\n", result.Title, result.PageID); err != nil {
			return err
		}
	}
	return nil
}

// WriteRandomPages writes one "<title> (<id>)" line per page, in order.
func WriteRandomPages(w io.Writer, pages []core.RandomPage) error {
	for _, page := range pages {
		if _, err := fmt.Fprintf(w, "%s (%d)\n", page.Title, page.ID); err != nil {
			return err
		}
	}
	return nil
}

// WriteExtract writes the extract text followed by a newline.
func WriteExtract(w io.Writer, page *core.PageExtract) error {
	if page == nil {
		return nil
	}
	_, err := io.WriteString(w, page.Extract+"\n")
	return err
}

// Usage renders the command summary shown for missing or unknown commands.
func Usage(binary string, commands [][2]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s <command> [args]\n\nCommands:\n", binary)

	width := 0
	for _, command := range commands {
		if len(command[0]) > width {
			width = len(command[0])
		}
	}
	for _, command := range commands {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, command[0], command[1])
	}
	return b.String()
}
