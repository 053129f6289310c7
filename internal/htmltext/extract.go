// Package htmltext extracts readable plain text from HTML pages so the CLI
// can analyze web content directly.
package htmltext

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ExtractionError reports a failed fetch or parse.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("html extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("html extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

var httpClient = &http.Client{Timeout: 30 * time.Second}

// FromURL fetches a page and returns its readable text.
func FromURL(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", &ExtractionError{Message: "invalid URL", Cause: err}
	}
	req.Header.Set("User-Agent", "humanifyai/1.0")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", &ExtractionError{Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &ExtractionError{Message: fmt.Sprintf("unexpected status %d from %s", resp.StatusCode, pageURL)}
	}
	return FromReader(resp.Body)
}

var spaceRun = regexp.MustCompile(`[ \t]+`)

// FromReader parses HTML and returns the text of its content blocks
// (headings, paragraphs, list items) separated by blank lines. Script,
// style and chrome elements are dropped.
func FromReader(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", &ExtractionError{Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript, nav, header, footer, aside").Remove()

	var blocks []string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, blockquote").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(spaceRun.ReplaceAllString(sel.Text(), " "))
		if text != "" {
			blocks = append(blocks, text)
		}
	})

	if len(blocks) == 0 {
		// Fall back to whatever text the body carries.
		text := strings.TrimSpace(spaceRun.ReplaceAllString(doc.Find("body").Text(), " "))
		if text == "" {
			return "", &ExtractionError{Message: "page contains no readable text"}
		}
		return text, nil
	}

	return strings.Join(blocks, "\n\n"), nil
}
