package marinedash

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// markupConverter converts the formatter's Markdown intermediate into an
// HTML fragment using goldmark (pure Go). The fragment is injected into the
// widget container; no document wrapper is added here.
type markupConverter struct {
	md goldmark.Markdown
}

// newMarkupConverter creates a markupConverter tuned for bulletin markup:
// hard wraps preserve the verbatim-fallback line breaks, and raw HTML is
// enabled so the highlighting rules' styling spans pass through. Safe only
// because payload text is escaped before the rules insert those spans.
func newMarkupConverter() *markupConverter {
	md := goldmark.New(
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
			html.WithUnsafe(),    // Keep the rule table's <span> hooks
		),
	)
	return &markupConverter{md: md}
}

// ToHTML converts paragraph markup to an HTML fragment. Supports context
// cancellation via goroutine + select pattern since goldmark doesn't
// natively support context.
func (c *markupConverter) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrBodyRender, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
