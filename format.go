package marinedash

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns for the cleaning stage.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Legal/government reference boilerplate: marker phrase through the end
	// of its section (next blank line or end of text).
	boilerplateSection = regexp.MustCompile(`(?is)(?:U\.S\. GOVERNMENT|CODE OF FEDERAL REGULATIONS|NATIONAL WEATHER SERVICE INSTRUCTION).*?(?:\n[ \t]*\n|\z)`)

	// Residual bullet characters left over from upstream product markup
	bulletChars = regexp.MustCompile(`[•◦▪‣·][ \t]*`)

	// Runs of horizontal whitespace
	horizontalRuns = regexp.MustCompile(`[ \t]+`)

	// Compress 3+ newlines to exactly one blank line
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// Markdown and HTML metacharacters in bulletin prose. Neutralized before the
// highlight rules run, so the rule table contributes the only live markup.
var (
	inlineMeta = strings.NewReplacer(
		`\`, `\\`,
		"`", "\\`",
		`*`, `\*`,
		`_`, `\_`,
		`[`, `\[`,
		`]`, `\]`,
		`~`, `\~`,
	)
	htmlMeta = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

	// Block constructs are only recognized at line starts.
	blockMarker     = regexp.MustCompile(`(?m)^([#+=-])`)
	orderedListMark = regexp.MustCompile(`(?m)^(\d+)([.)])`)
)

// escapeMarkup renders bulletin prose inert for the markup converter:
// metacharacters display literally and any HTML in the payload becomes
// visible text instead of live elements.
func escapeMarkup(s string) string {
	s = inlineMeta.Replace(s)
	s = blockMarker.ReplaceAllString(s, `\$1`)
	s = orderedListMark.ReplaceAllString(s, `$1\$2`)
	return htmlMeta.Replace(s)
}

// CleanBulletinText normalizes raw bulletin prose before segmentation.
// Order matters: line endings first, then boilerplate spans, then whitespace.
// Total over strings, and idempotent: cleaning cleaned text is a no-op.
func CleanBulletinText(text string) string {
	text = crlfOrCR.ReplaceAllString(text, "\n")
	text = boilerplateSection.ReplaceAllString(text, "\n\n")
	text = bulletChars.ReplaceAllString(text, "")
	text = horizontalRuns.ReplaceAllString(text, " ")
	text = multipleBlankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// bodyConverter abstracts the final markup conversion so tests can observe
// the intermediate Markdown without a Goldmark round trip.
type bodyConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// Formatter turns raw bulletin prose into an HTML fragment of paragraph
// elements with inline emphasis markup.
type Formatter struct {
	conv bodyConverter
}

// NewFormatter creates a Formatter backed by the Goldmark converter.
func NewFormatter() *Formatter {
	return &Formatter{conv: newMarkupConverter()}
}

// Format runs the full pipeline: clean, segment, split long paragraphs,
// escape, highlight, and convert to HTML. Empty or whitespace-only input
// yields an empty string. The only error source is the final conversion step.
func (f *Formatter) Format(ctx context.Context, text string) (string, error) {
	clean := CleanBulletinText(text)
	if clean == "" {
		return "", nil
	}

	paragraphs := segmentParagraphs(clean)
	paragraphs = splitLongParagraphs(paragraphs)

	// Verbatim fallback: hard wraps downstream turn the remaining single
	// newlines into line breaks.
	if len(paragraphs) == 0 {
		paragraphs = []string{clean}
	}

	for i, paragraph := range paragraphs {
		paragraphs[i] = escapeMarkup(paragraph)
	}

	markup := strings.Join(paragraphs, "\n\n")
	markup = applyHighlightRules(markup)

	return f.conv.ToHTML(ctx, markup)
}
