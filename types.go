package marinedash

import (
	"context"
	"log/slog"
	"regexp"
	"sync"
)

// DefaultOffice is the forecast office tracked when none is requested
// (NWS Anchorage, covering most Alaska coastal waters).
const DefaultOffice = "AFC"

// Bulletin is a single forecast-discussion document for one issuing office.
// Immutable once received; Updated stays a raw payload timestamp and is only
// interpreted by the DateFormatter.
type Bulletin struct {
	Office     string // short issuing-office code, e.g. "AFC"
	OfficeName string // display name, optional
	Text       string // raw discussion body, possibly empty
	Updated    string // payload timestamp, e.g. RFC 3339
	IssuedTime string // preformatted issuance string, optional
}

// Display is the surface the widget writes its markup into. The widget only
// ever replaces the whole content; it never reads anything back.
type Display interface {
	SetContent(html string)
}

// Fetcher obtains the latest discussion bulletin for an office.
type Fetcher interface {
	FetchDiscussion(ctx context.Context, office string) (Bulletin, error)
}

// DateFormatter converts a raw payload timestamp into a short display string.
// Implementations must absorb malformed input rather than fail.
type DateFormatter interface {
	FormatShort(value string) string
}

// CaptureDisplay is a Display that retains the most recent markup, for hosts
// without a DOM-like container (CLI output, HTTP responses, tests).
type CaptureDisplay struct {
	mu   sync.Mutex
	html string
}

// SetContent replaces the captured markup.
func (d *CaptureDisplay) SetContent(html string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.html = html
}

// Content returns the most recently captured markup.
func (d *CaptureDisplay) Content() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.html
}

// officeCodePattern matches issuing-office codes like "AFC" or "PAJK".
var officeCodePattern = regexp.MustCompile(`^[A-Za-z]{3,4}$`)

// ValidOfficeCode reports whether s looks like an issuing-office code.
func ValidOfficeCode(s string) bool {
	return officeCodePattern.MatchString(s)
}

// Option configures a Widget.
type Option func(*Widget)

// WithFetcher sets the bulletin fetcher. Without one, Load surfaces an
// error state unless placeholder mode is enabled.
func WithFetcher(f Fetcher) Option {
	return func(w *Widget) {
		w.fetcher = f
	}
}

// WithDefaultOffice sets the office tracked when Load is called with an
// empty code.
func WithDefaultOffice(office string) Option {
	return func(w *Widget) {
		w.office = office
	}
}

// WithPlaceholder switches the widget to local-development mode: Load skips
// the network and renders a fixed placeholder bulletin.
func WithPlaceholder(enabled bool) Option {
	return func(w *Widget) {
		w.placeholder = enabled
	}
}

// WithDateFormatter swaps the timestamp formatter, isolating locale-specific
// rendering from the widget logic.
func WithDateFormatter(df DateFormatter) Option {
	return func(w *Widget) {
		w.dates = df
	}
}

// WithLogger sets the structured logger used for fetch diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Widget) {
		w.logger = logger
	}
}
