package marinedash

import (
	"context"
	"html"
	"log/slog"
	"strings"
	"sync"
)

// Display state fragments. The widget always leaves its container holding
// exactly one of: loading, error, or rendered content.
const (
	loadingMarkup = `<div class="afd-loading">Loading forecast discussion&hellip;</div>`

	msgNoDiscussion = "No discussion available"
	msgLoadFailed   = "Unable to load forecast discussion"
	msgRenderFailed = "Unable to format forecast discussion"
)

// Widget is the forecast discussion component. A host application constructs
// one instance per container and calls Load to track an office; there is no
// process-wide registry.
type Widget struct {
	display   Display
	fetcher   Fetcher
	formatter *Formatter
	dates     DateFormatter
	logger    *slog.Logger

	placeholder bool

	mu      sync.Mutex
	office  string
	current *Bulletin
	gen     uint64
}

// NewWidget creates a Widget writing into the given display surface.
func NewWidget(display Display, opts ...Option) *Widget {
	w := &Widget{
		display:   display,
		formatter: NewFormatter(),
		dates:     NewDateFormatter(),
		logger:    slog.Default(),
		office:    DefaultOffice,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Load tracks an office and refreshes the widget: loading state first, then
// one fetch, then either a content render or an error state. An empty office
// code falls back to the widget's default.
//
// Overlapping calls are safe: each Load takes a new generation, and a fetch
// response whose generation has been superseded is discarded, so the display
// always reflects the most recently requested office (last-requested-wins).
// In-flight requests are not cancelled; cancellation belongs to ctx.
func (w *Widget) Load(ctx context.Context, office string) {
	w.mu.Lock()
	if office == "" {
		office = w.office
	}
	w.office = office
	w.gen++
	gen := w.gen
	w.mu.Unlock()

	w.display.SetContent(loadingMarkup)

	// Local development: skip the network entirely, no error path.
	if w.placeholder {
		w.store(gen, placeholderBulletin(office))
		w.Render()
		return
	}

	if w.fetcher == nil {
		w.logger.Error("discussion load failed", "office", office, "error", ErrNoFetcher)
		w.failLoad(gen, office)
		return
	}

	bulletin, err := w.fetcher.FetchDiscussion(ctx, office)
	if err != nil {
		w.logger.Error("discussion load failed", "office", office, "error", err)
		w.failLoad(gen, office)
		return
	}

	w.mu.Lock()
	if gen != w.gen {
		w.mu.Unlock()
		w.logger.Debug("discarding superseded discussion fetch", "office", office)
		return
	}
	w.mu.Unlock()

	w.store(gen, bulletin)
	w.Render()
}

// failLoad writes the load-error state unless a newer Load has taken over.
// The lock spans the display write, so a superseding generation can never be
// overwritten by a stale error.
func (w *Widget) failLoad(gen uint64, office string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.gen {
		w.logger.Debug("discarding superseded discussion error", "office", office)
		return
	}
	w.display.SetContent(errorMarkup(msgLoadFailed))
}

// store replaces the current bulletin wholesale if gen is still current.
func (w *Widget) store(gen uint64, bulletin Bulletin) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen == w.gen {
		w.current = &bulletin
	}
}

// Render redraws the widget from the current bulletin snapshot. A nil
// snapshot shows the loading state; a bulletin without text shows the
// "No discussion available" error; otherwise the header and formatted body
// replace the container content.
func (w *Widget) Render() {
	w.mu.Lock()
	bulletin := w.current
	w.mu.Unlock()

	if bulletin == nil {
		w.display.SetContent(loadingMarkup)
		return
	}
	if strings.TrimSpace(bulletin.Text) == "" {
		w.display.SetContent(errorMarkup(msgNoDiscussion))
		return
	}

	body, err := w.formatter.Format(context.Background(), bulletin.Text)
	if err != nil {
		w.logger.Error("discussion render failed", "office", bulletin.Office, "error", err)
		w.display.SetContent(errorMarkup(msgRenderFailed))
		return
	}

	office, issued := w.headerLine(bulletin)
	w.display.SetContent(contentMarkup(office, issued, body))
}

// Office returns the office code the widget currently tracks.
func (w *Widget) Office() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.office
}

// headerLine builds the office + timestamp header. A preformatted issuance
// string wins over formatting the raw updated timestamp.
func (w *Widget) headerLine(b *Bulletin) (office, issued string) {
	office = b.OfficeName
	if office == "" {
		office = b.Office
	}
	issued = b.IssuedTime
	if issued == "" {
		issued = w.dates.FormatShort(b.Updated)
	}
	return office, issued
}

func errorMarkup(msg string) string {
	return `<div class="afd-error">` + html.EscapeString(msg) + `</div>`
}

func contentMarkup(office, issued string, body string) string {
	var sb strings.Builder
	sb.WriteString(`<div class="afd-widget">`)
	sb.WriteString(`<div class="afd-header">`)
	sb.WriteString(`<span class="afd-office">` + html.EscapeString(office) + `</span>`)
	sb.WriteString(`<span class="afd-issued">` + html.EscapeString(issued) + `</span>`)
	sb.WriteString(`</div>`)
	sb.WriteString(`<div class="afd-body">` + body + `</div>`)
	sb.WriteString(`</div>`)
	return sb.String()
}

// placeholderBulletin is rendered in local development instead of hitting
// the network.
func placeholderBulletin(office string) Bulletin {
	return Bulletin{
		Office:     office,
		OfficeName: "Development Placeholder",
		IssuedTime: "Local preview",
		Text: "SYNOPSIS...A broad LOW PRESSURE system over the Gulf of Alaska " +
			"drifts NORTHEAST through the period. TONIGHT...SOUTHEAST WINDS 15 TO 25 KT " +
			"with SEAS 6 FT building. RAIN spreading across the sound after midnight. " +
			"SATURDAY...Winds easing as a weak RIDGE builds over the coastal waters.",
	}
}
