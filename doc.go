// Package marinedash renders marine forecast discussion bulletins as HTML.
//
// The package implements the "forecast discussion" widget of a marine weather
// dashboard for Alaska coastal waters: it fetches a free-text discussion
// bulletin for one issuing office, reformats the raw meteorological prose
// into readable paragraphs, applies domain-vocabulary highlighting, and
// delivers the final markup to a display surface.
//
// # Quick Start
//
// Construct a widget with a display surface and a fetcher, then load an
// office's discussion:
//
//	display := &marinedash.CaptureDisplay{}
//	widget := marinedash.NewWidget(display,
//	    marinedash.WithFetcher(client),
//	)
//	widget.Load(ctx, "AFC")
//	fmt.Println(display.Content())
//
// # Formatting Pipeline
//
// The body of the widget is produced by a Formatter running these stages:
//
//  1. Cleaning (boilerplate removal, whitespace normalization)
//  2. Paragraph segmentation (structural breaks, then sentence reconstruction)
//  3. Long-paragraph splitting at sentence boundaries
//  4. Vocabulary highlighting via an ordered rule table
//  5. Markdown to HTML conversion via Goldmark
//
// Each stage is a total function over strings; the Formatter never fails on
// bulletin content.
//
// # Display States
//
// The widget always leaves the display in one of three states: loading,
// error, or rendered content. Fetch failures and empty bulletins surface as
// error states; malformed timestamps degrade to "Unknown" in the header.
package marinedash
