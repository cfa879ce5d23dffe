package marinedash

import (
	"regexp"
	"strings"
)

// Segmentation thresholds. Derived from typical NWS forecast discussion
// line lengths; paragraphs beyond these read as walls of text.
const (
	minFragmentLen      = 15  // structural pieces at or below this are artifacts
	maxSentencesPerPara = 3   // sentence-reconstruction paragraph cap
	forcedSplitLen      = 600 // single paragraph beyond this gets re-split
	maxParagraphLen     = 700 // hard ceiling before sentence-boundary splitting
	targetChunkLen      = 350 // flush threshold while splitting long paragraphs
)

// Precompiled regex patterns for segmentation.
var (
	// Structural paragraph breaks: blank lines or ellipsis runs (3+ dots)
	structuralBreak = regexp.MustCompile(`\n[ \t]*\n|\.{3,}`)

	// Single newlines inside a paragraph are source line wraps, not breaks
	lineWrap = regexp.MustCompile(`[ \t]*\n[ \t]*`)

	// Sentence boundary: period followed by whitespace
	sentenceBoundary = regexp.MustCompile(`\.\s+`)

	// Section keywords signal the start of a new discussion section.
	// Multi-word alternatives first so they win over their prefixes; an
	// optional leading dot and trailing ellipsis match the ".SYNOPSIS..."
	// style of raw products.
	sectionKeywordStart = regexp.MustCompile(`(?i)^\.?(` +
		`SHORT TERM|LONG TERM|FIRE WEATHER|THIS MORNING|THIS AFTERNOON|THIS EVENING|` +
		`SYNOPSIS|DISCUSSION|FORECAST|OUTLOOK|MARINE|AVIATION|HYDROLOGY|EXTENDED|UPDATE|` +
		`TODAY|TONIGHT|OVERNIGHT|WEEKEND|` +
		`MONDAY|TUESDAY|WEDNESDAY|THURSDAY|FRIDAY|SATURDAY|SUNDAY` +
		`)(\.{3,})?\b`)
)

// startsWithSectionKeyword reports whether a sentence opens a new discussion
// section.
func startsWithSectionKeyword(sentence string) bool {
	return sectionKeywordStart.MatchString(strings.TrimSpace(sentence))
}

// splitSentences breaks text at ". " boundaries, restoring the period each
// boundary consumed. The final piece keeps whatever punctuation it had.
func splitSentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if i < len(parts)-1 {
			part += "."
		}
		sentences = append(sentences, part)
	}
	return sentences
}

// joinWrappedLines rejoins line-wrapped prose into one flowing line.
func joinWrappedLines(s string) string {
	return lineWrap.ReplaceAllString(s, " ")
}

// segmentParagraphs splits cleaned bulletin text into paragraphs using a
// three-tier fallback: structural breaks, then sentence reconstruction, then
// a forced re-split of one oversized paragraph. Paragraphs come out as single
// lines; wrap points from the source product do not survive.
func segmentParagraphs(clean string) []string {
	pieces := structuralBreak.Split(clean, -1)

	var paragraphs []string
	if len(pieces) > 1 {
		// Structural breaks present: keep real paragraphs, drop artifacts.
		for _, piece := range pieces {
			piece = strings.TrimSpace(joinWrappedLines(piece))
			if len(piece) > minFragmentLen {
				paragraphs = append(paragraphs, piece)
			}
		}
	} else {
		paragraphs = reconstructFromSentences(joinWrappedLines(clean))
	}

	// One oversized blob survived both tiers: force breaks regardless of
	// section keywords.
	if len(paragraphs) == 1 && len(paragraphs[0]) > forcedSplitLen {
		paragraphs = forceSplit(paragraphs[0])
	}

	return paragraphs
}

// reconstructFromSentences rebuilds paragraphs for text without structural
// breaks. A new paragraph starts at each section-keyword sentence, and after
// every three accumulated sentences.
func reconstructFromSentences(text string) []string {
	sentences := splitSentences(text)

	var paragraphs []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = current[:0]
		}
	}

	for _, sentence := range sentences {
		if startsWithSectionKeyword(sentence) {
			flush()
		}
		current = append(current, sentence)
		if len(current) >= maxSentencesPerPara {
			flush()
		}
	}
	flush()

	return paragraphs
}

// forceSplit breaks one oversized paragraph by flushing every two sentences,
// ignoring section keywords.
func forceSplit(paragraph string) []string {
	sentences := splitSentences(paragraph)

	var paragraphs []string
	var current []string
	for _, sentence := range sentences {
		current = append(current, sentence)
		if len(current) >= 2 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = current[:0]
		}
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, strings.Join(current, " "))
	}

	return paragraphs
}

// splitLongParagraphs breaks any paragraph beyond maxParagraphLen at sentence
// boundaries: sentences accumulate into a chunk, and the chunk flushes when
// the next sentence would push it past targetChunkLen or itself opens a new
// section.
func splitLongParagraphs(paragraphs []string) []string {
	result := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		if len(paragraph) <= maxParagraphLen {
			result = append(result, paragraph)
			continue
		}

		var chunk []string
		chunkLen := 0
		for _, sentence := range splitSentences(paragraph) {
			if len(chunk) > 0 && (chunkLen+1+len(sentence) > targetChunkLen || startsWithSectionKeyword(sentence)) {
				result = append(result, strings.Join(chunk, " "))
				chunk = chunk[:0]
				chunkLen = 0
			}
			chunk = append(chunk, sentence)
			chunkLen += len(sentence)
			if len(chunk) > 1 {
				chunkLen++ // joining space
			}
		}
		if len(chunk) > 0 {
			result = append(result, strings.Join(chunk, " "))
		}
	}
	return result
}
