package marinedash

import (
	"strings"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "two sentences",
			input:    "Winds ease overnight. Seas subside slowly.",
			expected: []string{"Winds ease overnight.", "Seas subside slowly."},
		},
		{
			name:     "trailing period kept on last sentence",
			input:    "Winds ease overnight.",
			expected: []string{"Winds ease overnight."},
		},
		{
			name:     "no terminal punctuation",
			input:    "Winds ease. Seas subside",
			expected: []string{"Winds ease.", "Seas subside"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSentences(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("splitSentences() = %q, want %q", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("sentence %d = %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestStartsWithSectionKeyword(t *testing.T) {
	tests := []struct {
		sentence string
		expected bool
	}{
		{"SYNOPSIS...A low deepens offshore.", true},
		{".SYNOPSIS...A low deepens offshore.", true},
		{"Synopsis is unchanged.", true},
		{"TONIGHT...Winds ease.", true},
		{"Tuesday brings another front.", true},
		{"MARINE...Small craft advisory continues.", true},
		{"Short term concerns remain.", true},
		{"The synopsis is unchanged.", false},
		{"SYNOPSISX is not a keyword.", false},
		{"Winds ease overnight.", false},
		{"", false},
	}

	for _, tt := range tests {
		got := startsWithSectionKeyword(tt.sentence)
		if got != tt.expected {
			t.Errorf("startsWithSectionKeyword(%q) = %v, want %v", tt.sentence, got, tt.expected)
		}
	}
}

func TestSegmentStructuralBreaks(t *testing.T) {
	input := "A deep low tracks into the gulf tonight.\n\nSoutheast winds build ahead of the front" +
		"...Gale warnings may be needed for the outer waters."

	got := segmentParagraphs(input)

	expected := []string{
		"A deep low tracks into the gulf tonight.",
		"Southeast winds build ahead of the front",
		"Gale warnings may be needed for the outer waters.",
	}
	if len(got) != len(expected) {
		t.Fatalf("segmentParagraphs() = %q, want %q", got, expected)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("paragraph %d = %q, want %q", i, got[i], expected[i])
		}
	}
}

func TestSegmentDropsShortFragments(t *testing.T) {
	input := "SYNOPSIS...A strong low spins over the central gulf of Alaska."

	got := segmentParagraphs(input)

	expected := []string{"A strong low spins over the central gulf of Alaska."}
	if len(got) != 1 || got[0] != expected[0] {
		t.Errorf("segmentParagraphs() = %q, want %q", got, expected)
	}
}

func TestSegmentKeywordReconstruction(t *testing.T) {
	input := "Synopsis is mostly unchanged from this morning. A weak ridge holds over the area. " +
		"Tonight winds ease across the sound. Seas subside slowly behind the departing system."

	got := segmentParagraphs(input)

	if len(got) != 2 {
		t.Fatalf("segmentParagraphs() = %q, want 2 paragraphs", got)
	}
	if !strings.HasPrefix(got[0], "Synopsis") {
		t.Errorf("paragraph 0 = %q, want paragraph starting at Synopsis", got[0])
	}
	if !strings.HasPrefix(got[1], "Tonight") {
		t.Errorf("paragraph 1 = %q, want paragraph starting at Tonight", got[1])
	}
}

func TestSegmentThreeSentenceCap(t *testing.T) {
	input := "First sentence describes the pattern. Second sentence adds detail. " +
		"Third sentence wraps the thought. Fourth sentence starts fresh. Fifth sentence closes."

	got := segmentParagraphs(input)

	if len(got) != 2 {
		t.Fatalf("segmentParagraphs() = %q, want 2 paragraphs", got)
	}
	if n := strings.Count(got[0], "."); n != 3 {
		t.Errorf("paragraph 0 has %d sentences, want 3: %q", n, got[0])
	}
}

func TestSegmentForcedResplit(t *testing.T) {
	long := strings.Repeat("x", 250)
	input := long + ". " + long + ". " + long + "."

	got := segmentParagraphs(input)

	if len(got) < 2 {
		t.Fatalf("segmentParagraphs() = %d paragraphs, want a forced re-split", len(got))
	}
}

func TestSplitLongParagraphs(t *testing.T) {
	sentence := "Southeast winds twenty five knots with gusts near forty through the evening hours."
	paragraph := sentence
	for i := 0; i < 9; i++ {
		paragraph += " " + sentence
	}
	if len(paragraph) <= maxParagraphLen {
		t.Fatalf("test paragraph too short: %d", len(paragraph))
	}

	got := splitLongParagraphs([]string{paragraph})

	if len(got) < 2 {
		t.Fatalf("splitLongParagraphs() returned %d paragraphs, want several", len(got))
	}
	for i, p := range got {
		if len(p) > maxParagraphLen {
			t.Errorf("paragraph %d is %d chars, want <= %d", i, len(p), maxParagraphLen)
		}
	}

	rejoined := normalizeWhitespace(strings.Join(got, " "))
	if rejoined != normalizeWhitespace(paragraph) {
		t.Errorf("splitting lost text: %q", rejoined)
	}
}

func TestSplitLongParagraphsKeepsShortOnes(t *testing.T) {
	paragraphs := []string{"Winds ease overnight.", "Seas subside slowly."}

	got := splitLongParagraphs(paragraphs)

	if len(got) != 2 || got[0] != paragraphs[0] || got[1] != paragraphs[1] {
		t.Errorf("splitLongParagraphs() = %q, want unchanged %q", got, paragraphs)
	}
}
