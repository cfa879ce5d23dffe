package marinedash

import "testing"

func TestFormatShort(t *testing.T) {
	df := NewDateFormatter()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "RFC 3339 UTC",
			input:    "2026-08-29T12:45:00Z",
			expected: "Aug 29, 12:45",
		},
		{
			name:     "RFC 3339 with offset",
			input:    "2026-01-03T08:05:00-09:00",
			expected: "Jan 3, 08:05",
		},
		{
			name:     "offset without colon",
			input:    "2026-08-29T12:45:00-0900",
			expected: "Aug 29, 12:45",
		},
		{
			name:     "space separated",
			input:    "2026-08-29 12:45:00",
			expected: "Aug 29, 12:45",
		},
		{
			name:     "surrounding whitespace tolerated",
			input:    "  2026-08-29T12:45:00Z  ",
			expected: "Aug 29, 12:45",
		},
		{
			name:     "unparseable value",
			input:    "not-a-timestamp",
			expected: "Unknown",
		},
		{
			name:     "empty value",
			input:    "",
			expected: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := df.FormatShort(tt.input)
			if got != tt.expected {
				t.Errorf("FormatShort(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
