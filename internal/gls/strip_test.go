package gls

import (
	"errors"
	"testing"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no wrapper",
			input:    "plain text with {braces} and [brackets]",
			expected: "plain text with {braces} and [brackets]",
		},
		{
			name:     "single wrapper",
			input:    `see \hyperref[sec:intro]{Some text} here`,
			expected: "see Some text here",
		},
		{
			name:     "wrapper at start and end",
			input:    `\hyperref[a]{x}middle\hyperref[b]{y}`,
			expected: "xmiddley",
		},
		{
			name:     "empty body",
			input:    `\hyperref[a]{}`,
			expected: "",
		},
		{
			name:     "nested braces in body kept",
			input:    `\hyperref[a]{outer {inner} tail}`,
			expected: "outer {inner} tail",
		},
		{
			name:     "body is not re-scanned",
			input:    `\hyperref[a]{\gls{x}}`,
			expected: `\gls{x}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Strip(tt.input, "hyperref")
			if err != nil {
				t.Fatalf("Strip(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStripErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing option block", input: `\hyperref{body}`},
		{name: "unterminated option block", input: `\hyperref[unclosed`},
		{name: "missing body", input: `\hyperref[a]`},
		{name: "unbalanced body", input: `\hyperref[a]{open {inner}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Strip(tt.input, "hyperref")
			if err == nil {
				t.Fatalf("Strip(%q) = %q, want error", tt.input, got)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("Strip(%q) error = %T, want *ParseError", tt.input, err)
			}
		})
	}
}

func TestStripCustomWrapper(t *testing.T) {
	got, err := Strip(`\mbox[x]{kept}`, "mbox")
	if err != nil {
		t.Fatalf("Strip returned error: %v", err)
	}
	if got != "kept" {
		t.Errorf("Strip = %q, want %q", got, "kept")
	}
}

func TestStripDisabled(t *testing.T) {
	input := `\hyperref[a]{x}`
	got, err := Strip(input, "")
	if err != nil {
		t.Fatalf("Strip returned error: %v", err)
	}
	if got != input {
		t.Errorf("Strip with empty wrapper = %q, want input unchanged", got)
	}
}
