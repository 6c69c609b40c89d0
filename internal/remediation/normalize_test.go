package remediation

import (
	"strings"
	"testing"
)

const heading = "**AI Security Header Analysis**\n\n"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "label and plus bullets",
			raw:  "Missing Security Header: X\n+ do this\n+ do that",
			want: heading + "**Missing Security Header:**\n X\n\n-  do this\n\n-  do that",
		},
		{
			name: "leading duplicate title dropped",
			raw:  "  **AI Security Header Analysis**\n\nUse HSTS.  ",
			want: heading + "Use HSTS.",
		},
		{
			name: "emphasis and single quotes stripped",
			raw:  "Set the *X-Frame-Options* header to 'DENY'.",
			want: heading + "Set the X-Frame-Options header to DENY.",
		},
		{
			name: "labels with and without colon",
			raw:  "Header Name X-Frame-Options Purpose: stop clickjacking",
			want: heading + "**Header Name:**\n X-Frame-Options \n**Purpose:**\n stop clickjacking",
		},
		{
			name: "description and remediation steps",
			raw:  "Description: blocks sniffing\nRemediation Steps: add it",
			want: heading + "**Description:**\n blocks sniffing\n\n**Remediation Steps:**\n add it",
		},
		{
			name: "inline plus becomes bullet",
			raw:  "Enable CSP + HSTS",
			want: heading + "Enable CSP \n\n-  HSTS",
		},
		{
			name: "double backtick span fenced",
			raw:  "Add ``Referrer-Policy: no-referrer`` now",
			want: heading + "Add \n\n```Referrer-Policy: no-referrer```\n\n now",
		},
		{
			name: "example fenced",
			raw:  "Example: X-Content-Type-Options: nosniff",
			want: heading + "**Example:**\n\n```X-Content-Type-Options: nosniff```",
		},
		{
			name: "runs of newlines collapsed",
			raw:  "first\n\n\n\nsecond",
			want: heading + "first\n\nsecond",
		},
		{
			name: "existing dash bullets spaced",
			raw:  "Fixes:\n- one\n- two",
			want: heading + "Fixes:\n\n- one\n\n- two",
		},
		{
			name: "no-break space before plus",
			raw:  "a\n\u00a0+ nbsp",
			want: heading + "a\n\n-  nbsp",
		},
		{
			name: "vertical tab before plus",
			raw:  "a\n\v+ vt",
			want: heading + "a\n\n-  vt",
		},
		{
			name: "whitespace only",
			raw:  " \n\t ",
			want: heading,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q)\n got: %q\nwant: %q", tt.raw, got, tt.want)
			}
		})
	}
}

// A second pass adds one blank line after each bold label; output is stable from then on.
func TestNormalize_Rerun(t *testing.T) {
	once := Normalize("Missing Security Header: X\n+ do this\n+ do that")
	twice := Normalize(once)

	if n := strings.Count(twice, "AI Security Header Analysis"); n != 1 {
		t.Errorf("title appears %d times after rerun, want 1:\n%s", n, twice)
	}
	if !strings.HasPrefix(twice, heading) {
		t.Errorf("rerun output lost the heading:\n%s", twice)
	}
	if !strings.Contains(twice, "**Missing Security Header:**") {
		t.Errorf("rerun output lost the bold label:\n%s", twice)
	}
	for _, bullet := range []string{"\n\n-  do this", "\n\n-  do that"} {
		if !strings.Contains(twice, bullet) {
			t.Errorf("rerun output missing bullet %q:\n%s", bullet, twice)
		}
	}
	if strings.Contains(twice, "\n\n\n") {
		t.Errorf("rerun output has uncollapsed blank lines:\n%q", twice)
	}

	if thrice := Normalize(twice); thrice != twice {
		t.Errorf("normalization did not settle:\n second: %q\n third:  %q", twice, thrice)
	}
}
