package telegram

import (
	"strings"
	"testing"
)

func TestEscapeMdV2(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "hello world", want: "hello world"},
		{name: "dots", in: "hello.", want: "hello\\."},
		{name: "parentheses", in: "(2024)", want: "\\(2024\\)"},
		{name: "underscores", in: "search_movies", want: "search\\_movies"},
		{name: "usage", in: "<query> [page=1]", want: "<query\\> \\[page\\=1\\]"},
		{name: "all specials", in: "_*[]()~`>#+-=|{}.!", want: "\\_\\*\\[\\]\\(\\)\\~\\`\\>\\#\\+\\-\\=\\|\\{\\}\\.\\!"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EscapeMdV2(tt.in)
			if got != tt.want {
				t.Errorf("EscapeMdV2(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatBoldItalic(t *testing.T) {
	if got := FormatBold("TMDb tools"); got != "*TMDb tools*" {
		t.Errorf("FormatBold = %q", got)
	}
	if got := FormatItalic("[page=1]"); got != "_\\[page\\=1\\]_" {
		t.Errorf("FormatItalic = %q", got)
	}
}

func TestSplitCode_Small(t *testing.T) {
	text := "{\n  \"title\": \"a `quoted` \\\\ path\"\n}"
	chunks := splitCode(text)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].raw != text {
		t.Errorf("raw = %q, want %q", chunks[0].raw, text)
	}
	wantEsc := "{\n  \"title\": \"a \\`quoted\\` \\\\\\\\ path\"\n}"
	if chunks[0].escaped != wantEsc {
		t.Errorf("escaped = %q, want %q", chunks[0].escaped, wantEsc)
	}
	if got := chunks[0].markdown(); got != "```json\n"+wantEsc+"\n```" {
		t.Errorf("markdown = %q", got)
	}
}

func TestSplitCode_LargeBreaksOnLines(t *testing.T) {
	line := "  \"overview\": \"" + strings.Repeat("x", 90) + "\","
	lines := make([]string, 200)
	for i := range lines {
		lines[i] = line
	}
	text := strings.Join(lines, "\n")

	chunks := splitCode(text)
	if len(chunks) < 2 {
		t.Fatalf("expected several chunks, got %d", len(chunks))
	}

	var rebuilt []string
	for i, c := range chunks {
		if n := utf16Len(c.markdown()); n > maxMessageLen {
			t.Errorf("chunk %d is %d units, over the limit", i, n)
		}
		if strings.HasPrefix(c.raw, "\n") || strings.HasSuffix(c.raw, "\n") {
			t.Errorf("chunk %d not split on a line boundary", i)
		}
		rebuilt = append(rebuilt, c.raw)
	}
	if got := strings.Join(rebuilt, "\n"); got != text {
		t.Error("chunks do not reassemble into the input text")
	}
}

func TestSplitCode_LongLine(t *testing.T) {
	text := strings.Repeat("`", 5000)
	chunks := splitCode(text)
	if len(chunks) < 3 {
		t.Fatalf("expected at least 3 chunks, got %d", len(chunks))
	}
	var rebuilt strings.Builder
	for i, c := range chunks {
		if n := utf16Len(c.markdown()); n > maxMessageLen {
			t.Errorf("chunk %d is %d units, over the limit", i, n)
		}
		if strings.Count(c.escaped, "\\`") != len(c.raw) {
			t.Errorf("chunk %d split inside an escape sequence", i)
		}
		rebuilt.WriteString(c.raw)
	}
	if rebuilt.String() != text {
		t.Error("chunks do not reassemble into the input text")
	}
}

func TestUTF16Len(t *testing.T) {
	tests := map[string]int{
		"":      0,
		"abc":   3,
		"héllo": 5,
		"🎬":     2,
		"a🎬b":   4,
	}
	for in, want := range tests {
		if got := utf16Len(in); got != want {
			t.Errorf("utf16Len(%q) = %d, want %d", in, got, want)
		}
	}
}
