package telegram

import (
	"strings"
	"unicode/utf8"
)

// maxMessageLen is Telegram's limit in UTF-16 code units.
const maxMessageLen = 4096

const (
	codeOpen  = "```json\n"
	codeClose = "\n```"
)

// mdV2Replacer escapes special characters for Telegram MarkdownV2.
var mdV2Replacer = strings.NewReplacer(
	`\`, `\\`,
	"_", "\\_",
	"*", "\\*",
	"[", "\\[",
	"]", "\\]",
	"(", "\\(",
	")", "\\)",
	"~", "\\~",
	"`", "\\`",
	">", "\\>",
	"#", "\\#",
	"+", "\\+",
	"-", "\\-",
	"=", "\\=",
	"|", "\\|",
	"{", "\\{",
	"}", "\\}",
	".", "\\.",
	"!", "\\!",
)

// codeReplacer escapes the two characters MarkdownV2 reserves inside pre blocks.
var codeReplacer = strings.NewReplacer(`\`, `\\`, "`", "\\`")

// EscapeMdV2 escapes a string for safe use in Telegram MarkdownV2.
func EscapeMdV2(s string) string {
	return mdV2Replacer.Replace(s)
}

// FormatBold returns MarkdownV2 bold text.
func FormatBold(s string) string {
	return "*" + EscapeMdV2(s) + "*"
}

// FormatItalic returns MarkdownV2 italic text.
func FormatItalic(s string) string {
	return "_" + EscapeMdV2(s) + "_"
}

// chunk is one message worth of text: the raw form for plain sending and
// the escaped form for a MarkdownV2 code block.
type chunk struct {
	raw     string
	escaped string
}

// markdown wraps the escaped text in a json code block.
func (c chunk) markdown() string {
	return codeOpen + c.escaped + codeClose
}

// splitCode splits text into chunks whose code block form fits in one
// message. Breaks fall on line boundaries unless a single line is too long.
func splitCode(text string) []chunk {
	budget := maxMessageLen - utf16Len(codeOpen) - utf16Len(codeClose)

	var (
		chunks   []chunk
		raw, esc strings.Builder
		size     int
	)
	flush := func() {
		if r := strings.TrimSuffix(raw.String(), "\n"); r != "" {
			chunks = append(chunks, chunk{
				raw:     r,
				escaped: strings.TrimSuffix(esc.String(), "\n"),
			})
		}
		raw.Reset()
		esc.Reset()
		size = 0
	}
	add := func(r, e string, n int) {
		raw.WriteString(r)
		esc.WriteString(e)
		size += n
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		escaped := codeReplacer.Replace(line)
		n := utf16Len(escaped)
		if size+n > budget {
			flush()
		}
		if n <= budget {
			add(line, escaped, n)
			continue
		}
		for _, r := range line {
			s := string(r)
			e := codeReplacer.Replace(s)
			en := utf16Len(e)
			if size+en > budget {
				flush()
			}
			add(s, e, en)
		}
	}
	flush()
	return chunks
}

// utf16Len counts UTF-16 code units, the unit of Telegram's length limit.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 && r <= utf8.MaxRune {
			n += 2
			continue
		}
		n++
	}
	return n
}
