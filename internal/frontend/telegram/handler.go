package telegram

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vadimtrunov/tmdb-mcp/internal/catalog"
)

const (
	unauthorizedMsg = "Sorry, you are not authorized to use this bot."
	unknownMsg      = "Unknown command. Send /help for the list of tools."
	helpTitle       = "TMDb tools"
	helpFooter      = "Free text goes to the first parameter; set others with key=value."
)

// handleMessage processes an incoming text message.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}
	userID := msg.From.ID
	chatID := msg.Chat.ID

	b.logger.Debug("received message",
		slog.Int64("user_id", userID),
	)

	if !b.access.isAllowed(userID) {
		b.sendText(chatID, unauthorizedMsg)
		return
	}

	name, rest, ok := parseCommand(msg.Text)
	if !ok {
		b.sendText(chatID, unknownMsg)
		return
	}

	switch name {
	case "start", "help":
		b.sendHelp(chatID)
		return
	}

	spec, ok := b.table.Lookup(name)
	if !ok {
		b.sendText(chatID, unknownMsg)
		return
	}

	// Show typing indicator.
	typing := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	b.out.Send(typing) //nolint:errcheck // best-effort typing indicator

	args := catalog.ParseArgs(spec, strings.Fields(rest))
	out := b.table.Invoke(ctx, name, args)
	b.sendJSON(chatID, out.String())
}

// parseCommand splits "/name@bot rest" into the command name and the rest.
func parseCommand(text string) (name, rest string, ok bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}
	head := text[1:]
	if i := strings.IndexFunc(head, unicode.IsSpace); i >= 0 {
		head, rest = head[:i], strings.TrimSpace(head[i:])
	}
	name, _, _ = strings.Cut(head, "@")
	if name == "" {
		return "", "", false
	}
	return name, rest, true
}

// helpText lists every tool with its usage, in MarkdownV2 and plain form.
func (b *Bot) helpText() (md, plain string) {
	var m, p strings.Builder
	m.WriteString(FormatBold(helpTitle) + "\n\n")
	p.WriteString(helpTitle + "\n\n")
	for _, spec := range b.table.Specs() {
		usage := catalog.Usage(spec)
		m.WriteString(EscapeMdV2("/" + spec.Name))
		p.WriteString("/" + spec.Name)
		if usage != "" {
			m.WriteString(" " + FormatItalic(usage))
			p.WriteString(" " + usage)
		}
		m.WriteString("\n")
		p.WriteString("\n")
	}
	m.WriteString("\n" + EscapeMdV2(helpFooter))
	p.WriteString("\n" + helpFooter)
	return m.String(), p.String()
}

func (b *Bot) sendHelp(chatID int64) {
	md, plain := b.helpText()
	msg := tgbotapi.NewMessage(chatID, md)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	if _, err := b.out.Send(msg); err != nil {
		b.logger.Warn("failed to send markdown, retrying plain",
			slog.String("error", err.Error()),
		)
		b.sendText(chatID, plain)
	}
}

// sendJSON sends a tool result as one or more json code blocks.
func (b *Bot) sendJSON(chatID int64, text string) {
	for _, c := range splitCode(text) {
		msg := tgbotapi.NewMessage(chatID, c.markdown())
		msg.ParseMode = tgbotapi.ModeMarkdownV2
		if _, err := b.out.Send(msg); err != nil {
			b.logger.Warn("failed to send markdown, retrying plain",
				slog.String("error", err.Error()),
			)
			b.sendText(chatID, c.raw)
		}
	}
}

// sendText sends a plain text message (no parse mode).
func (b *Bot) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.out.Send(msg); err != nil {
		b.logger.Error("failed to send message",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
	}
}
